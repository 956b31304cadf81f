package usecase

import (
	"context"
	"sync/atomic"

	"github.com/arctanb/srtm/internal/domain"
	"github.com/arctanb/srtm/internal/ports"
)

type fakeSource struct {
	pairs []domain.CoordinatePair
	err   error
}

func (f fakeSource) LoadPairs(_ string) ([]domain.CoordinatePair, error) {
	return f.pairs, f.err
}

// fakeElevations reports North+East as the elevation of a point.
type fakeElevations struct {
	failAt *domain.ArcPoint
	err    error
	calls  atomic.Int64
}

func (f *fakeElevations) Elevation(ctx context.Context, p domain.ArcPoint) (uint16, error) {
	f.calls.Add(1)
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if f.failAt != nil && *f.failAt == p {
		return 0, f.err
	}
	return uint16(p.North + p.East), nil
}

var (
	_ ports.CoordinateSource = fakeSource{}
	_ ports.ElevationSource  = (*fakeElevations)(nil)
)
