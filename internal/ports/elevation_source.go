package ports

import (
	"context"

	"github.com/arctanb/srtm/internal/domain"
)

// ElevationSource answers terrain height queries, in metres.
type ElevationSource interface {
	Elevation(ctx context.Context, p domain.ArcPoint) (uint16, error)
}
