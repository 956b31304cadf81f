package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"

	geo "github.com/kellydunn/golang-geo"
	"golang.org/x/sync/errgroup"

	"github.com/arctanb/srtm/internal/domain"
	"github.com/arctanb/srtm/internal/ports"
)

type Profile struct {
	elevations  ports.ElevationSource
	granularity int
	workers     int
	logger      *slog.Logger
}

type ProfileOption func(*Profile)

// WithGranularity sets the sample spacing along a leg, in arcseconds.
func WithGranularity(arcsec int) ProfileOption {
	return func(uc *Profile) {
		if arcsec > 0 {
			uc.granularity = arcsec
		}
	}
}

// WithWorkers bounds the number of concurrent elevation lookups.
func WithWorkers(n int) ProfileOption {
	return func(uc *Profile) {
		if n > 0 {
			uc.workers = n
		}
	}
}

func WithProfileLogger(l *slog.Logger) ProfileOption {
	return func(uc *Profile) {
		if l != nil {
			uc.logger = l
		}
	}
}

func NewProfile(es ports.ElevationSource, opts ...ProfileOption) *Profile {
	def := domain.DefaultConfig().Profile
	uc := &Profile{
		elevations:  es,
		granularity: def.GranularityArcsec,
		workers:     def.Workers,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute samples the terrain along the straight legs joining consecutive
// waypoints. Results keep leg order and, within a leg, walk from its start.
func (uc *Profile) Execute(ctx context.Context, waypoints []domain.ArcPoint) ([]domain.ProfileSample, error) {
	legs := uc.Legs(waypoints)
	samples := uc.plan(legs)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.workers)
	for i := range samples {
		g.Go(func() error {
			v, err := uc.elevations.Elevation(gctx, samples[i].Point)
			if err != nil {
				return fmt.Errorf("leg %d sample at %+v: %w", samples[i].Leg, samples[i].Point, err)
			}
			samples[i].Elevation = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	uc.logger.Debug("profile.done",
		"waypoints", len(waypoints),
		"samples", len(samples),
		"km", TotalKm(legs),
	)
	return samples, nil
}

// Legs describes each leg of the route: its endpoints, how many samples
// Execute will take along it and its great-circle length.
func (uc *Profile) Legs(waypoints []domain.ArcPoint) []domain.Leg {
	if len(waypoints) < 2 {
		return nil
	}
	out := make([]domain.Leg, 0, len(waypoints)-1)
	for i := 1; i < len(waypoints); i++ {
		from, to := waypoints[i-1], waypoints[i]
		out = append(out, domain.Leg{
			Index:   i - 1,
			From:    from,
			To:      to,
			Samples: len(SampleLeg(from, to, uc.granularity)),
			Km:      greatCircleKm(from, to),
		})
	}
	return out
}

func TotalKm(legs []domain.Leg) float64 {
	var km float64
	for _, l := range legs {
		km += l.Km
	}
	return km
}

func greatCircleKm(from, to domain.ArcPoint) float64 {
	flat, flon := from.Degrees()
	tlat, tlon := to.Degrees()
	return geo.NewPoint(flat, flon).GreatCircleDistance(geo.NewPoint(tlat, tlon))
}

func (uc *Profile) plan(legs []domain.Leg) []domain.ProfileSample {
	var out []domain.ProfileSample
	for _, leg := range legs {
		uc.logger.Debug("profile.leg", "leg", leg.Index, "samples", leg.Samples, "km", leg.Km)
		for _, p := range SampleLeg(leg.From, leg.To, uc.granularity) {
			out = append(out, domain.ProfileSample{Leg: leg.Index, Point: p})
		}
	}
	return out
}

// SampleLeg returns the points spaced roughly granularity arcseconds apart
// on the straight line from start towards end. The end point itself is left
// out; it opens the next leg.
func SampleLeg(start, end domain.ArcPoint, granularity int) []domain.ArcPoint {
	if granularity <= 0 {
		return nil
	}

	dEast := float64(end.East - start.East)
	dNorth := float64(end.North - start.North)
	steps := int(math.Hypot(dEast, dNorth) / float64(granularity))

	out := make([]domain.ArcPoint, 0, steps)
	for i := 0; i < steps; i++ {
		out = append(out, domain.ArcPoint{
			East:  int(float64(start.East) + dEast*float64(i)/float64(steps)),
			North: int(float64(start.North) + dNorth*float64(i)/float64(steps)),
		})
	}
	return out
}
