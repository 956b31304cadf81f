package ports

import "github.com/arctanb/srtm/internal/domain"

// WaypointSource loads waypoints previously written by the converter.
type WaypointSource interface {
	LoadWaypoints(path string) ([]domain.ArcPoint, error)
}
