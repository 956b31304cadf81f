package ports

import "github.com/arctanb/srtm/internal/domain"

// CoordinateSource reads a path string and tokenizes it into pairs.
type CoordinateSource interface {
	LoadPairs(path string) ([]domain.CoordinatePair, error)
}
