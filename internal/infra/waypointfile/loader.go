package waypointfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/arctanb/srtm/internal/domain"
	"github.com/arctanb/srtm/internal/ports"
)

// Loader reads the waypoint listing written by the converter:
// a count line followed by that many `H D M S H D M S` lines.
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

var _ ports.WaypointSource = (*Loader)(nil)

func (l *Loader) LoadWaypoints(path string) ([]domain.ArcPoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "waypointfile.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	points, err := Read(f)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "waypointfile.load",
			Kind: domain.KindParse,
			Path: path,
			Err:  err,
		}
	}
	return points, nil
}

// Read decodes a waypoint listing. Lines past the declared count are ignored.
func Read(r io.Reader) ([]domain.ArcPoint, error) {
	sc := bufio.NewScanner(r)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("missing count line: %w", domain.ErrParse)
	}
	n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil || n < 0 {
		return nil, fmt.Errorf("line 1: invalid count %q: %w", sc.Text(), domain.ErrParse)
	}

	out := make([]domain.ArcPoint, 0, n)
	for lineNo := 2; len(out) < n; lineNo++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("expected %d waypoints, found %d: %w", n, len(out), domain.ErrParse)
		}
		p, err := parseLine(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func parseLine(line string) (domain.ArcPoint, error) {
	f := strings.Fields(line)
	if len(f) != 8 {
		return domain.ArcPoint{}, fmt.Errorf("expected 8 fields, got %d: %w", len(f), domain.ErrParse)
	}

	lat, err := parseDMS(f[0:4], domain.North, domain.South)
	if err != nil {
		return domain.ArcPoint{}, fmt.Errorf("latitude: %w", err)
	}
	lon, err := parseDMS(f[4:8], domain.East, domain.West)
	if err != nil {
		return domain.ArcPoint{}, fmt.Errorf("longitude: %w", err)
	}
	return domain.Waypoint(lat, lon), nil
}

func parseDMS(f []string, pos, neg domain.Hemisphere) (domain.DMS, error) {
	h := domain.Hemisphere(f[0])
	if h != pos && h != neg {
		return domain.DMS{}, fmt.Errorf("hemisphere %q, want %s or %s: %w", f[0], pos, neg, domain.ErrParse)
	}

	var nums [3]float64
	for i, s := range f[1:] {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return domain.DMS{}, fmt.Errorf("field %q is not a non-negative integer: %w", s, domain.ErrParse)
		}
		nums[i] = float64(v)
	}

	return domain.DMS{Hemisphere: h, Degrees: nums[0], Minutes: nums[1], Seconds: nums[2]}, nil
}
