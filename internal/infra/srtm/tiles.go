// Package srtm reads elevations out of SRTM3 .hgt tiles.
//
// A tile covers one degree square and holds 1201x1201 big-endian uint16
// samples at 3 arcsecond spacing, first row at the northern edge. Tiles are
// named after their south-west corner, e.g. N19W099.hgt.
package srtm

import (
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/arctanb/srtm/internal/domain"
	"github.com/arctanb/srtm/internal/ports"
)

const (
	// Side is the number of samples along each edge of an SRTM3 tile.
	Side = 1201
	// SpacingArcsec is the distance between neighbouring samples.
	SpacingArcsec = 3

	tileBytes = Side * Side * 2
)

type Tiles struct {
	dataDir string

	mu   sync.Mutex
	open map[string]*os.File
}

type Option func(*Tiles)

// WithDataDir sets the directory holding the .hgt files (default "data").
func WithDataDir(dir string) Option {
	return func(t *Tiles) {
		if dir != "" {
			t.dataDir = dir
		}
	}
}

func NewTiles(opts ...Option) *Tiles {
	t := &Tiles{
		dataDir: domain.DefaultConfig().SRTM.DataDir,
		open:    map[string]*os.File{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

var _ ports.ElevationSource = (*Tiles)(nil)

// Elevation returns the sample at or south-west of p.
// Safe for concurrent use.
func (t *Tiles) Elevation(ctx context.Context, p domain.ArcPoint) (uint16, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	name, relEast, relNorth := Locate(p)
	f, err := t.file(name)
	if err != nil {
		return 0, err
	}

	var buf [2]byte
	off := SampleOffset(relEast, relNorth)
	if _, err := f.ReadAt(buf[:], off); err != nil {
		return 0, &domain.OpError{
			Op:   "srtm.read",
			Kind: domain.KindExecution,
			Path: f.Name(),
			Err:  fmt.Errorf("offset %d: %w", off, err),
		}
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

// Close releases every tile opened so far.
func (t *Tiles) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	var first error
	for name, f := range t.open {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
		delete(t.open, name)
	}
	return first
}

func (t *Tiles) file(name string) (*os.File, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if f, ok := t.open[name]; ok {
		return f, nil
	}

	path := filepath.Join(t.dataDir, name)
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "srtm.open",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	info, err := f.Stat()
	if err != nil || info.Size() != tileBytes {
		_ = f.Close()
		if err == nil {
			err = fmt.Errorf("size %d, want %d: %w", info.Size(), tileBytes, domain.ErrExecution)
		}
		return nil, &domain.OpError{
			Op:   "srtm.open",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	t.open[name] = f
	return f, nil
}

// Locate returns the tile file name holding p and p's offset, in arcseconds,
// from that tile's south-west corner.
func Locate(p domain.ArcPoint) (name string, relEast, relNorth int) {
	eastDeg := floorDiv(p.East, domain.ArcsecPerDegree)
	northDeg := floorDiv(p.North, domain.ArcsecPerDegree)

	relEast = p.East - eastDeg*domain.ArcsecPerDegree
	relNorth = p.North - northDeg*domain.ArcsecPerDegree
	return TileName(northDeg, eastDeg), relEast, relNorth
}

// TileName formats the conventional .hgt name for a south-west corner.
func TileName(northDeg, eastDeg int) string {
	ns, ew := 'N', 'E'
	if northDeg < 0 {
		ns, northDeg = 'S', -northDeg
	}
	if eastDeg < 0 {
		ew, eastDeg = 'W', -eastDeg
	}
	return fmt.Sprintf("%c%02d%c%03d.hgt", ns, northDeg, ew, eastDeg)
}

// SampleOffset is the byte offset of the sample covering a relative position.
func SampleOffset(relEast, relNorth int) int64 {
	row := Side - 1 - relNorth/SpacingArcsec
	col := relEast / SpacingArcsec
	return int64(row*Side+col) * 2
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
