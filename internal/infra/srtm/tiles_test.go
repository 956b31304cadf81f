package srtm

import (
	"context"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/arctanb/srtm/internal/domain"
)

func TestTileName(t *testing.T) {
	cases := []struct {
		north, east int
		want        string
	}{
		{19, -99, "N19W099.hgt"},
		{-1, -1, "S01W001.hgt"},
		{0, 0, "N00E000.hgt"},
		{51, 7, "N51E007.hgt"},
		{-34, 151, "S34E151.hgt"},
	}
	for _, c := range cases {
		if got := TileName(c.north, c.east); got != c.want {
			t.Errorf("TileName(%d, %d) = %q, want %q", c.north, c.east, got, c.want)
		}
	}
}

func TestLocate(t *testing.T) {
	cases := []struct {
		p                 domain.ArcPoint
		name              string
		relEast, relNorth int
	}{
		{domain.ArcPoint{East: -99*3600 + 1020, North: 19*3600 + 1450}, "N19W099.hgt", 1020, 1450},
		{domain.ArcPoint{East: -1, North: -1}, "S01W001.hgt", 3599, 3599},
		{domain.ArcPoint{East: 0, North: 0}, "N00E000.hgt", 0, 0},
		{domain.ArcPoint{East: -3600, North: 3600}, "N01W001.hgt", 0, 0},
	}
	for _, c := range cases {
		name, e, n := Locate(c.p)
		if name != c.name || e != c.relEast || n != c.relNorth {
			t.Errorf("Locate(%+v) = %s,%d,%d want %s,%d,%d", c.p, name, e, n, c.name, c.relEast, c.relNorth)
		}
	}
}

func TestSampleOffset(t *testing.T) {
	// south-west corner is the first sample of the last row
	if got := SampleOffset(0, 0); got != int64(1200*Side)*2 {
		t.Fatalf("SW offset = %d", got)
	}
	// one sample north, one east
	if got := SampleOffset(3, 3); got != int64(1199*Side+1)*2 {
		t.Fatalf("offset = %d", got)
	}
	// sub-sample positions round down
	if SampleOffset(5, 4) != SampleOffset(3, 3) {
		t.Fatalf("expected sub-sample offsets to collapse")
	}
}

func writeTile(t *testing.T, dir, name string, samples map[int64]uint16) {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := f.Truncate(tileBytes); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	for off, v := range samples {
		var buf [2]byte
		binary.BigEndian.PutUint16(buf[:], v)
		if _, err := f.WriteAt(buf[:], off); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
}

func TestElevation(t *testing.T) {
	dir := t.TempDir()
	writeTile(t, dir, "N19W099.hgt", map[int64]uint16{
		SampleOffset(1020, 1450): 2240,
		SampleOffset(0, 0):       1,
	})

	tiles := NewTiles(WithDataDir(dir))
	defer tiles.Close()

	got, err := tiles.Elevation(context.Background(), domain.ArcPoint{East: -99*3600 + 1020, North: 19*3600 + 1450})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2240 {
		t.Fatalf("expected 2240, got %d", got)
	}

	got, err = tiles.Elevation(context.Background(), domain.ArcPoint{East: -99 * 3600, North: 19 * 3600})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1 {
		t.Fatalf("expected 1 at the SW corner, got %d", got)
	}
}

func TestElevation_Concurrent(t *testing.T) {
	dir := t.TempDir()
	writeTile(t, dir, "N00E000.hgt", map[int64]uint16{SampleOffset(30, 30): 7})

	tiles := NewTiles(WithDataDir(dir))
	defer tiles.Close()

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := tiles.Elevation(context.Background(), domain.ArcPoint{East: 30, North: 30})
			if err == nil && v != 7 {
				err = errors.New("wrong sample")
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatal(err)
		}
	}
}

func TestElevation_MissingTile(t *testing.T) {
	tiles := NewTiles(WithDataDir(t.TempDir()))
	_, err := tiles.Elevation(context.Background(), domain.ArcPoint{East: 10, North: 10})
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestElevation_WrongSize(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "N00E000.hgt"), []byte{0, 1}, 0o644); err != nil {
		t.Fatal(err)
	}
	tiles := NewTiles(WithDataDir(dir))
	_, err := tiles.Elevation(context.Background(), domain.ArcPoint{})
	if !domain.IsKind(err, domain.KindExecution) {
		t.Fatalf("expected KindExecution, got %v", err)
	}
}

func TestElevation_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewTiles().Elevation(ctx, domain.ArcPoint{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
