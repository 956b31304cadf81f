package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/arctanb/srtm/internal/domain"
)

var sfLondon = []domain.CoordinatePair{
	{Longitude: -122.4194, Latitude: 37.7749},
	{Longitude: -0.1276, Latitude: 51.5072},
}

func TestConvertPath_Execute(t *testing.T) {
	lines, err := NewConvertPath(fakeSource{}).Execute(context.Background(), sfLondon)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"2",
		"N 37 46 29 W 122 25 9",
		"N 51 30 25 W 0 7 39",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestConvertPath_Execute_SinglePair(t *testing.T) {
	lines, err := NewConvertPath(fakeSource{}).Execute(context.Background(), sfLondon[:1])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 2 || lines[0] != "1" {
		t.Fatalf("expected count line 1 and one coordinate line, got %q", lines)
	}
}

func TestConvertPath_Execute_CountAndFieldsAndOrder(t *testing.T) {
	var pairs []domain.CoordinatePair
	for i := 0; i < 37; i++ {
		pairs = append(pairs, domain.CoordinatePair{Longitude: float64(-i), Latitude: float64(i) / 2})
	}

	lines, err := NewConvertPath(fakeSource{}).Execute(context.Background(), pairs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lines[0] != "37" {
		t.Fatalf("expected count 37, got %q", lines[0])
	}
	for i, line := range lines[1:] {
		f := strings.Fields(line)
		if len(f) != 8 {
			t.Fatalf("line %d has %d fields: %q", i+1, len(f), line)
		}
		if line != domain.FormatPair(pairs[i]) {
			t.Fatalf("line %d out of order: %q", i+1, line)
		}
	}
}

func TestConvertPath_Execute_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewConvertPath(fakeSource{}).Execute(ctx, sfLondon)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestConvertPath_Run_WritesListing(t *testing.T) {
	var buf bytes.Buffer
	uc := NewConvertPath(fakeSource{pairs: sfLondon})

	if err := uc.Run(context.Background(), "route.txt", &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "2\nN 37 46 29 W 122 25 9\nN 51 30 25 W 0 7 39\n"
	if buf.String() != want {
		t.Fatalf("output mismatch\n got: %q\nwant: %q", buf.String(), want)
	}
}

func TestConvertPath_Run_ParseErrorWritesNothing(t *testing.T) {
	parseErr := &domain.OpError{Op: "pathfile.parse", Kind: domain.KindParse, Err: domain.ErrParse}

	var buf bytes.Buffer
	err := NewConvertPath(fakeSource{err: parseErr}).Run(context.Background(), "route.txt", &buf)
	if !domain.IsKind(err, domain.KindParse) {
		t.Fatalf("expected KindParse, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

type failingWriter struct{ err error }

func (w failingWriter) Write(_ []byte) (int, error) { return 0, w.err }

func TestConvertPath_Run_WriterError(t *testing.T) {
	werr := errors.New("disk full")
	err := NewConvertPath(fakeSource{pairs: sfLondon}).Run(context.Background(), "route.txt", failingWriter{err: werr})
	if !errors.Is(err, werr) {
		t.Fatalf("expected writer error, got %v", err)
	}
}
