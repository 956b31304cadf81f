package usecase

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strconv"

	"github.com/arctanb/srtm/internal/domain"
	"github.com/arctanb/srtm/internal/ports"
)

type ConvertPath struct {
	source ports.CoordinateSource
	logger *slog.Logger
}

type ConvertOption func(*ConvertPath)

func WithConvertLogger(l *slog.Logger) ConvertOption {
	return func(uc *ConvertPath) {
		if l != nil {
			uc.logger = l
		}
	}
}

func NewConvertPath(src ports.CoordinateSource, opts ...ConvertOption) *ConvertPath {
	uc := &ConvertPath{
		source: src,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute renders the waypoint listing for pairs: the count line first,
// then one DMS line per pair in input order.
func (uc *ConvertPath) Execute(ctx context.Context, pairs []domain.CoordinatePair) ([]string, error) {
	lines := make([]string, 0, len(pairs)+1)
	lines = append(lines, strconv.Itoa(len(pairs)))

	for _, p := range pairs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lines = append(lines, domain.FormatPair(p))
	}
	return lines, nil
}

// Run loads the path string at path, converts it and writes the listing to w.
// Nothing is written when the path string fails to load or parse.
func (uc *ConvertPath) Run(ctx context.Context, path string, w io.Writer) error {
	pairs, err := uc.source.LoadPairs(path)
	if err != nil {
		uc.logger.Error("convert.load_failed", "path", path, "err", err)
		return err
	}

	lines, err := uc.Execute(ctx, pairs)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return err
	}

	uc.logger.Debug("convert.done", "path", path, "pairs", len(pairs))
	return nil
}
