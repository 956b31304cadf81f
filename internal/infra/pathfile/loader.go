package pathfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/arctanb/srtm/internal/domain"
	"github.com/arctanb/srtm/internal/ports"
)

// Loader reads the first line of a file as a path coordinate string.
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

var _ ports.CoordinateSource = (*Loader)(nil)

func (l *Loader) LoadPairs(path string) ([]domain.CoordinatePair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "pathfile.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	line, err := readFirstLine(f)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "pathfile.load",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	pairs, err := Parse(line)
	if err != nil {
		var oe *domain.OpError
		if errors.As(err, &oe) {
			oe.Path = path
		}
		return nil, err
	}
	return pairs, nil
}

func readFirstLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return line, nil
}

// Parse tokenizes a path string of `lon,lat` tokens separated by single
// spaces. The line terminator, if any, is dropped first.
func Parse(s string) ([]domain.CoordinatePair, error) {
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")

	tokens := strings.Split(s, " ")
	out := make([]domain.CoordinatePair, 0, len(tokens))
	for i, tok := range tokens {
		p, err := parseToken(tok)
		if err != nil {
			return nil, &domain.OpError{
				Op:   "pathfile.parse",
				Kind: domain.KindParse,
				Err:  fmt.Errorf("token %d %q: %w", i+1, tok, err),
			}
		}
		out = append(out, p)
	}
	return out, nil
}

func parseToken(tok string) (domain.CoordinatePair, error) {
	parts := strings.Split(tok, ",")
	if len(parts) != 2 {
		return domain.CoordinatePair{}, fmt.Errorf("expected lon,lat, got %d field(s): %w", len(parts), domain.ErrParse)
	}

	lon, err := parseDegrees(parts[0])
	if err != nil {
		return domain.CoordinatePair{}, fmt.Errorf("longitude: %w", err)
	}
	lat, err := parseDegrees(parts[1])
	if err != nil {
		return domain.CoordinatePair{}, fmt.Errorf("latitude: %w", err)
	}
	return domain.CoordinatePair{Longitude: lon, Latitude: lat}, nil
}

func parseDegrees(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%v: %w", err, domain.ErrParse)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%q is not a finite number: %w", s, domain.ErrParse)
	}
	return v, nil
}
