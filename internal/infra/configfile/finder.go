package configfile

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/arctanb/srtm/internal/domain"
	"github.com/arctanb/srtm/internal/ports"
)

// FileName is the configuration file looked up by Finder.
const FileName = "kml2waypoints.yaml"

// Finder locates the directory holding kml2waypoints.yaml by searching upward.
type Finder struct {
	ConfigFile string // defaults to FileName
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: FileName}
}

var _ ports.ConfigLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "configfile.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "configfile.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		if _, err := os.Stat(filepath.Join(cur, f.ConfigFile)); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "configfile.findroot",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}
