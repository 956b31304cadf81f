package configfile

import (
	"fmt"
	"os"

	"github.com/arctanb/srtm/internal/domain"
	"gopkg.in/yaml.v3"
)

// Load reads a kml2waypoints.yaml file and applies it on top of defaults.
func Load(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "configfile.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "configfile.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if y.Root.SRTM.DataDir != "" {
		cfg.SRTM.DataDir = y.Root.SRTM.DataDir
	}
	if g := y.Root.Profile.GranularityArcsec; g != nil {
		if *g <= 0 {
			return cfg, invalidField(path, "profile.granularity_arcsec", "must be positive")
		}
		cfg.Profile.GranularityArcsec = *g
	}
	if w := y.Root.Profile.Workers; w != nil {
		if *w <= 0 {
			return cfg, invalidField(path, "profile.workers", "must be positive")
		}
		cfg.Profile.Workers = *w
	}

	return cfg, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "configfile.load",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}

type yamlConfig struct {
	Root struct {
		SRTM struct {
			DataDir string `yaml:"data_dir"`
		} `yaml:"srtm"`

		Profile struct {
			GranularityArcsec *int `yaml:"granularity_arcsec"`
			Workers           *int `yaml:"workers"`
		} `yaml:"profile"`
	} `yaml:"kml2waypoints"`
}
