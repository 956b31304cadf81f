package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arctanb/srtm/internal/domain"
	"github.com/arctanb/srtm/internal/infra/configfile"
	"github.com/arctanb/srtm/internal/infra/logger"
	"github.com/arctanb/srtm/internal/infra/srtm"
	"github.com/arctanb/srtm/internal/infra/waypointfile"
	"github.com/arctanb/srtm/internal/usecase"
)

func profileCmd(debug *bool) *cobra.Command {
	var configPath string
	var dataDir string
	var granularity int
	var workers int
	var summary bool

	c := &cobra.Command{
		Use:   "profile <waypoints file>",
		Short: "Print SRTM elevations along the legs of a waypoint listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cleanup := setupLogging(*debug)
			defer cleanup()

			cfg, err := resolveConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("data-dir") {
				cfg.SRTM.DataDir = dataDir
			}
			if cmd.Flags().Changed("granularity") {
				if granularity <= 0 {
					return fmt.Errorf("--granularity must be positive, got %d", granularity)
				}
				cfg.Profile.GranularityArcsec = granularity
			}
			if cmd.Flags().Changed("workers") {
				if workers <= 0 {
					return fmt.Errorf("--workers must be positive, got %d", workers)
				}
				cfg.Profile.Workers = workers
			}

			waypoints, err := waypointfile.NewLoader().LoadWaypoints(args[0])
			if err != nil {
				return err
			}

			tiles := srtm.NewTiles(srtm.WithDataDir(cfg.SRTM.DataDir))
			defer tiles.Close()

			log := logger.L()
			log.Debug("profile.start",
				"waypoints", len(waypoints),
				"data_dir", cfg.SRTM.DataDir,
				"granularity", cfg.Profile.GranularityArcsec,
				"workers", cfg.Profile.Workers,
			)

			uc := usecase.NewProfile(tiles,
				usecase.WithGranularity(cfg.Profile.GranularityArcsec),
				usecase.WithWorkers(cfg.Profile.Workers),
				usecase.WithProfileLogger(log),
			)
			samples, err := uc.Execute(cmd.Context(), waypoints)
			if err != nil {
				return err
			}
			if summary {
				writeLegSummary(cmd.ErrOrStderr(), uc.Legs(waypoints))
			}

			w := bufio.NewWriter(cmd.OutOrStdout())
			for _, s := range samples {
				fmt.Fprintln(w, s.Elevation)
			}
			return w.Flush()
		},
	}

	def := domain.DefaultConfig()
	c.Flags().StringVarP(&configPath, "config", "c", "", "Path to kml2waypoints.yaml (optional; searched upward from the working directory if omitted)")
	c.Flags().StringVarP(&dataDir, "data-dir", "d", def.SRTM.DataDir, "Directory holding SRTM3 .hgt tiles")
	c.Flags().IntVarP(&granularity, "granularity", "g", def.Profile.GranularityArcsec, "Sample spacing along a leg, in arcseconds")
	c.Flags().IntVar(&workers, "workers", def.Profile.Workers, "Concurrent tile lookups")
	c.Flags().BoolVarP(&summary, "summary", "s", false, "Print per-leg sample counts and great-circle lengths to stderr")
	return c
}

// writeLegSummary goes to stderr so the elevation listing on stdout stays
// one number per line.
func writeLegSummary(w io.Writer, legs []domain.Leg) {
	total := 0
	for _, l := range legs {
		fmt.Fprintf(w, "leg %d: %d samples %.3f km\n", l.Index, l.Samples, l.Km)
		total += l.Samples
	}
	fmt.Fprintf(w, "total: %d legs %d samples %.3f km\n", len(legs), total, usecase.TotalKm(legs))
}

// resolveConfig loads an explicit config file, or the nearest
// kml2waypoints.yaml above the working directory, or falls back to defaults.
func resolveConfig(explicit string) (domain.Config, error) {
	if p := strings.TrimSpace(explicit); p != "" {
		return configfile.Load(p)
	}

	wd, err := os.Getwd()
	if err != nil {
		return domain.Config{}, fmt.Errorf("get working directory: %w", err)
	}

	root, err := configfile.NewFinder().FindRoot(wd)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, err
	}
	return configfile.Load(filepath.Join(root, configfile.FileName))
}
