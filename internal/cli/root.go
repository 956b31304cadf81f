package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arctanb/srtm/internal/infra/logger"
	"github.com/arctanb/srtm/internal/infra/pathfile"
	"github.com/arctanb/srtm/internal/usecase"
)

const usageLine = "Usage: kml2waypoints <file containing path string>"

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Outcome tells whether the root command has anything to convert.
type Outcome int

const (
	OutcomeProceed Outcome = iota
	// OutcomeUsageShown: no file argument was given. The usage line has been
	// printed and the command still succeeds, as the original tool did.
	OutcomeUsageShown
)

func checkArgs(w io.Writer, args []string) Outcome {
	if len(args) == 0 {
		fmt.Fprintln(w, usageLine)
		return OutcomeUsageShown
	}
	return OutcomeProceed
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "kml2waypoints <file>",
		Short: "Convert a lon,lat path string to DMS waypoints",
		Long: "Reads the first line of <file> as a space separated list of lon,lat\n" +
			"pairs and prints the pair count followed by one\n" +
			"`H D M S H D M S` line per pair, latitude first.",
		// Only args[0] is read; anything after it is ignored.
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if checkArgs(cmd.OutOrStdout(), args) == OutcomeUsageShown {
				return nil
			}

			cleanup := setupLogging(debug)
			defer cleanup()

			uc := usecase.NewConvertPath(
				pathfile.NewLoader(),
				usecase.WithConvertLogger(logger.L()),
			)
			return uc.Run(cmd.Context(), args[0], cmd.OutOrStdout())
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .kml2waypoints/logs/kml2waypoints.log")

	cmd.AddCommand(profileCmd(&debug))
	cmd.AddCommand(versionCmd())
	return cmd
}

// setupLogging opens the log file when debug is set. The returned func is
// always safe to call.
func setupLogging(debug bool) func() {
	if !debug {
		return func() {}
	}

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}

	cleanup, err := logger.Setup(logger.Config{Root: wd, Debug: true})
	if err != nil || cleanup == nil {
		return func() {}
	}
	return func() { _ = cleanup() }
}
