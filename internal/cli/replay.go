package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/navstack/pkg/navstack"
	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
	"github.com/BrandonKowalski/navstack/pkg/navstack/script"
)

// NewReplayCommand creates the replay subcommand.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Replay a navigation scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd.OutOrStdout(), rootOpts, args[0])
		},
	}
}

func runReplay(out io.Writer, rootOpts *RootOptions, scriptPath string) error {
	cfg, err := loadConfig(rootOpts.Config)
	if err != nil {
		return err
	}
	if rootOpts.LogLevel != "" {
		cfg.Log.Level = rootOpts.LogLevel
	}
	navstack.InitLogging(cfg.Log)
	defer navstack.CloseLogging()

	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	s, err := script.Load(scriptPath)
	if err != nil {
		return err
	}
	navstack.GetLogger().Info("replaying scenario", "name", s.Name, "steps", len(s.Steps))

	trace, runErr := script.Run(s, opts)
	if err := writeTrace(out, rootOpts.Format, trace); err != nil {
		return err
	}
	return runErr
}

func loadConfig(path string) (navstack.Config, error) {
	if path == "" {
		path = os.Getenv(constants.ConfigPathEnvVar)
	}
	if path == "" {
		return navstack.Config{}, nil
	}
	return navstack.LoadConfig(path)
}

func writeTrace(out io.Writer, format string, trace []script.TraceLine) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(trace)
	default:
		_, err := fmt.Fprint(out, script.Format(trace))
		return err
	}
}
