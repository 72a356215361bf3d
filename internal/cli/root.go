package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/expconf/settings"
)

var (
	// Global flags
	configDir string
	runsDir   string
	verbose   bool
)

// rootCmd is the root command for expconf.
var rootCmd = &cobra.Command{
	Use:     "expconf",
	Version: "dev",
	Short:   "Experiment configuration composer for ML training runs",
	Long: `expconf resolves experiment configurations for training runs.

It layers a named experiment's overrides on top of a base configuration
tree (trainer, model, datamodule, callbacks, logger), deep-merges
everything in order, and prints or records the single resolved
configuration the trainer consumes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))

		applySettings(cmd)
	},
}

// applySettings fills in directories the user did not pass as flags from
// the tool's layered settings (env > .expconf.yaml > ~/.config/expconf >
// built-in defaults).
func applySettings(cmd *cobra.Command) {
	resolver := settings.NewResolver(settings.ResolverConfig{
		EnvPrefix:       "EXPCONF_",
		GlobalConfigDir: "expconf",
		LocalConfigName: ".expconf.yaml",
		ValidKeys:       []string{"config_dir", "runs_dir"},
		Defaults: map[string]string{
			"config_dir": "configs",
			"runs_dir":   "runs",
		},
	})
	cfg := resolver.Resolve()

	flags := cmd.Root().PersistentFlags()
	if !flags.Changed("config-dir") {
		configDir = cfg.Get("config_dir")
	}
	if !flags.Changed("runs-dir") {
		runsDir = cfg.Get("runs_dir")
	}
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configDir, "config-dir", "c", "configs",
		"Directory holding the base configuration tree (also EXPCONF_CONFIG_DIR)")
	rootCmd.PersistentFlags().StringVar(&runsDir, "runs-dir", "runs",
		"Directory where composed runs are recorded (also EXPCONF_RUNS_DIR)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")

	rootCmd.AddCommand(composeCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(runsCmd)
}
