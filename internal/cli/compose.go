package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/expconf"
	experrors "github.com/randalmurphal/expconf/errors"
	"github.com/randalmurphal/expconf/runs"
)

var (
	composeOutput string
	composeRecord bool
)

var composeCmd = &cobra.Command{
	Use:   "compose [experiment] [key=value ...]",
	Short: "Resolve an experiment configuration",
	Long: `Compose resolves the named experiment on top of the base configuration
tree and prints the result. Arguments containing "=" are treated as
dotted-path overrides applied last:

  expconf compose effinet trainer.gpus=4 model.lr=0.01

With no experiment argument the baseline defaults are resolved.`,
	RunE: runCompose,
}

func init() {
	composeCmd.Flags().StringVarP(&composeOutput, "output", "o", "yaml",
		"Output format: 'yaml' or 'json'")
	composeCmd.Flags().BoolVar(&composeRecord, "record", false,
		"Record the composed run under the runs directory")
}

// splitComposeArgs separates the experiment name from override
// expressions: any argument containing "=" is an override.
func splitComposeArgs(args []string) (experiment string, overrides []string, err error) {
	for _, arg := range args {
		if strings.Contains(arg, "=") {
			overrides = append(overrides, arg)
			continue
		}
		if experiment != "" {
			return "", nil, fmt.Errorf("multiple experiment names given: %q and %q", experiment, arg)
		}
		experiment = arg
	}
	return experiment, overrides, nil
}

func runCompose(cmd *cobra.Command, args []string) error {
	experiment, overrides, err := splitComposeArgs(args)
	if err != nil {
		return err
	}

	if composeOutput != "yaml" && composeOutput != "json" {
		return fmt.Errorf("invalid output format %q: must be 'yaml' or 'json'", composeOutput)
	}

	composer := expconf.NewComposer(expconf.ComposerConfig{
		Store: expconf.NewStore(configDir),
	})

	resolved, err := composer.Compose(experiment, overrides...)
	if err != nil {
		return experrors.WrapComposeError(err)
	}

	if composeRecord {
		store, err := runs.NewStore(runsDir)
		if err != nil {
			return err
		}
		record, err := store.Save(experiment, overrides, resolved)
		if err != nil {
			return err
		}
		PrintSuccess(fmt.Sprintf("recorded run %s (fingerprint %s)", record.ID, shortFingerprint(record.Fingerprint)))
	}

	var out []byte
	if composeOutput == "json" {
		out, err = resolved.JSON()
	} else {
		out, err = resolved.YAML()
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(string(out), "\n"))
	return nil
}

func shortFingerprint(fp string) string {
	if len(fp) > 12 {
		return fp[:12]
	}
	return fp
}
