package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/expconf"
	experrors "github.com/randalmurphal/expconf/errors"
	"github.com/randalmurphal/expconf/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate [experiment] [key=value ...]",
	Short: "Compose and validate an experiment configuration",
	Long: `Validate composes the experiment exactly like 'compose' and then checks
the result against the training schema without printing it.`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	experiment, overrides, err := splitComposeArgs(args)
	if err != nil {
		return err
	}

	composer := expconf.NewComposer(expconf.ComposerConfig{
		Store: expconf.NewStore(configDir),
	})

	resolved, err := composer.Compose(experiment, overrides...)
	if err != nil {
		return experrors.WrapComposeError(err)
	}

	if err := schema.Validate(resolved); err != nil {
		return err
	}

	cfg, err := schema.Decode(resolved)
	if err != nil {
		return err
	}

	label := experiment
	if label == "" {
		label = "baseline"
	}
	PrintSuccess(fmt.Sprintf("%s is valid", label))
	PrintField("name", cfg.Name)
	PrintField("seed", fmt.Sprintf("%d", cfg.Seed))
	PrintField("epochs", fmt.Sprintf("%d-%d", cfg.Trainer.MinEpochs, cfg.Trainer.MaxEpochs))
	PrintField("model lr", fmt.Sprintf("%g", cfg.Model.LR))
	PrintField("batch size", fmt.Sprintf("%d", cfg.Datamodule.BatchSize))
	return nil
}
