package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/expconf"
	experrors "github.com/randalmurphal/expconf/errors"
)

var infoCmd = &cobra.Command{
	Use:   "info [category]",
	Short: "List configuration categories and their documents",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	store := expconf.NewStore(configDir)

	if len(args) == 1 {
		options, err := store.Options(args[0])
		if err != nil {
			return experrors.WrapComposeError(err)
		}
		PrintSection(args[0])
		PrintList(options)
		return nil
	}

	categories, err := store.Categories()
	if err != nil {
		return err
	}

	PrintSection("categories")
	for _, category := range categories {
		options, err := store.Options(category)
		if err != nil {
			return err
		}
		PrintField(category, fmt.Sprintf("%d documents", len(options)))
	}
	return nil
}
