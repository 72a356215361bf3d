package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/expconf/runs"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect recorded runs",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs, newest first",
	Args:  cobra.NoArgs,
	RunE:  runRunsList,
}

var runsShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Print a recorded run's resolved configuration",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsShow,
}

func init() {
	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)
}

func runRunsList(cmd *cobra.Command, args []string) error {
	store, err := runs.NewStore(runsDir)
	if err != nil {
		return err
	}

	records, err := store.List()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		PrintDim("no recorded runs")
		return nil
	}

	for _, record := range records {
		experiment := record.Experiment
		if experiment == "" {
			experiment = "baseline"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %-16s %s\n",
			record.ID,
			record.CreatedAt.Format("2006-01-02 15:04:05"),
			experiment,
			shortFingerprint(record.Fingerprint),
		)
	}
	return nil
}

func runRunsShow(cmd *cobra.Command, args []string) error {
	store, err := runs.NewStore(runsDir)
	if err != nil {
		return err
	}

	record, err := store.Get(args[0])
	if err != nil {
		return err
	}
	snapshot, err := store.Resolved(args[0])
	if err != nil {
		return err
	}

	experiment := record.Experiment
	if experiment == "" {
		experiment = "baseline"
	}
	PrintField("run", record.ID)
	PrintField("experiment", experiment)
	PrintField("recorded", record.CreatedAt.Format("2006-01-02 15:04:05"))
	PrintField("fingerprint", record.Fingerprint)
	if len(record.Overrides) > 0 {
		PrintField("overrides", "")
		PrintList(record.Overrides)
	}
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprint(cmd.OutOrStdout(), string(snapshot))
	return nil
}
