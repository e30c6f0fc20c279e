package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newIntegrationsCmd(env *cliEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "integrations",
		Aliases: []string{"int"},
		Short:   "Integrations",
	}
	cmd.AddCommand(newIntegrationsListCmd(env))
	return cmd
}

func newIntegrationsListCmd(env *cliEnv) *cobra.Command {
	var (
		search     string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List integrations",
		Args:    cobra.NoArgs,
		Example: `  routectl integrations list
  routectl integrations list --search grafana
  routectl integrations list --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			items, err := env.integrations.List(ctx, search)
			if err != nil {
				return err
			}
			if jsonOutput || !isTerminal(out) {
				return writeJSON(out, items)
			}

			env.integrations.RefreshCountersBestEffort(ctx)
			rows := make([][]string, 0, len(items))
			for _, in := range items {
				alerts := "-"
				if c, ok := env.integrations.Counters(in.ID); ok {
					alerts = fmt.Sprintf("%d/%d", c.AlertGroupsCount, c.AlertsCount)
				}
				team := "-"
				if in.TeamID != nil {
					team = *in.TeamID
				}
				rows = append(rows, []string{in.ID, in.VerbalName, in.Kind, team, alerts})
			}
			return writeTable(out, []string{"ID", "NAME", "KIND", "TEAM", "GROUPS/ALERTS"}, rows)
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "filter by name")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}
