package main

import (
	"github.com/spf13/cobra"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/internal/routeview"
	"github.com/Gunvolt24/oncall_routes/internal/templates"
)

func newTemplatesCmd(env *cliEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Notification templates of an integration",
	}
	cmd.AddCommand(newTemplatesShowCmd(env))
	return cmd
}

// templateRow — строка таблицы шаблонов в JSON-выводе.
type templateRow struct {
	Block string  `json:"block,omitempty"`
	Name  string  `json:"name"`
	Label string  `json:"label"`
	Value *string `json:"value"`
}

func newTemplatesShowCmd(env *cliEnv) *cobra.Command {
	var (
		slack      bool
		telegram   bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "show <integration>",
		Short: "Show templates grouped by block",
		Long: `Show notification templates of an integration grouped by block. Slack and
Telegram blocks are listed only with --slack / --telegram.`,
		Example: `  routectl templates show I1
  routectl templates show I1 --slack --telegram`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			values, err := env.integrations.LoadTemplates(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			rows := templateRows(templates.ForChannels(slack, telegram), values)
			if jsonOutput || !isTerminal(out) {
				return writeJSON(out, rows)
			}

			table := make([][]string, 0, len(rows))
			for _, r := range rows {
				value := "(default)"
				if r.Value != nil {
					value = routeview.Preview(*r.Value)
				}
				table = append(table, []string{r.Block, r.Label, r.Name, value})
			}
			return writeTable(out, []string{"BLOCK", "LABEL", "TEMPLATE", "VALUE"}, table)
		},
	}

	cmd.Flags().BoolVar(&slack, "slack", false, "include the Slack block")
	cmd.Flags().BoolVar(&telegram, "telegram", false, "include the Telegram block")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}

func templateRows(blocks []templates.Block, values domain.Templates) []templateRow {
	var rows []templateRow
	for _, b := range blocks {
		for _, f := range b.Fields {
			rows = append(rows, templateRow{Block: b.Name, Name: f.Name, Label: f.Label, Value: values[f.Name]})
		}
	}
	return rows
}
