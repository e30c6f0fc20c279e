package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/internal/routeview"
	"github.com/Gunvolt24/oncall_routes/internal/treeview"
)

func newRoutesCmd(env *cliEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Routes of an integration",
	}
	cmd.AddCommand(
		newRoutesListCmd(env),
		newRoutesAddCmd(env),
		newRoutesMoveCmd(env),
		newRoutesDeleteCmd(env),
		newRoutesSetChainCmd(env),
	)
	return cmd
}

// routesOutput — порядок маршрутов интеграции в JSON-выводе.
type routesOutput struct {
	IntegrationID string                `json:"integration_id"`
	Sequence      []string              `json:"sequence"`
	Routes        []routeview.RouteView `json:"routes"`
}

func newRoutesListCmd(env *cliEnv) *cobra.Command {
	var (
		jsonOutput bool
		treeOutput bool
		slack      bool
		telegram   bool
	)

	cmd := &cobra.Command{
		Use:     "list <integration>",
		Aliases: []string{"ls"},
		Short:   "Show routes in evaluation order",
		Long: `Show routes of an integration in the order they are evaluated.

On a terminal the integration is drawn as a tree: header, routes (If / Else /
Default) and the "Add route" entry. Piped output is JSON.`,
		Example: `  routectl routes list I1
  routectl routes list I1 --json
  routectl routes list I1 --tree --slack`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			integrationID := args[0]

			routes, err := env.routes.FetchAll(ctx, integrationID)
			if err != nil {
				return err
			}

			opts := routeview.Options{SlackInstalled: slack, TelegramInstalled: telegram}
			if chains, err := env.chains.List(ctx); err == nil {
				opts.Chains = chains
			} else {
				env.log.Warnf(ctx, "escalation chains unavailable err=%v", err)
			}
			views := routeview.Build(routes, opts)

			if jsonOutput || (!treeOutput && !isTerminal(out)) {
				seq, _ := env.routes.Sequence(integrationID)
				return writeJSON(out, routesOutput{IntegrationID: integrationID, Sequence: seq, Routes: views})
			}

			in, err := env.integrations.Load(ctx, integrationID)
			if err != nil {
				return err
			}
			env.integrations.RefreshCountersBestEffort(ctx)
			var counters *domain.Counters
			if c, ok := env.integrations.Counters(integrationID); ok {
				counters = &c
			}

			tree := treeview.New(routeview.BuildTree(in, counters, views, nil)...)
			return tree.Render(out)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	cmd.Flags().BoolVar(&treeOutput, "tree", false, "draw the tree even when not on a terminal")
	cmd.Flags().BoolVar(&slack, "slack", false, "show Slack chat-ops settings")
	cmd.Flags().BoolVar(&telegram, "telegram", false, "show Telegram chat-ops settings")
	cmd.MarkFlagsMutuallyExclusive("json", "tree")
	return cmd
}

func newRoutesAddCmd(env *cliEnv) *cobra.Command {
	var (
		term  string
		regex bool
		chain string
	)

	cmd := &cobra.Command{
		Use:   "add <integration>",
		Short: "Add a route before the default one",
		Example: `  routectl routes add I1 --term '{{ payload.severity == "critical" }}'
  routectl routes add I1 --term 'critical|major' --regex`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			draft := &domain.RouteDraft{
				IntegrationID:     args[0],
				FilteringTerm:     term,
				FilteringTermType: domain.FilteringTermJinja2,
			}
			if regex {
				draft.FilteringTermType = domain.FilteringTermRegex
			}
			if chain != "" {
				draft.EscalationChainID = &chain
			}

			created, err := env.routes.Insert(ctx, draft)
			if err != nil {
				return err
			}
			if _, err := env.routes.FetchAll(ctx, args[0]); err != nil {
				return err
			}
			seq, _ := env.routes.Sequence(args[0])
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "created %s at position %d of %d\n",
				created.ID, indexOf(seq, created.ID), len(seq))
			return err
		},
	}

	cmd.Flags().StringVar(&term, "term", "", "routing template")
	cmd.Flags().BoolVar(&regex, "regex", false, "term is a regular expression")
	cmd.Flags().StringVar(&chain, "chain", "", "escalation chain id")
	_ = cmd.MarkFlagRequired("term")
	return cmd
}

func newRoutesMoveCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "move <integration> <from> <to>",
		Short: "Move a route to another position",
		Long: `Move the route at <from> to <to> (0-based). The local order changes first and
is then reconciled with the server, so a rejected move prints the server order.`,
		Example: `  routectl routes move I1 2 0`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			from, err := parsePosition(args[1])
			if err != nil {
				return err
			}
			to, err := parsePosition(args[2])
			if err != nil {
				return err
			}

			moveErr := env.routes.MoveToPosition(ctx, args[0], from, to)
			seq, _ := env.routes.Sequence(args[0])
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "order: %v\n", seq); err != nil {
				return err
			}
			return moveErr
		},
	}
}

func newRoutesDeleteCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <route>",
		Aliases: []string{"rm"},
		Short:   "Delete a route",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := env.routes.DeleteRoute(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return err
		},
	}
}

func newRoutesSetChainCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "set-chain <route> <chain>",
		Short: "Attach an escalation chain to a route",
		Long:  `Attach an escalation chain to a route. Use "none" to detach.`,
		Example: `  routectl routes set-chain R1 E1
  routectl routes set-chain R1 none`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			chain := args[1]
			if chain == "none" {
				chain = ""
			}
			route, err := env.routes.SetEscalationChain(cmd.Context(), args[0], chain)
			if err != nil {
				return err
			}
			link := routeview.EscalationChainLink(route.EscalationChainID)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", link.Tooltip, link.Query)
			return err
		},
	}
}

func parsePosition(raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: position %q must be a non-negative integer", domain.ErrValidation, raw)
	}
	return v, nil
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
