package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Gunvolt24/oncall_routes/config"
	cachemem "github.com/Gunvolt24/oncall_routes/internal/cache/memory"
	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/internal/gateway"
	"github.com/Gunvolt24/oncall_routes/internal/ports"
	"github.com/Gunvolt24/oncall_routes/internal/store"
	"github.com/Gunvolt24/oncall_routes/pkg/ctxmeta"
	"github.com/Gunvolt24/oncall_routes/pkg/logger"
	"github.com/mattn/go-isatty"
)

// cliEnv — состояние, общее для команд: профиль, логгер и хранилища.
type cliEnv struct {
	profilePath string
	baseURL     string
	verbose     bool

	log          ports.Logger
	routes       *store.RouteStore
	integrations *store.IntegrationStore
	chains       *store.EscalationStore
	cleanup      func() error
}

// init — профиль (файл, окружение, флаги) и хранилища над клиентом удалённого API.
func (e *cliEnv) init() error {
	profile, err := config.LoadProfile(e.profilePath)
	if err != nil {
		return err
	}
	if e.baseURL != "" {
		profile.BaseURL = e.baseURL
	}

	e.log, e.cleanup = logger.NewNop(), func() error { return nil }
	if e.verbose {
		zl, cleanup, err := logger.NewZapLogger(false)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		e.log, e.cleanup = zl, cleanup
	}

	client := gateway.NewClient(profile.BaseURL, profile.Token, profile.Timeout.Duration)
	e.routes = store.NewRouteStore(client,
		cachemem.NewOrdered[*domain.Route](store.RoutesCollection, 0, 0), e.log, profile.Timeout.Duration)
	e.integrations = store.NewIntegrationStore(client,
		cachemem.NewOrdered[*domain.Integration](store.IntegrationsCollection, 0, 0), e.log)
	e.chains = store.NewEscalationStore(client,
		cachemem.NewOrdered[*domain.EscalationChain](store.EscalationsCollection, 1, 0), e.log)
	return nil
}

// newRootCmd — дерево команд; вывод идёт в cmd.OutOrStdout().
func newRootCmd() *cobra.Command {
	env := &cliEnv{}

	root := &cobra.Command{
		Use:   "routectl",
		Short: "Manage alert routes of on-call integrations",
		Long: `routectl talks to the routing API: lists integrations, shows and reorders
their routes, edits escalation chains and notification templates.

The profile is read from ~/.config/routectl.toml (or --config) and may be
overridden with ROUTECTL_BASE_URL, ROUTECTL_TOKEN and ROUTECTL_TIMEOUT.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "validate" {
				return nil
			}
			return env.init()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if env.cleanup != nil {
				_ = env.cleanup()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&env.profilePath, "config", "", "profile file (default ~/.config/routectl.toml)")
	root.PersistentFlags().StringVar(&env.baseURL, "base-url", "", "routing API base url including /api")
	root.PersistentFlags().BoolVarP(&env.verbose, "verbose", "v", false, "log requests to stderr")

	root.AddCommand(newIntegrationsCmd(env))
	root.AddCommand(newRoutesCmd(env))
	root.AddCommand(newTemplatesCmd(env))
	root.AddCommand(newValidateCmd())
	return root
}

// Execute — запуск с обработкой сигналов и request_id на весь вызов.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	ctx, _ = ctxmeta.EnsureRequestID(ctx)

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'routectl -h' for help")
		os.Exit(1)
	}
}

// isTerminal — вывод в терминал (дерево и таблицы) или в пайп (JSON).
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
