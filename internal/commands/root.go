package commands

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mystra-dev/ledgerscope/internal/api"
	"github.com/mystra-dev/ledgerscope/internal/buildinfo"
	"github.com/mystra-dev/ledgerscope/internal/config"
	"github.com/mystra-dev/ledgerscope/internal/render"
	"github.com/mystra-dev/ledgerscope/internal/settings"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "ledgerscope",
		Short:   "Terminal dashboard for a multi-tenant accounting API",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "path to ledgerscope.yaml")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored badges")

	rootCmd.AddCommand(newDashboardCommand())
	rootCmd.AddCommand(newSalesCommand())
	rootCmd.AddCommand(newPurchaseCommand())
	rootCmd.AddCommand(newCashBookCommand())
	rootCmd.AddCommand(newGeneralCommand())
	rootCmd.AddCommand(newTrialBalanceCommand())
	rootCmd.AddCommand(newSettingsCommand())

	return rootCmd
}

// app bundles the per-invocation wiring: config, logger, settings store,
// API client and renderer. Built once per command run.
type app struct {
	cfg    *config.Config
	log    zerolog.Logger
	store  *settings.Store
	client *api.Client
	out    io.Writer
	r      *render.Renderer
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	noColor, _ := cmd.Flags().GetBool("no-color")

	cfg, err := config.Resolve(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		Level(level).
		With().Timestamp().Logger()

	store := settings.NewStore(cfg.SettingsPath, settings.Settings{TenantID: cfg.DefaultTenantID}, log)
	out := cmd.OutOrStdout()

	return &app{
		cfg:    cfg,
		log:    log,
		store:  store,
		client: api.New(cfg.APIBaseURL, cfg.Timeout(), log),
		out:    out,
		r:      render.New(out, cfg.CurrencyCode, cfg.DateFormat, !noColor),
	}, nil
}
