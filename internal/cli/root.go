package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/csheth/convoy/internal/api"
	"github.com/csheth/convoy/internal/config"
	"github.com/csheth/convoy/internal/logging"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	v       *viper.Viper
	envFile string
	cfg     *config.Config
	logger  *zap.Logger
	client  *api.Client
}

// NewRootCommand builds the command tree. Running it bare opens the
// interactive landing page.
func NewRootCommand() *cobra.Command {
	a := &app{v: config.NewViper()}

	root := &cobra.Command{
		Use:   "convoy",
		Short: "Browse the Convoy landing page from your terminal",
		Long: `Convoy is the social layer for real-world car culture.

Run without a subcommand to open the interactive landing page with live
community stats, the launch updates form and the build crew application.
The subcommands do the same work non-interactively.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			a.close()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTUI()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", ".env", "dotenv file read before CONVOY_* variables")
	flags.String("api", api.DefaultBaseURL, "Convoy API base URL")
	flags.String("log-file", "", "write logs to this file (disabled when empty)")
	flags.Bool("debug", false, "enable debug logging")
	flags.Duration("timeout", 0, "bound each submission; 0 waits for the service")
	flags.Bool("no-alt-screen", false, "render inline instead of the alternate screen")

	_ = a.v.BindPFlag(config.KeyAPIBaseURL, flags.Lookup("api"))
	_ = a.v.BindPFlag(config.KeyLogFile, flags.Lookup("log-file"))
	_ = a.v.BindPFlag(config.KeyDebug, flags.Lookup("debug"))
	_ = a.v.BindPFlag(config.KeyRequestTimeout, flags.Lookup("timeout"))
	_ = a.v.BindPFlag(config.KeyNoAltScreen, flags.Lookup("no-alt-screen"))

	root.AddCommand(
		newStatsCommand(a),
		newSubscribeCommand(a),
		newApplyCommand(a),
		newConfigCommand(a),
	)
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.envFile, a.v)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	a.client = api.New(api.Config{BaseURL: cfg.APIBaseURL, Logger: logger.Named("api")})
	logger.Debug("configuration resolved",
		zap.String("api", cfg.APIBaseURL),
		zap.Duration("timeout", cfg.RequestTimeout),
	)
	return nil
}

func (a *app) close() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}
