// Package cli wires the seosites commands: serve, seed and create-admin.
package cli

import (
	"context"
	"os"

	"github.com/seosites/seosites/backend/go-api/internal/app"
	"github.com/seosites/seosites/backend/go-api/internal/config"
	"github.com/seosites/seosites/backend/go-api/pkg/logger"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "seosites",
	Short: "seosites content API",
	Example: `seosites serve
seosites seed --dynamic --admin-email admin@example.com --admin-password secret123
seosites create-admin --email editor@example.com --password secret123 --role editor`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(os.Getenv("LOG_LEVEL"))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

// Execute runs the root command. With no subcommand it serves the API.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(createAdminCmd())
	rootCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})

	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	cobra.EnableCommandSorting = false
}

// withApp loads configuration, builds the app and closes it after fn returns.
func withApp(ctx context.Context, fn func(ctx context.Context, a *app.App) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return err
	}
	if cfg.LogLevel != "" {
		logger.Init(cfg.LogLevel)
	}
	a, err := app.Build(ctx, cfg)
	if err != nil {
		logger.Errorf("startup failed: %v", err)
		return err
	}
	defer func() {
		if err := a.Close(context.Background()); err != nil {
			logger.Warnf("shutdown: %v", err)
		}
	}()
	return fn(ctx, a)
}
