package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/biosecret/go-crud/app"
	"github.com/biosecret/go-crud/config"
	"github.com/biosecret/go-crud/logging"
	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "go-crud",
	Short: "REST API for todos, posts and users",
	Long: `go-crud serves an in-memory todo list and, when DATABASE_URL is set,
PostgreSQL-backed posts and users.

Configuration is read from the environment (HOST, PORT, DATABASE_URL, ORIGIN,
MQTT_URL, LOG_LEVEL, LOG_FORMAT) and from an optional .env file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	// chạy server khi không có subcommand
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server (default command)",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the posts and users tables, then exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := load()
		if err != nil {
			return err
		}
		return app.Migrate(cmd.Context(), cfg, log)
	},
}

// Execute được gọi từ main.main()
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "path to an env file loaded before reading the environment")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := load()
	if err != nil {
		return err
	}
	log.Info("starting server", "addr", cfg.Addr())
	return app.SetupAndRunApp(cmd.Context(), cfg, log)
}

func load() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, nil, err
	}
	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: logging.ParseFormat(cfg.LogFormat),
	})
	slog.SetDefault(log)
	return cfg, log, nil
}
