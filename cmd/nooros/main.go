package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nooros/backend/internal/domain/desktop"
	"github.com/nooros/backend/internal/infrastructure/config"
	"github.com/nooros/backend/internal/infrastructure/server"
	"github.com/nooros/backend/internal/infrastructure/storage"
)

var (
	port        string
	host        string
	backend     string
	storagePath string
	logLevel    string
	development bool
)

var rootCmd = &cobra.Command{
	Use:           "nooros",
	Short:         "NoorOS desktop backend",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the desktop API and snapshot stream",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		srv, err := server.NewServer(cfg)
		if err != nil {
			return fmt.Errorf("create server: %w", err)
		}
		defer srv.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.Run(ctx)
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the persisted window and icon layout",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		logger := server.NewLogger(cfg.Logging)
		defer logger.Sync()

		store, err := storage.Open(cfg.Storage.Backend, cfg.Storage.Path)
		if err != nil {
			return fmt.Errorf("open %s storage: %w", cfg.Storage.Backend, err)
		}
		defer store.Close()

		ctrl := desktop.New(store, desktop.Options{Logger: logger.Component("desktop")})
		if err := ctrl.ResetLayout(cmd.Context()); err != nil {
			return fmt.Errorf("reset layout: %w", err)
		}
		logger.Info("Layout reset",
			zap.String("storage", cfg.Storage.Backend),
			zap.String("path", cfg.Storage.Path),
		)
		return nil
	},
}

// loadConfig reads the environment, then applies flags the user set
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Server.Port = port
	}
	if flags.Changed("host") {
		cfg.Server.Host = host
	}
	if flags.Changed("storage") {
		cfg.Storage.Backend = backend
	}
	if flags.Changed("storage-path") {
		cfg.Storage.Path = storagePath
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if flags.Changed("dev") {
		cfg.Logging.Development = development
	}
	return cfg, cfg.Validate()
}

func init() {
	for _, cmd := range []*cobra.Command{serveCmd, resetCmd} {
		cmd.Flags().StringVar(&backend, "storage", "sqlite", "layout storage backend (memory, file, sqlite)")
		cmd.Flags().StringVar(&storagePath, "storage-path", "data/nooros.db", "database file or directory for the layout")
		cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
		cmd.Flags().BoolVar(&development, "dev", false, "colored console logs")
	}
	serveCmd.Flags().StringVarP(&port, "port", "p", "8000", "HTTP port")
	serveCmd.Flags().StringVar(&host, "host", "0.0.0.0", "HTTP listen host")

	rootCmd.AddCommand(serveCmd, resetCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "nooros:", err)
		os.Exit(1)
	}
}
