package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/JonnyWalker81/pawlog/backend/internal/config"
	"github.com/JonnyWalker81/pawlog/backend/internal/logger"
)

var (
	cfg *config.Config
	log logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pawlog",
	Short: "Pawlog API server",
	Long:  `A REST API server and CLI for logging and analyzing dog behavior.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env is normal outside local development
		_ = godotenv.Load()

		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded

		log = logger.NewSlogLogger(logger.Config{
			Level:     logger.ParseLevel(cfg.Logging.Level),
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Output:    os.Stderr,
		})
		logger.SetDefault(log)
		return nil
	},
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(versionCmd)
}
