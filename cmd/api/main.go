package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"demo-api/internal/config"
	"demo-api/pkg/logger"
)

var (
	// Persistent flags; empty means "keep the environment value"
	portFlag     string
	envFlag      string
	seedFileFlag string
)

var rootCmd = &cobra.Command{
	Use:   "demo-api",
	Short: "Demo REST API over in-memory users, posts and products",
	Long: `demo-api serves CRUD endpoints for users, posts and products, plus
global search, statistics and a health check. Data lives in memory and is
seeded at startup from built-in records or a YAML file.

Configuration comes from environment variables (a .env file is loaded when
present); flags override them.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger.Init(cfg.App.Environment, cfg.App.LogLevel)
		if cfg.App.Environment == "production" {
			gin.SetMode(gin.ReleaseMode)
		}

		return Serve(cfg)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the application version",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", cfg.App.Name, cfg.App.Version)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&portFlag, "port", "", "HTTP port (overrides APP_PORT)")
	rootCmd.PersistentFlags().StringVar(&envFlag, "env", "", "environment: development, staging, production (overrides APP_ENV)")
	rootCmd.PersistentFlags().StringVar(&seedFileFlag, "seed-file", "", "YAML seed file (overrides SEED_FILE)")

	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig() (*config.Config, error) {
	// .env is optional; production uses the process environment
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if portFlag != "" {
		cfg.App.Port = portFlag
	}
	if envFlag != "" {
		cfg.App.Environment = envFlag
	}
	if seedFileFlag != "" {
		cfg.Seed.File = seedFileFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
