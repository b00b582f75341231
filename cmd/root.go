package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gotank/internal/config"
	"github.com/alexiusacademia/gotank/internal/logging"
	"github.com/alexiusacademia/gotank/internal/material"
	"github.com/alexiusacademia/gotank/internal/version"
)

var (
	// Persistent flags
	catalogPath string
	envFile     string
	logLevel    string
	logFormat   string

	// Set by the persistent pre-run
	appConfig *config.Config
	catalog   *material.Catalog
)

var rootCmd = &cobra.Command{
	Use:   "gotank",
	Short: "API 650 Storage Tank Calculation Tool",
	Long: `gotank - Go API 650 Storage Tank Calculator

A CLI tool and JSON service for the preliminary design of welded
steel storage tanks based on API 650.

This tool helps tank engineers perform:
  - Nominal, geometric and working capacity with strapping tables
  - Shell course design by the one-foot method
  - Wind girder placement on the transformed shell
  - Roof plate buckling, bottom and annular plates
  - Seismic loads, anchor chairs and stairway compliance
  - Material recommendation and nozzle sizing

Calculations are simplified API 650 provisions for preliminary sizing.`,
	PersistentPreRunE: setup,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gotank v%-48s║\n", version.Version)
		fmt.Println("  ║   Go API 650 Storage Tank Calculator                      ║")
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool and JSON service for the preliminary design of")
		fmt.Println("  welded steel storage tanks based on API 650.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Capacity, strapping table and capacity curve")
		fmt.Println("    • Shell courses, wind girders and roof plate buckling")
		fmt.Println("    • Bottom and annular plates, anchor chairs")
		fmt.Println("    • Seismic loads and stairway compliance")
		fmt.Println("    • Material recommendation and nozzle sizing")
		fmt.Println("    • PDF design report and HTTP API")
		fmt.Println()
		fmt.Println("  Use 'gotank --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// setup loads configuration, starts logging and loads the material catalog.
// Flags override the environment.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("catalog") {
		cfg.CatalogPath = catalogPath
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Logging.Format = logFormat
	}

	if err := logging.Initialize(cfg.Logging); err != nil {
		return err
	}

	res := material.Init(cfg.CatalogPath)
	if res.Fallback() && res.Path != "" {
		logging.Warn("using built-in material table", zap.String("requested", res.Path))
	}

	appConfig = cfg
	catalog = res.Catalog
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	defer logging.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Material catalog (.json, .yaml or .xlsx); built-in table when empty")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Dotenv file with GOTANK_* settings")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "Log format (console, json)")
}
