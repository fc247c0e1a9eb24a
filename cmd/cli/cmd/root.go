// Package cmd provides the CLI commands for bitterroot-intake.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bitterroot-intake/internal/config"
	"bitterroot-intake/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "bitterroot-intake",
	Short: "Review land-clearing estimate requests",
	Long: `bitterroot-intake is the internal review tool for incoming
land-clearing and forestry-mulching estimate requests.

It validates a submitted request form, derives operational flags,
enforces hard-stop policy, prices the job, and composes the internal
review report.

Examples:
  bitterroot-intake review request.json
  bitterroot-intake review --format json request.json
  bitterroot-intake rates`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./intake.hcl)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(ratesCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("bitterroot-intake version 1.0.0")
	},
}
