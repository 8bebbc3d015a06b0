// Package cmd implements the finplan CLI commands.
package cmd

import (
	"fmt"

	"github.com/nwrenn27-sketch/finplan/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default strategy: %s\n", cfg.General.DefaultStrategy)
	fmt.Printf("    Extra payment:    $%.2f/mo\n", cfg.General.ExtraPayment)
	fmt.Println()

	fmt.Println("  [Tax]")
	fmt.Printf("    Year:          %d\n", cfg.Tax.Year)
	fmt.Printf("    Filing status: %s\n", cfg.Tax.FilingStatus)
	if cfg.Tax.StateRate > 0 {
		fmt.Printf("    State rate:    %.2f%%\n", cfg.Tax.StateRate)
	} else {
		fmt.Println("    State rate:    none")
	}
	fmt.Println()

	fmt.Println("  [Invest]")
	fmt.Printf("    Annual return: %.2f%%\n", cfg.Invest.AnnualReturn)
	fmt.Printf("    Inflation:     %.2f%%\n", cfg.Invest.Inflation)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Printf("  Database: %s\n", flagDBPath)
	fmt.Println()
	fmt.Println("  Run `finplan setup` to reconfigure.")
	return nil
}
