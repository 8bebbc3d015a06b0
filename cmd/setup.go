package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nwrenn27-sketch/finplan/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to finplan!")
	fmt.Println()

	// 1. Payoff strategy
	fmt.Println("  1. Default payoff strategy")
	fmt.Println("     (1) Avalanche: highest interest rate first [default]")
	fmt.Println("     (2) Snowball: smallest balance first")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "2":
		cfg.General.DefaultStrategy = "snowball"
	default:
		cfg.General.DefaultStrategy = "avalanche"
	}
	fmt.Println()

	// 2. Filing status
	fmt.Println("  2. Tax filing status")
	fmt.Println("     (1) Single [default]")
	fmt.Println("     (2) Married filing jointly")
	fmt.Println("     (3) Head of household")
	fmt.Print("     > ")
	choice, _ = reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "2":
		cfg.Tax.FilingStatus = "married_joint"
	case "3":
		cfg.Tax.FilingStatus = "head_of_household"
	default:
		cfg.Tax.FilingStatus = "single"
	}
	fmt.Println()

	// 3. State tax rate
	fmt.Println("  3. Flat state income tax rate, as a percentage")
	fmt.Println("     Enter 0 if your state has no income tax.")
	fmt.Printf("     Current: %.2f%%\n", cfg.Tax.StateRate)
	fmt.Print("     > ")
	rateStr, _ := reader.ReadString('\n')
	rateStr = strings.TrimSpace(rateStr)
	if rateStr != "" {
		if rate, err := strconv.ParseFloat(rateStr, 64); err == nil && rate >= 0 && rate < 20 {
			cfg.Tax.StateRate = rate
		} else {
			fmt.Println("     Invalid rate, keeping current value.")
		}
	}
	fmt.Println()

	// 4. Theme
	fmt.Println("  4. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Tokyo Night")
	fmt.Println("     (4) Terminal (ANSI 16)")
	fmt.Print("     > ")
	choice, _ = reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "tokyo-night"
	case "4":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `finplan setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
