package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nwrenn27-sketch/finplan/internal/config"
	"github.com/nwrenn27-sketch/finplan/internal/model"
	"github.com/nwrenn27-sketch/finplan/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDBPath string
	flagQuiet  bool
	flagJSON   bool
)

var rootCmd = &cobra.Command{
	Use:   "finplan",
	Short: "Personal Finance Calculators",
	Long:  "Plan debt payoff, estimate taxes, track your budget, and project investments.",
	RunE:  runHealth,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDBPath, "db", "d", store.DefaultPath(), "Database file path")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output JSON instead of tables")
}

// openStore is the shared persistence path used by all commands.
func openStore() (*store.Store, error) {
	s, err := store.Open(flagDBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return s, nil
}

// loadDebts opens the store and returns the saved debts.
func loadDebts() ([]model.Debt, error) {
	s, err := openStore()
	if err != nil {
		return nil, err
	}
	defer s.Close()

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Loading debts...\n")
	}
	return s.ListDebts()
}

// loadConfig loads the config file, falling back to defaults on error.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Config error (%v), using defaults\n", err)
	}
	return cfg
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
