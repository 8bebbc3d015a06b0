package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nwrenn27-sketch/finplan/internal/model"
	"github.com/nwrenn27-sketch/finplan/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// debtFormValues holds the raw string inputs from the add-debt form.
type debtFormValues struct {
	name    string
	balance string
	rate    string
	minPay  string
}

// newDebtForm builds the huh form for adding a debt.
func newDebtForm(vals *debtFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Debt name").
				Placeholder("Visa card").
				Value(&vals.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Current balance ($)").
				Placeholder("1200").
				Value(&vals.balance).
				Validate(validateAmount),
			huh.NewInput().
				Title("Annual rate (%)").
				Placeholder("24").
				Value(&vals.rate).
				Validate(validateAmount),
			huh.NewInput().
				Title("Minimum payment ($/mo)").
				Placeholder("100").
				Value(&vals.minPay).
				Validate(validateAmount),
		).Title("Add a debt"),
	)
}

func validateAmount(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v < 0 {
		return fmt.Errorf("must be non-negative")
	}
	return nil
}

// parseDebt converts validated form values into a Debt.
func (v debtFormValues) parseDebt() model.Debt {
	balance, _ := strconv.ParseFloat(strings.TrimSpace(v.balance), 64)
	rate, _ := strconv.ParseFloat(strings.TrimSpace(v.rate), 64)
	minPay, _ := strconv.ParseFloat(strings.TrimSpace(v.minPay), 64)
	return model.Debt{
		Name:       strings.TrimSpace(v.name),
		Balance:    balance,
		AnnualRate: rate,
		MinPayment: minPay,
	}
}

func (a App) updateDebtForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.debtForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.debtForm = f
	}

	if a.debtForm.State == huh.StateCompleted {
		d := a.formVals.parseDebt()
		a.debtForm = nil
		return a, saveDebtCmd(a.dbPath, d)
	}

	if a.debtForm.State == huh.StateAborted {
		a.debtForm = nil
		return a, nil
	}

	return a, cmd
}

// saveDebtCmd writes the debt to the store in a background command.
func saveDebtCmd(dbPath string, d model.Debt) tea.Cmd {
	return func() tea.Msg {
		s, err := store.Open(dbPath)
		if err != nil {
			return DebtSavedMsg{Err: err}
		}
		defer s.Close()
		return DebtSavedMsg{Err: s.SaveDebt(d)}
	}
}
