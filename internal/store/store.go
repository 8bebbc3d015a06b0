// Package store provides SQLite-backed persistence for debts and budget entries.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nwrenn27-sketch/finplan/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store wraps the finplan SQLite database.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the XDG-compliant database location.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "finplan", "finplan.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "finplan", "finplan.db")
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// ─── Debts ──────────────────────────────────────────────────────

// SaveDebt inserts or replaces a debt by name.
func (s *Store) SaveDebt(d model.Debt) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`INSERT INTO debts (name, balance, annual_rate, min_payment, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			balance = excluded.balance,
			annual_rate = excluded.annual_rate,
			min_payment = excluded.min_payment`,
		d.Name, d.Balance, d.AnnualRate, d.MinPayment, now,
	)
	if err != nil {
		return fmt.Errorf("saving debt %q: %w", d.Name, err)
	}
	return nil
}

// ListDebts returns all debts in insertion order.
func (s *Store) ListDebts() ([]model.Debt, error) {
	rows, err := s.db.Query("SELECT name, balance, annual_rate, min_payment FROM debts ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var debts []model.Debt
	for rows.Next() {
		var d model.Debt
		if err := rows.Scan(&d.Name, &d.Balance, &d.AnnualRate, &d.MinPayment); err != nil {
			return nil, err
		}
		debts = append(debts, d)
	}
	return debts, rows.Err()
}

// DeleteDebt removes a debt by name. Returns false if no row matched.
func (s *Store) DeleteDebt(name string) (bool, error) {
	res, err := s.db.Exec("DELETE FROM debts WHERE name = ?", name)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// ─── Budget entries ─────────────────────────────────────────────

// SaveEntry inserts a budget entry and returns its row ID.
func (s *Store) SaveEntry(e model.BudgetEntry) (int64, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.Exec(`INSERT INTO budget_entries
		(name, category, kind, necessity, monthly_amount, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.Name, e.Category, e.Kind, e.Necessity, e.Amount, now,
	)
	if err != nil {
		return 0, fmt.Errorf("saving entry %q: %w", e.Name, err)
	}
	return res.LastInsertId()
}

// ListEntries returns all budget entries in insertion order.
func (s *Store) ListEntries() ([]model.BudgetEntry, error) {
	rows, err := s.db.Query(`SELECT id, name, category, kind, necessity, monthly_amount
		FROM budget_entries ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []model.BudgetEntry
	for rows.Next() {
		var e model.BudgetEntry
		var category, necessity sql.NullString
		if err := rows.Scan(&e.ID, &e.Name, &category, &e.Kind, &necessity, &e.Amount); err != nil {
			return nil, err
		}
		e.Category = category.String
		e.Necessity = necessity.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DeleteEntry removes a budget entry by ID. Returns false if no row matched.
func (s *Store) DeleteEntry(id int64) (bool, error) {
	res, err := s.db.Exec("DELETE FROM budget_entries WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
