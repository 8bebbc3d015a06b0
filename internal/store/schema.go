package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS debts (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    name          TEXT NOT NULL UNIQUE,
    balance       REAL NOT NULL,
    annual_rate   REAL NOT NULL,
    min_payment   REAL NOT NULL,
    created_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS budget_entries (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    name           TEXT NOT NULL,
    category       TEXT,
    kind           TEXT NOT NULL CHECK (kind IN ('income', 'expense')),
    necessity      TEXT,
    monthly_amount REAL NOT NULL,
    created_at     TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_budget_entries_kind ON budget_entries(kind);
`
