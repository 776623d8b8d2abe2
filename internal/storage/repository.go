// Package storage persists transactions and budgets in SQLite. The
// repository owns the transaction boundaries: batch inserts commit
// atomically, reads take no locks beyond the query itself.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/anusua-sen/smart-budget-app/internal/core"

	_ "modernc.org/sqlite"
)

const dateLayout = "2006-01-02"

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// InsertTransactions writes the whole batch inside a single database
// transaction. Any failure rolls back and nothing is persisted.
func (r *SQLiteRepository) InsertTransactions(ctx context.Context, txns []core.Transaction) (int, error) {
	if len(txns) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: begin batch: %v", core.ErrStorage, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO transactions (description, amount, category, txn_date) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("%w: prepare insert: %v", core.ErrStorage, err)
	}
	defer stmt.Close()

	for _, txn := range txns {
		var date any
		if txn.HasDate() {
			date = txn.Date.Format(dateLayout)
		}
		if _, err := stmt.ExecContext(ctx, txn.Description, txn.Amount, nullable(txn.Category), date); err != nil {
			return 0, fmt.Errorf("%w: insert transaction %q: %v", core.ErrStorage, txn.Description, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: commit batch: %v", core.ErrStorage, err)
	}

	slog.InfoContext(ctx, "Transaction batch saved", "count", len(txns))
	return len(txns), nil
}

func (r *SQLiteRepository) ListTransactions(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, description, amount, category, txn_date FROM transactions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%w: query transactions: %v", core.ErrStorage, err)
	}
	defer rows.Close()

	var txns []core.Transaction
	for rows.Next() {
		var (
			txn      core.Transaction
			category sql.NullString
			date     sql.NullString
		)
		if err := rows.Scan(&txn.ID, &txn.Description, &txn.Amount, &category, &date); err != nil {
			return nil, fmt.Errorf("%w: scan transaction: %v", core.ErrStorage, err)
		}
		txn.Category = category.String
		if date.Valid {
			if d, err := time.Parse(dateLayout, date.String); err == nil {
				txn.Date = d
			}
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate transactions: %v", core.ErrStorage, err)
	}
	return txns, nil
}

func (r *SQLiteRepository) DeleteAllTransactions(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM transactions`)
	if err != nil {
		return 0, fmt.Errorf("%w: delete transactions: %v", core.ErrStorage, err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: count deleted transactions: %v", core.ErrStorage, err)
	}
	slog.InfoContext(ctx, "All transactions deleted", "count", deleted)
	return deleted, nil
}

// UpsertBudget creates the budget or overwrites its limit. Category
// uniqueness is enforced by the schema, so concurrent upserts cannot
// duplicate a row.
func (r *SQLiteRepository) UpsertBudget(ctx context.Context, category string, limit float64) (core.Budget, error) {
	b := core.Budget{Category: category, Limit: limit}
	if err := b.Validate(); err != nil {
		return core.Budget{}, fmt.Errorf("%w: %v", core.ErrValidation, err)
	}

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO budgets (category, budget_limit) VALUES (?, ?)
		 ON CONFLICT(category) DO UPDATE SET budget_limit = excluded.budget_limit
		 RETURNING id`,
		category, limit).Scan(&b.ID)
	if err != nil {
		return core.Budget{}, fmt.Errorf("%w: upsert budget %q: %v", core.ErrStorage, category, err)
	}
	return b, nil
}

func (r *SQLiteRepository) ListBudgets(ctx context.Context) ([]core.Budget, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, category, budget_limit FROM budgets ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("%w: query budgets: %v", core.ErrStorage, err)
	}
	defer rows.Close()

	var budgets []core.Budget
	for rows.Next() {
		var b core.Budget
		if err := rows.Scan(&b.ID, &b.Category, &b.Limit); err != nil {
			return nil, fmt.Errorf("%w: scan budget: %v", core.ErrStorage, err)
		}
		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate budgets: %v", core.ErrStorage, err)
	}
	return budgets, nil
}

func (r *SQLiteRepository) DeleteAllBudgets(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM budgets`)
	if err != nil {
		return 0, fmt.Errorf("%w: delete budgets: %v", core.ErrStorage, err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: count deleted budgets: %v", core.ErrStorage, err)
	}
	slog.InfoContext(ctx, "All budgets deleted", "count", deleted)
	return deleted, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
