package storage

import (
	"context"

	"github.com/anusua-sen/smart-budget-app/internal/core"
)

// TransactionStore is the persistence boundary for transactions.
// InsertTransactions is atomic: either every row of a batch commits or
// none do.
type TransactionStore interface {
	InsertTransactions(ctx context.Context, txns []core.Transaction) (int, error)
	ListTransactions(ctx context.Context) ([]core.Transaction, error)
	DeleteAllTransactions(ctx context.Context) (int64, error)
}

// BudgetStore is the persistence boundary for budgets. UpsertBudget
// keeps category unique: it creates a row if absent and overwrites the
// limit if present.
type BudgetStore interface {
	UpsertBudget(ctx context.Context, category string, limit float64) (core.Budget, error)
	ListBudgets(ctx context.Context) ([]core.Budget, error)
	DeleteAllBudgets(ctx context.Context) (int64, error)
}

// Store combines both boundaries; the composition root picks a backend
// and hands the same handle to every component.
type Store interface {
	TransactionStore
	BudgetStore
	Close() error
}
