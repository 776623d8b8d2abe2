// Package memory is an in-memory store with the same contracts as the
// SQLite repository. It backs tests and the "memory" data backend.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/anusua-sen/smart-budget-app/internal/core"
)

type Store struct {
	mu      sync.Mutex
	txns    []core.Transaction
	budgets []core.Budget
	nextTxn int64
	nextBud int64
}

func New() *Store {
	return &Store{nextTxn: 1, nextBud: 1}
}

func (s *Store) Close() error { return nil }

// InsertTransactions validates the whole batch before touching state,
// so a bad row leaves nothing behind.
func (s *Store) InsertTransactions(_ context.Context, txns []core.Transaction) (int, error) {
	for _, txn := range txns {
		if err := txn.Validate(); err != nil {
			return 0, fmt.Errorf("%w: %v", core.ErrValidation, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, txn := range txns {
		txn.ID = s.nextTxn
		s.nextTxn++
		s.txns = append(s.txns, txn)
	}
	return len(txns), nil
}

func (s *Store) ListTransactions(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Transaction(nil), s.txns...), nil
}

func (s *Store) DeleteAllTransactions(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	deleted := int64(len(s.txns))
	s.txns = nil
	return deleted, nil
}

func (s *Store) UpsertBudget(_ context.Context, category string, limit float64) (core.Budget, error) {
	b := core.Budget{Category: category, Limit: limit}
	if err := b.Validate(); err != nil {
		return core.Budget{}, fmt.Errorf("%w: %v", core.ErrValidation, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.budgets {
		if s.budgets[i].Category == category {
			s.budgets[i].Limit = limit
			return s.budgets[i], nil
		}
	}
	b.ID = s.nextBud
	s.nextBud++
	s.budgets = append(s.budgets, b)
	return b, nil
}

func (s *Store) ListBudgets(_ context.Context) ([]core.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Budget(nil), s.budgets...), nil
}

func (s *Store) DeleteAllBudgets(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	deleted := int64(len(s.budgets))
	s.budgets = nil
	return deleted, nil
}
