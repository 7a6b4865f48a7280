package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/expense-server/internal/config"
	"github.com/carson-networks/expense-server/internal/storage/expense"
)

// Storage owns the pooled database connection. It is constructed at process
// start and closed at process stop; everything else borrows it.
type Storage struct {
	db       bob.DB
	Expenses expense.IExpensesTable
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.ConnectionString())
	if err != nil {
		return nil, err
	}

	bobDB := bob.NewDB(db)
	return &Storage{
		db:       bobDB,
		Expenses: expense.NewExpensesTable(bobDB),
	}, nil
}

// Write begins a transaction and returns a Writer scoped to it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}
