package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/expense-server/internal/storage/expense"
)

// Writer bundles the table handles bound to a single transaction.
type Writer struct {
	tx       bob.Tx
	Expenses expense.IExpensesTable
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:       tx,
		Expenses: expense.NewExpensesTable(tx),
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
