package actions

import (
	"context"

	"github.com/carson-networks/expense-server/internal/storage"
)

var _ IAction = (*DeleteExpense)(nil)

// DeleteExpense removes a row. Existed reports whether anything was deleted,
// so a repeat delete observes false instead of an error.
type DeleteExpense struct {
	ID      int64
	Existed bool
}

func (a *DeleteExpense) Perform(ctx context.Context, writer *storage.Writer) error {
	existed, err := writer.Expenses.Delete(ctx, a.ID)
	if err != nil {
		return err
	}
	a.Existed = existed
	return nil
}
