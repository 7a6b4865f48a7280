package actions

import (
	"context"

	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/expense"
)

var _ IAction = (*UpdateExpense)(nil)

// UpdateExpense applies a partial update. Result stays nil when the row has
// disappeared between the caller's existence check and the write.
type UpdateExpense struct {
	ID     int64
	Update *expense.ExpenseUpdate
	Result *expense.Expense
}

func (a *UpdateExpense) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Expenses.Update(ctx, a.ID, a.Update)
	if err != nil {
		return err
	}
	a.Result = row
	return nil
}
