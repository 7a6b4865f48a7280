package actions

import (
	"context"

	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/expense"
)

var _ IAction = (*CreateExpense)(nil)

// CreateExpense inserts a new expense. Result holds the persisted row,
// including the generated id and timestamps, once Perform succeeds.
type CreateExpense struct {
	Create *expense.ExpenseCreate
	Result *expense.Expense
}

func (a *CreateExpense) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Expenses.Insert(ctx, a.Create)
	if err != nil {
		return err
	}
	a.Result = row
	return nil
}
