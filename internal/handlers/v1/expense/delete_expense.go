package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/logging"
)

// DeleteExpenseInput is the Huma input for deleting an expense.
type DeleteExpenseInput struct {
	ID int64 `path:"id" doc:"Expense ID"`
}

// DeleteExpenseOutput is the Huma output for deleting an expense.
type DeleteExpenseOutput struct{}

// expenseDeleter is the interface for deleting expenses.
type expenseDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// DeleteExpenseHandler handles DELETE /v1/expense/{id}.
type DeleteExpenseHandler struct {
	ExpenseService expenseDeleter
}

// NewDeleteExpenseHandler creates a new DeleteExpenseHandler.
func NewDeleteExpenseHandler(svc expenseDeleter) *DeleteExpenseHandler {
	return &DeleteExpenseHandler{ExpenseService: svc}
}

// Register registers the delete expense endpoint with the Huma API.
func (h *DeleteExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-expense",
		Method:        http.MethodDelete,
		Path:          "/v1/expense/{id}",
		Summary:       "Delete expense",
		Description:   "Deletes an expense. Deleting an id that does not exist returns 404.",
		Tags:          []string{"Expenses"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteExpenseHandler) handle(ctx context.Context, input *DeleteExpenseInput) (*DeleteExpenseOutput, error) {
	logData := logging.GetLogData(ctx)
	if logData != nil {
		logData.AddData("expenseID", input.ID)
	}

	if err := h.ExpenseService.Delete(ctx, input.ID); err != nil {
		return nil, mapServiceError(err)
	}

	return &DeleteExpenseOutput{}, nil
}
