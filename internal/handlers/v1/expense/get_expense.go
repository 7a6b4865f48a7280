package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/service"
)

// GetExpenseInput is the Huma input for fetching an expense by id.
type GetExpenseInput struct {
	ID int64 `path:"id" doc:"Expense ID"`
}

// GetExpenseOutput is the Huma output for fetching an expense.
type GetExpenseOutput struct {
	Body Expense
}

// expenseGetter is the interface for fetching a single expense.
type expenseGetter interface {
	GetByID(ctx context.Context, id int64) (*service.Expense, error)
}

// GetExpenseHandler handles GET /v1/expense/{id}.
type GetExpenseHandler struct {
	ExpenseService expenseGetter
}

// NewGetExpenseHandler creates a new GetExpenseHandler.
func NewGetExpenseHandler(svc expenseGetter) *GetExpenseHandler {
	return &GetExpenseHandler{ExpenseService: svc}
}

// Register registers the get expense endpoint with the Huma API.
func (h *GetExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-expense",
		Method:      http.MethodGet,
		Path:        "/v1/expense/{id}",
		Summary:     "Get expense",
		Description: "Returns a single expense by id.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *GetExpenseHandler) handle(ctx context.Context, input *GetExpenseInput) (*GetExpenseOutput, error) {
	found, err := h.ExpenseService.GetByID(ctx, input.ID)
	if err != nil {
		return nil, mapServiceError(err)
	}

	return &GetExpenseOutput{Body: fromService(found)}, nil
}
