package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

// UpdateExpenseBody is the request body for a partial update. Absent fields
// keep their stored values and unknown fields are ignored; supplying no
// recognized field at all is rejected by the service with a single error on
// the synthetic field "general".
type UpdateExpenseBody struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	Name     *string `json:"name,omitempty" doc:"Name of the expense"`
	Amount   *string `json:"amount,omitempty" doc:"Decimal amount"`
	Currency *string `json:"currency,omitempty" doc:"Three-letter currency code"`
	Category *string `json:"category,omitempty" doc:"Category the expense belongs to"`
	Date     *string `json:"date,omitempty" doc:"RFC3339 occurrence date"`
}

// UpdateExpenseInput is the Huma input for updating an expense.
type UpdateExpenseInput struct {
	ID   int64 `path:"id" doc:"Expense ID"`
	Body UpdateExpenseBody
}

// UpdateExpenseOutput is the Huma output for updating an expense.
type UpdateExpenseOutput struct {
	Body Expense
}

// expenseUpdater is the interface for updating expenses.
type expenseUpdater interface {
	Update(ctx context.Context, id int64, payload service.UpdatePayload) (*service.Expense, error)
}

// UpdateExpenseHandler handles PATCH /v1/expense/{id}.
type UpdateExpenseHandler struct {
	ExpenseService expenseUpdater
}

// NewUpdateExpenseHandler creates a new UpdateExpenseHandler.
func NewUpdateExpenseHandler(svc expenseUpdater) *UpdateExpenseHandler {
	return &UpdateExpenseHandler{ExpenseService: svc}
}

// Register registers the update expense endpoint with the Huma API.
func (h *UpdateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-expense",
		Method:      http.MethodPatch,
		Path:        "/v1/expense/{id}",
		Summary:     "Update expense",
		Description: "Applies a partial update to an expense.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *UpdateExpenseHandler) handle(ctx context.Context, input *UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	logData := logging.GetLogData(ctx)
	if logData != nil {
		logData.AddData("expenseID", input.ID)
	}

	payload := service.UpdatePayload{
		Name:     input.Body.Name,
		Amount:   input.Body.Amount,
		Currency: input.Body.Currency,
		Category: input.Body.Category,
		Date:     input.Body.Date,
	}

	updated, err := h.ExpenseService.Update(ctx, input.ID, payload)
	if err != nil {
		return nil, mapServiceError(err)
	}

	return &UpdateExpenseOutput{Body: fromService(updated)}, nil
}
