package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

// CreateExpenseBody is the request body for creating an expense. Every field
// is schema-optional and unknown fields are ignored: the service validator
// owns required-field semantics so the caller gets the complete violation set
// in one response.
type CreateExpenseBody struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	Name     *string `json:"name,omitempty" doc:"Name of the expense"`
	Amount   *string `json:"amount,omitempty" doc:"Decimal amount"`
	Currency *string `json:"currency,omitempty" doc:"Three-letter currency code"`
	Category *string `json:"category,omitempty" doc:"Category the expense belongs to"`
	Date     *string `json:"date,omitempty" doc:"RFC3339 occurrence date, defaults to now"`
}

// CreateExpenseInput is the Huma input for creating an expense.
type CreateExpenseInput struct {
	Body CreateExpenseBody
}

// CreateExpenseOutput is the Huma output for creating an expense.
type CreateExpenseOutput struct {
	Body Expense
}

// expenseCreator is the interface for creating expenses.
type expenseCreator interface {
	Create(ctx context.Context, payload service.CreatePayload) (*service.Expense, error)
}

// CreateExpenseHandler handles POST /v1/expense.
type CreateExpenseHandler struct {
	ExpenseService expenseCreator
}

// NewCreateExpenseHandler creates a new CreateExpenseHandler.
func NewCreateExpenseHandler(svc expenseCreator) *CreateExpenseHandler {
	return &CreateExpenseHandler{ExpenseService: svc}
}

// Register registers the create expense endpoint with the Huma API.
func (h *CreateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-expense",
		Method:        http.MethodPost,
		Path:          "/v1/expense",
		Summary:       "Create expense",
		Description:   "Creates a new expense.",
		Tags:          []string{"Expenses"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateExpenseHandler) handle(ctx context.Context, input *CreateExpenseInput) (*CreateExpenseOutput, error) {
	logData := logging.GetLogData(ctx)

	payload := service.CreatePayload{
		Name:     input.Body.Name,
		Amount:   input.Body.Amount,
		Currency: input.Body.Currency,
		Category: input.Body.Category,
		Date:     input.Body.Date,
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createExpenseMs")
	}
	created, err := h.ExpenseService.Create(ctx, payload)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, mapServiceError(err)
	}

	if logData != nil {
		logData.AddData("expenseID", created.ID)
	}

	return &CreateExpenseOutput{Body: fromService(created)}, nil
}
