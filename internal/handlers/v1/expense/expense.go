package expense

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/service"
)

// Expense is the API response model for an expense.
// It is used only for responses, not for request bodies.
type Expense struct {
	ID        int64  `json:"id" doc:"Expense ID"`
	Name      string `json:"name" doc:"Name of the expense"`
	Amount    string `json:"amount" doc:"Decimal amount"`
	Currency  string `json:"currency" doc:"Three-letter currency code"`
	Category  string `json:"category" doc:"Category the expense belongs to"`
	Date      string `json:"date" doc:"RFC3339 occurrence date"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
	UpdatedAt string `json:"updatedAt" doc:"RFC3339 last update time"`
}

func fromService(e *service.Expense) Expense {
	return Expense{
		ID:        e.ID,
		Name:      e.Name,
		Amount:    e.Amount.String(),
		Currency:  e.Currency,
		Category:  e.Category,
		Date:      e.Date.Format(time.RFC3339Nano),
		CreatedAt: e.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt: e.UpdatedAt.Format(time.RFC3339Nano),
	}
}

// mapServiceError translates the service outcome set to transport errors.
// Validation failures carry their full field list; storage faults stay
// opaque to the caller.
func mapServiceError(err error) error {
	var validationErrors *service.ValidationErrors
	if errors.As(err, &validationErrors) {
		details := make([]error, len(validationErrors.Errors))
		for i, fieldErr := range validationErrors.Errors {
			details[i] = &huma.ErrorDetail{
				Location: fieldErr.Field,
				Message:  fieldErr.Message,
			}
		}
		return huma.NewError(http.StatusBadRequest, "validation failed", details...)
	}
	if errors.Is(err, service.ErrNotFound) {
		return huma.NewError(http.StatusNotFound, "expense not found")
	}
	return huma.NewError(http.StatusInternalServerError, "internal error")
}
