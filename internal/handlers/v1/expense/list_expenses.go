package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

// ListExpensesInput is the Huma input for listing expenses. The tagged
// fields document the parameters; the service receives the raw values via
// params, built in Resolve so that an absent parameter stays distinguishable
// from an empty one.
type ListExpensesInput struct {
	Limit    string `query:"limit" doc:"Page size, 1-100. Supplying limit or offset enables pagination"`
	Offset   string `query:"offset" doc:"Offset into the result set, >= 0"`
	FromDate string `query:"fromDate" doc:"RFC3339 lower bound on occurrence date, inclusive"`
	ToDate   string `query:"toDate" doc:"RFC3339 upper bound on occurrence date, inclusive"`
	Category string `query:"category" doc:"Exact category to filter on"`

	params service.ListParams
}

// Resolve captures which query parameters were actually present.
func (i *ListExpensesInput) Resolve(ctx huma.Context) []error {
	u := ctx.URL()
	values := u.Query()
	param := func(name string) *string {
		if raw, ok := values[name]; ok && len(raw) > 0 {
			return &raw[0]
		}
		return nil
	}

	i.params = service.ListParams{
		Limit:    param("limit"),
		Offset:   param("offset"),
		FromDate: param("fromDate"),
		ToDate:   param("toDate"),
		Category: param("category"),
	}
	return nil
}

// PageMeta is the pagination metadata returned in paginated mode.
type PageMeta struct {
	Total       int64 `json:"total" doc:"Total number of matching rows"`
	Limit       int   `json:"limit" doc:"Page size used"`
	Offset      int   `json:"offset" doc:"Offset used"`
	HasNext     bool  `json:"hasNext" doc:"Whether another page follows"`
	HasPrevious bool  `json:"hasPrevious" doc:"Whether a previous page exists"`
}

// ListExpensesResponseBody is the response body for listing expenses.
// Page is absent for unpaginated listings.
type ListExpensesResponseBody struct {
	Expenses []Expense `json:"expenses" doc:"Matching expenses, newest first"`
	Page     *PageMeta `json:"page,omitempty" doc:"Pagination metadata, present in paginated mode"`
}

// ListExpensesOutput is the Huma output for listing expenses.
type ListExpensesOutput struct {
	Body ListExpensesResponseBody
}

// expenseLister is the interface for listing expenses.
type expenseLister interface {
	List(ctx context.Context, params service.ListParams) (*service.ListResult, error)
}

// ListExpensesHandler handles GET /v1/expense.
type ListExpensesHandler struct {
	ExpenseService expenseLister
}

// NewListExpensesHandler creates a new ListExpensesHandler.
func NewListExpensesHandler(svc expenseLister) *ListExpensesHandler {
	return &ListExpensesHandler{ExpenseService: svc}
}

// Register registers the list expenses endpoint with the Huma API.
func (h *ListExpensesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-expenses",
		Method:      http.MethodGet,
		Path:        "/v1/expense",
		Summary:     "List expenses",
		Description: "Returns expenses filtered by category and date range, optionally paginated.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *ListExpensesHandler) handle(ctx context.Context, input *ListExpensesInput) (*ListExpensesOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listExpensesMs")
	}
	result, err := h.ExpenseService.List(ctx, input.params)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, mapServiceError(err)
	}

	if logData != nil {
		logData.AddData("expenseCount", len(result.Expenses))
	}

	resp := ListExpensesResponseBody{
		Expenses: make([]Expense, len(result.Expenses)),
	}
	for i := range result.Expenses {
		resp.Expenses[i] = fromService(&result.Expenses[i])
	}

	if result.Page != nil {
		resp.Page = &PageMeta{
			Total:       result.Page.Total,
			Limit:       result.Page.Limit,
			Offset:      result.Page.Offset,
			HasNext:     result.Page.HasNext,
			HasPrevious: result.Page.HasPrevious,
		}
	}

	return &ListExpensesOutput{Body: resp}, nil
}
