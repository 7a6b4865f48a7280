package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

// CategoryStat is one category's share of the aggregate.
type CategoryStat struct {
	Category string `json:"category" doc:"Category name"`
	Total    string `json:"total" doc:"Summed decimal amount"`
	Count    int64  `json:"count" doc:"Number of expenses in the category"`
}

// StatsResponseBody is the response body for expense statistics.
type StatsResponseBody struct {
	TotalAmount string         `json:"totalAmount" doc:"Summed decimal amount across all expenses"`
	TotalCount  int64          `json:"totalCount" doc:"Total number of expenses"`
	Categories  []CategoryStat `json:"categories" doc:"Per-category totals, largest first"`
}

// StatsOutput is the Huma output for expense statistics.
type StatsOutput struct {
	Body StatsResponseBody
}

// statsProvider is the interface for aggregate statistics.
type statsProvider interface {
	Stats(ctx context.Context) (*service.Stats, error)
}

// StatsHandler handles GET /v1/expense/stats.
type StatsHandler struct {
	ExpenseService statsProvider
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(svc statsProvider) *StatsHandler {
	return &StatsHandler{ExpenseService: svc}
}

// Register registers the stats endpoint with the Huma API.
func (h *StatsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "expense-stats",
		Method:      http.MethodGet,
		Path:        "/v1/expense/stats",
		Summary:     "Expense statistics",
		Description: "Returns the overall total plus a per-category breakdown ordered by summed amount descending.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *StatsHandler) handle(ctx context.Context, _ *struct{}) (*StatsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("expenseStatsMs")
	}
	stats, err := h.ExpenseService.Stats(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, mapServiceError(err)
	}

	resp := StatsResponseBody{
		TotalAmount: stats.TotalAmount.String(),
		TotalCount:  stats.TotalCount,
		Categories:  make([]CategoryStat, len(stats.Categories)),
	}
	for i, categoryStat := range stats.Categories {
		resp.Categories[i] = CategoryStat{
			Category: categoryStat.Category,
			Total:    categoryStat.Total.String(),
			Count:    categoryStat.Count,
		}
	}

	return &StatsOutput{Body: resp}, nil
}
