package expense

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/expense-server/internal/service"
)

// mockStatsProvider is a mock for statsProvider.
type mockStatsProvider struct {
	mock.Mock
}

func (m *mockStatsProvider) Stats(ctx context.Context) (*service.Stats, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*service.Stats)
	return result, args.Error(1)
}

func newStatsTestAPI(t *testing.T, svc statsProvider) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewStatsHandler(svc).Register(api)
	return api
}

func TestHTTP_Stats_Success(t *testing.T) {
	mockSvc := new(mockStatsProvider)
	mockSvc.On("Stats", mock.Anything).Return(&service.Stats{
		TotalAmount: decimal.RequireFromString("30.25"),
		TotalCount:  3,
		Categories: []service.CategoryStat{
			{Category: "Food", Total: decimal.RequireFromString("20.25"), Count: 2},
			{Category: "Transport", Total: decimal.RequireFromString("10"), Count: 1},
		},
	}, nil)

	resp := newStatsTestAPI(t, mockSvc).Get("/v1/expense/stats")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body StatsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "30.25", body.TotalAmount)
	assert.Equal(t, int64(3), body.TotalCount)
	require.Len(t, body.Categories, 2)
	assert.Equal(t, "Food", body.Categories[0].Category)
	assert.Equal(t, "10", body.Categories[1].Total)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Stats_StorageError(t *testing.T) {
	mockSvc := new(mockStatsProvider)
	mockSvc.On("Stats", mock.Anything).Return(nil, &service.StorageError{
		Op:  "stats",
		Err: errors.New("connection refused"),
	})

	resp := newStatsTestAPI(t, mockSvc).Get("/v1/expense/stats")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.NotContains(t, resp.Body.String(), "connection refused")
}
