package expense

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-server/internal/service"
)

// mockExpenseDeleter is a mock for expenseDeleter.
type mockExpenseDeleter struct {
	mock.Mock
}

func (m *mockExpenseDeleter) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newDeleteTestAPI(t *testing.T, svc expenseDeleter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewDeleteExpenseHandler(svc).Register(api)
	return api
}

func TestHTTP_DeleteExpense_Success(t *testing.T) {
	mockSvc := new(mockExpenseDeleter)
	mockSvc.On("Delete", mock.Anything, int64(7)).Return(nil)

	resp := newDeleteTestAPI(t, mockSvc).Delete("/v1/expense/7")

	assert.Equal(t, http.StatusNoContent, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteExpense_NotFound(t *testing.T) {
	mockSvc := new(mockExpenseDeleter)
	mockSvc.On("Delete", mock.Anything, int64(99)).Return(service.ErrNotFound)

	resp := newDeleteTestAPI(t, mockSvc).Delete("/v1/expense/99")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_DeleteExpense_InvalidID(t *testing.T) {
	mockSvc := new(mockExpenseDeleter)
	mockSvc.On("Delete", mock.Anything, int64(-1)).Return(
		&service.ValidationErrors{Errors: []service.FieldError{
			{Field: "id", Message: "ID must be a positive integer"},
		}},
	)

	resp := newDeleteTestAPI(t, mockSvc).Delete("/v1/expense/-1")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
