package service

import (
	"github.com/carson-networks/expense-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Expense *ExpenseService
}

// NewService creates a new Service with the given storage and processor.
func NewService(store *storage.Storage, processor ActionProcessor) *Service {
	return &Service{
		Expense: NewExpenseService(store, processor),
	}
}
