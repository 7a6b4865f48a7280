package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/expense-server/internal/operator/actions"
	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/expense"
)

// ActionProcessor runs a mutation action to completion. Satisfied by
// operator.OperatorDelegator.
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// ExpenseService handles expense business logic. Reads go straight to
// storage; mutations are funneled through the action processor.
type ExpenseService struct {
	storage   *storage.Storage
	processor ActionProcessor
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(store *storage.Storage, processor ActionProcessor) *ExpenseService {
	return &ExpenseService{storage: store, processor: processor}
}

func fromStorage(row *expense.Expense) *Expense {
	return &Expense{
		ID:        row.ID,
		Name:      row.Name,
		Amount:    row.Amount,
		Currency:  row.Currency,
		Category:  row.Category,
		Date:      row.Date,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

// Create validates the payload and persists a new expense. The occurrence
// date defaults to the creation instant when absent.
func (s *ExpenseService) Create(ctx context.Context, payload CreatePayload) (*Expense, error) {
	create, fieldErrors := validateCreate(payload)
	if len(fieldErrors) > 0 {
		return nil, &ValidationErrors{Errors: fieldErrors}
	}

	if create.Date.IsZero() {
		create.Date = time.Now().UTC()
	}

	action := &actions.CreateExpense{Create: create}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, s.storageError("create", 0, err)
	}

	return fromStorage(action.Result), nil
}

// GetByID retrieves an expense. A non-positive id is a validation failure,
// not a not-found.
func (s *ExpenseService) GetByID(ctx context.Context, id int64) (*Expense, error) {
	if id <= 0 {
		return nil, newValidationError("id", "ID must be a positive integer")
	}

	row, err := s.storage.Expenses.FindByID(ctx, id)
	if err != nil {
		return nil, s.storageError("getById", id, err)
	}
	if row == nil {
		return nil, ErrNotFound
	}

	return fromStorage(row), nil
}

// List returns expenses matching the normalized query. Paginated mode adds
// a total count and has-next/has-previous flags; otherwise the full match
// set comes back with no page metadata.
func (s *ExpenseService) List(ctx context.Context, params ListParams) (*ListResult, error) {
	query, fieldErr := buildListQuery(params)
	if fieldErr != nil {
		return nil, &ValidationErrors{Errors: []FieldError{*fieldErr}}
	}

	filter := &expense.ExpenseFilter{
		Category: query.Category,
		FromDate: query.FromDate,
		ToDate:   query.ToDate,
	}
	if query.Paginated {
		filter.Limit = query.Limit
		filter.Offset = query.Offset
	}

	rows, err := s.storage.Expenses.List(ctx, filter)
	if err != nil {
		return nil, s.storageError("list", 0, err)
	}

	result := &ListResult{Expenses: make([]Expense, len(rows))}
	for i, row := range rows {
		result.Expenses[i] = *fromStorage(row)
	}

	if query.Paginated {
		total, err := s.storage.Expenses.Count(ctx, filter)
		if err != nil {
			return nil, s.storageError("list", 0, err)
		}
		result.Page = &Page{
			Total:       total,
			Limit:       query.Limit,
			Offset:      query.Offset,
			HasNext:     int64(query.Offset+query.Limit) < total,
			HasPrevious: query.Offset > 0,
		}
	}

	return result, nil
}

// Update applies a partial update. The existence check and the write are two
// storage round trips, not one transaction; a concurrent delete can turn a
// positive check into a not-found on the write.
func (s *ExpenseService) Update(ctx context.Context, id int64, payload UpdatePayload) (*Expense, error) {
	if id <= 0 {
		return nil, newValidationError("id", "ID must be a positive integer")
	}

	update, fieldErrors := validateUpdate(payload)
	if len(fieldErrors) > 0 {
		return nil, &ValidationErrors{Errors: fieldErrors}
	}

	existing, err := s.storage.Expenses.FindByID(ctx, id)
	if err != nil {
		return nil, s.storageError("update", id, err)
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	action := &actions.UpdateExpense{ID: id, Update: update}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, s.storageError("update", id, err)
	}
	if action.Result == nil {
		return nil, ErrNotFound
	}

	return fromStorage(action.Result), nil
}

// Delete removes an expense. Deleting an id that does not exist yields
// ErrNotFound rather than a fault.
func (s *ExpenseService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return newValidationError("id", "ID must be a positive integer")
	}

	action := &actions.DeleteExpense{ID: id}
	if err := s.processor.Process(ctx, action); err != nil {
		return s.storageError("delete", id, err)
	}
	if !action.Existed {
		return ErrNotFound
	}

	return nil
}

// Stats returns the aggregate totals and the per-category breakdown. The
// two aggregate queries have no ordering dependency, so they run
// concurrently against the pool.
func (s *ExpenseService) Stats(ctx context.Context) (*Stats, error) {
	var totals *expense.Totals
	var categoryTotals []*expense.CategoryTotal

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		totals, err = s.storage.Expenses.Totals(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		categoryTotals, err = s.storage.Expenses.CategoryTotals(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, s.storageError("stats", 0, err)
	}

	stats := &Stats{
		TotalAmount: totals.TotalAmount,
		TotalCount:  totals.TotalCount,
		Categories:  make([]CategoryStat, len(categoryTotals)),
	}
	for i, categoryTotal := range categoryTotals {
		stats.Categories[i] = CategoryStat{
			Category: categoryTotal.Category,
			Total:    categoryTotal.Total,
			Count:    categoryTotal.Count,
		}
	}

	return stats, nil
}

// storageError logs the fault with operation context and wraps it in an
// opaque StorageError. Payload contents deliberately stay out of the log.
func (s *ExpenseService) storageError(op string, id int64, err error) error {
	fields := logrus.Fields{"operation": op}
	if id > 0 {
		fields["id"] = id
	}
	logrus.WithFields(fields).WithError(err).Error("ExpenseService.storage failure")
	return &StorageError{Op: op, ID: id, Err: err}
}
