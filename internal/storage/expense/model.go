package expense

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
)

// Expense represents a persisted expense row.
type Expense struct {
	ID        int64           `db:"id"`
	Name      string          `db:"name"`
	Amount    decimal.Decimal `db:"amount"`
	Currency  string          `db:"currency"`
	Category  string          `db:"category"`
	Date      time.Time       `db:"date"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

// ExpenseCreate is the input for inserting a new expense.
type ExpenseCreate struct {
	Name     string
	Amount   decimal.Decimal
	Currency string
	Category string
	Date     time.Time
}

// ExpenseUpdate carries the fields of a partial update. Unset fields keep
// their stored values; updated_at is always refreshed.
type ExpenseUpdate struct {
	Name     omit.Val[string]
	Amount   omit.Val[decimal.Decimal]
	Currency omit.Val[string]
	Category omit.Val[string]
	Date     omit.Val[time.Time]
}

// ExpenseFilter specifies filters for listing and counting expenses.
// Nil fields mean no constraint on that dimension; date bounds are
// inclusive on both ends. Limit == 0 means no limit.
type ExpenseFilter struct {
	Category *string
	FromDate *time.Time
	ToDate   *time.Time
	Limit    int
	Offset   int
}

// Totals is the table-wide aggregate.
type Totals struct {
	TotalAmount decimal.Decimal `db:"total_amount"`
	TotalCount  int64           `db:"total_count"`
}

// CategoryTotal is the per-category aggregate.
type CategoryTotal struct {
	Category string          `db:"category"`
	Total    decimal.Decimal `db:"total"`
	Count    int64           `db:"count"`
}

// IExpensesTable defines the interface for expense storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
type IExpensesTable interface {
	Insert(ctx context.Context, create *ExpenseCreate) (*Expense, error)
	FindByID(ctx context.Context, id int64) (*Expense, error)
	List(ctx context.Context, filter *ExpenseFilter) ([]*Expense, error)
	Count(ctx context.Context, filter *ExpenseFilter) (int64, error)
	Update(ctx context.Context, id int64, update *ExpenseUpdate) (*Expense, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Totals(ctx context.Context) (*Totals, error)
	CategoryTotals(ctx context.Context) ([]*CategoryTotal, error)
}
