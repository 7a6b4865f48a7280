package service

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents an expense in the service layer.
type Expense struct {
	ID        int64
	Name      string
	Amount    decimal.Decimal
	Currency  string
	Category  string
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreatePayload is a candidate create request. Fields are raw strings as
// received on the wire; nil means the field was not supplied.
type CreatePayload struct {
	Name     *string
	Amount   *string
	Currency *string
	Category *string
	Date     *string
}

// UpdatePayload is a candidate partial update. Only supplied fields are
// validated and written.
type UpdatePayload struct {
	Name     *string
	Amount   *string
	Currency *string
	Category *string
	Date     *string
}

// ListParams are the raw, possibly-absent query parameters of a listing
// request, before any validation or normalization.
type ListParams struct {
	Limit    *string
	Offset   *string
	FromDate *string
	ToDate   *string
	Category *string
}

// ListQuery is the normalized, validated filter/pagination descriptor.
type ListQuery struct {
	Category  *string
	FromDate  *time.Time
	ToDate    *time.Time
	Limit     int
	Offset    int
	Paginated bool
}

// Page is the pagination metadata attached to a paginated listing.
type Page struct {
	Total       int64
	Limit       int
	Offset      int
	HasNext     bool
	HasPrevious bool
}

// ListResult is a listing outcome. Page is nil for unpaginated listings.
type ListResult struct {
	Expenses []Expense
	Page     *Page
}

// CategoryStat is one category's aggregate.
type CategoryStat struct {
	Category string
	Total    decimal.Decimal
	Count    int64
}

// Stats is the aggregate view over all expenses. Categories are ordered by
// summed amount descending.
type Stats struct {
	TotalAmount decimal.Decimal
	TotalCount  int64
	Categories  []CategoryStat
}
