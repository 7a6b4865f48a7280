package service

import (
	"strconv"
	"strings"
	"time"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// buildListQuery normalizes raw listing parameters into a ListQuery.
// Unlike payload validation, each check is independent, so the first
// violation wins and is returned alone.
//
// Supplying either limit or offset switches the listing into paginated
// mode; limit defaults to 10 when only offset was given and offset to 0
// when only limit was given. Neither present means a plain full-match
// listing with no page metadata.
func buildListQuery(params ListParams) (*ListQuery, *FieldError) {
	query := &ListQuery{Limit: defaultPageLimit}

	if params.Limit != nil {
		limit, err := strconv.Atoi(strings.TrimSpace(*params.Limit))
		if err != nil || limit <= 0 {
			return nil, &FieldError{Field: "limit", Message: "Limit must be a positive integer"}
		}
		if limit > maxPageLimit {
			return nil, &FieldError{Field: "limit", Message: "Limit cannot exceed 100"}
		}
		query.Limit = limit
		query.Paginated = true
	}

	if params.Offset != nil {
		offset, err := strconv.Atoi(strings.TrimSpace(*params.Offset))
		if err != nil || offset < 0 {
			return nil, &FieldError{Field: "offset", Message: "Offset must be a non-negative integer"}
		}
		query.Offset = offset
		query.Paginated = true
	}

	if params.FromDate != nil {
		fromDate, err := time.Parse(time.RFC3339, *params.FromDate)
		if err != nil {
			return nil, &FieldError{Field: "fromDate", Message: "fromDate must be a valid ISO date string"}
		}
		query.FromDate = &fromDate
	}

	if params.ToDate != nil {
		toDate, err := time.Parse(time.RFC3339, *params.ToDate)
		if err != nil {
			return nil, &FieldError{Field: "toDate", Message: "toDate must be a valid ISO date string"}
		}
		query.ToDate = &toDate
	}

	// Only checked once both bounds individually parsed. Equal bounds are
	// fine: the range is inclusive on both ends.
	if query.FromDate != nil && query.ToDate != nil && query.FromDate.After(*query.ToDate) {
		return nil, &FieldError{Field: "fromDate", Message: "fromDate cannot be after toDate"}
	}

	if params.Category != nil {
		category := strings.TrimSpace(*params.Category)
		if category == "" {
			return nil, &FieldError{Field: "category", Message: "Category cannot be empty"}
		}
		query.Category = &category
	}

	return query, nil
}
