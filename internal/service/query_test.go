package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListQuery_NoParams(t *testing.T) {
	query, fieldErr := buildListQuery(ListParams{})

	require.Nil(t, fieldErr)
	assert.False(t, query.Paginated, "no limit or offset means no pagination")
	assert.Nil(t, query.Category)
	assert.Nil(t, query.FromDate)
	assert.Nil(t, query.ToDate)
}

func TestBuildListQuery_LimitOnly(t *testing.T) {
	query, fieldErr := buildListQuery(ListParams{Limit: strPtr("25")})

	require.Nil(t, fieldErr)
	assert.True(t, query.Paginated)
	assert.Equal(t, 25, query.Limit)
	assert.Equal(t, 0, query.Offset, "offset defaults to 0")
}

func TestBuildListQuery_OffsetOnly(t *testing.T) {
	query, fieldErr := buildListQuery(ListParams{Offset: strPtr("30")})

	require.Nil(t, fieldErr)
	assert.True(t, query.Paginated)
	assert.Equal(t, 10, query.Limit, "limit defaults to 10")
	assert.Equal(t, 30, query.Offset)
}

func TestBuildListQuery_InvalidLimit(t *testing.T) {
	for _, raw := range []string{"0", "-1", "abc", "1.5"} {
		_, fieldErr := buildListQuery(ListParams{Limit: strPtr(raw)})

		require.NotNil(t, fieldErr, "limit=%q", raw)
		assert.Equal(t, "limit", fieldErr.Field)
		assert.Equal(t, "Limit must be a positive integer", fieldErr.Message)
	}
}

func TestBuildListQuery_LimitTooLarge(t *testing.T) {
	_, fieldErr := buildListQuery(ListParams{Limit: strPtr("150")})

	require.NotNil(t, fieldErr)
	assert.Contains(t, fieldErr.Message, "cannot exceed")

	query, fieldErr := buildListQuery(ListParams{Limit: strPtr("100")})
	require.Nil(t, fieldErr)
	assert.Equal(t, 100, query.Limit)
}

func TestBuildListQuery_InvalidOffset(t *testing.T) {
	for _, raw := range []string{"-1", "abc"} {
		_, fieldErr := buildListQuery(ListParams{Offset: strPtr(raw)})

		require.NotNil(t, fieldErr, "offset=%q", raw)
		assert.Equal(t, "Offset must be a non-negative integer", fieldErr.Message)
	}
}

func TestBuildListQuery_DateRange(t *testing.T) {
	query, fieldErr := buildListQuery(ListParams{
		FromDate: strPtr("2025-01-01T00:00:00Z"),
		ToDate:   strPtr("2025-01-31T23:59:59Z"),
	})

	require.Nil(t, fieldErr)
	assert.True(t, query.FromDate.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, query.ToDate.Equal(time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC)))
}

func TestBuildListQuery_InvalidDates(t *testing.T) {
	_, fieldErr := buildListQuery(ListParams{FromDate: strPtr("01-01-2025")})
	require.NotNil(t, fieldErr)
	assert.Equal(t, "fromDate must be a valid ISO date string", fieldErr.Message)

	_, fieldErr = buildListQuery(ListParams{ToDate: strPtr("01-01-2025")})
	require.NotNil(t, fieldErr)
	assert.Equal(t, "toDate must be a valid ISO date string", fieldErr.Message)
}

func TestBuildListQuery_FromAfterTo(t *testing.T) {
	_, fieldErr := buildListQuery(ListParams{
		FromDate: strPtr("2025-02-01T00:00:00Z"),
		ToDate:   strPtr("2025-01-01T00:00:00Z"),
	})

	require.NotNil(t, fieldErr)
	assert.Equal(t, "fromDate cannot be after toDate", fieldErr.Message)
}

func TestBuildListQuery_FromEqualsTo(t *testing.T) {
	instant := "2025-01-15T12:00:00Z"

	query, fieldErr := buildListQuery(ListParams{
		FromDate: strPtr(instant),
		ToDate:   strPtr(instant),
	})

	require.Nil(t, fieldErr, "equal bounds are accepted, the range is inclusive")
	assert.True(t, query.FromDate.Equal(*query.ToDate))
}

func TestBuildListQuery_Category(t *testing.T) {
	query, fieldErr := buildListQuery(ListParams{Category: strPtr("  Food  ")})

	require.Nil(t, fieldErr)
	require.NotNil(t, query.Category)
	assert.Equal(t, "Food", *query.Category, "category is trimmed")
}

func TestBuildListQuery_BlankCategory(t *testing.T) {
	_, fieldErr := buildListQuery(ListParams{Category: strPtr("   ")})

	require.NotNil(t, fieldErr)
	assert.Equal(t, "Category cannot be empty", fieldErr.Message)
}
