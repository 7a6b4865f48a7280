package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func validCreatePayload() CreatePayload {
	return CreatePayload{
		Name:     strPtr("Team lunch"),
		Amount:   strPtr("42.50"),
		Currency: strPtr("USD"),
		Category: strPtr("Food"),
	}
}

func fieldsOf(fieldErrors []FieldError) []string {
	fields := make([]string, len(fieldErrors))
	for i, fieldErr := range fieldErrors {
		fields[i] = fieldErr.Field
	}
	return fields
}

// -- create mode --

func TestValidateCreate_Valid(t *testing.T) {
	create, fieldErrors := validateCreate(validCreatePayload())

	assert.Empty(t, fieldErrors)
	assert.Equal(t, "Team lunch", create.Name)
	assert.True(t, create.Amount.Equal(decimal.RequireFromString("42.50")))
	assert.Equal(t, "USD", create.Currency)
	assert.Equal(t, "Food", create.Category)
	assert.True(t, create.Date.IsZero(), "date left for the service to default")
}

func TestValidateCreate_AllFieldsMissing(t *testing.T) {
	_, fieldErrors := validateCreate(CreatePayload{})

	assert.Len(t, fieldErrors, 4, "one error per missing required field")
	assert.Equal(t, []string{"name", "amount", "currency", "category"}, fieldsOf(fieldErrors))
}

func TestValidateCreate_OneFieldMissing(t *testing.T) {
	payload := validCreatePayload()
	payload.Currency = nil

	_, fieldErrors := validateCreate(payload)

	require.Len(t, fieldErrors, 1)
	assert.Equal(t, "currency", fieldErrors[0].Field)
	assert.Equal(t, "Currency is required", fieldErrors[0].Message)
}

func TestValidateCreate_CollectsAllErrorsAtOnce(t *testing.T) {
	payload := CreatePayload{
		Name:     strPtr("   "),
		Amount:   strPtr("not-a-number"),
		Currency: strPtr("usd"),
		Category: strPtr("Food"),
		Date:     strPtr("yesterday"),
	}

	_, fieldErrors := validateCreate(payload)

	assert.Equal(t, []string{"name", "amount", "currency", "date"}, fieldsOf(fieldErrors))
}

func TestValidateCreate_AmountBounds(t *testing.T) {
	cases := []struct {
		name    string
		amount  string
		message string
	}{
		{"below minimum", "0.009", "Amount must be at least 0.01"},
		{"above maximum", "1000000", "Amount cannot exceed 999999.99"},
		{"at minimum", "0.01", ""},
		{"at maximum", "999999.99", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := validCreatePayload()
			payload.Amount = strPtr(tc.amount)

			_, fieldErrors := validateCreate(payload)

			if tc.message == "" {
				assert.Empty(t, fieldErrors)
			} else {
				require.Len(t, fieldErrors, 1)
				assert.Equal(t, "amount", fieldErrors[0].Field)
				assert.Equal(t, tc.message, fieldErrors[0].Message)
			}
		})
	}
}

func TestValidateCreate_Currency(t *testing.T) {
	cases := []struct {
		name     string
		currency string
		message  string
	}{
		{"too short", "US", "Currency must be exactly 3 characters"},
		{"too long", "USDX", "Currency must be exactly 3 characters"},
		{"lowercase", "usd", "Currency must be 3 uppercase letters"},
		{"digits", "U5D", "Currency must be 3 uppercase letters"},
		{"valid", "USD", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := validCreatePayload()
			payload.Currency = strPtr(tc.currency)

			_, fieldErrors := validateCreate(payload)

			if tc.message == "" {
				assert.Empty(t, fieldErrors)
			} else {
				require.Len(t, fieldErrors, 1)
				assert.Equal(t, tc.message, fieldErrors[0].Message)
			}
		})
	}
}

func TestValidateCreate_NameLength(t *testing.T) {
	longName := make([]rune, 256)
	for i := range longName {
		longName[i] = 'a'
	}

	payload := validCreatePayload()
	payload.Name = strPtr(string(longName))

	_, fieldErrors := validateCreate(payload)

	require.Len(t, fieldErrors, 1)
	assert.Equal(t, "Name cannot exceed 255 characters", fieldErrors[0].Message)

	payload.Name = strPtr(string(longName[:255]))
	_, fieldErrors = validateCreate(payload)
	assert.Empty(t, fieldErrors)
}

func TestValidateCreate_CategoryLength(t *testing.T) {
	longCategory := make([]rune, 101)
	for i := range longCategory {
		longCategory[i] = 'c'
	}

	payload := validCreatePayload()
	payload.Category = strPtr(string(longCategory))

	_, fieldErrors := validateCreate(payload)

	require.Len(t, fieldErrors, 1)
	assert.Equal(t, "Category cannot exceed 100 characters", fieldErrors[0].Message)
}

func TestValidateCreate_DateParses(t *testing.T) {
	payload := validCreatePayload()
	payload.Date = strPtr("2025-03-01T09:30:00Z")

	create, fieldErrors := validateCreate(payload)

	assert.Empty(t, fieldErrors)
	assert.True(t, create.Date.Equal(time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)))
}

func TestValidateCreate_InvalidDateMessage(t *testing.T) {
	payload := validCreatePayload()
	payload.Date = strPtr("03/01/2025")

	_, fieldErrors := validateCreate(payload)

	require.Len(t, fieldErrors, 1)
	assert.Equal(t, "date", fieldErrors[0].Field)
	assert.Contains(t, fieldErrors[0].Message, "valid ISO string")
}

// -- update mode --

func TestValidateUpdate_EmptyPayload(t *testing.T) {
	_, fieldErrors := validateUpdate(UpdatePayload{})

	require.Len(t, fieldErrors, 1)
	assert.Equal(t, "general", fieldErrors[0].Field)
	assert.Equal(t, "At least one field must be provided", fieldErrors[0].Message)
}

func TestValidateUpdate_SingleField(t *testing.T) {
	update, fieldErrors := validateUpdate(UpdatePayload{Amount: strPtr("99.99")})

	assert.Empty(t, fieldErrors)

	amount, ok := update.Amount.Get()
	require.True(t, ok)
	assert.True(t, amount.Equal(decimal.RequireFromString("99.99")))

	_, ok = update.Name.Get()
	assert.False(t, ok, "unsupplied fields stay unset")
}

func TestValidateUpdate_SuppliedFieldsStillValidated(t *testing.T) {
	_, fieldErrors := validateUpdate(UpdatePayload{
		Name:   strPtr("Dinner"),
		Amount: strPtr("0"),
	})

	require.Len(t, fieldErrors, 1)
	assert.Equal(t, "amount", fieldErrors[0].Field)
	assert.Equal(t, "Amount must be at least 0.01", fieldErrors[0].Message)
}

func TestValidateUpdate_InvalidDate(t *testing.T) {
	_, fieldErrors := validateUpdate(UpdatePayload{Date: strPtr("not-a-date")})

	require.Len(t, fieldErrors, 1)
	assert.Contains(t, fieldErrors[0].Message, "valid ISO string")
}
