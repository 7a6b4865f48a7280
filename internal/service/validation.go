package service

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/storage/expense"
)

const (
	maxNameLength     = 255
	maxCategoryLength = 100
)

var (
	minAmount       = decimal.RequireFromString("0.01")
	maxAmount       = decimal.RequireFromString("999999.99")
	currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)
)

func checkName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "Name cannot be empty"
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return "Name cannot exceed 255 characters"
	}
	return ""
}

func checkAmount(raw string) (decimal.Decimal, string) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, "Amount must be a valid number"
	}
	if amount.LessThan(minAmount) {
		return decimal.Decimal{}, "Amount must be at least 0.01"
	}
	if amount.GreaterThan(maxAmount) {
		return decimal.Decimal{}, "Amount cannot exceed 999999.99"
	}
	return amount, ""
}

// checkCurrency checks length before pattern so a wrong-length value gets
// the length message even when it also fails the pattern.
func checkCurrency(currency string) string {
	if utf8.RuneCountInString(currency) != 3 {
		return "Currency must be exactly 3 characters"
	}
	if !currencyPattern.MatchString(currency) {
		return "Currency must be 3 uppercase letters"
	}
	return ""
}

func checkCategory(category string) string {
	if strings.TrimSpace(category) == "" {
		return "Category cannot be empty"
	}
	if utf8.RuneCountInString(category) > maxCategoryLength {
		return "Category cannot exceed 100 characters"
	}
	return ""
}

func checkDate(raw string) (time.Time, string) {
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, "Date must be a valid ISO string"
	}
	return parsed, ""
}

// validateCreate checks a create payload and returns the normalized insert
// input. All violations are collected in one pass; the insert input is only
// meaningful when the returned slice is empty.
func validateCreate(payload CreatePayload) (*expense.ExpenseCreate, []FieldError) {
	var fieldErrors []FieldError
	create := &expense.ExpenseCreate{}

	if payload.Name == nil {
		fieldErrors = append(fieldErrors, FieldError{Field: "name", Message: "Name is required"})
	} else if msg := checkName(*payload.Name); msg != "" {
		fieldErrors = append(fieldErrors, FieldError{Field: "name", Message: msg})
	} else {
		create.Name = *payload.Name
	}

	if payload.Amount == nil {
		fieldErrors = append(fieldErrors, FieldError{Field: "amount", Message: "Amount is required"})
	} else if amount, msg := checkAmount(*payload.Amount); msg != "" {
		fieldErrors = append(fieldErrors, FieldError{Field: "amount", Message: msg})
	} else {
		create.Amount = amount
	}

	if payload.Currency == nil {
		fieldErrors = append(fieldErrors, FieldError{Field: "currency", Message: "Currency is required"})
	} else if msg := checkCurrency(*payload.Currency); msg != "" {
		fieldErrors = append(fieldErrors, FieldError{Field: "currency", Message: msg})
	} else {
		create.Currency = *payload.Currency
	}

	if payload.Category == nil {
		fieldErrors = append(fieldErrors, FieldError{Field: "category", Message: "Category is required"})
	} else if msg := checkCategory(*payload.Category); msg != "" {
		fieldErrors = append(fieldErrors, FieldError{Field: "category", Message: msg})
	} else {
		create.Category = *payload.Category
	}

	if payload.Date != nil {
		if date, msg := checkDate(*payload.Date); msg != "" {
			fieldErrors = append(fieldErrors, FieldError{Field: "date", Message: msg})
		} else {
			create.Date = date
		}
	}

	return create, fieldErrors
}

// validateUpdate checks a partial update payload. Supplying no recognized
// field at all is a single error on the synthetic field "general".
func validateUpdate(payload UpdatePayload) (*expense.ExpenseUpdate, []FieldError) {
	var fieldErrors []FieldError
	update := &expense.ExpenseUpdate{}
	supplied := false

	if payload.Name != nil {
		supplied = true
		if msg := checkName(*payload.Name); msg != "" {
			fieldErrors = append(fieldErrors, FieldError{Field: "name", Message: msg})
		} else {
			update.Name = omit.From(*payload.Name)
		}
	}

	if payload.Amount != nil {
		supplied = true
		if amount, msg := checkAmount(*payload.Amount); msg != "" {
			fieldErrors = append(fieldErrors, FieldError{Field: "amount", Message: msg})
		} else {
			update.Amount = omit.From(amount)
		}
	}

	if payload.Currency != nil {
		supplied = true
		if msg := checkCurrency(*payload.Currency); msg != "" {
			fieldErrors = append(fieldErrors, FieldError{Field: "currency", Message: msg})
		} else {
			update.Currency = omit.From(*payload.Currency)
		}
	}

	if payload.Category != nil {
		supplied = true
		if msg := checkCategory(*payload.Category); msg != "" {
			fieldErrors = append(fieldErrors, FieldError{Field: "category", Message: msg})
		} else {
			update.Category = omit.From(*payload.Category)
		}
	}

	if payload.Date != nil {
		supplied = true
		if date, msg := checkDate(*payload.Date); msg != "" {
			fieldErrors = append(fieldErrors, FieldError{Field: "date", Message: msg})
		} else {
			update.Date = omit.From(date)
		}
	}

	if !supplied {
		return nil, []FieldError{{Field: "general", Message: "At least one field must be provided"}}
	}

	return update, fieldErrors
}
