package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	dErrors "corpreg/pkg/domain-errors"
)

// MaxRegCodeLength bounds company registration codes.
const MaxRegCodeLength = 7

// DateLayout is the wire and storage layout of calendar dates.
const DateLayout = "2006-01-02"

// Company is a registered company.
//
// Invariants:
//   - Name is non-empty
//   - RegCode is 1..MaxRegCodeLength characters and unique across companies
//   - Capital is a positive NUMERIC(10,2) amount
//   - FoundingDate is a calendar date (UTC midnight)
type Company struct {
	ID           int64
	Name         string
	RegCode      string
	FoundingDate time.Time
	Capital      decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewCompany validates the attributes and returns an unsaved company.
func NewCompany(name, regCode string, foundingDate time.Time, capital decimal.Decimal) (*Company, error) {
	c := &Company{
		Name:         strings.TrimSpace(name),
		RegCode:      strings.TrimSpace(regCode),
		FoundingDate: TruncateDate(foundingDate),
		Capital:      capital,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the company invariants.
func (c *Company) Validate() error {
	if c.Name == "" {
		return dErrors.New(dErrors.CodeInvariantViolation, "company name cannot be empty")
	}
	if n := utf8.RuneCountInString(c.RegCode); n == 0 || n > MaxRegCodeLength {
		return dErrors.Newf(dErrors.CodeInvariantViolation, "reg_code must be 1 to %d characters", MaxRegCodeLength)
	}
	if c.FoundingDate.IsZero() {
		return dErrors.New(dErrors.CodeInvariantViolation, "founding_date is required")
	}
	return ValidateAmount("capital", c.Capital)
}

// TruncateDate drops the time of day, keeping the calendar date in UTC.
func TruncateDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, dErrors.Newf(dErrors.CodeInvariantViolation, "invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}
