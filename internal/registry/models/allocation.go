package models

import (
	"time"

	"github.com/shopspring/decimal"

	dErrors "corpreg/pkg/domain-errors"
)

// PersonRef names the person behind a shareholder entry: either an existing
// person by id or a new person to create. It is sealed.
type PersonRef interface {
	personRef()
}

// ExistingPerson references a stored person.
type ExistingPerson struct {
	ID int64
}

// NewPersonRef carries the attributes of a person to create.
type NewPersonRef struct {
	Details PersonDetails
}

func (ExistingPerson) personRef() {}
func (NewPersonRef) personRef()   {}

// FounderSpec is one founding shareholder of a registration.
type FounderSpec struct {
	Person PersonRef
	Share  decimal.Decimal
}

// Registration describes a company registered together with its founders.
type Registration struct {
	Name         string
	RegCode      string
	FoundingDate time.Time
	Capital      decimal.Decimal
	Founders     []FounderSpec
}

// Validate checks the registration without touching storage: company
// attributes, person payloads, share amounts and that shares sum to capital.
func (r *Registration) Validate() error {
	if _, err := NewCompany(r.Name, r.RegCode, r.FoundingDate, r.Capital); err != nil {
		return err
	}
	if len(r.Founders) == 0 {
		return dErrors.New(dErrors.CodeInvariantViolation, "at least one shareholder is required")
	}
	seen := make(map[int64]struct{}, len(r.Founders))
	shares := make([]decimal.Decimal, 0, len(r.Founders))
	for i, f := range r.Founders {
		if err := validatePersonRef(f.Person, seen); err != nil {
			return withIndex(err, i)
		}
		if err := ValidateAmount("share", f.Share); err != nil {
			return withIndex(err, i)
		}
		shares = append(shares, f.Share)
	}
	return checkSum(shares, r.Capital)
}

// Allocation is one entry of a capital update: an update of an existing
// shareholding or a new shareholding. It is sealed.
type Allocation interface {
	Amount() decimal.Decimal
	allocation()
}

// ExistingHolding updates a shareholding of the company in place. A nil
// IsFounder keeps the current flag.
type ExistingHolding struct {
	ShareholdingID int64
	Share          decimal.Decimal
	IsFounder      *bool
}

// NewHolding adds a shareholder to the company.
type NewHolding struct {
	Person    PersonRef
	Share     decimal.Decimal
	IsFounder bool
}

func (h ExistingHolding) Amount() decimal.Decimal { return h.Share }
func (h NewHolding) Amount() decimal.Decimal      { return h.Share }
func (ExistingHolding) allocation()               {}
func (NewHolding) allocation()                    {}

// CapitalUpdate sets a company's capital and reallocates its shares.
type CapitalUpdate struct {
	CompanyID   int64
	Capital     decimal.Decimal
	Allocations []Allocation
}

// Validate checks the update without touching storage. It enforces that the
// requested shares sum to the new capital.
func (u *CapitalUpdate) Validate() error {
	if u.CompanyID <= 0 {
		return dErrors.New(dErrors.CodeInvariantViolation, "company id is required")
	}
	if err := ValidateAmount("capital", u.Capital); err != nil {
		return err
	}
	if len(u.Allocations) == 0 {
		return dErrors.New(dErrors.CodeInvariantViolation, "at least one shareholder is required")
	}
	holdings := make(map[int64]struct{}, len(u.Allocations))
	persons := make(map[int64]struct{}, len(u.Allocations))
	shares := make([]decimal.Decimal, 0, len(u.Allocations))
	for i, a := range u.Allocations {
		switch a := a.(type) {
		case ExistingHolding:
			if a.ShareholdingID <= 0 {
				return withIndex(dErrors.New(dErrors.CodeInvariantViolation, "shareholding_id must be positive"), i)
			}
			if _, dup := holdings[a.ShareholdingID]; dup {
				return withIndex(dErrors.Newf(dErrors.CodeInvariantViolation, "shareholding %d listed more than once", a.ShareholdingID), i)
			}
			holdings[a.ShareholdingID] = struct{}{}
		case NewHolding:
			if err := validatePersonRef(a.Person, persons); err != nil {
				return withIndex(err, i)
			}
		case nil:
			return withIndex(dErrors.New(dErrors.CodeInvariantViolation, "shareholder entry is empty"), i)
		}
		if err := ValidateAmount("share", a.Amount()); err != nil {
			return withIndex(err, i)
		}
		shares = append(shares, a.Amount())
	}
	return checkSum(shares, u.Capital)
}

func validatePersonRef(ref PersonRef, seen map[int64]struct{}) error {
	switch ref := ref.(type) {
	case ExistingPerson:
		if ref.ID <= 0 {
			return dErrors.New(dErrors.CodeInvariantViolation, "person_id must be positive")
		}
		if _, dup := seen[ref.ID]; dup {
			return dErrors.Newf(dErrors.CodeInvariantViolation, "person %d listed more than once", ref.ID)
		}
		seen[ref.ID] = struct{}{}
		return nil
	case NewPersonRef:
		_, err := ValidateDetails(ref.Details)
		return err
	default:
		return dErrors.New(dErrors.CodeInvariantViolation, "shareholder must reference a person")
	}
}

func checkSum(shares []decimal.Decimal, capital decimal.Decimal) error {
	total := SumShares(shares)
	if !total.Equal(capital) {
		return dErrors.Newf(dErrors.CodeInvariantViolation,
			"shareholder shares sum to %s but capital is %s", total.StringFixed(MoneyScale), capital.StringFixed(MoneyScale))
	}
	return nil
}

func withIndex(err error, i int) error {
	de, ok := dErrors.As(err)
	if !ok {
		return err
	}
	return dErrors.Newf(de.Code, "shareholders[%d]: %s", i, de.Message)
}
