package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shareholding links a person to a company with a share amount.
type Shareholding struct {
	ID        int64
	CompanyID int64
	PersonID  int64
	Share     decimal.Decimal
	IsFounder bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CompanyWithHoldings is a company together with its shareholdings.
type CompanyWithHoldings struct {
	Company       *Company
	Shareholdings []*Shareholding
}

// PersonWithHoldings is a person together with the shareholdings they own.
type PersonWithHoldings struct {
	Person        *Person
	Shareholdings []*Shareholding
}

// ShareholdingWithParties is a shareholding with both sides resolved.
type ShareholdingWithParties struct {
	Shareholding *Shareholding
	Company      *Company
	Person       *Person
}

// TotalShares sums the shares of holdings.
func TotalShares(holdings []*Shareholding) decimal.Decimal {
	total := decimal.Zero
	for _, h := range holdings {
		total = total.Add(h.Share)
	}
	return total
}
