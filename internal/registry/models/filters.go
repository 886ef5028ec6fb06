package models

import "time"

const (
	DefaultLimit = 100
	MaxLimit     = 500
)

// Page is an offset/limit window over a listing.
type Page struct {
	Skip  int
	Limit int
}

// Normalize replaces out-of-range values with defaults.
func (p Page) Normalize() Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit < 1 || p.Limit > MaxLimit {
		p.Limit = DefaultLimit
	}
	return p
}

// PersonFilter narrows person listings. Zero values match everything.
type PersonFilter struct {
	Kind   PersonKind
	Search string
	Page
}

// CompanyFilter narrows company listings. Name matches as a case-insensitive
// substring; FoundedAfter is inclusive.
type CompanyFilter struct {
	Name         string
	FoundedAfter *time.Time
	Page
}

// ShareholdingFilter narrows shareholding listings. Zero ids match everything.
type ShareholdingFilter struct {
	CompanyID int64
	PersonID  int64
	Page
}
