package models

import (
	"strings"
	"time"

	dErrors "corpreg/pkg/domain-errors"
)

// PersonKind discriminates individuals from legal entities.
type PersonKind string

const (
	PersonKindIndividual PersonKind = "individual"
	PersonKindLegal      PersonKind = "legal"
)

// ParsePersonKind validates a kind coming from the wire.
func ParsePersonKind(s string) (PersonKind, error) {
	switch PersonKind(strings.ToLower(strings.TrimSpace(s))) {
	case PersonKindIndividual:
		return PersonKindIndividual, nil
	case PersonKindLegal:
		return PersonKindLegal, nil
	default:
		return "", dErrors.Newf(dErrors.CodeInvariantViolation, "unknown person type %q", s)
	}
}

// PersonDetails is the kind-dependent attribute set of a person. It is sealed:
// only Individual and Legal implement it, so a person always carries exactly
// one attribute set matching its kind.
type PersonDetails interface {
	Kind() PersonKind
	validate() error
	normalize() PersonDetails
}

// Individual is a natural person identified by a national identifier code.
type Individual struct {
	FirstName string
	LastName  string
	IDCode    string // optional, unique when present
}

func (Individual) Kind() PersonKind { return PersonKindIndividual }

func (i Individual) normalize() PersonDetails {
	return Individual{
		FirstName: strings.TrimSpace(i.FirstName),
		LastName:  strings.TrimSpace(i.LastName),
		IDCode:    strings.TrimSpace(i.IDCode),
	}
}

func (i Individual) validate() error {
	if i.FirstName == "" || i.LastName == "" {
		return dErrors.New(dErrors.CodeInvariantViolation, "individual persons must have first_name and last_name")
	}
	return nil
}

// Legal is a legal entity identified by its registration code.
type Legal struct {
	LegalName string
	RegCode   string
}

func (Legal) Kind() PersonKind { return PersonKindLegal }

func (l Legal) normalize() PersonDetails {
	return Legal{
		LegalName: strings.TrimSpace(l.LegalName),
		RegCode:   strings.TrimSpace(l.RegCode),
	}
}

func (l Legal) validate() error {
	if l.LegalName == "" || l.RegCode == "" {
		return dErrors.New(dErrors.CodeInvariantViolation, "legal persons must have legal_name and reg_code")
	}
	return nil
}

// Person is a shareholder candidate: an individual or a legal entity.
//
// Invariants:
//   - Details is never nil and is either Individual or Legal
//   - required attributes of the kind are non-empty after trimming
type Person struct {
	ID        int64
	Details   PersonDetails
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPerson validates details and returns an unsaved person.
func NewPerson(details PersonDetails) (*Person, error) {
	normalized, err := ValidateDetails(details)
	if err != nil {
		return nil, err
	}
	return &Person{Details: normalized}, nil
}

// ValidateDetails normalizes and validates a person attribute set.
func ValidateDetails(details PersonDetails) (PersonDetails, error) {
	if details == nil {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "person details are required")
	}
	normalized := details.normalize()
	if err := normalized.validate(); err != nil {
		return nil, err
	}
	return normalized, nil
}

func (p *Person) Kind() PersonKind {
	return p.Details.Kind()
}

// Individual returns the individual attributes when the person is one.
func (p *Person) Individual() (Individual, bool) {
	i, ok := p.Details.(Individual)
	return i, ok
}

// Legal returns the legal entity attributes when the person is one.
func (p *Person) Legal() (Legal, bool) {
	l, ok := p.Details.(Legal)
	return l, ok
}

// DisplayName is the name used in logs and listings.
func (p *Person) DisplayName() string {
	switch d := p.Details.(type) {
	case Individual:
		return d.FirstName + " " + d.LastName
	case Legal:
		return d.LegalName
	default:
		return ""
	}
}

// MatchesSearch reports whether the person's names or identifier contain term,
// case-insensitively. An empty term matches everyone.
func (p *Person) MatchesSearch(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	var fields []string
	switch d := p.Details.(type) {
	case Individual:
		fields = []string{d.FirstName, d.LastName, d.IDCode}
	case Legal:
		fields = []string{d.LegalName, d.RegCode}
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
