package handler

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"corpreg/internal/registry/models"
	"corpreg/internal/registry/service"
	dErrors "corpreg/pkg/domain-errors"
)

// PersonRequest is the flat wire form of a person: type selects which of the
// name fields apply.
type PersonRequest struct {
	Type      string `json:"type" validate:"required,oneof=individual legal"`
	FirstName string `json:"first_name,omitempty" validate:"required_if=Type individual,excluded_if=Type legal,max=255"`
	LastName  string `json:"last_name,omitempty" validate:"required_if=Type individual,excluded_if=Type legal,max=255"`
	IDCode    string `json:"id_code,omitempty" validate:"excluded_if=Type legal,max=255"`
	LegalName string `json:"legal_name,omitempty" validate:"required_if=Type legal,excluded_if=Type individual,max=255"`
	RegCode   string `json:"reg_code,omitempty" validate:"required_if=Type legal,excluded_if=Type individual,max=255"`
}

func (r *PersonRequest) Normalize() {
	if r == nil {
		return
	}
	r.Type = strings.ToLower(strings.TrimSpace(r.Type))
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.IDCode = strings.TrimSpace(r.IDCode)
	r.LegalName = strings.TrimSpace(r.LegalName)
	r.RegCode = strings.TrimSpace(r.RegCode)
}

func (r *PersonRequest) Validate() error {
	return validateStruct(r)
}

// Details converts the request into the attribute set of its kind.
func (r *PersonRequest) Details() models.PersonDetails {
	if models.PersonKind(r.Type) == models.PersonKindLegal {
		return models.Legal{LegalName: r.LegalName, RegCode: r.RegCode}
	}
	return models.Individual{FirstName: r.FirstName, LastName: r.LastName, IDCode: r.IDCode}
}

type CompanyRequest struct {
	Name         string          `json:"name" validate:"required,max=255"`
	RegCode      string          `json:"reg_code" validate:"required,max=7"`
	FoundingDate string          `json:"founding_date" validate:"required,datetime=2006-01-02"`
	Capital      decimal.Decimal `json:"capital" validate:"positive_decimal"`
}

func (r *CompanyRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.RegCode = strings.TrimSpace(r.RegCode)
	r.FoundingDate = strings.TrimSpace(r.FoundingDate)
}

func (r *CompanyRequest) Validate() error {
	return validateStruct(r)
}

func (r *CompanyRequest) Input() (service.CompanyInput, error) {
	founded, err := models.ParseDate(r.FoundingDate)
	if err != nil {
		return service.CompanyInput{}, toValidation(err)
	}
	return service.CompanyInput{
		Name:         r.Name,
		RegCode:      r.RegCode,
		FoundingDate: founded,
		Capital:      r.Capital,
	}, nil
}

type ShareholdingRequest struct {
	CompanyID int64           `json:"company_id" validate:"required,gt=0"`
	PersonID  int64           `json:"person_id" validate:"required,gt=0"`
	Share     decimal.Decimal `json:"share" validate:"positive_decimal"`
	IsFounder bool            `json:"is_founder"`
}

func (r *ShareholdingRequest) Validate() error {
	return validateStruct(r)
}

func (r *ShareholdingRequest) Input() service.ShareholdingInput {
	return service.ShareholdingInput{
		CompanyID: r.CompanyID,
		PersonID:  r.PersonID,
		Share:     r.Share,
		IsFounder: r.IsFounder,
	}
}

// ShareholderEntry is one shareholder of a registration or capital update.
// Exactly one of ShareholdingID, PersonID and Person is set; ShareholdingID
// is only accepted in capital updates.
type ShareholderEntry struct {
	ShareholdingID *int64          `json:"shareholding_id,omitempty" validate:"omitempty,gt=0"`
	PersonID       *int64          `json:"person_id,omitempty" validate:"omitempty,gt=0"`
	Person         *PersonRequest  `json:"person,omitempty"`
	Share          decimal.Decimal `json:"share" validate:"positive_decimal"`
	IsFounder      *bool           `json:"is_founder,omitempty"`
}

func (e *ShareholderEntry) references() int {
	n := 0
	if e.ShareholdingID != nil {
		n++
	}
	if e.PersonID != nil {
		n++
	}
	if e.Person != nil {
		n++
	}
	return n
}

func (e *ShareholderEntry) personRef() models.PersonRef {
	if e.PersonID != nil {
		return models.ExistingPerson{ID: *e.PersonID}
	}
	return models.NewPersonRef{Details: e.Person.Details()}
}

type RegistrationRequest struct {
	Name         string             `json:"name" validate:"required,max=255"`
	RegCode      string             `json:"reg_code" validate:"required,max=7"`
	FoundingDate string             `json:"founding_date" validate:"required,datetime=2006-01-02"`
	Capital      decimal.Decimal    `json:"capital" validate:"positive_decimal"`
	Shareholders []ShareholderEntry `json:"shareholders" validate:"required,min=1,dive"`
}

func (r *RegistrationRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.RegCode = strings.TrimSpace(r.RegCode)
	r.FoundingDate = strings.TrimSpace(r.FoundingDate)
	for i := range r.Shareholders {
		r.Shareholders[i].Person.Normalize()
	}
}

func (r *RegistrationRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	for i := range r.Shareholders {
		e := &r.Shareholders[i]
		if e.ShareholdingID != nil {
			return shareholderErr(i, "shareholding_id is only allowed in capital updates")
		}
		if e.references() != 1 {
			return shareholderErr(i, "exactly one of person_id or person must be set")
		}
	}
	return nil
}

func (r *RegistrationRequest) ToModel() (*models.Registration, error) {
	founded, err := models.ParseDate(r.FoundingDate)
	if err != nil {
		return nil, toValidation(err)
	}
	founders := make([]models.FounderSpec, 0, len(r.Shareholders))
	for i := range r.Shareholders {
		e := &r.Shareholders[i]
		founders = append(founders, models.FounderSpec{Person: e.personRef(), Share: e.Share})
	}
	return &models.Registration{
		Name:         r.Name,
		RegCode:      r.RegCode,
		FoundingDate: founded,
		Capital:      r.Capital,
		Founders:     founders,
	}, nil
}

type CapitalUpdateRequest struct {
	Capital      decimal.Decimal    `json:"capital" validate:"positive_decimal"`
	Shareholders []ShareholderEntry `json:"shareholders" validate:"required,min=1,dive"`
}

func (r *CapitalUpdateRequest) Normalize() {
	for i := range r.Shareholders {
		r.Shareholders[i].Person.Normalize()
	}
}

func (r *CapitalUpdateRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	for i := range r.Shareholders {
		if r.Shareholders[i].references() != 1 {
			return shareholderErr(i, "exactly one of shareholding_id, person_id or person must be set")
		}
	}
	return nil
}

func (r *CapitalUpdateRequest) ToModel(companyID int64) *models.CapitalUpdate {
	allocs := make([]models.Allocation, 0, len(r.Shareholders))
	for i := range r.Shareholders {
		e := &r.Shareholders[i]
		if e.ShareholdingID != nil {
			allocs = append(allocs, models.ExistingHolding{
				ShareholdingID: *e.ShareholdingID,
				Share:          e.Share,
				IsFounder:      e.IsFounder,
			})
			continue
		}
		allocs = append(allocs, models.NewHolding{
			Person:    e.personRef(),
			Share:     e.Share,
			IsFounder: e.IsFounder != nil && *e.IsFounder,
		})
	}
	return &models.CapitalUpdate{CompanyID: companyID, Capital: r.Capital, Allocations: allocs}
}

func shareholderErr(i int, msg string) error {
	return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("shareholders[%d]: %s", i, msg))
}

func toValidation(err error) error {
	if de, ok := dErrors.As(err); ok && de.Code == dErrors.CodeInvariantViolation {
		return dErrors.New(dErrors.CodeValidation, de.Message)
	}
	return err
}
