package handler

import (
	"time"

	"corpreg/internal/registry/models"
)

// PersonResponse is the flat wire form of a person. Fields that do not apply
// to the person's type are null.
type PersonResponse struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	FirstName *string   `json:"first_name"`
	LastName  *string   `json:"last_name"`
	IDCode    *string   `json:"id_code"`
	LegalName *string   `json:"legal_name"`
	RegCode   *string   `json:"reg_code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PersonDetailResponse struct {
	PersonResponse
	Shareholdings []ShareholdingResponse `json:"shareholdings"`
}

type CompanyResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	RegCode      string    `json:"reg_code"`
	FoundingDate string    `json:"founding_date"`
	Capital      string    `json:"capital"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CompanyDetailResponse struct {
	CompanyResponse
	Shareholders []ShareholdingResponse `json:"shareholders"`
}

type ShareholdingResponse struct {
	ID        int64     `json:"id"`
	CompanyID int64     `json:"company_id"`
	PersonID  int64     `json:"person_id"`
	Share     string    `json:"share"`
	IsFounder bool      `json:"is_founder"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ShareholdingDetailResponse struct {
	ShareholdingResponse
	Company CompanyResponse `json:"company"`
	Person  PersonResponse  `json:"person"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toPersonResponse(p *models.Person) PersonResponse {
	resp := PersonResponse{
		ID:        p.ID,
		Type:      string(p.Kind()),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	switch d := p.Details.(type) {
	case models.Individual:
		resp.FirstName = optional(d.FirstName)
		resp.LastName = optional(d.LastName)
		resp.IDCode = optional(d.IDCode)
	case models.Legal:
		resp.LegalName = optional(d.LegalName)
		resp.RegCode = optional(d.RegCode)
	}
	return resp
}

func toPersonResponses(persons []*models.Person) []PersonResponse {
	out := make([]PersonResponse, 0, len(persons))
	for _, p := range persons {
		out = append(out, toPersonResponse(p))
	}
	return out
}

func toCompanyResponse(c *models.Company) CompanyResponse {
	return CompanyResponse{
		ID:           c.ID,
		Name:         c.Name,
		RegCode:      c.RegCode,
		FoundingDate: c.FoundingDate.Format(models.DateLayout),
		Capital:      c.Capital.StringFixed(models.MoneyScale),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func toCompanyResponses(companies []*models.Company) []CompanyResponse {
	out := make([]CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, toCompanyResponse(c))
	}
	return out
}

func toCompanyDetailResponse(c *models.CompanyWithHoldings) CompanyDetailResponse {
	return CompanyDetailResponse{
		CompanyResponse: toCompanyResponse(c.Company),
		Shareholders:    toShareholdingResponses(c.Shareholdings),
	}
}

func toShareholdingResponse(h *models.Shareholding) ShareholdingResponse {
	return ShareholdingResponse{
		ID:        h.ID,
		CompanyID: h.CompanyID,
		PersonID:  h.PersonID,
		Share:     h.Share.StringFixed(models.MoneyScale),
		IsFounder: h.IsFounder,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

func toShareholdingResponses(holdings []*models.Shareholding) []ShareholdingResponse {
	out := make([]ShareholdingResponse, 0, len(holdings))
	for _, h := range holdings {
		out = append(out, toShareholdingResponse(h))
	}
	return out
}
