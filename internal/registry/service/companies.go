package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"corpreg/internal/events"
	"corpreg/internal/registry/models"
	"corpreg/internal/registry/store"
	"corpreg/pkg/requestcontext"
)

// CompanyInput carries the writable attributes of a company.
type CompanyInput struct {
	Name         string
	RegCode      string
	FoundingDate time.Time
	Capital      decimal.Decimal
}

// CreateCompany stores a company without shareholders. Use RegisterCompany to
// create a company together with its founders.
func (s *Service) CreateCompany(ctx context.Context, in CompanyInput) (*models.Company, error) {
	company, err := models.NewCompany(in.Name, in.RegCode, in.FoundingDate, in.Capital)
	if err != nil {
		return nil, validationErr(err)
	}
	err = s.tx.RunInTx(ctx, func(st store.Store) error {
		return createCompany(ctx, st, company)
	})
	if err != nil {
		return nil, err
	}

	s.incrementCreated("company", 1)
	s.logger.InfoContext(ctx, "company created",
		"company_id", company.ID,
		"reg_code", company.RegCode,
		"request_id", requestcontext.RequestID(ctx),
	)
	s.publish(ctx, events.New(events.CompanyCreated, company.ID, companyPayload(company)))
	return company, nil
}

// GetCompany returns the company with its shareholdings.
func (s *Service) GetCompany(ctx context.Context, id int64) (*models.CompanyWithHoldings, error) {
	company, err := s.store.FindCompany(ctx, id)
	if err != nil {
		return nil, translate(err, companyNotFound(id), "", "failed to load company")
	}
	holdings, err := s.store.ListShareholdingsByCompany(ctx, id)
	if err != nil {
		return nil, translate(err, companyNotFound(id), "", "failed to load company shareholdings")
	}
	return &models.CompanyWithHoldings{Company: company, Shareholdings: holdings}, nil
}

func (s *Service) ListCompanies(ctx context.Context, filter models.CompanyFilter) ([]*models.Company, error) {
	filter.Page = filter.Page.Normalize()
	companies, err := s.store.ListCompanies(ctx, filter)
	if err != nil {
		return nil, translate(err, "", "", "failed to list companies")
	}
	return companies, nil
}

// UpdateCompany replaces the attributes of a company. Shareholdings are left
// untouched; use UpdateCompanyCapital to change capital and shares together.
func (s *Service) UpdateCompany(ctx context.Context, id int64, in CompanyInput) (*models.Company, error) {
	updated, err := models.NewCompany(in.Name, in.RegCode, in.FoundingDate, in.Capital)
	if err != nil {
		return nil, validationErr(err)
	}
	updated.ID = id

	err = s.tx.RunInTx(ctx, func(st store.Store) error {
		if err := st.UpdateCompany(ctx, updated); err != nil {
			return translate(err, companyNotFound(id), companyConflict(updated.RegCode), "failed to update company")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.New(events.CompanyUpdated, updated.ID, companyPayload(updated)))
	return updated, nil
}

// DeleteCompany removes a company and, by cascade, its shareholdings.
func (s *Service) DeleteCompany(ctx context.Context, id int64) error {
	err := s.tx.RunInTx(ctx, func(st store.Store) error {
		return translate(st.DeleteCompany(ctx, id), companyNotFound(id), "", "failed to delete company")
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "company deleted",
		"company_id", id,
		"request_id", requestcontext.RequestID(ctx),
	)
	s.publish(ctx, events.New(events.CompanyDeleted, id, nil))
	return nil
}

func createCompany(ctx context.Context, st store.Store, company *models.Company) error {
	if err := st.CreateCompany(ctx, company); err != nil {
		return translate(err, "", companyConflict(company.RegCode), "failed to create company")
	}
	return nil
}

func companyNotFound(id int64) string {
	return fmt.Sprintf("company %d not found", id)
}

func companyConflict(regCode string) string {
	return fmt.Sprintf("company with reg_code %s already exists", regCode)
}

func companyPayload(c *models.Company) map[string]any {
	return map[string]any{
		"company_id":    c.ID,
		"name":          c.Name,
		"reg_code":      c.RegCode,
		"founding_date": c.FoundingDate.Format(models.DateLayout),
		"capital":       c.Capital.StringFixed(models.MoneyScale),
	}
}
