package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"corpreg/internal/events"
	"corpreg/internal/registry/models"
	"corpreg/internal/registry/store"
)

// ShareholdingInput carries the writable attributes of a shareholding.
type ShareholdingInput struct {
	CompanyID int64
	PersonID  int64
	Share     decimal.Decimal
	IsFounder bool
}

func (in ShareholdingInput) validate() error {
	if err := models.ValidateAmount("share", in.Share); err != nil {
		return validationErr(err)
	}
	return nil
}

// CreateShareholding links an existing person to an existing company.
func (s *Service) CreateShareholding(ctx context.Context, in ShareholdingInput) (*models.Shareholding, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	holding := &models.Shareholding{
		CompanyID: in.CompanyID,
		PersonID:  in.PersonID,
		Share:     in.Share,
		IsFounder: in.IsFounder,
	}
	err := s.tx.RunInTx(ctx, func(st store.Store) error {
		if err := requireParties(ctx, st, in.CompanyID, in.PersonID); err != nil {
			return err
		}
		return translate(st.CreateShareholding(ctx, holding), "company or person not found", "", "failed to create shareholding")
	})
	if err != nil {
		return nil, err
	}

	s.incrementCreated("shareholding", 1)
	s.publish(ctx, events.New(events.ShareholdingCreated, holding.ID, shareholdingPayload(holding)))
	return holding, nil
}

// GetShareholding returns the shareholding with its company and person.
func (s *Service) GetShareholding(ctx context.Context, id int64) (*models.ShareholdingWithParties, error) {
	holding, err := s.store.FindShareholding(ctx, id)
	if err != nil {
		return nil, translate(err, shareholdingNotFound(id), "", "failed to load shareholding")
	}
	company, err := s.store.FindCompany(ctx, holding.CompanyID)
	if err != nil {
		return nil, translate(err, companyNotFound(holding.CompanyID), "", "failed to load shareholding company")
	}
	person, err := s.store.FindPerson(ctx, holding.PersonID)
	if err != nil {
		return nil, translate(err, personNotFound(holding.PersonID), "", "failed to load shareholding person")
	}
	return &models.ShareholdingWithParties{Shareholding: holding, Company: company, Person: person}, nil
}

func (s *Service) ListShareholdings(ctx context.Context, filter models.ShareholdingFilter) ([]*models.Shareholding, error) {
	filter.Page = filter.Page.Normalize()
	holdings, err := s.store.ListShareholdings(ctx, filter)
	if err != nil {
		return nil, translate(err, "", "", "failed to list shareholdings")
	}
	return holdings, nil
}

// UpdateShareholding replaces the attributes of a shareholding.
func (s *Service) UpdateShareholding(ctx context.Context, id int64, in ShareholdingInput) (*models.Shareholding, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	holding := &models.Shareholding{
		ID:        id,
		CompanyID: in.CompanyID,
		PersonID:  in.PersonID,
		Share:     in.Share,
		IsFounder: in.IsFounder,
	}
	err := s.tx.RunInTx(ctx, func(st store.Store) error {
		if _, err := st.FindShareholding(ctx, id); err != nil {
			return translate(err, shareholdingNotFound(id), "", "failed to load shareholding")
		}
		if err := requireParties(ctx, st, in.CompanyID, in.PersonID); err != nil {
			return err
		}
		return translate(st.UpdateShareholding(ctx, holding), shareholdingNotFound(id), "", "failed to update shareholding")
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.New(events.ShareholdingUpdated, holding.ID, shareholdingPayload(holding)))
	return holding, nil
}

func (s *Service) DeleteShareholding(ctx context.Context, id int64) error {
	err := s.tx.RunInTx(ctx, func(st store.Store) error {
		return translate(st.DeleteShareholding(ctx, id), shareholdingNotFound(id), "", "failed to delete shareholding")
	})
	if err != nil {
		return err
	}
	s.publish(ctx, events.New(events.ShareholdingDeleted, id, nil))
	return nil
}

func requireParties(ctx context.Context, st store.Store, companyID, personID int64) error {
	if _, err := st.FindCompany(ctx, companyID); err != nil {
		return translate(err, companyNotFound(companyID), "", "failed to load company")
	}
	if _, err := st.FindPerson(ctx, personID); err != nil {
		return translate(err, personNotFound(personID), "", "failed to load person")
	}
	return nil
}

func shareholdingNotFound(id int64) string {
	return fmt.Sprintf("shareholding %d not found", id)
}

func shareholdingPayload(h *models.Shareholding) map[string]any {
	return map[string]any{
		"shareholding_id": h.ID,
		"company_id":      h.CompanyID,
		"person_id":       h.PersonID,
		"share":           h.Share.StringFixed(models.MoneyScale),
		"is_founder":      h.IsFounder,
	}
}
