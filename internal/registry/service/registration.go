package service

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"corpreg/internal/events"
	"corpreg/internal/registry/models"
	"corpreg/internal/registry/store"
	dErrors "corpreg/pkg/domain-errors"
	"corpreg/pkg/requestcontext"
)

// RegisterCompany creates a company together with its founding shareholders
// in one transaction. Founders reference existing persons or carry new person
// payloads; every resulting shareholding is marked as founder.
//
// Shares must sum to the capital. Any failure (duplicate reg_code, invalid or
// missing person, constraint violation) rolls the whole registration back.
func (s *Service) RegisterCompany(ctx context.Context, reg *models.Registration) (*models.CompanyWithHoldings, error) {
	if reg == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "registration is required")
	}
	ctx, t := s.beginTx(ctx, opRegisterCompany,
		attribute.String("reg_code", reg.RegCode),
		attribute.Int("shareholders", len(reg.Founders)),
	)

	t.transition(ctx, txValidating)
	if err := reg.Validate(); err != nil {
		return nil, t.finish(ctx, validationErr(err))
	}
	company, err := models.NewCompany(reg.Name, reg.RegCode, reg.FoundingDate, reg.Capital)
	if err != nil {
		return nil, t.finish(ctx, validationErr(err))
	}

	var (
		result         *models.CompanyWithHoldings
		personsCreated int
	)
	err = s.tx.RunInTx(ctx, func(st store.Store) error {
		t.transition(ctx, txMutating)
		personsCreated = 0

		if err := createCompany(ctx, st, company); err != nil {
			return err
		}
		holdings := make([]*models.Shareholding, 0, len(reg.Founders))
		for i, founder := range reg.Founders {
			personID, created, err := resolvePerson(ctx, st, founder.Person)
			if err != nil {
				return withShareholderIndex(err, i)
			}
			if created {
				personsCreated++
			}
			holding := &models.Shareholding{
				CompanyID: company.ID,
				PersonID:  personID,
				Share:     founder.Share,
				IsFounder: true,
			}
			if err := st.CreateShareholding(ctx, holding); err != nil {
				return withShareholderIndex(translate(err, personNotFound(personID), "", "failed to create shareholding"), i)
			}
			holdings = append(holdings, holding)
		}
		result = &models.CompanyWithHoldings{Company: company, Shareholdings: holdings}
		return nil
	})
	if err := t.finish(ctx, err); err != nil {
		return nil, err
	}

	s.incrementCreated("company", 1)
	s.incrementCreated("person", personsCreated)
	s.incrementCreated("shareholding", len(result.Shareholdings))
	s.logger.InfoContext(ctx, "company registered",
		"company_id", company.ID,
		"reg_code", company.RegCode,
		"shareholders", len(result.Shareholdings),
		"persons_created", personsCreated,
		"request_id", requestcontext.RequestID(ctx),
	)
	s.publish(ctx, events.New(events.CompanyRegistered, company.ID, capTablePayload(result)))
	return result, nil
}

// withShareholderIndex prefixes a coded error with the position of the
// offending shareholder entry.
func withShareholderIndex(err error, i int) error {
	de, ok := dErrors.As(err)
	if !ok {
		return err
	}
	return &dErrors.Error{
		Code:    de.Code,
		Message: fmt.Sprintf("shareholders[%d]: %s", i, de.Message),
		Err:     de.Err,
	}
}

func capTablePayload(c *models.CompanyWithHoldings) map[string]any {
	holdings := make([]map[string]any, 0, len(c.Shareholdings))
	for _, h := range c.Shareholdings {
		holdings = append(holdings, shareholdingPayload(h))
	}
	payload := companyPayload(c.Company)
	payload["shareholdings"] = holdings
	return payload
}
