package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"corpreg/internal/events"
	"corpreg/internal/registry/models"
	"corpreg/internal/registry/store"
	dErrors "corpreg/pkg/domain-errors"
	"corpreg/pkg/requestcontext"
)

// UpdateCompanyCapital sets a company's capital and reallocates its shares in
// one transaction. Entries either update existing shareholdings of the
// company in place or add new shareholders.
//
// The requested shares must sum to the new capital before anything is
// written. The company row is locked for the duration of the transaction and,
// before commit, the company's complete set of shareholdings must sum to the
// new capital; leaving out an existing shareholding fails with a validation
// error. A new entry may not reference a person who already holds shares in
// the company; that holding has to be updated by its shareholding id.
func (s *Service) UpdateCompanyCapital(ctx context.Context, upd *models.CapitalUpdate) (*models.CompanyWithHoldings, error) {
	if upd == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "capital update is required")
	}
	ctx, t := s.beginTx(ctx, opUpdateCompanyCapital,
		attribute.Int64("company_id", upd.CompanyID),
		attribute.Int("shareholders", len(upd.Allocations)),
	)

	t.transition(ctx, txValidating)
	if err := upd.Validate(); err != nil {
		return nil, t.finish(ctx, validationErr(err))
	}

	var (
		result         *models.CompanyWithHoldings
		personsCreated int
		holdingsAdded  int
	)
	err := s.tx.RunInTx(ctx, func(st store.Store) error {
		personsCreated, holdingsAdded = 0, 0

		company, err := st.FindCompanyForUpdate(ctx, upd.CompanyID)
		if err != nil {
			return translate(err, companyNotFound(upd.CompanyID), "", "failed to load company")
		}
		existing, err := s.loadCompanyHoldings(ctx, st, company.ID, upd.Allocations)
		if err != nil {
			return err
		}
		if err := rejectExistingHolders(ctx, st, company.ID, upd.Allocations); err != nil {
			return err
		}

		t.transition(ctx, txMutating)
		company.Capital = upd.Capital
		if err := st.UpdateCompany(ctx, company); err != nil {
			return translate(err, companyNotFound(company.ID), companyConflict(company.RegCode), "failed to update company capital")
		}

		for i, alloc := range upd.Allocations {
			switch a := alloc.(type) {
			case models.ExistingHolding:
				holding := existing[a.ShareholdingID]
				holding.Share = a.Share
				if a.IsFounder != nil {
					holding.IsFounder = *a.IsFounder
				}
				if err := st.UpdateShareholding(ctx, holding); err != nil {
					return withShareholderIndex(translate(err, shareholdingNotFound(holding.ID), "", "failed to update shareholding"), i)
				}
			case models.NewHolding:
				personID, created, err := resolvePerson(ctx, st, a.Person)
				if err != nil {
					return withShareholderIndex(err, i)
				}
				if created {
					personsCreated++
				}
				holding := &models.Shareholding{
					CompanyID: company.ID,
					PersonID:  personID,
					Share:     a.Share,
					IsFounder: a.IsFounder,
				}
				if err := st.CreateShareholding(ctx, holding); err != nil {
					return withShareholderIndex(translate(err, personNotFound(personID), "", "failed to create shareholding"), i)
				}
				holdingsAdded++
			}
		}

		holdings, err := st.ListShareholdingsByCompany(ctx, company.ID)
		if err != nil {
			return translate(err, companyNotFound(company.ID), "", "failed to load company shareholdings")
		}
		if total := models.TotalShares(holdings); !total.Equal(upd.Capital) {
			return dErrors.Newf(dErrors.CodeValidation,
				"company shareholdings sum to %s but capital is %s; every shareholding of the company must be listed",
				total.StringFixed(models.MoneyScale), upd.Capital.StringFixed(models.MoneyScale))
		}
		result = &models.CompanyWithHoldings{Company: company, Shareholdings: holdings}
		return nil
	})
	if err := t.finish(ctx, err); err != nil {
		return nil, err
	}

	s.incrementCreated("person", personsCreated)
	s.incrementCreated("shareholding", holdingsAdded)
	s.logger.InfoContext(ctx, "company capital updated",
		"company_id", result.Company.ID,
		"capital", result.Company.Capital.StringFixed(models.MoneyScale),
		"shareholders", len(result.Shareholdings),
		"request_id", requestcontext.RequestID(ctx),
	)
	s.publish(ctx, events.New(events.CompanyCapitalUpdated, result.Company.ID, capTablePayload(result)))
	return result, nil
}

// loadCompanyHoldings fetches the shareholdings referenced by allocations and
// checks that each exists and belongs to the company.
func (s *Service) loadCompanyHoldings(ctx context.Context, st store.Store, companyID int64, allocs []models.Allocation) (map[int64]*models.Shareholding, error) {
	var ids []int64
	for _, alloc := range allocs {
		if a, ok := alloc.(models.ExistingHolding); ok {
			ids = append(ids, a.ShareholdingID)
		}
	}
	if len(ids) == 0 {
		return map[int64]*models.Shareholding{}, nil
	}
	found, err := st.FindShareholdingsByIDs(ctx, ids)
	if err != nil {
		return nil, translate(err, "shareholding not found", "", "failed to load shareholdings")
	}
	for i, alloc := range allocs {
		a, ok := alloc.(models.ExistingHolding)
		if !ok {
			continue
		}
		if h, ok := found[a.ShareholdingID]; !ok || h.CompanyID != companyID {
			return nil, withShareholderIndex(dErrors.Newf(dErrors.CodeNotFound,
				"shareholding %d not found for company %d", a.ShareholdingID, companyID), i)
		}
	}
	return found, nil
}

// rejectExistingHolders fails when a new entry names an existing person who
// already has a shareholding in the company.
func rejectExistingHolders(ctx context.Context, st store.Store, companyID int64, allocs []models.Allocation) error {
	current, err := st.ListShareholdingsByCompany(ctx, companyID)
	if err != nil {
		return translate(err, companyNotFound(companyID), "", "failed to load company shareholdings")
	}
	held := make(map[int64]int64, len(current))
	for _, h := range current {
		held[h.PersonID] = h.ID
	}
	for i, alloc := range allocs {
		a, ok := alloc.(models.NewHolding)
		if !ok {
			continue
		}
		ref, ok := a.Person.(models.ExistingPerson)
		if !ok {
			continue
		}
		if holdingID, dup := held[ref.ID]; dup {
			return withShareholderIndex(dErrors.Newf(dErrors.CodeValidation,
				"person %d already holds shares in company %d; update shareholding %d instead", ref.ID, companyID, holdingID), i)
		}
	}
	return nil
}
