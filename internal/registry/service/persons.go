package service

import (
	"context"
	"fmt"

	"corpreg/internal/events"
	"corpreg/internal/registry/models"
	"corpreg/internal/registry/store"
	dErrors "corpreg/pkg/domain-errors"
	"corpreg/pkg/requestcontext"
)

// CreatePerson stores a new individual or legal entity.
func (s *Service) CreatePerson(ctx context.Context, details models.PersonDetails) (*models.Person, error) {
	person, err := models.NewPerson(details)
	if err != nil {
		return nil, validationErr(err)
	}
	err = s.tx.RunInTx(ctx, func(st store.Store) error {
		return createPerson(ctx, st, person)
	})
	if err != nil {
		return nil, err
	}

	s.incrementCreated("person", 1)
	s.logger.InfoContext(ctx, "person created",
		"person_id", person.ID,
		"kind", person.Kind(),
		"request_id", requestcontext.RequestID(ctx),
	)
	s.publish(ctx, events.New(events.PersonCreated, person.ID, personPayload(person)))
	return person, nil
}

// GetPerson returns the person with the shareholdings they own.
func (s *Service) GetPerson(ctx context.Context, id int64) (*models.PersonWithHoldings, error) {
	person, err := s.store.FindPerson(ctx, id)
	if err != nil {
		return nil, translate(err, personNotFound(id), "", "failed to load person")
	}
	holdings, err := s.store.ListShareholdingsByPerson(ctx, id)
	if err != nil {
		return nil, translate(err, personNotFound(id), "", "failed to load person shareholdings")
	}
	return &models.PersonWithHoldings{Person: person, Shareholdings: holdings}, nil
}

func (s *Service) ListPersons(ctx context.Context, filter models.PersonFilter) ([]*models.Person, error) {
	filter.Page = filter.Page.Normalize()
	persons, err := s.store.ListPersons(ctx, filter)
	if err != nil {
		return nil, translate(err, "", "", "failed to list persons")
	}
	return persons, nil
}

// UpdatePerson replaces the attributes of a person. The kind may change.
func (s *Service) UpdatePerson(ctx context.Context, id int64, details models.PersonDetails) (*models.Person, error) {
	normalized, err := models.ValidateDetails(details)
	if err != nil {
		return nil, validationErr(err)
	}

	var person *models.Person
	err = s.tx.RunInTx(ctx, func(st store.Store) error {
		current, err := st.FindPerson(ctx, id)
		if err != nil {
			return translate(err, personNotFound(id), "", "failed to load person")
		}
		current.Details = normalized
		if err := st.UpdatePerson(ctx, current); err != nil {
			return translate(err, personNotFound(id), personConflict(normalized), "failed to update person")
		}
		person = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.New(events.PersonUpdated, person.ID, personPayload(person)))
	return person, nil
}

// DeletePerson removes a person and, by cascade, their shareholdings.
func (s *Service) DeletePerson(ctx context.Context, id int64) error {
	err := s.tx.RunInTx(ctx, func(st store.Store) error {
		return translate(st.DeletePerson(ctx, id), personNotFound(id), "", "failed to delete person")
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "person deleted",
		"person_id", id,
		"request_id", requestcontext.RequestID(ctx),
	)
	s.publish(ctx, events.New(events.PersonDeleted, id, nil))
	return nil
}

// resolvePerson returns the id of the referenced person, creating it when the
// reference carries a new person payload.
func resolvePerson(ctx context.Context, st store.Store, ref models.PersonRef) (int64, bool, error) {
	switch ref := ref.(type) {
	case models.ExistingPerson:
		if _, err := st.FindPerson(ctx, ref.ID); err != nil {
			return 0, false, translate(err, personNotFound(ref.ID), "", "failed to load person")
		}
		return ref.ID, false, nil
	case models.NewPersonRef:
		person, err := models.NewPerson(ref.Details)
		if err != nil {
			return 0, false, validationErr(err)
		}
		if err := createPerson(ctx, st, person); err != nil {
			return 0, false, err
		}
		return person.ID, true, nil
	default:
		return 0, false, dErrors.New(dErrors.CodeValidation, "shareholder must reference a person")
	}
}

func createPerson(ctx context.Context, st store.Store, person *models.Person) error {
	if err := st.CreatePerson(ctx, person); err != nil {
		return translate(err, "", personConflict(person.Details), "failed to create person")
	}
	return nil
}

func personNotFound(id int64) string {
	return fmt.Sprintf("person %d not found", id)
}

func personConflict(details models.PersonDetails) string {
	switch d := details.(type) {
	case models.Individual:
		return fmt.Sprintf("person with id_code %s already exists", d.IDCode)
	case models.Legal:
		return fmt.Sprintf("person with reg_code %s already exists", d.RegCode)
	default:
		return "person already exists"
	}
}

func personPayload(p *models.Person) map[string]any {
	return map[string]any{
		"person_id": p.ID,
		"type":      p.Kind(),
		"name":      p.DisplayName(),
	}
}
