package store

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"corpreg/internal/registry/models"
	"corpreg/pkg/platform/sentinel"
	"corpreg/pkg/requestcontext"
)

// InMemory is a map-backed Store. Deletes cascade to shareholdings and unique
// keys are enforced like the Postgres schema does.
type InMemory struct {
	mu    sync.RWMutex
	txMu  sync.Mutex
	state memoryState
}

type memoryState struct {
	persons   map[int64]models.Person
	companies map[int64]models.Company
	holdings  map[int64]models.Shareholding
	lastID    int64
}

func NewInMemory() *InMemory {
	return &InMemory{
		state: memoryState{
			persons:   make(map[int64]models.Person),
			companies: make(map[int64]models.Company),
			holdings:  make(map[int64]models.Shareholding),
		},
	}
}

func (s memoryState) clone() memoryState {
	return memoryState{
		persons:   maps.Clone(s.persons),
		companies: maps.Clone(s.companies),
		holdings:  maps.Clone(s.holdings),
		lastID:    s.lastID,
	}
}

// RunInTx serializes transactions and restores the pre-transaction state when
// fn fails or panics.
func (s *InMemory) RunInTx(ctx context.Context, fn func(store Store) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	snapshot := s.state.clone()
	s.mu.RUnlock()

	restore := func() {
		s.mu.Lock()
		s.state = snapshot
		s.mu.Unlock()
	}
	defer func() {
		if r := recover(); r != nil {
			restore()
			panic(r)
		}
	}()

	if err := fn(s); err != nil {
		restore()
		return err
	}
	if err := ctx.Err(); err != nil {
		restore()
		return err
	}
	return nil
}

func (s *InMemory) Ping(context.Context) error { return nil }

func (s *InMemory) nextID() int64 {
	s.state.lastID++
	return s.state.lastID
}

// =============================================================================
// Persons
// =============================================================================

func (s *InMemory) CreatePerson(ctx context.Context, person *models.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkPersonUnique(person, 0); err != nil {
		return err
	}
	now := requestcontext.Now(ctx)
	person.ID = s.nextID()
	person.CreatedAt, person.UpdatedAt = now, now
	s.state.persons[person.ID] = *person
	return nil
}

func (s *InMemory) FindPerson(_ context.Context, id int64) (*models.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.state.persons[id]
	if !ok {
		return nil, fmt.Errorf("person %d: %w", id, sentinel.ErrNotFound)
	}
	return &p, nil
}

func (s *InMemory) ListPersons(_ context.Context, filter models.PersonFilter) ([]*models.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Person
	for _, id := range sortedKeys(s.state.persons) {
		p := s.state.persons[id]
		if filter.Kind != "" && p.Kind() != filter.Kind {
			continue
		}
		if !p.MatchesSearch(filter.Search) {
			continue
		}
		out = append(out, &p)
	}
	return paginate(out, filter.Page), nil
}

func (s *InMemory) UpdatePerson(ctx context.Context, person *models.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.state.persons[person.ID]
	if !ok {
		return fmt.Errorf("person %d: %w", person.ID, sentinel.ErrNotFound)
	}
	if err := s.checkPersonUnique(person, person.ID); err != nil {
		return err
	}
	person.CreatedAt = current.CreatedAt
	person.UpdatedAt = requestcontext.Now(ctx)
	s.state.persons[person.ID] = *person
	return nil
}

func (s *InMemory) DeletePerson(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.state.persons[id]; !ok {
		return fmt.Errorf("person %d: %w", id, sentinel.ErrNotFound)
	}
	delete(s.state.persons, id)
	maps.DeleteFunc(s.state.holdings, func(_ int64, h models.Shareholding) bool {
		return h.PersonID == id
	})
	return nil
}

func (s *InMemory) checkPersonUnique(person *models.Person, selfID int64) error {
	for id, other := range s.state.persons {
		if id == selfID {
			continue
		}
		switch d := person.Details.(type) {
		case models.Individual:
			if o, ok := other.Individual(); ok && d.IDCode != "" && o.IDCode == d.IDCode {
				return fmt.Errorf("person id_code %s: %w", d.IDCode, sentinel.ErrConflict)
			}
		case models.Legal:
			if o, ok := other.Legal(); ok && o.RegCode == d.RegCode {
				return fmt.Errorf("person reg_code %s: %w", d.RegCode, sentinel.ErrConflict)
			}
		}
	}
	return nil
}

// =============================================================================
// Companies
// =============================================================================

func (s *InMemory) CreateCompany(ctx context.Context, company *models.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkCompanyUnique(company, 0); err != nil {
		return err
	}
	now := requestcontext.Now(ctx)
	company.ID = s.nextID()
	company.CreatedAt, company.UpdatedAt = now, now
	s.state.companies[company.ID] = *company
	return nil
}

func (s *InMemory) FindCompany(_ context.Context, id int64) (*models.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.state.companies[id]
	if !ok {
		return nil, fmt.Errorf("company %d: %w", id, sentinel.ErrNotFound)
	}
	return &c, nil
}

// FindCompanyForUpdate relies on RunInTx serializing transactions.
func (s *InMemory) FindCompanyForUpdate(ctx context.Context, id int64) (*models.Company, error) {
	return s.FindCompany(ctx, id)
}

func (s *InMemory) ListCompanies(_ context.Context, filter models.CompanyFilter) ([]*models.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	name := strings.ToLower(strings.TrimSpace(filter.Name))
	var out []*models.Company
	for _, id := range sortedKeys(s.state.companies) {
		c := s.state.companies[id]
		if name != "" && !strings.Contains(strings.ToLower(c.Name), name) {
			continue
		}
		if filter.FoundedAfter != nil && c.FoundingDate.Before(models.TruncateDate(*filter.FoundedAfter)) {
			continue
		}
		out = append(out, &c)
	}
	return paginate(out, filter.Page), nil
}

func (s *InMemory) UpdateCompany(ctx context.Context, company *models.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.state.companies[company.ID]
	if !ok {
		return fmt.Errorf("company %d: %w", company.ID, sentinel.ErrNotFound)
	}
	if err := s.checkCompanyUnique(company, company.ID); err != nil {
		return err
	}
	company.CreatedAt = current.CreatedAt
	company.UpdatedAt = requestcontext.Now(ctx)
	s.state.companies[company.ID] = *company
	return nil
}

func (s *InMemory) DeleteCompany(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.state.companies[id]; !ok {
		return fmt.Errorf("company %d: %w", id, sentinel.ErrNotFound)
	}
	delete(s.state.companies, id)
	maps.DeleteFunc(s.state.holdings, func(_ int64, h models.Shareholding) bool {
		return h.CompanyID == id
	})
	return nil
}

func (s *InMemory) CountCompanies(context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.state.companies), nil
}

func (s *InMemory) checkCompanyUnique(company *models.Company, selfID int64) error {
	for id, other := range s.state.companies {
		if id != selfID && other.RegCode == company.RegCode {
			return fmt.Errorf("company reg_code %s: %w", company.RegCode, sentinel.ErrConflict)
		}
	}
	return nil
}

// =============================================================================
// Shareholdings
// =============================================================================

func (s *InMemory) CreateShareholding(ctx context.Context, holding *models.Shareholding) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkHoldingRefs(holding); err != nil {
		return err
	}
	now := requestcontext.Now(ctx)
	holding.ID = s.nextID()
	holding.CreatedAt, holding.UpdatedAt = now, now
	s.state.holdings[holding.ID] = *holding
	return nil
}

func (s *InMemory) FindShareholding(_ context.Context, id int64) (*models.Shareholding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.state.holdings[id]
	if !ok {
		return nil, fmt.Errorf("shareholding %d: %w", id, sentinel.ErrNotFound)
	}
	return &h, nil
}

func (s *InMemory) FindShareholdingsByIDs(_ context.Context, ids []int64) (map[int64]*models.Shareholding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[int64]*models.Shareholding, len(ids))
	for _, id := range ids {
		if h, ok := s.state.holdings[id]; ok {
			out[id] = &h
		}
	}
	return out, nil
}

func (s *InMemory) ListShareholdings(_ context.Context, filter models.ShareholdingFilter) ([]*models.Shareholding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.filterHoldings(func(h models.Shareholding) bool {
		return (filter.CompanyID == 0 || h.CompanyID == filter.CompanyID) &&
			(filter.PersonID == 0 || h.PersonID == filter.PersonID)
	})
	return paginate(out, filter.Page), nil
}

func (s *InMemory) ListShareholdingsByCompany(_ context.Context, companyID int64) ([]*models.Shareholding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterHoldings(func(h models.Shareholding) bool { return h.CompanyID == companyID }), nil
}

func (s *InMemory) ListShareholdingsByPerson(_ context.Context, personID int64) ([]*models.Shareholding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterHoldings(func(h models.Shareholding) bool { return h.PersonID == personID }), nil
}

func (s *InMemory) UpdateShareholding(ctx context.Context, holding *models.Shareholding) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.state.holdings[holding.ID]
	if !ok {
		return fmt.Errorf("shareholding %d: %w", holding.ID, sentinel.ErrNotFound)
	}
	if err := s.checkHoldingRefs(holding); err != nil {
		return err
	}
	holding.CreatedAt = current.CreatedAt
	holding.UpdatedAt = requestcontext.Now(ctx)
	s.state.holdings[holding.ID] = *holding
	return nil
}

func (s *InMemory) DeleteShareholding(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.state.holdings[id]; !ok {
		return fmt.Errorf("shareholding %d: %w", id, sentinel.ErrNotFound)
	}
	delete(s.state.holdings, id)
	return nil
}

func (s *InMemory) checkHoldingRefs(holding *models.Shareholding) error {
	if _, ok := s.state.companies[holding.CompanyID]; !ok {
		return fmt.Errorf("company %d: %w", holding.CompanyID, sentinel.ErrNotFound)
	}
	if _, ok := s.state.persons[holding.PersonID]; !ok {
		return fmt.Errorf("person %d: %w", holding.PersonID, sentinel.ErrNotFound)
	}
	return nil
}

func (s *InMemory) filterHoldings(keep func(models.Shareholding) bool) []*models.Shareholding {
	var out []*models.Shareholding
	for _, id := range sortedKeys(s.state.holdings) {
		h := s.state.holdings[id]
		if keep(h) {
			out = append(out, &h)
		}
	}
	return out
}

func sortedKeys[V any](m map[int64]V) []int64 {
	return slices.Sorted(maps.Keys(m))
}

func paginate[T any](items []T, page models.Page) []T {
	page = page.Normalize()
	if page.Skip >= len(items) {
		return []T{}
	}
	items = items[page.Skip:]
	if len(items) > page.Limit {
		items = items[:page.Limit]
	}
	return items
}
