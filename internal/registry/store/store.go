// Package store persists persons, companies and shareholdings.
//
// Stores return sentinel errors from pkg/platform/sentinel. Writes set record
// ids and timestamps on the passed pointers.
package store

//go:generate mockgen -source=store.go -destination=mocks/mocks.go -package=mocks Store,TxRunner

import (
	"context"

	"corpreg/internal/registry/models"
)

type PersonStore interface {
	CreatePerson(ctx context.Context, person *models.Person) error
	FindPerson(ctx context.Context, id int64) (*models.Person, error)
	ListPersons(ctx context.Context, filter models.PersonFilter) ([]*models.Person, error)
	UpdatePerson(ctx context.Context, person *models.Person) error
	DeletePerson(ctx context.Context, id int64) error
}

type CompanyStore interface {
	CreateCompany(ctx context.Context, company *models.Company) error
	FindCompany(ctx context.Context, id int64) (*models.Company, error)
	// FindCompanyForUpdate locks the company row until the surrounding
	// transaction ends.
	FindCompanyForUpdate(ctx context.Context, id int64) (*models.Company, error)
	ListCompanies(ctx context.Context, filter models.CompanyFilter) ([]*models.Company, error)
	UpdateCompany(ctx context.Context, company *models.Company) error
	DeleteCompany(ctx context.Context, id int64) error
	CountCompanies(ctx context.Context) (int, error)
}

type ShareholdingStore interface {
	CreateShareholding(ctx context.Context, holding *models.Shareholding) error
	FindShareholding(ctx context.Context, id int64) (*models.Shareholding, error)
	// FindShareholdingsByIDs returns the holdings that exist, keyed by id.
	FindShareholdingsByIDs(ctx context.Context, ids []int64) (map[int64]*models.Shareholding, error)
	ListShareholdings(ctx context.Context, filter models.ShareholdingFilter) ([]*models.Shareholding, error)
	ListShareholdingsByCompany(ctx context.Context, companyID int64) ([]*models.Shareholding, error)
	ListShareholdingsByPerson(ctx context.Context, personID int64) ([]*models.Shareholding, error)
	UpdateShareholding(ctx context.Context, holding *models.Shareholding) error
	DeleteShareholding(ctx context.Context, id int64) error
}

// Store is the full persistence surface used by the registry service.
type Store interface {
	PersonStore
	CompanyStore
	ShareholdingStore
	Ping(ctx context.Context) error
}

// TxRunner runs fn against a transaction-bound Store. The transaction commits
// when fn returns nil and rolls back otherwise.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(store Store) error) error
}
