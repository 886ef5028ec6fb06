//go:build integration

package store

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"corpreg/internal/registry/models"
	"corpreg/pkg/platform/sentinel"
	"corpreg/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	pg    *containers.PostgresContainer
	store *PostgresStore
	ctx   context.Context
}

func TestPostgresStoreSuite(t *testing.T) {
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.pg = containers.NewPostgresContainer(s.T())
	s.store = NewPostgres(s.pg.DB)
	s.ctx = context.Background()
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.pg.TruncateTables(s.ctx))
}

func (s *PostgresStoreSuite) company(regCode, capital string) *models.Company {
	c := &models.Company{
		Name:         "Company " + regCode,
		RegCode:      regCode,
		FoundingDate: time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC),
		Capital:      decimal.RequireFromString(capital),
	}
	s.Require().NoError(s.store.CreateCompany(s.ctx, c))
	return c
}

func (s *PostgresStoreSuite) person(details models.PersonDetails) *models.Person {
	p := &models.Person{Details: details}
	s.Require().NoError(s.store.CreatePerson(s.ctx, p))
	return p
}

func (s *PostgresStoreSuite) TestPersonRoundTrip() {
	ind := s.person(models.Individual{FirstName: "Mari", LastName: "Tamm", IDCode: "49001010001"})
	legal := s.person(models.Legal{LegalName: "Tamm Holding", RegCode: "12345678"})

	found, err := s.store.FindPerson(s.ctx, ind.ID)
	s.Require().NoError(err)
	s.Equal(models.Individual{FirstName: "Mari", LastName: "Tamm", IDCode: "49001010001"}, found.Details)

	found, err = s.store.FindPerson(s.ctx, legal.ID)
	s.Require().NoError(err)
	s.Equal(models.PersonKindLegal, found.Kind())

	err = s.store.CreatePerson(s.ctx, &models.Person{Details: models.Individual{FirstName: "X", LastName: "Y", IDCode: "49001010001"}})
	s.ErrorIs(err, sentinel.ErrConflict)

	// id_code is optional and unique only when present
	s.person(models.Individual{FirstName: "A", LastName: "B"})
	s.person(models.Individual{FirstName: "C", LastName: "D"})

	_, err = s.store.FindPerson(s.ctx, 9999)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestListPersonsSearch() {
	s.person(models.Individual{FirstName: "Tanel", LastName: "Saar"})
	s.person(models.Individual{FirstName: "Kati", LastName: "Mets"})
	s.person(models.Individual{FirstName: "Mart", LastName: "TALI"})
	s.person(models.Legal{LegalName: "Tartu Arendus", RegCode: "1"})

	persons, err := s.store.ListPersons(s.ctx, models.PersonFilter{Kind: models.PersonKindIndividual, Search: "ta"})
	s.Require().NoError(err)
	s.Len(persons, 2)

	persons, err = s.store.ListPersons(s.ctx, models.PersonFilter{Search: "100%"})
	s.Require().NoError(err)
	s.Empty(persons)
}

func (s *PostgresStoreSuite) TestCompanies() {
	c := s.company("1000001", "2500.50")

	found, err := s.store.FindCompany(s.ctx, c.ID)
	s.Require().NoError(err)
	s.True(found.Capital.Equal(decimal.RequireFromString("2500.50")))
	s.Equal(c.FoundingDate, found.FoundingDate)

	err = s.store.CreateCompany(s.ctx, &models.Company{Name: "Dup", RegCode: "1000001", FoundingDate: c.FoundingDate, Capital: decimal.NewFromInt(1)})
	s.ErrorIs(err, sentinel.ErrConflict)

	after := time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)
	companies, err := s.store.ListCompanies(s.ctx, models.CompanyFilter{Name: "company", FoundedAfter: &after})
	s.Require().NoError(err)
	s.Len(companies, 1)

	s.ErrorIs(s.store.DeleteCompany(s.ctx, 9999), sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestShareholdingsCascadeAndBatchLookup() {
	c := s.company("1000001", "1000")
	a := s.person(models.Individual{FirstName: "A", LastName: "A"})
	b := s.person(models.Individual{FirstName: "B", LastName: "B"})

	h1 := &models.Shareholding{CompanyID: c.ID, PersonID: a.ID, Share: decimal.NewFromInt(600), IsFounder: true}
	h2 := &models.Shareholding{CompanyID: c.ID, PersonID: b.ID, Share: decimal.NewFromInt(400)}
	s.Require().NoError(s.store.CreateShareholding(s.ctx, h1))
	s.Require().NoError(s.store.CreateShareholding(s.ctx, h2))

	err := s.store.CreateShareholding(s.ctx, &models.Shareholding{CompanyID: 9999, PersonID: a.ID, Share: decimal.NewFromInt(1)})
	s.ErrorIs(err, sentinel.ErrNotFound)

	byID, err := s.store.FindShareholdingsByIDs(s.ctx, []int64{h1.ID, h2.ID, 9999})
	s.Require().NoError(err)
	s.Len(byID, 2)

	s.Require().NoError(s.store.DeletePerson(s.ctx, b.ID))
	_, err = s.store.FindShareholding(s.ctx, h2.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)

	s.Require().NoError(s.store.DeleteCompany(s.ctx, c.ID))
	holdings, err := s.store.ListShareholdingsByPerson(s.ctx, a.ID)
	s.Require().NoError(err)
	s.Empty(holdings)
}

func (s *PostgresStoreSuite) TestTransactionRollback() {
	tx, err := s.pg.DB.BeginTx(s.ctx, nil)
	s.Require().NoError(err)
	txStore := NewPostgresTx(tx)

	c := &models.Company{Name: "Gone", RegCode: "3000001", FoundingDate: time.Now(), Capital: decimal.NewFromInt(10)}
	s.Require().NoError(txStore.CreateCompany(s.ctx, c))
	_, err = txStore.FindCompanyForUpdate(s.ctx, c.ID)
	s.Require().NoError(err)
	s.Require().NoError(tx.Rollback())

	n, err := s.store.CountCompanies(s.ctx)
	s.Require().NoError(err)
	s.Zero(n)
}
