package seed

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corpreg/internal/registry/models"
	"corpreg/internal/registry/store"
)

func seeded(t *testing.T, seed uint64) (*store.InMemory, Result) {
	t.Helper()
	st := store.NewInMemory()
	res, err := New(st, WithRand(rand.New(rand.NewPCG(seed, 0)))).Run(context.Background())
	require.NoError(t, err)
	return st, res
}

func all() models.Page { return models.Page{Limit: models.MaxLimit} }

func TestSeedCreatesBalancedCompanies(t *testing.T) {
	ctx := context.Background()
	st, res := seeded(t, 42)

	assert.False(t, res.Skipped)
	assert.Equal(t, individualCount+legalCount, res.Persons)
	assert.Equal(t, companyCount, res.Companies)

	individuals, err := st.ListPersons(ctx, models.PersonFilter{Kind: models.PersonKindIndividual, Page: all()})
	require.NoError(t, err)
	assert.Len(t, individuals, individualCount)
	legal, err := st.ListPersons(ctx, models.PersonFilter{Kind: models.PersonKindLegal, Page: all()})
	require.NoError(t, err)
	assert.Len(t, legal, legalCount)

	companies, err := st.ListCompanies(ctx, models.CompanyFilter{Page: all()})
	require.NoError(t, err)
	require.Len(t, companies, companyCount)

	total := 0
	for _, c := range companies {
		holdings, err := st.ListShareholdingsByCompany(ctx, c.ID)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(holdings), minHolders, c.Name)
		require.LessOrEqual(t, len(holdings), maxHolders, c.Name)
		total += len(holdings)

		assert.True(t, models.TotalShares(holdings).Equal(c.Capital), "%s: shares must sum to capital", c.Name)
		assert.True(t, c.Capital.GreaterThanOrEqual(decimal.NewFromInt(minCapital-maxHolders)), c.Name)

		founders := 0
		holders := make(map[int64]struct{}, len(holdings))
		for _, h := range holdings {
			assert.True(t, h.Share.Equal(holdings[0].Share), "%s: split must be equal", c.Name)
			if h.IsFounder {
				founders++
			}
			holders[h.PersonID] = struct{}{}
		}
		assert.Equal(t, 1, founders, c.Name)
		assert.Len(t, holders, len(holdings), "%s: holders must be distinct", c.Name)
	}
	assert.Equal(t, total, res.Shareholdings)
}

func TestSeedIsSkippedWhenCompaniesExist(t *testing.T) {
	ctx := context.Background()
	st, _ := seeded(t, 1)

	res, err := New(st).Run(ctx)
	require.NoError(t, err)
	assert.True(t, res.Skipped)

	n, err := st.CountCompanies(ctx)
	require.NoError(t, err)
	assert.Equal(t, companyCount, n)
}

func TestSeedIsReproducible(t *testing.T) {
	ctx := context.Background()
	a, _ := seeded(t, 7)
	b, _ := seeded(t, 7)

	ca, err := a.ListCompanies(ctx, models.CompanyFilter{Page: all()})
	require.NoError(t, err)
	cb, err := b.ListCompanies(ctx, models.CompanyFilter{Page: all()})
	require.NoError(t, err)
	require.Len(t, cb, len(ca))
	for i := range ca {
		assert.Equal(t, ca[i].RegCode, cb[i].RegCode)
		assert.True(t, ca[i].Capital.Equal(cb[i].Capital))
	}
}

func TestIDCodeFormat(t *testing.T) {
	s := New(nil, WithRand(rand.New(rand.NewPCG(3, 3))))
	for range 100 {
		code := s.idCode()
		require.Len(t, code, 11)
		assert.Contains(t, "3456", code[:1])
		assert.Equal(t, byte('1'), code[10])
	}
}

type failingTx struct{ err error }

func (f failingTx) RunInTx(context.Context, func(store.Store) error) error { return f.err }

func TestSeedPropagatesTransactionErrors(t *testing.T) {
	boom := errors.New("connection reset")
	_, err := New(failingTx{err: boom}).Run(context.Background())
	assert.ErrorIs(t, err, boom)
}
