// Package seed fills an empty registry with demo data.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"

	"corpreg/internal/registry/models"
	"corpreg/internal/registry/store"
)

const (
	individualCount = 20
	legalCount      = 10
	companyCount    = 15

	minHolders = 2
	maxHolders = 4

	minCapital = 2500
	maxCapital = 1000000
)

var (
	firstNames = []string{
		"Andres", "Jaan", "Tiit", "Mart", "Peeter", "Rein", "Tõnu", "Mati", "Aivar", "Toomas",
		"Tiina", "Anne", "Kadri", "Liis", "Kati", "Mari", "Kristi", "Piret", "Liisa", "Riina",
	}
	lastNames = []string{
		"Tamm", "Saar", "Sepp", "Kask", "Mägi", "Rebane", "Lepik", "Lepp", "Kukk", "Ilves",
		"Kaasik", "Oja", "Pärn", "Raudsepp", "Kuusk", "Koppel", "Laur", "Lipp", "Põder", "Vaher",
	}
	companyPrefixes = []string{
		"Eesti", "Tallinna", "Tartu", "Pärnu", "Põhja", "Lõuna", "Ida", "Lääne", "Baltika", "Meri",
	}
	companyMids = []string{
		"Ehitus", "Puit", "Metall", "Kaubandus", "Transport", "Energia", "Info", "Tootmine", "Teenindus", "Arendus",
	}
)

// Result counts what a seed run created.
type Result struct {
	Skipped       bool
	Persons       int
	Companies     int
	Shareholdings int
}

// Seeder creates the demo data set in a single transaction.
type Seeder struct {
	tx     store.TxRunner
	logger *slog.Logger
	rnd    *rand.Rand
}

type Option func(s *Seeder)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Seeder) {
		s.logger = logger
	}
}

// WithRand makes the generated data reproducible.
func WithRand(r *rand.Rand) Option {
	return func(s *Seeder) {
		s.rnd = r
	}
}

func New(tx store.TxRunner, opts ...Option) *Seeder {
	s := &Seeder{
		tx:     tx,
		logger: slog.New(slog.DiscardHandler),
		rnd:    rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run seeds the registry unless it already contains companies.
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	var res Result
	err := s.tx.RunInTx(ctx, func(st store.Store) error {
		existing, err := st.CountCompanies(ctx)
		if err != nil {
			return fmt.Errorf("count companies: %w", err)
		}
		if existing > 0 {
			res.Skipped = true
			return nil
		}

		persons, err := s.createPersons(ctx, st)
		if err != nil {
			return err
		}
		res.Persons = len(persons)

		codes := make(map[string]struct{}, companyCount)
		for range companyCount {
			n, err := s.createCompany(ctx, st, persons, codes)
			if err != nil {
				return err
			}
			res.Companies++
			res.Shareholdings += n
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	if res.Skipped {
		s.logger.InfoContext(ctx, "seed_skipped", "reason", "registry already contains companies")
		return res, nil
	}
	s.logger.InfoContext(ctx, "seed_done",
		"persons", res.Persons,
		"companies", res.Companies,
		"shareholdings", res.Shareholdings,
	)
	return res, nil
}

func (s *Seeder) createPersons(ctx context.Context, st store.Store) ([]*models.Person, error) {
	persons := make([]*models.Person, 0, individualCount+legalCount)
	used := make(map[string]struct{}, individualCount+legalCount)

	for range individualCount {
		p, err := models.NewPerson(models.Individual{
			FirstName: pick(s.rnd, firstNames),
			LastName:  pick(s.rnd, lastNames),
			IDCode:    s.unique(used, s.idCode),
		})
		if err != nil {
			return nil, err
		}
		if err := st.CreatePerson(ctx, p); err != nil {
			return nil, fmt.Errorf("create individual: %w", err)
		}
		persons = append(persons, p)
	}

	for range legalCount {
		p, err := models.NewPerson(models.Legal{
			LegalName: pick(s.rnd, lastNames) + " Investeeringud",
			RegCode:   s.unique(used, func() string { return fmt.Sprintf("%d", s.between(10000000, 99999999)) }),
		})
		if err != nil {
			return nil, err
		}
		if err := st.CreatePerson(ctx, p); err != nil {
			return nil, fmt.Errorf("create legal entity: %w", err)
		}
		persons = append(persons, p)
	}
	return persons, nil
}

// createCompany stores one company with an equal split between 2 to 4 random
// holders and returns the number of shareholdings created.
func (s *Seeder) createCompany(ctx context.Context, st store.Store, persons []*models.Person, codes map[string]struct{}) (int, error) {
	holders := s.between(minHolders, maxHolders)
	capital := s.between(minCapital, maxCapital)
	capital -= capital % holders

	founded := time.Date(s.between(1990, 2023), time.Month(s.between(1, 12)), s.between(1, 28), 0, 0, 0, 0, time.UTC)
	company, err := models.NewCompany(
		pick(s.rnd, companyPrefixes)+" "+pick(s.rnd, companyMids)+" OÜ",
		s.unique(codes, func() string { return fmt.Sprintf("%d", s.between(1000000, 9999999)) }),
		founded,
		decimal.NewFromInt(int64(capital)),
	)
	if err != nil {
		return 0, err
	}
	if err := st.CreateCompany(ctx, company); err != nil {
		return 0, fmt.Errorf("create company: %w", err)
	}

	share := decimal.NewFromInt(int64(capital / holders))
	for i, idx := range s.rnd.Perm(len(persons))[:holders] {
		h := &models.Shareholding{
			CompanyID: company.ID,
			PersonID:  persons[idx].ID,
			Share:     share,
			IsFounder: i == 0,
		}
		if err := st.CreateShareholding(ctx, h); err != nil {
			return 0, fmt.Errorf("create shareholding: %w", err)
		}
	}
	return holders, nil
}

// idCode builds an Estonian style personal code: century/gender digit,
// YYMMDD, a three digit serial and a trailing digit.
func (s *Seeder) idCode() string {
	century := 3 + s.rnd.IntN(4)
	year := s.between(0, 23)
	if century <= 4 {
		year = s.between(40, 99)
	}
	return fmt.Sprintf("%d%02d%02d%02d%03d1", century, year, s.between(1, 12), s.between(1, 28), s.rnd.IntN(1000))
}

func (s *Seeder) unique(used map[string]struct{}, gen func() string) string {
	for {
		v := gen()
		if _, ok := used[v]; !ok {
			used[v] = struct{}{}
			return v
		}
	}
}

// between returns a random int in [lo, hi].
func (s *Seeder) between(lo, hi int) int {
	return lo + s.rnd.IntN(hi-lo+1)
}

func pick(r *rand.Rand, values []string) string {
	return values[r.IntN(len(values))]
}
