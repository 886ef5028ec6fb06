package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"corpreg/internal/registry/models"
	"corpreg/pkg/platform/sentinel"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// PostgresStore persists the registry in PostgreSQL.
type PostgresStore struct {
	db execer
}

// NewPostgres constructs a PostgreSQL-backed store over a connection pool.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// NewPostgresTx constructs a store bound to an open transaction.
func NewPostgresTx(tx *sql.Tx) *PostgresStore {
	return &PostgresStore{db: tx}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	if db, ok := s.db.(*sql.DB); ok {
		return db.PingContext(ctx)
	}
	return nil
}

// mapError converts driver errors into sentinels, keeping the cause in the chain.
func mapError(err error, op string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, sentinel.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %s: %w", op, pgErr.ConstraintName, sentinel.ErrConflict)
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: %s: %w", op, pgErr.ConstraintName, sentinel.ErrNotFound)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func requireAffected(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, sentinel.ErrNotFound)
	}
	return nil
}

// likePattern builds a substring ILIKE pattern matching term literally.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.TrimSpace(term)) + "%"
}

// whereBuilder accumulates AND-ed predicates. Every ? in a clause binds to
// that clause's single argument.
type whereBuilder struct {
	clauses []string
	args    []any
}

func (w *whereBuilder) add(clause string, arg any) {
	w.args = append(w.args, arg)
	w.clauses = append(w.clauses, strings.ReplaceAll(clause, "?", fmt.Sprintf("$%d", len(w.args))))
}

func (w *whereBuilder) sql() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

func (w *whereBuilder) page(p models.Page) string {
	p = p.Normalize()
	w.args = append(w.args, p.Limit, p.Skip)
	return fmt.Sprintf(" ORDER BY id LIMIT $%d OFFSET $%d", len(w.args)-1, len(w.args))
}

// =============================================================================
// Persons
// =============================================================================

const personColumns = `id, kind, first_name, last_name, id_code, legal_name, reg_code, created_at, updated_at`

type personRow struct {
	kind      string
	firstName sql.NullString
	lastName  sql.NullString
	idCode    sql.NullString
	legalName sql.NullString
	regCode   sql.NullString
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPerson(row rowScanner) (*models.Person, error) {
	var (
		p models.Person
		r personRow
	)
	if err := row.Scan(&p.ID, &r.kind, &r.firstName, &r.lastName, &r.idCode, &r.legalName, &r.regCode, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	switch models.PersonKind(r.kind) {
	case models.PersonKindIndividual:
		p.Details = models.Individual{FirstName: r.firstName.String, LastName: r.lastName.String, IDCode: r.idCode.String}
	case models.PersonKindLegal:
		p.Details = models.Legal{LegalName: r.legalName.String, RegCode: r.regCode.String}
	default:
		return nil, fmt.Errorf("unknown person kind %q", r.kind)
	}
	return &p, nil
}

func personArgs(p *models.Person) []any {
	var r personRow
	r.kind = string(p.Kind())
	switch d := p.Details.(type) {
	case models.Individual:
		r.firstName = sql.NullString{String: d.FirstName, Valid: true}
		r.lastName = sql.NullString{String: d.LastName, Valid: true}
		r.idCode = sql.NullString{String: d.IDCode, Valid: d.IDCode != ""}
	case models.Legal:
		r.legalName = sql.NullString{String: d.LegalName, Valid: true}
		r.regCode = sql.NullString{String: d.RegCode, Valid: true}
	}
	return []any{r.kind, r.firstName, r.lastName, r.idCode, r.legalName, r.regCode}
}

func (s *PostgresStore) CreatePerson(ctx context.Context, person *models.Person) error {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO persons (kind, first_name, last_name, id_code, legal_name, reg_code)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		personArgs(person)...,
	).Scan(&person.ID, &person.CreatedAt, &person.UpdatedAt)
	if err != nil {
		return mapError(err, "create person")
	}
	return nil
}

func (s *PostgresStore) FindPerson(ctx context.Context, id int64) (*models.Person, error) {
	p, err := scanPerson(s.db.QueryRowContext(ctx, `SELECT `+personColumns+` FROM persons WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("find person %d", id))
	}
	return p, nil
}

func (s *PostgresStore) ListPersons(ctx context.Context, filter models.PersonFilter) ([]*models.Person, error) {
	var w whereBuilder
	if filter.Kind != "" {
		w.add("kind = ?", string(filter.Kind))
	}
	if strings.TrimSpace(filter.Search) != "" {
		w.add(`(CASE WHEN kind = 'individual'
			THEN first_name ILIKE ? OR last_name ILIKE ? OR COALESCE(id_code, '') ILIKE ?
			ELSE legal_name ILIKE ? OR reg_code ILIKE ? END)`, likePattern(filter.Search))
	}
	query := `SELECT ` + personColumns + ` FROM persons` + w.sql() + w.page(filter.Page)

	rows, err := s.db.QueryContext(ctx, query, w.args...)
	if err != nil {
		return nil, mapError(err, "list persons")
	}
	defer rows.Close()

	persons := []*models.Person{}
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		persons = append(persons, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	return persons, nil
}

func (s *PostgresStore) UpdatePerson(ctx context.Context, person *models.Person) error {
	args := append(personArgs(person), person.ID)
	err := s.db.QueryRowContext(ctx, `
		UPDATE persons
		SET kind = $1, first_name = $2, last_name = $3, id_code = $4, legal_name = $5, reg_code = $6, updated_at = now()
		WHERE id = $7
		RETURNING created_at, updated_at`,
		args...,
	).Scan(&person.CreatedAt, &person.UpdatedAt)
	if err != nil {
		return mapError(err, fmt.Sprintf("update person %d", person.ID))
	}
	return nil
}

func (s *PostgresStore) DeletePerson(ctx context.Context, id int64) error {
	op := fmt.Sprintf("delete person %d", id)
	res, err := s.db.ExecContext(ctx, `DELETE FROM persons WHERE id = $1`, id)
	if err != nil {
		return mapError(err, op)
	}
	return requireAffected(res, op)
}

// =============================================================================
// Companies
// =============================================================================

const companyColumns = `id, name, reg_code, founding_date, capital, created_at, updated_at`

func scanCompany(row rowScanner) (*models.Company, error) {
	var c models.Company
	if err := row.Scan(&c.ID, &c.Name, &c.RegCode, &c.FoundingDate, &c.Capital, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.FoundingDate = models.TruncateDate(c.FoundingDate)
	return &c, nil
}

func (s *PostgresStore) CreateCompany(ctx context.Context, company *models.Company) error {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO companies (name, reg_code, founding_date, capital)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		company.Name, company.RegCode, company.FoundingDate, company.Capital,
	).Scan(&company.ID, &company.CreatedAt, &company.UpdatedAt)
	if err != nil {
		return mapError(err, "create company")
	}
	return nil
}

func (s *PostgresStore) FindCompany(ctx context.Context, id int64) (*models.Company, error) {
	c, err := scanCompany(s.db.QueryRowContext(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("find company %d", id))
	}
	return c, nil
}

func (s *PostgresStore) FindCompanyForUpdate(ctx context.Context, id int64) (*models.Company, error) {
	c, err := scanCompany(s.db.QueryRowContext(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("lock company %d", id))
	}
	return c, nil
}

func (s *PostgresStore) ListCompanies(ctx context.Context, filter models.CompanyFilter) ([]*models.Company, error) {
	var w whereBuilder
	if strings.TrimSpace(filter.Name) != "" {
		w.add("name ILIKE ?", likePattern(filter.Name))
	}
	if filter.FoundedAfter != nil {
		w.add("founding_date >= ?", models.TruncateDate(*filter.FoundedAfter))
	}
	query := `SELECT ` + companyColumns + ` FROM companies` + w.sql() + w.page(filter.Page)

	rows, err := s.db.QueryContext(ctx, query, w.args...)
	if err != nil {
		return nil, mapError(err, "list companies")
	}
	defer rows.Close()

	companies := []*models.Company{}
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return companies, nil
}

func (s *PostgresStore) UpdateCompany(ctx context.Context, company *models.Company) error {
	err := s.db.QueryRowContext(ctx, `
		UPDATE companies
		SET name = $1, reg_code = $2, founding_date = $3, capital = $4, updated_at = now()
		WHERE id = $5
		RETURNING created_at, updated_at`,
		company.Name, company.RegCode, company.FoundingDate, company.Capital, company.ID,
	).Scan(&company.CreatedAt, &company.UpdatedAt)
	if err != nil {
		return mapError(err, fmt.Sprintf("update company %d", company.ID))
	}
	return nil
}

func (s *PostgresStore) DeleteCompany(ctx context.Context, id int64) error {
	op := fmt.Sprintf("delete company %d", id)
	res, err := s.db.ExecContext(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return mapError(err, op)
	}
	return requireAffected(res, op)
}

func (s *PostgresStore) CountCompanies(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM companies`).Scan(&n); err != nil {
		return 0, mapError(err, "count companies")
	}
	return n, nil
}

// =============================================================================
// Shareholdings
// =============================================================================

const shareholdingColumns = `id, company_id, person_id, share, is_founder, created_at, updated_at`

func scanShareholding(row rowScanner) (*models.Shareholding, error) {
	var h models.Shareholding
	if err := row.Scan(&h.ID, &h.CompanyID, &h.PersonID, &h.Share, &h.IsFounder, &h.CreatedAt, &h.UpdatedAt); err != nil {
		return nil, err
	}
	return &h, nil
}

func (s *PostgresStore) queryShareholdings(ctx context.Context, op, query string, args ...any) ([]*models.Shareholding, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, op)
	}
	defer rows.Close()

	holdings := []*models.Shareholding{}
	for rows.Next() {
		h, err := scanShareholding(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shareholding: %w", err)
		}
		holdings = append(holdings, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return holdings, nil
}

func (s *PostgresStore) CreateShareholding(ctx context.Context, holding *models.Shareholding) error {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO shareholdings (company_id, person_id, share, is_founder)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		holding.CompanyID, holding.PersonID, holding.Share, holding.IsFounder,
	).Scan(&holding.ID, &holding.CreatedAt, &holding.UpdatedAt)
	if err != nil {
		return mapError(err, "create shareholding")
	}
	return nil
}

func (s *PostgresStore) FindShareholding(ctx context.Context, id int64) (*models.Shareholding, error) {
	h, err := scanShareholding(s.db.QueryRowContext(ctx, `SELECT `+shareholdingColumns+` FROM shareholdings WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("find shareholding %d", id))
	}
	return h, nil
}

func (s *PostgresStore) FindShareholdingsByIDs(ctx context.Context, ids []int64) (map[int64]*models.Shareholding, error) {
	out := make(map[int64]*models.Shareholding, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	holdings, err := s.queryShareholdings(ctx, "find shareholdings",
		`SELECT `+shareholdingColumns+` FROM shareholdings WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	for _, h := range holdings {
		out[h.ID] = h
	}
	return out, nil
}

func (s *PostgresStore) ListShareholdings(ctx context.Context, filter models.ShareholdingFilter) ([]*models.Shareholding, error) {
	var w whereBuilder
	if filter.CompanyID != 0 {
		w.add("company_id = ?", filter.CompanyID)
	}
	if filter.PersonID != 0 {
		w.add("person_id = ?", filter.PersonID)
	}
	query := `SELECT ` + shareholdingColumns + ` FROM shareholdings` + w.sql() + w.page(filter.Page)
	return s.queryShareholdings(ctx, "list shareholdings", query, w.args...)
}

func (s *PostgresStore) ListShareholdingsByCompany(ctx context.Context, companyID int64) ([]*models.Shareholding, error) {
	return s.queryShareholdings(ctx, "list company shareholdings",
		`SELECT `+shareholdingColumns+` FROM shareholdings WHERE company_id = $1 ORDER BY id`, companyID)
}

func (s *PostgresStore) ListShareholdingsByPerson(ctx context.Context, personID int64) ([]*models.Shareholding, error) {
	return s.queryShareholdings(ctx, "list person shareholdings",
		`SELECT `+shareholdingColumns+` FROM shareholdings WHERE person_id = $1 ORDER BY id`, personID)
}

func (s *PostgresStore) UpdateShareholding(ctx context.Context, holding *models.Shareholding) error {
	err := s.db.QueryRowContext(ctx, `
		UPDATE shareholdings
		SET company_id = $1, person_id = $2, share = $3, is_founder = $4, updated_at = now()
		WHERE id = $5
		RETURNING created_at, updated_at`,
		holding.CompanyID, holding.PersonID, holding.Share, holding.IsFounder, holding.ID,
	).Scan(&holding.CreatedAt, &holding.UpdatedAt)
	if err != nil {
		return mapError(err, fmt.Sprintf("update shareholding %d", holding.ID))
	}
	return nil
}

func (s *PostgresStore) DeleteShareholding(ctx context.Context, id int64) error {
	op := fmt.Sprintf("delete shareholding %d", id)
	res, err := s.db.ExecContext(ctx, `DELETE FROM shareholdings WHERE id = $1`, id)
	if err != nil {
		return mapError(err, op)
	}
	return requireAffected(res, op)
}
