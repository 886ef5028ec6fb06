package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/suite"

	"corpreg/internal/registry/models"
	"corpreg/internal/registry/service"
	"corpreg/internal/registry/store"
	dErrors "corpreg/pkg/domain-errors"
	"corpreg/pkg/testutil"
)

const prefix = "/api/v1"

type RegistryHandlerSuite struct {
	suite.Suite
	router http.Handler
}

func TestRegistryHandlerSuite(t *testing.T) {
	suite.Run(t, new(RegistryHandlerSuite))
}

func newRouter(svc Service) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.StripSlashes)
	r.Route(prefix, New(svc, nil).Register)
	return r
}

func (s *RegistryHandlerSuite) SetupTest() {
	mem := store.NewInMemory()
	svc, err := service.New(mem, mem)
	s.Require().NoError(err)
	s.router = newRouter(svc)
}

func (s *RegistryHandlerSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	req := testutil.NewJSONRequest(s.T(), method, prefix+path, body)
	return testutil.DoRequest(s.router, req)
}

func (s *RegistryHandlerSuite) createPerson(body map[string]any) PersonResponse {
	resp := s.do(http.MethodPost, "/persons", body)
	testutil.AssertStatus(s.T(), resp, http.StatusCreated)
	return *testutil.UnmarshalResponse[PersonResponse](s.T(), resp)
}

func (s *RegistryHandlerSuite) registerCompany(regCode string) CompanyDetailResponse {
	alice := s.createPerson(map[string]any{"type": "individual", "first_name": "Alice", "last_name": "Saar"})
	resp := s.do(http.MethodPost, "/companies/registration", map[string]any{
		"name":          "Puit " + regCode,
		"reg_code":      regCode,
		"founding_date": "2024-01-15",
		"capital":       "1000",
		"shareholders": []map[string]any{
			{"person_id": alice.ID, "share": "600"},
			{"person": map[string]any{"type": "legal", "legal_name": "Kask Holding", "reg_code": "L" + regCode}, "share": 400},
		},
	})
	testutil.AssertStatus(s.T(), resp, http.StatusCreated)
	return *testutil.UnmarshalResponse[CompanyDetailResponse](s.T(), resp)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

// =============================================================================
// Persons
// =============================================================================

func (s *RegistryHandlerSuite) TestPersons() {
	s.Run("timestamps come from the request time", func() {
		pinned := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, prefix+"/persons", map[string]any{
			"type": "legal", "legal_name": "Rebane Investeeringud", "reg_code": "10009999",
		})
		resp := testutil.DoRequest(s.router, testutil.WithRequestTime(req, pinned))
		testutil.AssertStatus(s.T(), resp, http.StatusCreated)
		p := testutil.UnmarshalResponse[PersonResponse](s.T(), resp)
		s.True(pinned.Equal(p.CreatedAt))
		s.True(pinned.Equal(p.UpdatedAt))
	})

	s.Run("create individual returns flat person", func() {
		p := s.createPerson(map[string]any{"type": "individual", "first_name": " Mari ", "last_name": "Tamm", "id_code": "49001010001"})
		s.NotZero(p.ID)
		s.Equal("individual", p.Type)
		s.Equal("Mari", *p.FirstName)
		s.Nil(p.LegalName)
	})

	s.Run("individual without last name is rejected", func() {
		resp := s.do(http.MethodPost, "/persons", map[string]any{"type": "individual", "first_name": "Only"})
		testutil.AssertStatusAndError(s.T(), resp, http.StatusBadRequest, string(dErrors.CodeValidation))
	})

	s.Run("legal fields on an individual are rejected", func() {
		resp := s.do(http.MethodPost, "/persons", map[string]any{
			"type": "individual", "first_name": "A", "last_name": "B", "legal_name": "C",
		})
		testutil.AssertStatus(s.T(), resp, http.StatusBadRequest)
	})

	s.Run("unknown fields are rejected", func() {
		resp := s.do(http.MethodPost, "/persons", map[string]any{"type": "legal", "legal_name": "X", "reg_code": "1", "extra": true})
		testutil.AssertStatusAndError(s.T(), resp, http.StatusBadRequest, string(dErrors.CodeBadRequest))
	})

	s.Run("duplicate id code is a storage error", func() {
		resp := s.do(http.MethodPost, "/persons", map[string]any{"type": "individual", "first_name": "X", "last_name": "Y", "id_code": "49001010001"})
		testutil.AssertStatusAndError(s.T(), resp, http.StatusInternalServerError, string(dErrors.CodeConstraintViolation))
	})

	s.Run("missing person is 404", func() {
		resp := s.do(http.MethodGet, "/persons/999", nil)
		testutil.AssertStatusAndError(s.T(), resp, http.StatusNotFound, string(dErrors.CodeNotFound))
	})

	s.Run("non numeric id is 400", func() {
		resp := s.do(http.MethodGet, "/persons/abc", nil)
		testutil.AssertStatus(s.T(), resp, http.StatusBadRequest)
	})

	s.Run("update and delete", func() {
		p := s.createPerson(map[string]any{"type": "legal", "legal_name": "Vana", "reg_code": "10000001"})
		resp := s.do(http.MethodPut, "/persons/"+itoa(p.ID), map[string]any{"type": "legal", "legal_name": "Uus", "reg_code": "10000001"})
		testutil.AssertStatusOK(s.T(), resp)
		testutil.AssertJSONContains(s.T(), resp, "legal_name", "Uus")

		resp = s.do(http.MethodDelete, "/persons/"+itoa(p.ID), nil)
		testutil.AssertStatus(s.T(), resp, http.StatusNoContent)
		resp = s.do(http.MethodDelete, "/persons/"+itoa(p.ID), nil)
		testutil.AssertStatus(s.T(), resp, http.StatusNotFound)
	})
}

func (s *RegistryHandlerSuite) TestListPersonsFilter() {
	s.createPerson(map[string]any{"type": "individual", "first_name": "Tanel", "last_name": "Saar"})
	s.createPerson(map[string]any{"type": "individual", "first_name": "Kati", "last_name": "Mets"})
	s.createPerson(map[string]any{"type": "individual", "first_name": "Mart", "last_name": "TALI"})
	s.createPerson(map[string]any{"type": "legal", "legal_name": "Tartu Arendus", "reg_code": "20000001"})

	resp := s.do(http.MethodGet, "/persons?type=individual&search=ta", nil)
	testutil.AssertStatusOK(s.T(), resp)
	persons := *testutil.UnmarshalResponse[[]PersonResponse](s.T(), resp)
	s.Require().Len(persons, 2)
	s.Equal("Tanel", *persons[0].FirstName)
	s.Equal("Mart", *persons[1].FirstName)

	s.Run("paging falls back to defaults", func() {
		resp := s.do(http.MethodGet, "/persons?skip=-1&limit=abc", nil)
		testutil.AssertStatusOK(s.T(), resp)
		s.Len(*testutil.UnmarshalResponse[[]PersonResponse](s.T(), resp), 4)

		resp = s.do(http.MethodGet, "/persons/?skip=1&limit=2", nil)
		testutil.AssertStatusOK(s.T(), resp)
		page := *testutil.UnmarshalResponse[[]PersonResponse](s.T(), resp)
		s.Require().Len(page, 2)
		s.Equal("Kati", *page[0].FirstName)
	})

	s.Run("unknown type is 400", func() {
		resp := s.do(http.MethodGet, "/persons?type=robot", nil)
		testutil.AssertStatus(s.T(), resp, http.StatusBadRequest)
	})
}

// =============================================================================
// Companies
// =============================================================================

func (s *RegistryHandlerSuite) TestRegisterCompany() {
	s.Run("creates founders", func() {
		c := s.registerCompany("1234567")
		s.Equal("1000.00", c.Capital)
		s.Require().Len(c.Shareholders, 2)
		s.Equal("600.00", c.Shareholders[0].Share)
		s.Equal("400.00", c.Shareholders[1].Share)
		s.True(c.Shareholders[0].IsFounder)
		s.True(c.Shareholders[1].IsFounder)
	})

	s.Run("share mismatch is a validation error", func() {
		resp := s.do(http.MethodPost, "/companies/registration", map[string]any{
			"name": "Vale", "reg_code": "7654321", "founding_date": "2024-01-15", "capital": 1000,
			"shareholders": []map[string]any{
				{"person": map[string]any{"type": "individual", "first_name": "A", "last_name": "B"}, "share": 900},
			},
		})
		testutil.AssertStatusAndError(s.T(), resp, http.StatusBadRequest, string(dErrors.CodeValidation))

		list := s.do(http.MethodGet, "/companies?name=vale", nil)
		s.Empty(*testutil.UnmarshalResponse[[]CompanyResponse](s.T(), list))
	})

	s.Run("entry with two references is rejected", func() {
		resp := s.do(http.MethodPost, "/companies/registration", map[string]any{
			"name": "Kaks", "reg_code": "7654322", "founding_date": "2024-01-15", "capital": 10,
			"shareholders": []map[string]any{
				{"person_id": 1, "person": map[string]any{"type": "individual", "first_name": "A", "last_name": "B"}, "share": 10},
			},
		})
		testutil.AssertStatus(s.T(), resp, http.StatusBadRequest)
		s.Contains(testutil.UnmarshalErrorResponse(s.T(), resp)["error_description"], "shareholders[0]")
	})

	s.Run("shareholding id is not accepted on registration", func() {
		resp := s.do(http.MethodPost, "/companies/registration", map[string]any{
			"name": "Viide", "reg_code": "7654323", "founding_date": "2024-01-15", "capital": 10,
			"shareholders": []map[string]any{{"shareholding_id": 1, "share": 10}},
		})
		testutil.AssertStatus(s.T(), resp, http.StatusBadRequest)
	})

	s.Run("missing person is 404", func() {
		resp := s.do(http.MethodPost, "/companies/registration", map[string]any{
			"name": "Puudu", "reg_code": "7654324", "founding_date": "2024-01-15", "capital": 10,
			"shareholders": []map[string]any{{"person_id": 999, "share": 10}},
		})
		testutil.AssertStatusAndError(s.T(), resp, http.StatusNotFound, string(dErrors.CodeNotFound))
	})

	s.Run("duplicate reg code is a storage error", func() {
		resp := s.do(http.MethodPost, "/companies", map[string]any{
			"name": "Teine", "reg_code": "1234567", "founding_date": "2024-01-15", "capital": "10.50",
		})
		testutil.AssertStatusAndError(s.T(), resp, http.StatusInternalServerError, string(dErrors.CodeConstraintViolation))
	})

	s.Run("duplicate registration is a storage error and rolls back", func() {
		resp := s.do(http.MethodPost, "/companies/registration", map[string]any{
			"name": "Kordus", "reg_code": "1234567", "founding_date": "2024-01-15", "capital": 10,
			"shareholders": []map[string]any{
				{"person": map[string]any{"type": "individual", "first_name": "Kordne", "last_name": "Asutaja", "id_code": "49912310001"}, "share": 10},
			},
		})
		testutil.AssertStatusAndError(s.T(), resp, http.StatusInternalServerError, string(dErrors.CodeConstraintViolation))
		s.NotContains(testutil.UnmarshalErrorResponse(s.T(), resp), "error_description")

		list := s.do(http.MethodGet, "/persons?search=49912310001", nil)
		s.Empty(*testutil.UnmarshalResponse[[]PersonResponse](s.T(), list))
		companies := s.do(http.MethodGet, "/companies?name=kordus", nil)
		s.Empty(*testutil.UnmarshalResponse[[]CompanyResponse](s.T(), companies))
	})
}

func (s *RegistryHandlerSuite) TestCapitalUpdate() {
	c := s.registerCompany("2000001")
	path := "/companies/" + itoa(c.ID) + "/capital_update"

	s.Run("mismatch leaves company unchanged", func() {
		resp := s.do(http.MethodPut, path, map[string]any{
			"capital": 1000,
			"shareholders": []map[string]any{
				{"shareholding_id": c.Shareholders[0].ID, "share": 500},
				{"shareholding_id": c.Shareholders[1].ID, "share": 400},
			},
		})
		testutil.AssertStatusAndError(s.T(), resp, http.StatusBadRequest, string(dErrors.CodeValidation))

		got := s.do(http.MethodGet, "/companies/"+itoa(c.ID), nil)
		detail := testutil.UnmarshalResponse[CompanyDetailResponse](s.T(), got)
		s.Equal("1000.00", detail.Capital)
		s.Equal("600.00", detail.Shareholders[0].Share)
	})

	s.Run("reallocates with a new shareholder", func() {
		resp := s.do(http.MethodPut, path, map[string]any{
			"capital": "1500",
			"shareholders": []map[string]any{
				{"shareholding_id": c.Shareholders[0].ID, "share": 700, "is_founder": false},
				{"shareholding_id": c.Shareholders[1].ID, "share": 500},
				{"person": map[string]any{"type": "individual", "first_name": "Uus", "last_name": "Omanik"}, "share": 300},
			},
		})
		testutil.AssertStatusOK(s.T(), resp)
		detail := testutil.UnmarshalResponse[CompanyDetailResponse](s.T(), resp)
		s.Equal("1500.00", detail.Capital)
		s.Require().Len(detail.Shareholders, 3)
		s.False(detail.Shareholders[0].IsFounder)
		s.True(detail.Shareholders[1].IsFounder)
		s.False(detail.Shareholders[2].IsFounder)
	})

	s.Run("existing holder as a new entry is rejected", func() {
		other := s.registerCompany("2000002")
		resp := s.do(http.MethodPut, "/companies/"+itoa(other.ID)+"/capital_update", map[string]any{
			"capital": 1500,
			"shareholders": []map[string]any{
				{"shareholding_id": other.Shareholders[0].ID, "share": 600},
				{"shareholding_id": other.Shareholders[1].ID, "share": 400},
				{"person_id": other.Shareholders[1].PersonID, "share": 500},
			},
		})
		testutil.AssertStatusAndError(s.T(), resp, http.StatusBadRequest, string(dErrors.CodeValidation))

		list := s.do(http.MethodGet, "/shareholdings?company_id="+itoa(other.ID), nil)
		s.Len(*testutil.UnmarshalResponse[[]ShareholdingResponse](s.T(), list), 2)
	})

	s.Run("missing company is 404", func() {
		resp := s.do(http.MethodPut, "/companies/999/capital_update", map[string]any{
			"capital":      10,
			"shareholders": []map[string]any{{"person_id": 1, "share": 10}},
		})
		testutil.AssertStatus(s.T(), resp, http.StatusNotFound)
	})

	s.Run("zero capital is rejected by validation", func() {
		resp := s.do(http.MethodPut, path, map[string]any{
			"capital":      0,
			"shareholders": []map[string]any{{"person_id": 1, "share": 10}},
		})
		testutil.AssertStatus(s.T(), resp, http.StatusBadRequest)
		body := testutil.UnmarshalErrorResponse(s.T(), resp)
		s.Equal(string(dErrors.CodeValidation), body["error"])
		s.Equal("capital must be greater than zero", body["error_description"])
	})
}

func (s *RegistryHandlerSuite) TestCompanyCRUD() {
	resp := s.do(http.MethodPost, "/companies/", map[string]any{
		"name": "Meri Info OÜ", "reg_code": "3000001", "founding_date": "2010-05-01", "capital": 2500,
	})
	testutil.AssertStatus(s.T(), resp, http.StatusCreated)
	c := testutil.UnmarshalResponse[CompanyResponse](s.T(), resp)
	s.Equal("2010-05-01", c.FoundingDate)

	s.Run("reg code longer than seven is 400", func() {
		resp := s.do(http.MethodPost, "/companies", map[string]any{
			"name": "Pikk", "reg_code": "12345678", "founding_date": "2010-05-01", "capital": 1,
		})
		testutil.AssertStatus(s.T(), resp, http.StatusBadRequest)
	})

	s.Run("bad date is 400", func() {
		resp := s.do(http.MethodPost, "/companies", map[string]any{
			"name": "Kuupäev", "reg_code": "3000002", "founding_date": "01.05.2010", "capital": 1,
		})
		testutil.AssertStatus(s.T(), resp, http.StatusBadRequest)
	})

	s.Run("founded_after filter", func() {
		resp := s.do(http.MethodGet, "/companies?founded_after=2010-05-01", nil)
		s.Len(*testutil.UnmarshalResponse[[]CompanyResponse](s.T(), resp), 1)
		resp = s.do(http.MethodGet, "/companies?founded_after=2010-05-02", nil)
		s.Empty(*testutil.UnmarshalResponse[[]CompanyResponse](s.T(), resp))
		resp = s.do(http.MethodGet, "/companies?founded_after=yesterday", nil)
		testutil.AssertStatus(s.T(), resp, http.StatusBadRequest)
	})

	s.Run("update then delete", func() {
		resp := s.do(http.MethodPut, "/companies/"+itoa(c.ID), map[string]any{
			"name": "Meri Energia OÜ", "reg_code": "3000001", "founding_date": "2010-05-01", "capital": 2500,
		})
		testutil.AssertStatusOK(s.T(), resp)
		testutil.AssertJSONContains(s.T(), resp, "name", "Meri Energia OÜ")

		resp = s.do(http.MethodDelete, "/companies/"+itoa(c.ID), nil)
		testutil.AssertStatus(s.T(), resp, http.StatusNoContent)
	})
}

// =============================================================================
// Shareholdings
// =============================================================================

func (s *RegistryHandlerSuite) TestShareholdings() {
	c := s.registerCompany("4000001")
	p := s.createPerson(map[string]any{"type": "individual", "first_name": "Piret", "last_name": "Ilves"})

	resp := s.do(http.MethodPost, "/shareholdings", map[string]any{"company_id": c.ID, "person_id": p.ID, "share": "12.5"})
	testutil.AssertStatus(s.T(), resp, http.StatusCreated)
	h := testutil.UnmarshalResponse[ShareholdingResponse](s.T(), resp)
	s.Equal("12.50", h.Share)

	s.Run("detail includes company and person", func() {
		resp := s.do(http.MethodGet, "/shareholdings/"+itoa(h.ID), nil)
		testutil.AssertStatusOK(s.T(), resp)
		detail := testutil.UnmarshalResponse[ShareholdingDetailResponse](s.T(), resp)
		s.Equal(c.ID, detail.Company.ID)
		s.Equal("Piret", *detail.Person.FirstName)
	})

	s.Run("filter by company", func() {
		resp := s.do(http.MethodGet, "/shareholdings?company_id="+itoa(c.ID), nil)
		s.Len(*testutil.UnmarshalResponse[[]ShareholdingResponse](s.T(), resp), 3)
		resp = s.do(http.MethodGet, "/shareholdings?person_id="+itoa(p.ID), nil)
		s.Len(*testutil.UnmarshalResponse[[]ShareholdingResponse](s.T(), resp), 1)
		resp = s.do(http.MethodGet, "/shareholdings?company_id=x", nil)
		testutil.AssertStatus(s.T(), resp, http.StatusBadRequest)
	})

	s.Run("unknown company is 404", func() {
		resp := s.do(http.MethodPost, "/shareholdings", map[string]any{"company_id": 999, "person_id": p.ID, "share": 1})
		testutil.AssertStatus(s.T(), resp, http.StatusNotFound)
	})

	s.Run("person delete cascades", func() {
		resp := s.do(http.MethodDelete, "/persons/"+itoa(p.ID), nil)
		testutil.AssertStatus(s.T(), resp, http.StatusNoContent)
		resp = s.do(http.MethodGet, "/shareholdings/"+itoa(h.ID), nil)
		testutil.AssertStatus(s.T(), resp, http.StatusNotFound)
	})
}

// =============================================================================
// Error mapping
// =============================================================================

type failingService struct {
	Service
}

func (failingService) GetCompany(context.Context, int64) (*models.CompanyWithHoldings, error) {
	return nil, dErrors.Wrap(errors.New("connection refused"), dErrors.CodeInternal, "failed to load company")
}

func TestInternalErrorsHideDescription(t *testing.T) {
	router := newRouter(failingService{})
	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, prefix+"/companies/1"))

	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
	body := testutil.UnmarshalErrorResponse(t, rr)
	if body["error"] != string(dErrors.CodeInternal) {
		t.Fatalf("expected internal_error, got %q", body["error"])
	}
	if _, ok := body["error_description"]; ok {
		t.Fatalf("internal errors must not carry a description")
	}
}
