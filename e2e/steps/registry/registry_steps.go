package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	POST(path string, body any) error
	GET(path string) error
	Status() int
	Body() []byte
	FieldString(path string) (string, error)
	Expand(s string) string
	Remember(name, value string)
}

// RegisterSteps registers person and company step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &registrySteps{tc: tc}

	ctx.Step(`^an individual "([^"]*)" "([^"]*)" exists as "([^"]*)"$`, steps.individualExists)
	ctx.Step(`^a legal entity "([^"]*)" with reg code "([^"]*)" exists as "([^"]*)"$`, steps.legalEntityExists)

	ctx.Step(`^company "([^"]*)" should have capital "([^"]*)" and (\d+) shareholders$`, steps.companyShouldHave)
	ctx.Step(`^the shares of company "([^"]*)" should sum to its capital$`, steps.sharesShouldSumToCapital)
}

type registrySteps struct {
	tc TestContext
}

type companyDetail struct {
	Capital      string `json:"capital"`
	Shareholders []struct {
		Share     string `json:"share"`
		IsFounder bool   `json:"is_founder"`
	} `json:"shareholders"`
}

func (s *registrySteps) individualExists(ctx context.Context, first, last, name string) error {
	return s.createPerson(name, map[string]any{"type": "individual", "first_name": first, "last_name": last})
}

func (s *registrySteps) legalEntityExists(ctx context.Context, legalName, regCode, name string) error {
	return s.createPerson(name, map[string]any{"type": "legal", "legal_name": legalName, "reg_code": s.tc.Expand(regCode)})
}

func (s *registrySteps) createPerson(name string, body map[string]any) error {
	if err := s.tc.POST("/persons", body); err != nil {
		return err
	}
	if s.tc.Status() != 201 {
		return fmt.Errorf("create person %s: status %d: %s", name, s.tc.Status(), s.tc.Body())
	}
	id, err := s.tc.FieldString("id")
	if err != nil {
		return err
	}
	s.tc.Remember(name, id)
	return nil
}

func (s *registrySteps) loadCompany(name string) (*companyDetail, error) {
	if err := s.tc.GET("/companies/{" + name + "}"); err != nil {
		return nil, err
	}
	if s.tc.Status() != 200 {
		return nil, fmt.Errorf("get company %s: status %d: %s", name, s.tc.Status(), s.tc.Body())
	}
	var c companyDetail
	if err := json.Unmarshal(s.tc.Body(), &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *registrySteps) companyShouldHave(ctx context.Context, name, capital string, holders int) error {
	c, err := s.loadCompany(name)
	if err != nil {
		return err
	}
	if !sameAmount(c.Capital, capital) {
		return fmt.Errorf("expected capital %s, got %s", capital, c.Capital)
	}
	if len(c.Shareholders) != holders {
		return fmt.Errorf("expected %d shareholders, got %d", holders, len(c.Shareholders))
	}
	return nil
}

func (s *registrySteps) sharesShouldSumToCapital(ctx context.Context, name string) error {
	c, err := s.loadCompany(name)
	if err != nil {
		return err
	}
	sum := new(big.Rat)
	for _, h := range c.Shareholders {
		share, ok := new(big.Rat).SetString(h.Share)
		if !ok {
			return fmt.Errorf("share %q is not a number", h.Share)
		}
		sum.Add(sum, share)
	}
	if !sameAmount(sum.FloatString(2), c.Capital) {
		return fmt.Errorf("shares sum to %s but capital is %s", sum.FloatString(2), c.Capital)
	}
	return nil
}

func sameAmount(a, b string) bool {
	x, okA := new(big.Rat).SetString(a)
	y, okB := new(big.Rat).SetString(b)
	return okA && okB && x.Cmp(y) == 0
}
