package common

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	Do(method, path, body string, headers map[string]string) error
	Status() int
	Body() []byte
	FieldString(path string) (string, error)
	Expand(s string) string
	Remember(name, value string)
}

// RegisterSteps registers generic request and assertion steps
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &commonSteps{tc: tc}

	ctx.Step(`^I send a (GET|DELETE) request to "([^"]*)"$`, steps.sendRequest)
	ctx.Step(`^I send a (POST|PUT) request to "([^"]*)" with body:$`, steps.sendRequestWithBody)
	ctx.Step(`^I send a (POST|PUT) request to "([^"]*)" with idempotency key "([^"]*)" and body:$`, steps.sendIdempotentRequest)

	ctx.Step(`^the response status should be (\d+)$`, steps.statusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should equal "([^"]*)"$`, steps.fieldShouldEqual)
	ctx.Step(`^the response field "([^"]*)" should contain "([^"]*)"$`, steps.fieldShouldContain)
	ctx.Step(`^the response should be an empty list$`, steps.responseShouldBeEmptyList)
	ctx.Step(`^I remember the response field "([^"]*)" as "([^"]*)"$`, steps.rememberField)
}

type commonSteps struct {
	tc TestContext
}

func (s *commonSteps) sendRequest(ctx context.Context, method, path string) error {
	return s.tc.Do(method, path, "", nil)
}

func (s *commonSteps) sendRequestWithBody(ctx context.Context, method, path string, body *godog.DocString) error {
	return s.tc.Do(method, path, body.Content, nil)
}

func (s *commonSteps) sendIdempotentRequest(ctx context.Context, method, path, key string, body *godog.DocString) error {
	return s.tc.Do(method, path, body.Content, map[string]string{"Idempotency-Key": key})
}

func (s *commonSteps) statusShouldBe(ctx context.Context, expected int) error {
	if got := s.tc.Status(); got != expected {
		return fmt.Errorf("expected status %d, got %d: %s", expected, got, s.tc.Body())
	}
	return nil
}

func (s *commonSteps) fieldShouldEqual(ctx context.Context, field, expected string) error {
	got, err := s.tc.FieldString(field)
	if err != nil {
		return err
	}
	if want := s.tc.Expand(expected); got != want {
		return fmt.Errorf("expected %s to be %q, got %q", field, want, got)
	}
	return nil
}

func (s *commonSteps) fieldShouldContain(ctx context.Context, field, fragment string) error {
	got, err := s.tc.FieldString(field)
	if err != nil {
		return err
	}
	if !strings.Contains(strings.ToLower(got), strings.ToLower(s.tc.Expand(fragment))) {
		return fmt.Errorf("expected %s to contain %q, got %q", field, fragment, got)
	}
	return nil
}

func (s *commonSteps) responseShouldBeEmptyList(ctx context.Context) error {
	var items []json.RawMessage
	if err := json.Unmarshal(s.tc.Body(), &items); err != nil {
		return fmt.Errorf("response is not a list: %w", err)
	}
	if len(items) != 0 {
		return fmt.Errorf("expected an empty list, got %d items", len(items))
	}
	return nil
}

func (s *commonSteps) rememberField(ctx context.Context, field, name string) error {
	v, err := s.tc.FieldString(field)
	if err != nil {
		return err
	}
	s.tc.Remember(name, v)
	return nil
}
