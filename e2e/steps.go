// Package e2e drives a running registry over HTTP with Gherkin scenarios.
package e2e

import (
	"github.com/cucumber/godog"

	"corpreg/e2e/steps/common"
	"corpreg/e2e/steps/registry"
)

// RegisterSteps registers all step definitions from modular packages
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	// Register common steps (generic requests, assertions, variables)
	common.RegisterSteps(ctx, tc)

	// Register registry-specific steps (persons, companies, cap table checks)
	registry.RegisterSteps(ctx, tc)
}
