package gto

import (
	"fmt"

	"github.com/preflop-tools/gtocoach/poker"
)

// ChartFormatError reports a malformed chart document. It is fatal at
// startup: an analyzer must not run against a partially parsed chart.
type ChartFormatError struct {
	Detail string
}

func (e *ChartFormatError) Error() string {
	return "chart format error: " + e.Detail
}

func chartErrorf(format string, args ...any) error {
	return &ChartFormatError{Detail: fmt.Sprintf(format, args...)}
}

// UnknownScenarioError reports a (position, scenario) lookup absent from the
// chart. It is recoverable and maps to a client error in outer layers.
type UnknownScenarioError struct {
	Position poker.Position
	Scenario Scenario
}

func (e *UnknownScenarioError) Error() string {
	return fmt.Sprintf("no chart range for %s in scenario %s", e.Position, e.Scenario)
}

// NoValidScenarioError reports that random situation generation could not
// find a scenario for the drawn position. A correctly populated chart covers
// every position, so this indicates an internal invariant violation.
type NoValidScenarioError struct {
	Position poker.Position
}

func (e *NoValidScenarioError) Error() string {
	return fmt.Sprintf("no valid scenario for position %s", e.Position)
}
