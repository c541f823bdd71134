package gto

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preflop-tools/gtocoach/poker"
)

const chartHeader = "chart {\n  name = \"test\"\n}\n"

func validBlock(position, scenario string) string {
	return fmt.Sprintf(`
range %q %q {
  tier "premium" {
    action     = "raise/4-bet/all in"
    confidence = "high"
    hands      = ["AA", "KK", "AKs"]
  }
}
`, position, scenario)
}

func TestParseChartDefault(t *testing.T) {
	t.Parallel()
	chart, err := DefaultChart()
	require.NoError(t, err)
	assert.Equal(t, "6-max preflop v1", chart.Name)

	// Every first-in position plus the three BB defenses.
	wantKeys := []RangeKey{
		{Position: poker.UTG, Scenario: FirstIn},
		{Position: poker.MP, Scenario: FirstIn},
		{Position: poker.CO, Scenario: FirstIn},
		{Position: poker.BTN, Scenario: FirstIn},
		{Position: poker.SB, Scenario: FirstIn},
		{Position: poker.BB, Scenario: VsButtonRaise},
		{Position: poker.BB, Scenario: VsCutoffRaise},
		{Position: poker.BB, Scenario: VsMiddlePositionRaise},
	}
	assert.ElementsMatch(t, wantKeys, chart.Keys())

	// Every position is covered by at least one scenario, so random
	// situation generation never starves.
	positions, _ := poker.PositionsForTableSize(6)
	for _, pos := range positions {
		assert.NotEmpty(t, chart.ScenariosFor(pos), "no scenarios for %s", pos)
	}
}

func TestParseChartIdempotent(t *testing.T) {
	t.Parallel()
	first, err := DefaultChart()
	require.NoError(t, err)
	second, err := DefaultChart()
	require.NoError(t, err)

	// Parsing the same raw chart twice yields structurally equal charts.
	require.Equal(t, first.ToMap(), second.ToMap())
}

func TestParseChartEntries(t *testing.T) {
	t.Parallel()
	chart, err := DefaultChart()
	require.NoError(t, err)

	gr, ok := chart.Range(poker.BTN, FirstIn)
	require.True(t, ok)

	entry, ok := gr.Lookup("AKs")
	require.True(t, ok)
	assert.Equal(t, ActionRaise4BetAllIn, entry.Action)
	assert.Equal(t, ConfidenceHigh, entry.Confidence)
	assert.Equal(t, 1.0, entry.Frequency)

	entry, ok = gr.Lookup("T9s")
	require.True(t, ok)
	assert.Equal(t, ActionRaiseCall, entry.Action)
	assert.Equal(t, ConfidenceMedium, entry.Confidence)

	_, ok = gr.Lookup("72o")
	assert.False(t, ok, "72o must not appear in the button opening range")
}

func TestParseChartErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		src    string
		detail string
	}{
		{
			name:   "empty chart",
			src:    chartHeader,
			detail: "no ranges",
		},
		{
			name: "unknown hand notation",
			src: chartHeader + `
range "BTN" "first_in" {
  tier "premium" {
    action     = "raise/4-bet/all in"
    confidence = "high"
    hands      = ["AA", "XYs"]
  }
}
`,
			detail: "invalid hand notation",
		},
		{
			name: "unknown action label",
			src: chartHeader + `
range "BTN" "first_in" {
  tier "premium" {
    action     = "limp/pray"
    confidence = "high"
    hands      = ["AA"]
  }
}
`,
			detail: "invalid action",
		},
		{
			name:   "unknown position",
			src:    chartHeader + validBlock("HJ", "first_in"),
			detail: "invalid position",
		},
		{
			name:   "unknown scenario",
			src:    chartHeader + validBlock("BTN", "vs_alien_raise"),
			detail: "invalid scenario",
		},
		{
			name:   "scenario invalid for position",
			src:    chartHeader + validBlock("BTN", "vs_button_raise"),
			detail: "not valid for position",
		},
		{
			name:   "duplicate range block",
			src:    chartHeader + validBlock("BTN", "first_in") + validBlock("BTN", "first_in"),
			detail: "duplicate range",
		},
		{
			name: "hand listed in two tiers",
			src: chartHeader + `
range "BTN" "first_in" {
  tier "premium" {
    action     = "raise/4-bet/all in"
    confidence = "high"
    hands      = ["AA"]
  }
  tier "strong" {
    action     = "raise/4-bet/fold"
    confidence = "medium"
    hands      = ["AA"]
  }
}
`,
			detail: "listed twice",
		},
		{
			name: "invalid confidence",
			src: chartHeader + `
range "BTN" "first_in" {
  tier "premium" {
    action     = "raise/4-bet/all in"
    confidence = "certain"
    hands      = ["AA"]
  }
}
`,
			detail: "invalid confidence",
		},
		{
			name: "frequency out of range",
			src: chartHeader + `
range "BTN" "first_in" {
  tier "premium" {
    action     = "raise/4-bet/all in"
    confidence = "high"
    frequency  = 1.5
    hands      = ["AA"]
  }
}
`,
			detail: "frequency",
		},
		{
			name:   "malformed hcl",
			src:    "range {{{",
			detail: "parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseChart([]byte(tt.src), "test.hcl")
			require.Error(t, err)
			var formatErr *ChartFormatError
			require.ErrorAs(t, err, &formatErr)
			assert.Contains(t, formatErr.Error(), tt.detail)
		})
	}
}

func TestParseChartFrequency(t *testing.T) {
	t.Parallel()
	src := chartHeader + `
range "BTN" "first_in" {
  tier "mixed" {
    action     = "raise/fold"
    confidence = "medium"
    frequency  = 0.5
    hands      = ["A2o"]
  }
}
`
	chart, err := ParseChart([]byte(src), "test.hcl")
	require.NoError(t, err)

	gr, ok := chart.Range(poker.BTN, FirstIn)
	require.True(t, ok)
	entry, ok := gr.Lookup("A2o")
	require.True(t, ok)
	assert.Equal(t, 0.5, entry.Frequency)
}

func TestChartFormatErrorIsTyped(t *testing.T) {
	t.Parallel()
	_, err := ParseChart([]byte(chartHeader), "test.hcl")
	var formatErr *ChartFormatError
	require.True(t, errors.As(err, &formatErr))
}
