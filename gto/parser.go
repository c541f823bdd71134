package gto

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/preflop-tools/gtocoach/poker"
)

//go:embed chart.hcl
var defaultChartHCL []byte

// chartFile mirrors the HCL chart document structure.
type chartFile struct {
	Chart  *chartMeta   `hcl:"chart,block"`
	Ranges []rangeBlock `hcl:"range,block"`
}

type chartMeta struct {
	Name string `hcl:"name,optional"`
}

type rangeBlock struct {
	Position string      `hcl:"position,label"`
	Scenario string      `hcl:"scenario,label"`
	Tiers    []tierBlock `hcl:"tier,block"`
}

type tierBlock struct {
	Name       string   `hcl:"name,label"`
	Action     string   `hcl:"action"`
	Confidence string   `hcl:"confidence"`
	Frequency  *float64 `hcl:"frequency,optional"`
	Hands      []string `hcl:"hands"`
}

// ParseChart transforms a raw HCL chart document into a Chart. Parsing is a
// pure transformation: the same input always yields a structurally equal
// Chart. Any unrecognized hand notation, position, scenario, action label or
// confidence is a ChartFormatError.
func ParseChart(src []byte, filename string) (*Chart, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, chartErrorf("parse %s: %s", filename, diags.Error())
	}

	var raw chartFile
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, chartErrorf("decode %s: %s", filename, diags.Error())
	}

	chart := &Chart{ranges: make(map[RangeKey]*GTORange)}
	if raw.Chart != nil {
		chart.Name = raw.Chart.Name
	}
	if len(raw.Ranges) == 0 {
		return nil, chartErrorf("%s defines no ranges", filename)
	}

	for _, rb := range raw.Ranges {
		key, err := parseRangeKey(rb.Position, rb.Scenario)
		if err != nil {
			return nil, err
		}
		if _, exists := chart.ranges[key]; exists {
			return nil, chartErrorf("duplicate range block %s", key)
		}

		gr := newGTORange(key)
		for _, tier := range rb.Tiers {
			if err := addTier(gr, tier); err != nil {
				return nil, err
			}
		}
		if gr.Len() == 0 {
			return nil, chartErrorf("range %s has no hands", key)
		}
		chart.ranges[key] = gr
	}

	return chart, nil
}

func parseRangeKey(position, scenario string) (RangeKey, error) {
	pos, err := poker.ParsePosition(position)
	if err != nil {
		return RangeKey{}, chartErrorf("%v", err)
	}
	scn, err := ParseScenario(scenario)
	if err != nil {
		return RangeKey{}, chartErrorf("range %s: %v", position, err)
	}
	if !scn.ValidFor(pos) {
		return RangeKey{}, chartErrorf("scenario %s is not valid for position %s", scn, pos)
	}
	return RangeKey{Position: pos, Scenario: scn}, nil
}

func addTier(gr *GTORange, tier tierBlock) error {
	action, err := ParseAction(tier.Action)
	if err != nil {
		return chartErrorf("range %s tier %q: %v", gr.Key, tier.Name, err)
	}
	confidence, err := ParseConfidence(tier.Confidence)
	if err != nil {
		return chartErrorf("range %s tier %q: %v", gr.Key, tier.Name, err)
	}

	frequency := 1.0
	if tier.Frequency != nil {
		frequency = *tier.Frequency
	}
	if frequency <= 0 || frequency > 1 {
		return chartErrorf("range %s tier %q: frequency %v out of range (0,1]", gr.Key, tier.Name, frequency)
	}

	for _, notation := range tier.Hands {
		entry := Entry{
			Action:     action,
			Confidence: confidence,
			Frequency:  frequency,
		}
		if err := gr.add(notation, entry); err != nil {
			return chartErrorf("range %s tier %q: %v", gr.Key, tier.Name, err)
		}
	}
	return nil
}

// DefaultChart parses the chart embedded in the binary.
func DefaultChart() (*Chart, error) {
	return ParseChart(defaultChartHCL, "chart.hcl")
}

// LoadChartFile parses a chart from an HCL file on disk.
func LoadChartFile(path string) (*Chart, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read chart: %w", err)
	}
	return ParseChart(src, path)
}
