package main

import (
	"errors"
	"fmt"

	"github.com/preflop-tools/gtocoach/gto"
	"github.com/preflop-tools/gtocoach/poker"
)

// AnalyzeCmd looks up the recommended action for a concrete hand.
type AnalyzeCmd struct {
	Hand     string `arg:"" help:"Hole cards, e.g. AhKs"`
	Position string `short:"p" default:"BTN" help:"Table position (UTG, MP, CO, BTN, SB, BB)"`
	Scenario string `short:"s" default:"first_in" help:"Scenario tag"`
}

func (c *AnalyzeCmd) Run(ctx *Context) error {
	hand, pos, scenario, err := parseQuery(c.Hand, c.Position, c.Scenario)
	if err != nil {
		return err
	}

	analysis, err := ctx.Analyzer.Analyze(hand, pos, scenario)
	if err != nil {
		return describeLookupError(err)
	}
	fmt.Print(ctx.Styles.Analysis(analysis))
	return nil
}

// ValidateCmd checks a proposed action against the chart recommendation.
type ValidateCmd struct {
	Hand     string `arg:"" help:"Hole cards, e.g. AhKs"`
	Action   string `arg:"" help:"Proposed action: a chart label or fold/call/raise/reraise/all-in"`
	Position string `short:"p" default:"BTN" help:"Table position"`
	Scenario string `short:"s" default:"first_in" help:"Scenario tag"`
}

func (c *ValidateCmd) Run(ctx *Context) error {
	hand, pos, scenario, err := parseQuery(c.Hand, c.Position, c.Scenario)
	if err != nil {
		return err
	}

	proposed, err := resolveProposedAction(ctx, hand, pos, scenario, c.Action)
	if err != nil {
		return err
	}

	v, err := ctx.Analyzer.ValidateAction(hand, pos, scenario, proposed)
	if err != nil {
		return describeLookupError(err)
	}
	fmt.Print(ctx.Styles.Validation(v))
	return nil
}

// resolveProposedAction turns user input into a chart-native Action. Exact
// chart labels pass through; simplified labels are normalized against the
// chart recommendation via the shared equivalence function.
func resolveProposedAction(ctx *Context, hand poker.Hand, pos poker.Position, scenario gto.Scenario, input string) (gto.Action, error) {
	if action, err := gto.ParseAction(input); err == nil {
		return action, nil
	}

	simple, err := gto.ParseSimpleAction(input)
	if err != nil {
		return gto.ActionUnknown, fmt.Errorf("unrecognized action %q", input)
	}

	analysis, err := ctx.Analyzer.Analyze(hand, pos, scenario)
	if err != nil {
		return gto.ActionUnknown, describeLookupError(err)
	}
	if gto.MatchesSimple(simple, analysis.Action) {
		return analysis.Action, nil
	}
	// The simplified action does not match the recommendation; validate the
	// closest distinct label so feedback names what the user actually chose.
	return simpleFallback(simple), nil
}

// simpleFallback maps a simplified action to a representative chart label
// for feedback purposes.
func simpleFallback(simple gto.SimpleAction) gto.Action {
	switch simple {
	case gto.SimpleCall:
		return gto.ActionCall
	case gto.SimpleRaise:
		return gto.ActionRaiseFold
	case gto.SimpleReraise:
		return gto.ActionReraiseFold
	case gto.SimpleAllIn:
		return gto.ActionReraiseAllIn
	default:
		return gto.ActionFold
	}
}

// CompareCmd shows the recommendation for one hand in every position the
// chart covers for a scenario.
type CompareCmd struct {
	Hand     string `arg:"" help:"Hole cards, e.g. AhKs"`
	Scenario string `short:"s" default:"first_in" help:"Scenario tag"`
}

func (c *CompareCmd) Run(ctx *Context) error {
	hand, err := poker.ParseHand(c.Hand)
	if err != nil {
		return err
	}
	scenario, err := gto.ParseScenario(c.Scenario)
	if err != nil {
		return err
	}

	results, err := ctx.Analyzer.CompareAcrossPositions(hand, scenario)
	if err != nil {
		return describeLookupError(err)
	}
	fmt.Printf("%s in scenario %s:\n", hand.Notation(), scenario)
	fmt.Print(ctx.Styles.Comparison(results))
	return nil
}

// RangesCmd renders the 13x13 grid and summary for one chart column.
type RangesCmd struct {
	Position string `arg:"" help:"Table position"`
	Scenario string `short:"s" default:"first_in" help:"Scenario tag"`
}

func (c *RangesCmd) Run(ctx *Context) error {
	pos, err := poker.ParsePosition(c.Position)
	if err != nil {
		return err
	}
	scenario, err := gto.ParseScenario(c.Scenario)
	if err != nil {
		return err
	}

	gr, ok := ctx.Analyzer.Chart().Range(pos, scenario)
	if !ok {
		return describeLookupError(&gto.UnknownScenarioError{Position: pos, Scenario: scenario})
	}

	fmt.Print(ctx.Styles.Grid(gr))
	summary, err := ctx.Analyzer.RangeSummary(pos, scenario)
	if err != nil {
		return err
	}
	fmt.Print(ctx.Styles.Summary(summary))
	return nil
}

// ScenariosCmd lists chart coverage per position.
type ScenariosCmd struct{}

func (c *ScenariosCmd) Run(ctx *Context) error {
	coverage := ctx.Analyzer.Scenarios()
	positions, _ := poker.PositionsForTableSize(6)
	for _, pos := range positions {
		scns, ok := coverage[pos]
		if !ok {
			continue
		}
		fmt.Printf("%-4s", pos)
		for _, s := range scns {
			fmt.Printf(" %s", s)
		}
		fmt.Println()
	}
	return nil
}

// CheckCmd validates a chart file without running any queries.
type CheckCmd struct {
	Path string `arg:"" optional:"" type:"path" help:"Chart file to validate (defaults to the loaded chart)"`
}

func (c *CheckCmd) Run(ctx *Context) error {
	chart := ctx.Analyzer.Chart()
	if c.Path != "" {
		var err error
		chart, err = gto.LoadChartFile(c.Path)
		if err != nil {
			return err
		}
	}
	fmt.Printf("chart %q ok: %d ranges\n", chart.Name, len(chart.Keys()))
	return nil
}

// ExportCmd dumps every parsed chart column as text.
type ExportCmd struct{}

func (c *ExportCmd) Run(ctx *Context) error {
	chart := ctx.Analyzer.Chart()
	for _, key := range chart.Keys() {
		gr, _ := chart.Range(key.Position, key.Scenario)
		fmt.Printf("%s (%d hands)\n", key, gr.Len())
		gr.All(func(notation string, e gto.Entry) bool {
			fmt.Printf("  %-4s %-20s %s\n", notation, e.Action, e.Confidence)
			return true
		})
	}
	return nil
}

func parseQuery(handStr, posStr, scnStr string) (poker.Hand, poker.Position, gto.Scenario, error) {
	hand, err := poker.ParseHand(handStr)
	if err != nil {
		return poker.Hand{}, poker.UnknownPosition, gto.ScenarioUnknown, err
	}
	pos, err := poker.ParsePosition(posStr)
	if err != nil {
		return poker.Hand{}, poker.UnknownPosition, gto.ScenarioUnknown, err
	}
	scenario, err := gto.ParseScenario(scnStr)
	if err != nil {
		return poker.Hand{}, poker.UnknownPosition, gto.ScenarioUnknown, err
	}
	return hand, pos, scenario, nil
}

// describeLookupError adds the available alternatives to an unknown scenario
// error so the CLI user can correct the query.
func describeLookupError(err error) error {
	var unknown *gto.UnknownScenarioError
	if errors.As(err, &unknown) {
		return fmt.Errorf("%w (run 'gtocoach scenarios' to list chart coverage)", err)
	}
	return err
}
