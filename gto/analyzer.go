package gto

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/preflop-tools/gtocoach/poker"
)

// Analyzer answers preflop decision queries against a parsed chart. It is
// stateless between calls; all state lives in the immutable Chart, so one
// Analyzer can serve concurrent callers without locking.
type Analyzer struct {
	chart *Chart
}

// NewAnalyzer creates an analyzer over a parsed chart. This is the process
// construction entry point: parse the chart once at startup, build the
// analyzer, and share it for the process lifetime.
func NewAnalyzer(chart *Chart) *Analyzer {
	return &Analyzer{chart: chart}
}

// Chart returns the underlying chart.
func (a *Analyzer) Chart() *Chart {
	return a.chart
}

// Analysis is the result of a single (hand, position, scenario) lookup.
type Analysis struct {
	Hand        poker.Hand
	Position    poker.Position
	Scenario    Scenario
	Action      Action
	Confidence  Confidence
	Frequency   float64
	Explanation string
}

// ToMap returns a plain key-value representation.
func (r Analysis) ToMap() map[string]any {
	return map[string]any{
		"hand":               r.Hand.ToMap(),
		"position":           r.Position.String(),
		"scenario":           r.Scenario.String(),
		"recommended_action": r.Action.String(),
		"confidence":         r.Confidence.String(),
		"frequency":          r.Frequency,
		"explanation":        r.Explanation,
	}
}

// Analyze resolves the recommended action for a hand in a position and
// scenario. Hands absent from every explicit range fold at low confidence.
// A (position, scenario) pair with no chart column is an
// UnknownScenarioError.
func (a *Analyzer) Analyze(hand poker.Hand, pos poker.Position, scenario Scenario) (Analysis, error) {
	gr, ok := a.chart.Range(pos, scenario)
	if !ok {
		return Analysis{}, &UnknownScenarioError{Position: pos, Scenario: scenario}
	}

	notation := hand.Notation()
	result := Analysis{
		Hand:     hand,
		Position: pos,
		Scenario: scenario,
	}

	if entry, ok := gr.Lookup(notation); ok {
		result.Action = entry.Action
		result.Confidence = entry.Confidence
		result.Frequency = entry.Frequency
		result.Explanation = explain(entry.Action, notation, pos)
	} else {
		result.Action = ActionFold
		result.Confidence = ConfidenceLow
		result.Frequency = 1.0
		result.Explanation = fmt.Sprintf("%s is not in any %s range for %s - fold by default", notation, scenario, pos)
	}

	return result, nil
}

// CompareAcrossPositions analyzes the same hand in every position the chart
// covers for the scenario, in stable acting order.
func (a *Analyzer) CompareAcrossPositions(hand poker.Hand, scenario Scenario) ([]Analysis, error) {
	positions := a.chart.PositionsFor(scenario)
	if len(positions) == 0 {
		return nil, &UnknownScenarioError{Scenario: scenario}
	}

	results := make([]Analysis, 0, len(positions))
	for _, pos := range positions {
		r, err := a.Analyze(hand, pos, scenario)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

// Validation is the result of checking a proposed action against the chart.
type Validation struct {
	Correct     bool
	Proposed    Action
	Recommended Action
	Explanation string
	Feedback    string
}

// ToMap returns a plain key-value representation.
func (v Validation) ToMap() map[string]any {
	return map[string]any{
		"is_correct":         v.Correct,
		"proposed_action":    v.Proposed.String(),
		"recommended_action": v.Recommended.String(),
		"explanation":        v.Explanation,
		"feedback":           v.Feedback,
	}
}

// ValidateAction compares a proposed chart-native action against the
// recommendation. Equality is exact on the Action enumerant; callers holding
// simplified user actions translate them via ParseSimpleAction and
// MatchesSimple before calling.
func (a *Analyzer) ValidateAction(hand poker.Hand, pos poker.Position, scenario Scenario, proposed Action) (Validation, error) {
	analysis, err := a.Analyze(hand, pos, scenario)
	if err != nil {
		return Validation{}, err
	}

	v := Validation{
		Correct:     proposed == analysis.Action,
		Proposed:    proposed,
		Recommended: analysis.Action,
		Explanation: analysis.Explanation,
	}
	if v.Correct {
		v.Feedback = fmt.Sprintf("Correct! %s is the GTO play here.", proposed)
	} else {
		v.Feedback = fmt.Sprintf("Not quite. GTO recommends %s instead of %s.", analysis.Action, proposed)
	}
	return v, nil
}

// Situation is a randomly generated training spot.
type Situation struct {
	Hand     poker.Hand
	Position poker.Position
	Scenario Scenario
	Analysis Analysis
}

// ToMap returns a plain key-value representation.
func (s Situation) ToMap() map[string]any {
	return map[string]any{
		"hand":        s.Hand.ToMap(),
		"position":    s.Position.ToMap(),
		"scenario":    s.Scenario.String(),
		"description": s.Scenario.Describe(s.Position),
		"analysis":    s.Analysis.ToMap(),
	}
}

// randomSituationAttempts bounds the rejection loop in RandomSituation. A
// correctly populated chart covers every non-BB position, so more than a
// couple of attempts already indicates a degenerate chart.
const randomSituationAttempts = 8

// RandomSituation draws a uniformly random hand, a random position, and a
// scenario the chart covers for that position. Position draws whose chart
// scenarios are empty are rejected and retried; after the attempt budget is
// exhausted the result is a NoValidScenarioError.
func (a *Analyzer) RandomSituation(rng *rand.Rand) (Situation, error) {
	all, err := poker.PositionsForTableSize(6)
	if err != nil {
		return Situation{}, err
	}

	var lastPos poker.Position
	for range randomSituationAttempts {
		pos := all[rng.IntN(len(all))]
		lastPos = pos

		var valid []Scenario
		for _, s := range a.chart.ScenariosFor(pos) {
			if s.ValidFor(pos) {
				valid = append(valid, s)
			}
		}
		if len(valid) == 0 {
			continue
		}
		scenario := valid[rng.IntN(len(valid))]

		deck := poker.NewShuffledDeck(rng)
		cards, err := deck.Deal(2)
		if err != nil {
			return Situation{}, err
		}
		hand, err := poker.NewHand(cards[0], cards[1])
		if err != nil {
			return Situation{}, err
		}

		analysis, err := a.Analyze(hand, pos, scenario)
		if err != nil {
			return Situation{}, err
		}
		return Situation{Hand: hand, Position: pos, Scenario: scenario, Analysis: analysis}, nil
	}

	return Situation{}, &NoValidScenarioError{Position: lastPos}
}

// RangeSummary summarizes one chart column: hands per action and the share
// of the 169 starting-hand classes played.
type RangeSummary struct {
	Position   poker.Position
	Scenario   Scenario
	ByAction   map[Action]int
	TotalHands int
	Percent    float64
}

// ToMap returns a plain key-value representation.
func (s RangeSummary) ToMap() map[string]any {
	byAction := make(map[string]any, len(s.ByAction))
	for a, n := range s.ByAction {
		byAction[a.String()] = n
	}
	return map[string]any{
		"position":         s.Position.String(),
		"scenario":         s.Scenario.String(),
		"action_breakdown": byAction,
		"total_hands":      s.TotalHands,
		"percentage":       s.Percent,
	}
}

// RangeSummary computes the action breakdown for a (position, scenario)
// column.
func (a *Analyzer) RangeSummary(pos poker.Position, scenario Scenario) (RangeSummary, error) {
	gr, ok := a.chart.Range(pos, scenario)
	if !ok {
		return RangeSummary{}, &UnknownScenarioError{Position: pos, Scenario: scenario}
	}

	summary := RangeSummary{
		Position: pos,
		Scenario: scenario,
		ByAction: make(map[Action]int),
	}
	gr.All(func(_ string, e Entry) bool {
		summary.ByAction[e.Action]++
		summary.TotalHands++
		return true
	})
	summary.Percent = float64(summary.TotalHands) / 169.0 * 100.0
	return summary, nil
}

// Scenarios lists, per position in acting order, the scenarios the chart
// covers.
func (a *Analyzer) Scenarios() map[poker.Position][]Scenario {
	all, _ := poker.PositionsForTableSize(6)
	out := make(map[poker.Position][]Scenario)
	for _, p := range all {
		if scns := a.chart.ScenariosFor(p); len(scns) > 0 {
			out[p] = scns
		}
	}
	return out
}

// explain renders the explanation template for a chart action.
func explain(action Action, notation string, pos poker.Position) string {
	switch action {
	case ActionRaise4BetAllIn:
		return fmt.Sprintf("%s is premium - raise and go all-in if 4-bet", notation)
	case ActionRaise4BetFold:
		return fmt.Sprintf("%s is strong - raise but fold to 4-bet", notation)
	case ActionRaiseCall:
		return fmt.Sprintf("%s can raise and call a 3-bet", notation)
	case ActionRaiseFold:
		return fmt.Sprintf("%s is marginal - raise but fold to 3-bet", notation)
	case ActionCall:
		return fmt.Sprintf("%s should call from %s", notation, pos)
	case ActionCallIP:
		return fmt.Sprintf("%s can call in position", notation)
	case ActionReraiseAllIn:
		return fmt.Sprintf("%s is premium - reraise and go all-in", notation)
	case ActionReraiseFold:
		return fmt.Sprintf("%s can reraise but fold to 4-bet", notation)
	case ActionFold:
		return fmt.Sprintf("%s should be folded from %s", notation, pos)
	default:
		return "No specific recommendation"
	}
}
