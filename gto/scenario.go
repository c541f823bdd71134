package gto

import (
	"fmt"

	"github.com/preflop-tools/gtocoach/poker"
)

// Scenario tags the preflop action history preceding the current decision.
type Scenario int

const (
	ScenarioUnknown Scenario = iota
	// FirstIn: no one has entered the pot yet.
	FirstIn
	// VsButtonRaise: the button or small blind has open-raised.
	VsButtonRaise
	// VsCutoffRaise: the cutoff has open-raised.
	VsCutoffRaise
	// VsMiddlePositionRaise: middle position has open-raised.
	VsMiddlePositionRaise
)

var scenarios = []Scenario{FirstIn, VsButtonRaise, VsCutoffRaise, VsMiddlePositionRaise}

func (s Scenario) String() string {
	switch s {
	case FirstIn:
		return "first_in"
	case VsButtonRaise:
		return "vs_button_raise"
	case VsCutoffRaise:
		return "vs_cutoff_raise"
	case VsMiddlePositionRaise:
		return "vs_middle_position_raise"
	default:
		return "unknown"
	}
}

// ParseScenario converts a scenario tag to a Scenario. The legacy tags used
// by the first chart revision ("vs_btn_sb", "vs_co", "vs_mp3") are accepted
// as aliases.
func ParseScenario(s string) (Scenario, error) {
	switch s {
	case "first_in":
		return FirstIn, nil
	case "vs_button_raise", "vs_btn_sb":
		return VsButtonRaise, nil
	case "vs_cutoff_raise", "vs_co":
		return VsCutoffRaise, nil
	case "vs_middle_position_raise", "vs_mp3", "vs_mp":
		return VsMiddlePositionRaise, nil
	default:
		return ScenarioUnknown, fmt.Errorf("invalid scenario %q", s)
	}
}

// Describe returns a human-readable description of the scenario from the
// given position's point of view.
func (s Scenario) Describe(p poker.Position) string {
	switch s {
	case FirstIn:
		return fmt.Sprintf("You are %s and no one has raised yet.", p)
	case VsButtonRaise:
		return fmt.Sprintf("You are %s and the Button or Small Blind has raised.", p)
	case VsCutoffRaise:
		return fmt.Sprintf("You are %s and the Cut Off has raised.", p)
	case VsMiddlePositionRaise:
		return fmt.Sprintf("You are %s and Middle Position has raised.", p)
	default:
		return fmt.Sprintf("You are %s.", p)
	}
}

// ValidFor reports whether the scenario makes sense for the given position.
// A raise scenario requires the raiser to act before the defender, so
// "vs_button_raise" is meaningless for the button itself or anyone earlier.
func (s Scenario) ValidFor(p poker.Position) bool {
	switch s {
	case FirstIn:
		// The big blind cannot be first in: everyone folding ends the hand.
		return p != poker.BB && p != poker.UnknownPosition
	case VsButtonRaise:
		return p == poker.SB || p == poker.BB
	case VsCutoffRaise:
		return p.Order() > poker.CO.Order()
	case VsMiddlePositionRaise:
		return p.Order() > poker.MP.Order()
	default:
		return false
	}
}
