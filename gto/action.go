// Package gto implements the preflop chart representation and lookup engine:
// actions, scenarios, hand ranges, the chart parser and the analyzer.
package gto

import "fmt"

// Action is a chart-native preflop action label. Labels are opaque policy
// outcomes; no strength ordering is assumed between them.
type Action int

const (
	ActionUnknown Action = iota
	ActionFold
	ActionCall
	ActionCallIP
	ActionRaiseFold
	ActionRaiseCall
	ActionRaise4BetFold
	ActionRaise4BetAllIn
	ActionReraiseFold
	ActionReraiseAllIn
)

// actions lists every valid chart label in declaration order.
var actions = []Action{
	ActionFold,
	ActionCall,
	ActionCallIP,
	ActionRaiseFold,
	ActionRaiseCall,
	ActionRaise4BetFold,
	ActionRaise4BetAllIn,
	ActionReraiseFold,
	ActionReraiseAllIn,
}

// String returns the chart label for the action.
func (a Action) String() string {
	switch a {
	case ActionFold:
		return "fold"
	case ActionCall:
		return "call"
	case ActionCallIP:
		return "call_ip"
	case ActionRaiseFold:
		return "raise/fold"
	case ActionRaiseCall:
		return "raise/call"
	case ActionRaise4BetFold:
		return "raise/4-bet/fold"
	case ActionRaise4BetAllIn:
		return "raise/4-bet/all in"
	case ActionReraiseFold:
		return "reraise/fold"
	case ActionReraiseAllIn:
		return "reraise/all in"
	default:
		return "unknown"
	}
}

// ParseAction converts a chart label to an Action. Matching is exact; the
// simplified user-facing labels go through ParseSimpleAction instead.
func ParseAction(s string) (Action, error) {
	for _, a := range actions {
		if a.String() == s {
			return a, nil
		}
	}
	return ActionUnknown, fmt.Errorf("invalid action %q", s)
}

// ToMap returns a plain key-value representation.
func (a Action) ToMap() map[string]any {
	return map[string]any{
		"label":  a.String(),
		"simple": a.Simple().String(),
	}
}

// SimpleAction is the coarse action vocabulary outer frontends present to
// users: fold, call, raise, reraise, all-in.
type SimpleAction int

const (
	SimpleUnknown SimpleAction = iota
	SimpleFold
	SimpleCall
	SimpleRaise
	SimpleReraise
	SimpleAllIn
)

func (s SimpleAction) String() string {
	switch s {
	case SimpleFold:
		return "fold"
	case SimpleCall:
		return "call"
	case SimpleRaise:
		return "raise"
	case SimpleReraise:
		return "reraise"
	case SimpleAllIn:
		return "all-in"
	default:
		return "unknown"
	}
}

// ParseSimpleAction converts a simplified user action to a SimpleAction.
func ParseSimpleAction(s string) (SimpleAction, error) {
	switch s {
	case "fold":
		return SimpleFold, nil
	case "call":
		return SimpleCall, nil
	case "raise":
		return SimpleRaise, nil
	case "reraise", "3bet", "3-bet":
		return SimpleReraise, nil
	case "all-in", "allin", "all in":
		return SimpleAllIn, nil
	default:
		return SimpleUnknown, fmt.Errorf("invalid simple action %q", s)
	}
}

// Simple returns the opening verb of a chart label: the first move the label
// instructs the player to make. "raise/4-bet/all in" opens with a raise, so
// it simplifies to raise, not all-in.
func (a Action) Simple() SimpleAction {
	switch a {
	case ActionFold:
		return SimpleFold
	case ActionCall, ActionCallIP:
		return SimpleCall
	case ActionRaiseFold, ActionRaiseCall, ActionRaise4BetFold, ActionRaise4BetAllIn:
		return SimpleRaise
	case ActionReraiseFold, ActionReraiseAllIn:
		return SimpleReraise
	default:
		return SimpleUnknown
	}
}

// MatchesSimple is the single sanctioned equivalence between simplified user
// actions and chart labels. A simple action matches a chart label when it is
// the label's opening verb, except SimpleAllIn, which matches only labels
// whose terminal branch is an all-in. This is the normalization function all
// frontends must share; nothing else performs partial matching.
func MatchesSimple(simple SimpleAction, chart Action) bool {
	if simple == SimpleAllIn {
		return chart == ActionRaise4BetAllIn || chart == ActionReraiseAllIn
	}
	return simple == chart.Simple()
}
