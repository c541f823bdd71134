// Package display renders analyzer results and range grids for the CLI.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/preflop-tools/gtocoach/gto"
	"github.com/preflop-tools/gtocoach/poker"
)

// Styles contains styling for CLI output
type Styles struct {
	Header    lipgloss.Style
	SubHeader lipgloss.Style
	CardRed   lipgloss.Style
	CardBlack lipgloss.Style
	Correct   lipgloss.Style
	Wrong     lipgloss.Style
	Muted     lipgloss.Style
	Action    map[gto.Action]lipgloss.Style
	FoldCell  lipgloss.Style
	color     bool
}

// NewStyles creates the display styles. When the terminal reports no color
// support every style collapses to plain text.
func NewStyles() *Styles {
	s := &Styles{
		color: termenv.EnvColorProfile() != termenv.Ascii,
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 2).
			Bold(true),
		SubHeader: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		CardRed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		CardBlack: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")).
			Bold(true),
		Correct: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Wrong: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		FoldCell: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#444444")),
	}
	s.Action = map[gto.Action]lipgloss.Style{
		gto.ActionRaise4BetAllIn: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87")).Bold(true),
		gto.ActionRaise4BetFold:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF875F")).Bold(true),
		gto.ActionRaiseCall:      lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")),
		gto.ActionRaiseFold:      lipgloss.NewStyle().Foreground(lipgloss.Color("#87D787")),
		gto.ActionCall:           lipgloss.NewStyle().Foreground(lipgloss.Color("#74B9FF")),
		gto.ActionCallIP:         lipgloss.NewStyle().Foreground(lipgloss.Color("#74B9FF")),
		gto.ActionReraiseAllIn:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87")).Bold(true),
		gto.ActionReraiseFold:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF875F")),
	}
	return s
}

func (s *Styles) render(style lipgloss.Style, text string) string {
	if !s.color {
		return text
	}
	return style.Render(text)
}

// Card renders a single card with red/black suit coloring.
func (s *Styles) Card(c poker.Card) string {
	if c.IsRed() {
		return s.render(s.CardRed, c.String())
	}
	return s.render(s.CardBlack, c.String())
}

// Hand renders both hole cards plus the class notation.
func (s *Styles) Hand(h poker.Hand) string {
	return fmt.Sprintf("%s %s (%s)", s.Card(h.High), s.Card(h.Low), h.Notation())
}

// Analysis renders a single analysis result.
func (s *Styles) Analysis(a gto.Analysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", s.render(s.Header, fmt.Sprintf(" %s | %s ", a.Position, a.Scenario)))
	fmt.Fprintf(&b, "Hand:       %s\n", s.Hand(a.Hand))
	fmt.Fprintf(&b, "Action:     %s\n", s.actionLabel(a.Action))
	fmt.Fprintf(&b, "Confidence: %s\n", a.Confidence)
	fmt.Fprintf(&b, "%s\n", s.render(s.Muted, a.Explanation))
	return b.String()
}

// Validation renders a validation verdict.
func (s *Styles) Validation(v gto.Validation) string {
	var b strings.Builder
	if v.Correct {
		fmt.Fprintf(&b, "%s\n", s.render(s.Correct, "CORRECT"))
	} else {
		fmt.Fprintf(&b, "%s\n", s.render(s.Wrong, "INCORRECT"))
	}
	fmt.Fprintf(&b, "%s\n", v.Feedback)
	fmt.Fprintf(&b, "%s\n", s.render(s.Muted, v.Explanation))
	return b.String()
}

// Comparison renders per-position recommendations for one hand.
func (s *Styles) Comparison(results []gto.Analysis) string {
	var b strings.Builder
	for _, r := range results {
		fmt.Fprintf(&b, "%-4s %s\n", r.Position, s.actionLabel(r.Action))
	}
	return b.String()
}

// Summary renders a range summary breakdown.
func (s *Styles) Summary(sum gto.RangeSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", s.render(s.SubHeader, fmt.Sprintf("%s / %s", sum.Position, sum.Scenario)))
	for action, count := range sum.ByAction {
		fmt.Fprintf(&b, "  %-20s %3d hands\n", s.actionLabel(action), count)
	}
	fmt.Fprintf(&b, "  %-20s %3d hands (%.1f%% of 169)\n", "total", sum.TotalHands, sum.Percent)
	return b.String()
}

// Grid renders the 13x13 starting-hand matrix for one chart column: pairs on
// the diagonal, suited hands above it, offsuit hands below.
func (s *Styles) Grid(gr *gto.GTORange) string {
	ranks := []poker.Rank{
		poker.Ace, poker.King, poker.Queen, poker.Jack, poker.Ten,
		poker.Nine, poker.Eight, poker.Seven, poker.Six,
		poker.Five, poker.Four, poker.Three, poker.Two,
	}

	var b strings.Builder
	b.WriteString("     ")
	for _, r := range ranks {
		fmt.Fprintf(&b, "%-5s", r)
	}
	b.WriteString("\n")

	for i, row := range ranks {
		fmt.Fprintf(&b, "%-5s", row)
		for j, col := range ranks {
			var notation string
			switch {
			case i == j:
				notation = row.String() + col.String()
			case i < j:
				notation = row.String() + col.String() + "s"
			default:
				notation = col.String() + row.String() + "o"
			}
			b.WriteString(s.cell(gr, notation))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (s *Styles) cell(gr *gto.GTORange, notation string) string {
	text := fmt.Sprintf("%-5s", notation)
	entry, ok := gr.Lookup(notation)
	if !ok {
		return s.render(s.FoldCell, text)
	}
	if style, ok := s.Action[entry.Action]; ok {
		return s.render(style, text)
	}
	return text
}

func (s *Styles) actionLabel(a gto.Action) string {
	if style, ok := s.Action[a]; ok {
		return s.render(style, a.String())
	}
	return a.String()
}
