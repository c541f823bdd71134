package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/coder/quartz"

	"github.com/preflop-tools/gtocoach/gto"
	"github.com/preflop-tools/gtocoach/internal/drill"
	"github.com/preflop-tools/gtocoach/internal/randutil"
)

// DrillCmd runs an interactive prompt/response training loop on random
// situations.
type DrillCmd struct {
	Hands int   `short:"n" default:"20" help:"Number of situations to drill"`
	Seed  int64 `help:"Random seed (0 uses the current time)"`
}

func (c *DrillCmd) Run(ctx *Context) error {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := randutil.New(seed)
	ctx.Logger.Debug("starting drill", "hands", c.Hands, "seed", seed)

	session := drill.NewSession(quartz.NewReal())
	scanner := bufio.NewScanner(os.Stdin)

	for i := 0; i < c.Hands; i++ {
		situation, err := ctx.Analyzer.RandomSituation(rng)
		if err != nil {
			return err
		}

		fmt.Printf("\n[%d/%d] %s\n", i+1, c.Hands, situation.Scenario.Describe(situation.Position))
		fmt.Printf("Your hand: %s\n", ctx.Styles.Hand(situation.Hand))
		fmt.Print("Your action (fold/call/raise/reraise/all-in, or a chart label): ")

		session.Begin()
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" || input == "quit" || input == "q" {
			break
		}

		correct, err := c.score(ctx, situation, input)
		if err != nil {
			fmt.Printf("  %v\n", err)
			i--
			continue
		}
		session.Record(correct)

		if correct {
			fmt.Println(ctx.Styles.Validation(gto.Validation{
				Correct:     true,
				Proposed:    situation.Analysis.Action,
				Recommended: situation.Analysis.Action,
				Explanation: situation.Analysis.Explanation,
				Feedback:    fmt.Sprintf("Correct! %s is the GTO play here.", situation.Analysis.Action),
			}))
		} else {
			fmt.Println(ctx.Styles.Validation(gto.Validation{
				Correct:     false,
				Recommended: situation.Analysis.Action,
				Explanation: situation.Analysis.Explanation,
				Feedback:    fmt.Sprintf("Not quite. GTO recommends %s.", situation.Analysis.Action),
			}))
		}
	}

	if session.Total() > 0 {
		fmt.Printf("\nSession: %s\n", session.Summary())
	}
	return scanner.Err()
}

// score checks the user's input against the situation's recommendation,
// accepting either an exact chart label or a simplified action.
func (c *DrillCmd) score(ctx *Context, situation gto.Situation, input string) (bool, error) {
	if action, err := gto.ParseAction(input); err == nil {
		v, err := ctx.Analyzer.ValidateAction(situation.Hand, situation.Position, situation.Scenario, action)
		if err != nil {
			return false, err
		}
		return v.Correct, nil
	}

	simple, err := gto.ParseSimpleAction(input)
	if err != nil {
		return false, fmt.Errorf("unrecognized action %q, try again", input)
	}
	return gto.MatchesSimple(simple, situation.Analysis.Action), nil
}
