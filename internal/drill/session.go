// Package drill tracks score and timing for a training session. It lives
// outside the core engine so the analyzer stays stateless.
package drill

import (
	"fmt"
	"time"

	"github.com/coder/quartz"
)

// Answer records the outcome of one drilled situation.
type Answer struct {
	Correct bool
	Elapsed time.Duration
}

// Session accumulates answers for one training run. Timing goes through a
// quartz.Clock so tests can drive it with a mock.
type Session struct {
	clock      quartz.Clock
	started    time.Time
	questionAt time.Time
	pending    bool

	answers    []Answer
	correct    int
	streak     int
	bestStreak int
}

// NewSession creates a session using the given clock.
func NewSession(clock quartz.Clock) *Session {
	return &Session{
		clock:   clock,
		started: clock.Now(),
	}
}

// Begin marks the moment a situation is shown; the next Record measures the
// answer time from here.
func (s *Session) Begin() {
	s.questionAt = s.clock.Now()
	s.pending = true
}

// Record scores an answer. Calling Record without a preceding Begin records
// a zero elapsed time.
func (s *Session) Record(correct bool) Answer {
	var elapsed time.Duration
	if s.pending {
		elapsed = s.clock.Since(s.questionAt)
		s.pending = false
	}

	a := Answer{Correct: correct, Elapsed: elapsed}
	s.answers = append(s.answers, a)
	if correct {
		s.correct++
		s.streak++
		if s.streak > s.bestStreak {
			s.bestStreak = s.streak
		}
	} else {
		s.streak = 0
	}
	return a
}

// Total returns the number of answers recorded.
func (s *Session) Total() int {
	return len(s.answers)
}

// Correct returns the number of correct answers.
func (s *Session) Correct() int {
	return s.correct
}

// Streak returns the current run of consecutive correct answers.
func (s *Session) Streak() int {
	return s.streak
}

// BestStreak returns the longest run of consecutive correct answers.
func (s *Session) BestStreak() int {
	return s.bestStreak
}

// Accuracy returns the fraction of correct answers, zero when nothing has
// been answered yet.
func (s *Session) Accuracy() float64 {
	if len(s.answers) == 0 {
		return 0
	}
	return float64(s.correct) / float64(len(s.answers))
}

// Elapsed returns the wall time since the session started.
func (s *Session) Elapsed() time.Duration {
	return s.clock.Since(s.started)
}

// AverageAnswerTime returns the mean time per recorded answer.
func (s *Session) AverageAnswerTime() time.Duration {
	if len(s.answers) == 0 {
		return 0
	}
	var total time.Duration
	for _, a := range s.answers {
		total += a.Elapsed
	}
	return total / time.Duration(len(s.answers))
}

// Summary renders a one-line session result.
func (s *Session) Summary() string {
	return fmt.Sprintf("%d/%d correct (%.0f%%), best streak %d, avg %.1fs per answer",
		s.correct, len(s.answers), s.Accuracy()*100, s.bestStreak,
		s.AverageAnswerTime().Seconds())
}
