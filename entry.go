package cronista

import (
	"fmt"
	"time"

	"github.com/b-rodrigues/cronista/diff"
)

// Outcome classifies a log entry.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeNOK
)

// String returns the long display form used in detailed log rows.
func (o Outcome) String() string {
	if o == OutcomeOK {
		return "OK! Success"
	}
	return "NOK! Failure"
}

// word is the short form used in one-line log output.
func (o Outcome) word() string {
	if o == OutcomeOK {
		return "OK"
	}
	return "NOK"
}

// MarshalJSON serializes the outcome as its display string.
func (o Outcome) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", o.String())), nil
}

// UnmarshalJSON accepts the display strings produced by MarshalJSON.
func (o *Outcome) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"OK! Success"`:
		*o = OutcomeOK
	case `"NOK! Failure"`:
		*o = OutcomeNOK
	default:
		return fmt.Errorf("unknown outcome: %s", data)
	}
	return nil
}

// Entry is one immutable record describing a single recorded step. It
// is created exactly once, when the step executes or is
// short-circuited, and never changes afterwards.
type Entry struct {
	Step      int            `json:"step"` // 1-based position in the chain
	Outcome   Outcome        `json:"outcome"`
	Function  string         `json:"function"` // display name of the wrapped function
	Message   string         `json:"message,omitempty"`
	StartTime time.Time      `json:"start_time"` // zero for short-circuited steps
	RunTime   time.Duration  `json:"run_time"`   // zero for short-circuited steps
	Inspector any            `json:"inspector,omitempty"`
	Diff      *diff.Artifact `json:"diff,omitempty"`
}

// Executed reports whether the wrapped function actually ran, as
// opposed to being skipped after a prior failure.
func (e Entry) Executed() bool {
	return !e.StartTime.IsZero()
}

// Line renders the entry in the one-line log format:
//
//	OK `sqrt` at 15:04:05 (0.001s)
//
// Short-circuited steps render a fixed phrase instead of timing.
func (e Entry) Line() string {
	if !e.Executed() {
		return fmt.Sprintf("NOK `%s` not executed: prior step failed", e.Function)
	}
	return fmt.Sprintf("%s `%s` at %s (%.3fs)",
		e.Outcome.word(), e.Function, e.StartTime.Format("15:04:05"), e.RunTime.Seconds())
}
