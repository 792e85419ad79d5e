package cronista

import (
	"fmt"

	"github.com/b-rodrigues/cronista/diff"
)

// Strictness controls which conditions fail a recorded step. It is
// fixed at recorder construction time.
type Strictness int

const (
	// StrictErrors fails a step only on a returned error or a panic.
	StrictErrors Strictness = iota + 1
	// StrictWarnings additionally fails on warnings emitted via Warnf.
	StrictWarnings
	// StrictOutput additionally fails when the step writes to standard
	// output.
	StrictOutput
)

func (s Strictness) String() string {
	switch s {
	case StrictErrors:
		return "errors"
	case StrictWarnings:
		return "warnings"
	case StrictOutput:
		return "output"
	default:
		return fmt.Sprintf("strictness(%d)", int(s))
	}
}

func (s Strictness) valid() bool {
	return s >= StrictErrors && s <= StrictOutput
}

// AnonymousName is the display name recorded when WithName is not
// given. There is no reflection fallback: callers name their steps.
const AnonymousName = "<anonymous>"

// Option configures a recorder at construction time.
type Option func(*options)

type options struct {
	name      string
	strict    Strictness
	inspector func(any) (any, error)
	diffMode  diff.Mode
}

func defaultOptions() options {
	return options{name: AnonymousName, strict: StrictErrors}
}

// WithName sets the display name used for the wrapped function in log
// entries.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithStrictness sets the failure policy for the recorder.
func WithStrictness(s Strictness) Option {
	return func(o *options) { o.strict = s }
}

// WithInspector attaches g, applied to each successful output; its
// result is recorded on the log entry. An error from g is recorded in
// place of the value and does not fail the step.
func WithInspector(g func(v any) (any, error)) Option {
	return func(o *options) { o.inspector = g }
}

// WithDiff records a comparison between snapshots of the step's input
// and output in the given mode.
func WithDiff(mode diff.Mode) Option {
	return func(o *options) { o.diffMode = mode }
}

func (o options) validate() error {
	if !o.strict.valid() {
		return fmt.Errorf("record %q: invalid strictness %d (want 1..3)", o.name, int(o.strict))
	}
	if !o.diffMode.Valid() {
		return fmt.Errorf("record %q: invalid diff mode %d", o.name, int(o.diffMode))
	}
	return nil
}
