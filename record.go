package cronista

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/b-rodrigues/cronista/diff"
	"github.com/b-rodrigues/cronista/maybe"
)

// Step is a recorder-produced callable: it runs the wrapped function
// once and yields a fresh single-entry chronicle. Steps are opaque;
// only Record and MustRecord produce them, so a chain can never be
// composed from an arbitrary unwrapped function.
type Step[T, R any] struct {
	name string
	opts options
	fn   func(T) (R, error)
}

// Name returns the display name of the wrapped function.
func (s Step[T, R]) Name() string { return s.name }

// Record wraps fn into a Step. Configuration problems — an unknown
// strictness level or diff mode, or a nil fn — are reported here,
// eagerly, since they are programmer errors rather than runtime data.
func Record[T, R any](fn func(T) (R, error), opts ...Option) (Step[T, R], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if fn == nil {
		return Step[T, R]{}, errors.New("record: nil function")
	}
	if err := o.validate(); err != nil {
		return Step[T, R]{}, err
	}
	return Step[T, R]{name: o.name, opts: o, fn: fn}, nil
}

// MustRecord is Record for statically known-good configuration; it
// panics on a configuration error.
func MustRecord[T, R any](fn func(T) (R, error), opts ...Option) Step[T, R] {
	s, err := Record(fn, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Call executes the wrapped function with in and returns a one-entry
// chronicle. Failures of the wrapped function never escape to the
// caller: errors, panics and strictness violations all become a NOK
// entry with an absent value.
func (s Step[T, R]) Call(in T) Chronicle[R] {
	var inputSnap string
	if s.opts.diffMode != diff.ModeNone {
		inputSnap = snapshot(in)
	}

	start := time.Now()
	out, warnings, printed, runErr := s.invoke(in)
	elapsed := time.Since(start)

	ok := true
	var msg string
	switch {
	case runErr != nil:
		ok, msg = false, runErr.Error()
	case s.opts.strict >= StrictWarnings && len(warnings) > 0:
		ok, msg = false, "warning: "+warnings[0]
	case s.opts.strict == StrictOutput && strings.TrimSpace(printed) != "":
		ok, msg = false, "captured output: "+strings.TrimSpace(printed)
	default:
		msg = "success"
	}

	e := Entry{
		Step:      1,
		Function:  s.name,
		Message:   msg,
		StartTime: start,
		RunTime:   elapsed,
	}

	if !ok {
		e.Outcome = OutcomeNOK
		return Chronicle[R]{value: maybe.Nothing[R](), log: []Entry{e}}
	}

	e.Outcome = OutcomeOK
	if g := s.opts.inspector; g != nil {
		gv, gerr := g(out)
		if gerr != nil {
			gv = fmt.Sprintf("<inspector error: %v>", gerr)
		}
		e.Inspector = gv
	}
	if s.opts.diffMode != diff.ModeNone {
		e.Diff = diff.Compute(inputSnap, snapshot(out), s.opts.diffMode)
	}
	return Chronicle[R]{value: maybe.Just(out), log: []Entry{e}}
}

// invoke runs fn under its own capture scope, recovering panics into
// errors. The scope is released on every exit path, panics included,
// before the recover fires.
func (s Step[T, R]) invoke(in T) (out R, warnings []string, printed string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	// Every call owns a scope, even under StrictErrors where warnings
	// are discarded, so a Warnf from one call can never land in a
	// concurrent call's scope.
	scope := beginCapture(s.opts.strict == StrictOutput)
	defer func() {
		warnings, printed = scope.release()
	}()
	out, err = s.fn(in)
	return out, warnings, printed, err
}
