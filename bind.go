package cronista

import "github.com/b-rodrigues/cronista/maybe"

// shortCircuitMessage is recorded on steps skipped because an earlier
// step in the chain already failed.
const shortCircuitMessage = "not executed: prior step failed"

// Bind composes a chronicle with a further recorded step. If the
// chronicle carries a value, the step runs on it and its single log
// entry is renumbered and appended. If the value is absent, the step
// is never invoked: a NOK short-circuit entry with zero timing is
// appended instead.
//
// Bind is a pure function of its inputs. The input chronicle is left
// untouched and the returned chronicle owns a fresh log slice, so
// intermediate chronicles can be bound again or kept around.
func Bind[T, R any](c Chronicle[T], step Step[T, R]) Chronicle[R] {
	next := len(c.log) + 1

	v, ok := c.value.Get()
	if !ok {
		e := Entry{
			Step:     next,
			Outcome:  OutcomeNOK,
			Function: step.Name(),
			Message:  shortCircuitMessage,
		}
		return Chronicle[R]{value: maybe.Nothing[R](), log: appendEntry(c.log, e)}
	}

	res := step.Call(v)
	e := res.log[0]
	e.Step = next
	return Chronicle[R]{value: res.value, log: appendEntry(c.log, e)}
}
