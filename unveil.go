package cronista

import (
	"fmt"

	"github.com/b-rodrigues/cronista/diff"
)

// Fields accepted by Unveil.
const (
	FieldValue = "value"
	FieldLog   = "log_df"
	FieldLines = "lines"
)

// Unveil projects a single field out of a chronicle. "value" yields
// the unwrapped contained value, or nil when the chain failed;
// "log_df" yields the detailed log rows; "lines" yields the formatted
// log lines. Any other field name is an error. Unveil never panics on
// a well-formed chronicle.
func Unveil[T any](c Chronicle[T], what string) (any, error) {
	switch what {
	case FieldValue:
		if v, ok := c.value.Get(); ok {
			return v, nil
		}
		return nil, nil
	case FieldLog:
		return c.Log(), nil
	case FieldLines:
		return c.ReadLog(), nil
	default:
		return nil, fmt.Errorf(`unveil: unknown field %q (want "value", "log_df" or "lines")`, what)
	}
}

// ReadLog returns the chronicle's formatted log lines in execution
// order.
func ReadLog[T any](c Chronicle[T]) []string {
	return c.ReadLog()
}

// InspectorRecord pairs a step with the inspector value recorded for
// it.
type InspectorRecord struct {
	Step     int    `json:"step"`
	Function string `json:"function"`
	Value    any    `json:"value"`
}

// CheckG returns the inspector values recorded across the chain, in
// execution order. Steps without one are omitted; a chain recorded
// without inspectors yields an empty result.
func CheckG[T any](c Chronicle[T]) []InspectorRecord {
	var out []InspectorRecord
	for _, e := range c.log {
		if e.Inspector != nil {
			out = append(out, InspectorRecord{Step: e.Step, Function: e.Function, Value: e.Inspector})
		}
	}
	return out
}

// DiffRecord pairs a step with its recorded diff artifact.
type DiffRecord struct {
	Step     int            `json:"step"`
	Artifact *diff.Artifact `json:"artifact"`
}

// CheckDiff returns the diff artifacts recorded across the chain, in
// execution order. Steps without one are omitted.
func CheckDiff[T any](c Chronicle[T]) []DiffRecord {
	var out []DiffRecord
	for _, e := range c.log {
		if e.Diff != nil {
			out = append(out, DiffRecord{Step: e.Step, Artifact: e.Diff})
		}
	}
	return out
}
