package cronista

import (
	"fmt"
	"strings"

	"github.com/b-rodrigues/cronista/maybe"
)

// Chronicle is the aggregate result of one or more recorded steps: an
// outcome container plus the ordered log that produced it. Composition
// is value-producing — Bind never mutates its input — so intermediate
// chronicles can be kept and shared safely.
type Chronicle[T any] struct {
	value maybe.Maybe[T]
	log   []Entry
}

// Value returns the outcome container.
func (c Chronicle[T]) Value() maybe.Maybe[T] { return c.value }

// IsOK reports whether every step so far succeeded.
func (c Chronicle[T]) IsOK() bool { return c.value.IsJust() }

// Log returns a copy of the ordered log entries.
func (c Chronicle[T]) Log() []Entry {
	out := make([]Entry, len(c.log))
	copy(out, c.log)
	return out
}

// ReadLog returns the formatted one-line log, one line per entry, in
// execution order. Stable across calls.
func (c Chronicle[T]) ReadLog() []string {
	lines := make([]string, len(c.log))
	for i, e := range c.log {
		lines[i] = e.Line()
	}
	return lines
}

// String renders the human-readable summary: a status line, the value,
// and guidance on how to get at the pieces.
func (c Chronicle[T]) String() string {
	var b strings.Builder
	if v, ok := c.value.Get(); ok {
		b.WriteString("OK! Value computed successfully:\n")
		b.WriteString("---------------\n")
		fmt.Fprintf(&b, "Just(%s)\n", snapshot(v))
	} else {
		b.WriteString("NOK! Value computed unsuccessfully:\n")
		b.WriteString("---------------\n")
		b.WriteString("Nothing\n")
	}
	b.WriteString("\n---------------\n")
	b.WriteString("This is a chronicle object.\n")
	b.WriteString("Retrieve its value with Unveil(c, \"value\").\n")
	b.WriteString("Read its log with ReadLog(c).\n")
	return b.String()
}

// appendEntry returns a fresh log slice holding prior entries plus e.
// The input slice is never aliased, keeping composition pure.
func appendEntry(log []Entry, e Entry) []Entry {
	out := make([]Entry, len(log), len(log)+1)
	copy(out, log)
	return append(out, e)
}

// snapshotLimit caps the rendered size of values in summaries and diff
// snapshots so huge values do not bloat log entries.
const snapshotLimit = 2000

// snapshot renders v for display and diffing, truncated at
// snapshotLimit characters.
func snapshot(v any) string {
	s := fmt.Sprintf("%#v", v)
	if len(s) > snapshotLimit {
		return s[:snapshotLimit] + " ... [truncated]"
	}
	return s
}
