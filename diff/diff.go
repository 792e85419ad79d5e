// Package diff computes comparison artifacts between textual snapshots
// of a recorded step's input and output. The artifact is opaque to the
// recording core, which only stores and forwards it.
package diff

import (
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Mode selects how much of the comparison is retained.
type Mode int

const (
	ModeNone    Mode = iota // no diff recorded
	ModeSummary             // insertion/deletion/match counts only
	ModeFull                // counts plus a patch text
)

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeSummary:
		return "summary"
	case ModeFull:
		return "full"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeNone || m == ModeSummary || m == ModeFull
}

// ParseMode converts a string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "none", "":
		return ModeNone, nil
	case "summary":
		return ModeSummary, nil
	case "full":
		return ModeFull, nil
	default:
		return 0, fmt.Errorf("unknown diff mode: %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler so modes serialize as
// their names.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid diff mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Artifact is the comparison result stored on a log entry. Counts are
// in character units.
type Artifact struct {
	Mode       Mode   `json:"mode"`
	Insertions int    `json:"insertions"`      // characters only in the output
	Deletions  int    `json:"deletions"`       // characters only in the input
	Matches    int    `json:"matches"`         // characters common to both
	Patch      string `json:"patch,omitempty"` // full mode only
}

// Summary renders the one-line description of the comparison.
func (a *Artifact) Summary() string {
	return fmt.Sprintf("Found differences: %d insertions, %d deletions, %d matches (char units)",
		a.Insertions, a.Deletions, a.Matches)
}

// Compute diffs two snapshots under the given mode. ModeNone yields
// nil.
func Compute(before, after string, mode Mode) *Artifact {
	if mode == ModeNone {
		return nil
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)

	a := &Artifact{Mode: mode}
	for _, d := range diffs {
		n := len([]rune(d.Text))
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			a.Insertions += n
		case diffmatchpatch.DiffDelete:
			a.Deletions += n
		case diffmatchpatch.DiffEqual:
			a.Matches += n
		}
	}

	if mode == ModeFull {
		a.Patch = dmp.PatchToText(dmp.PatchMake(before, diffs))
	}
	return a
}
