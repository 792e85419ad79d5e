// Package trail persists chronicle logs as a hash-chained, append-only
// JSONL file, so recorded runs can be reviewed later and tampering is
// detectable. Only the CLI writes trails; the recording core itself
// performs no I/O.
package trail

import "time"

// Entry is one persisted audit record: a single chronicle log entry
// plus the chain fields that make the trail tamper evident.
type Entry struct {
	Seq       uint64    `json:"seq"`
	Time      time.Time `json:"ts"`
	PrevHash  string    `json:"prev_hash"`
	RunID     string    `json:"run_id"`               // shared by all entries of one recorded run
	Step      int       `json:"step"`                 // 1-based position within the run
	Outcome   string    `json:"outcome"`              // "OK! Success" or "NOK! Failure"
	Function  string    `json:"function"`             // display name of the recorded function
	Message   string    `json:"message,omitempty"`    // success, failure reason, or short-circuit note
	StartTime string    `json:"start_time,omitempty"` // RFC3339; empty for short-circuited steps
	Duration  float64   `json:"run_time_ms"`          // execution time in milliseconds
	Inspector string    `json:"inspector,omitempty"`  // rendered inspector value, if recorded
	Diff      string    `json:"diff,omitempty"`       // diff summary, if recorded
	Hash      string    `json:"hash"`                 // SHA-256 of this entry (with hash field empty)
}
