package trail

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/b-rodrigues/cronista"
)

const genesisInput = "cronista-genesis"

// Logger is an append-only, hash-chained trail writer.
type Logger struct {
	mu       sync.Mutex
	path     string
	seq      uint64
	prevHash string
}

// NewLogger opens or creates a trail at the given path. It reads the
// last entry to resume the hash chain.
func NewLogger(path string) (*Logger, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create trail dir: %w", err)
	}

	l := &Logger{
		path:     path,
		prevHash: genesisHash(),
	}

	// Read existing trail to find the last entry.
	if data, err := os.ReadFile(path); err == nil && len(data) > 0 {
		lines := splitLines(data)
		if len(lines) > 0 {
			var last Entry
			if err := json.Unmarshal(lines[len(lines)-1], &last); err == nil {
				l.seq = last.Seq
				l.prevHash = last.Hash
			}
		}
	}

	return l, nil
}

// Append writes one trail record per chronicle log entry, all tagged
// with runID.
func (l *Logger) Append(runID string, entries []cronista.Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return fmt.Errorf("open trail: %w", err)
	}
	defer f.Close()

	for _, src := range entries {
		l.seq++
		entry := fromLogEntry(src)
		entry.Seq = l.seq
		entry.Time = time.Now().UTC()
		entry.RunID = runID
		entry.PrevHash = l.prevHash
		entry.Hash = computeHash(entry)
		l.prevHash = entry.Hash

		data, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("marshal trail entry: %w", err)
		}
		data = append(data, '\n')
		if _, err := f.Write(data); err != nil {
			return fmt.Errorf("write trail entry: %w", err)
		}
	}
	return nil
}

// Path returns the trail file path.
func (l *Logger) Path() string {
	return l.path
}

// fromLogEntry converts an in-memory chronicle log entry to its
// persisted form.
func fromLogEntry(e cronista.Entry) Entry {
	out := Entry{
		Step:     e.Step,
		Outcome:  e.Outcome.String(),
		Function: e.Function,
		Message:  e.Message,
		Duration: float64(e.RunTime.Microseconds()) / 1000.0,
	}
	if e.Executed() {
		out.StartTime = e.StartTime.Format(time.RFC3339)
	}
	if e.Inspector != nil {
		out.Inspector = fmt.Sprint(e.Inspector)
	}
	if e.Diff != nil {
		out.Diff = e.Diff.Summary()
	}
	return out
}

func genesisHash() string {
	h := sha256.Sum256([]byte(genesisInput))
	return fmt.Sprintf("%x", h)
}

func computeHash(e Entry) string {
	e.Hash = "" // hash is computed with this field empty
	data, _ := json.Marshal(e)
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h)
}

func splitLines(data []byte) [][]byte {
	var lines [][]byte
	start := 0
	for i, b := range data {
		if b == '\n' {
			if i > start {
				lines = append(lines, data[start:i])
			}
			start = i + 1
		}
	}
	if start < len(data) {
		lines = append(lines, data[start:])
	}
	return lines
}
