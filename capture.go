package cronista

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"sync"
)

// Warnf emits a warning against the recorder call currently in flight
// on this goroutine. Warnings influence outcomes at StrictWarnings and
// above; under StrictErrors they are collected and discarded. Outside
// a recorded call Warnf is a no-op. Warnf must be called from the
// goroutine running the recorded function.
func Warnf(format string, args ...any) {
	scopeMu.Lock()
	defer scopeMu.Unlock()
	if stack := scopes[goroutineID()]; len(stack) > 0 {
		top := stack[len(stack)-1]
		top.warnings = append(top.warnings, fmt.Sprintf(format, args...))
	}
}

var (
	// captureMu serializes os.Stdout redirection across goroutines.
	// Warnings need no such lock: scopes are keyed by goroutine, so a
	// recorder call can never see another call's warnings.
	captureMu sync.Mutex

	// scopeMu guards scopes and the captureMu ownership bookkeeping.
	scopeMu      sync.Mutex
	scopes       = make(map[uint64][]*captureScope)
	captureOwner uint64 // goroutine currently holding captureMu, 0 when free
	captureDepth int    // redirection nesting depth on the owning goroutine
)

// captureScope collects warnings and, optionally, text written to
// os.Stdout during a single recorder call. Scopes stack: a recorded
// function may itself invoke further recorded steps on its goroutine,
// and each call sees only its own warnings and output.
type captureScope struct {
	gid      uint64
	warnings []string

	redirect bool // this scope requested stdout redirection
	owns     bool // this scope acquired captureMu
	saved    *os.File
	w        *os.File
	buf      bytes.Buffer
	done     chan struct{}
}

// beginCapture installs a fresh scope for the calling goroutine. When
// redirectStdout is set, os.Stdout is swapped for a pipe until
// release; a nested capturing call on the same goroutine stacks its
// redirection on top of the enclosing one instead of blocking on the
// process-wide lock. The caller must release the scope on every exit
// path.
func beginCapture(redirectStdout bool) *captureScope {
	gid := goroutineID()
	sc := &captureScope{gid: gid, redirect: redirectStdout}

	if redirectStdout {
		scopeMu.Lock()
		nested := captureOwner == gid
		if nested {
			captureDepth++
		}
		scopeMu.Unlock()

		if !nested {
			captureMu.Lock()
			scopeMu.Lock()
			captureOwner = gid
			captureDepth = 1
			scopeMu.Unlock()
			sc.owns = true
		}

		// If the pipe cannot be created, output capture is skipped for
		// this call; warning capture still works.
		if r, w, err := os.Pipe(); err == nil {
			sc.saved = os.Stdout // may be an enclosing scope's pipe
			sc.w = w
			sc.done = make(chan struct{})
			os.Stdout = w
			go func() {
				io.Copy(&sc.buf, r)
				r.Close()
				close(sc.done)
			}()
		}
	}

	scopeMu.Lock()
	scopes[gid] = append(scopes[gid], sc)
	scopeMu.Unlock()
	return sc
}

// release restores any redirected state, uninstalls the scope, and
// returns what was captured. Scopes release in LIFO order on a
// goroutine, so the outermost redirecting scope is the one that frees
// the process-wide lock.
func (sc *captureScope) release() (warnings []string, printed string) {
	scopeMu.Lock()
	if stack := scopes[sc.gid]; len(stack) > 0 {
		scopes[sc.gid] = stack[:len(stack)-1]
	}
	if len(scopes[sc.gid]) == 0 {
		delete(scopes, sc.gid)
	}
	warnings = sc.warnings
	scopeMu.Unlock()

	if sc.saved != nil {
		os.Stdout = sc.saved
		sc.w.Close()
		<-sc.done
		printed = sc.buf.String()
	}

	if sc.redirect {
		scopeMu.Lock()
		captureDepth--
		if sc.owns {
			captureOwner = 0
		}
		scopeMu.Unlock()
		if sc.owns {
			captureMu.Unlock()
		}
	}
	return warnings, printed
}

// goroutineID parses the running goroutine's id from its stack header.
// There is no public API for it; the "goroutine N [state]:" header
// format is stable across Go releases.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	s := buf[:n]
	if !bytes.HasPrefix(s, []byte("goroutine ")) {
		return 0
	}
	s = s[len("goroutine "):]
	i := bytes.IndexByte(s, ' ')
	if i < 0 {
		return 0
	}
	id, err := strconv.ParseUint(string(s[:i]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
