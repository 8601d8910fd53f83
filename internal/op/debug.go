package op

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// PrintDebug diagnostics go through a single package-level writer. The mutex
// keeps concurrent evaluations interleaving at line granularity.
var (
	debugMu  sync.Mutex
	debugOut io.Writer = os.Stderr
)

// SetDebugOutput redirects PrintDebug diagnostics to w and returns the
// previous writer, so tests can capture the stream and restore it. A nil w
// restores the default, standard error.
func SetDebugOutput(w io.Writer) io.Writer {
	if w == nil {
		w = os.Stderr
	}
	debugMu.Lock()
	defer debugMu.Unlock()
	prev := debugOut
	debugOut = w
	return prev
}

func debugPrint(tag, value string) {
	debugMu.Lock()
	defer debugMu.Unlock()
	fmt.Fprintf(debugOut, "|> %s : %s\n", tag, value)
}
