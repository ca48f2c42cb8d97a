package cli

import (
	"fmt"
	"io"
	"sync"
)

// toastNotifier prints one line per outcome. Writes are serialized so lines
// from concurrent updates never interleave.
type toastNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func newToastNotifier(w io.Writer) *toastNotifier {
	return &toastNotifier{w: w}
}

func (n *toastNotifier) Success(msg string) {
	n.print("[ok] " + msg)
}

func (n *toastNotifier) Error(msg string) {
	n.print("[error] " + msg)
}

func (n *toastNotifier) print(line string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintln(n.w, line)
}
