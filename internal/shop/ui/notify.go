package ui

import (
	"fmt"
	"io"
)

// Notifier prints toast-style outcome lines for user actions.
type Notifier struct {
	out io.Writer
}

func NewNotifier(out io.Writer) *Notifier {
	return &Notifier{out: out}
}

func (n *Notifier) Success(msg string) {
	fmt.Fprintf(n.out, "✓ %s\n", msg)
}

func (n *Notifier) Error(msg string) {
	fmt.Fprintf(n.out, "✗ %s\n", msg)
}
