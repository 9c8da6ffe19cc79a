package dashboard

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter obtains operator decisions before destructive actions. Both
// methods must be safe to call from any controller; a declined or cancelled
// prompt aborts the action with no side effects.
type Prompter interface {
	// Confirm asks a yes/no question and reports whether the operator agreed.
	Confirm(message string) bool

	// Prompt asks for free-text input. The second return value is false when
	// the operator cancelled or provided no input.
	Prompt(message string) (string, bool)
}

// TerminalPrompter reads operator decisions from an interactive terminal.
type TerminalPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminalPrompter wraps in unless it already is a *bufio.Reader. Callers
// that also read commands from the same stream must pass their own reader:
// wrapping twice splits buffered input between two readers and confirmation
// answers get consumed by the wrong one.
func NewTerminalPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	reader, ok := in.(*bufio.Reader)
	if !ok {
		reader = bufio.NewReader(in)
	}
	return &TerminalPrompter{in: reader, out: out}
}

func (p *TerminalPrompter) Confirm(message string) bool {
	fmt.Fprintf(p.out, "%s [y/N]: ", message)
	line, err := p.in.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func (p *TerminalPrompter) Prompt(message string) (string, bool) {
	fmt.Fprintf(p.out, "%s: ", message)
	line, err := p.in.ReadString('\n')
	if err != nil {
		return "", false
	}
	text := strings.TrimSpace(line)
	if text == "" {
		return "", false
	}
	return text, true
}
