package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

//go:generate mockgen -source=prompter.go -destination=../mock/prompter_mock.go -package=mock

// Prompter is the interactive I/O boundary of the first-run setup flow.
// Keeping it behind an interface lets the decision logic (what to persist,
// what to derive) run in tests without a terminal.
type Prompter interface {
	// PromptString reads a line of input for the given label.
	PromptString(label string) (string, error)

	// PromptSecret reads input without echoing it back to the terminal.
	PromptSecret(label string) (string, error)

	// PromptBool reads a y/N style answer; empty input yields def.
	PromptBool(label string, def bool) (bool, error)
}

// TerminalPrompter is the stdin/stdout implementation of [Prompter].
// Secrets are read with terminal echo disabled when stdin is a TTY.
type TerminalPrompter struct {
	reader *bufio.Reader
}

// NewTerminalPrompter constructs a [TerminalPrompter] reading from stdin.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{reader: bufio.NewReader(os.Stdin)}
}

// PromptString implements [Prompter].
func (p *TerminalPrompter) PromptString(label string) (string, error) {
	fmt.Printf("%s: ", label)

	line, err := p.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// PromptSecret implements [Prompter]. When stdin is not a terminal (piped
// input, tests) it falls back to a plain line read.
func (p *TerminalPrompter) PromptSecret(label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return p.PromptString(label)
	}

	fmt.Printf("%s: ", label)
	raw, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}

	return strings.TrimSpace(string(raw)), nil
}

// PromptBool implements [Prompter].
func (p *TerminalPrompter) PromptBool(label string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}

	answer, err := p.PromptString(fmt.Sprintf("%s (%s)", label, hint))
	if err != nil {
		return def, err
	}

	switch strings.ToLower(answer) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
