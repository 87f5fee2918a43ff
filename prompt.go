package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// errAborted is returned when the operator closes input or interrupts a prompt
var errAborted = errors.New("session aborted by operator")

// Prompter asks the operator questions one line at a time
type Prompter interface {
	// Ask shows prompt and returns the answer with surrounding whitespace trimmed
	Ask(prompt string) (string, error)
	// Notify prints a message line to the operator
	Notify(msg string)
}

type readlinePrompter struct {
	rl *readline.Instance
}

func newReadlinePrompter(historyFile string) (*readlinePrompter, error) {
	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "^D",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open console: %v", err)
	}
	return &readlinePrompter{rl: rl}, nil
}

func (p *readlinePrompter) Ask(prompt string) (string, error) {
	p.rl.SetPrompt(prompt)
	line, err := p.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
		return "", errAborted
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *readlinePrompter) Notify(msg string) {
	fmt.Fprintln(p.rl.Stdout(), msg)
}

func (p *readlinePrompter) Close() error {
	return p.rl.Close()
}

// toBool reads y/yes/t/true/1 (any case) as true and everything else as false
func toBool(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	switch strings.ToLower(s[:1]) {
	case "y", "t", "1":
		return true
	}
	return false
}
