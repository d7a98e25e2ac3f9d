package service

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tagforge/tagforge/internal/domain"
)

// ErrCanceled is returned when the operator aborts a prompt. The workflow
// stops without further side effects.
var ErrCanceled = errors.New("canceled by operator")

const cancelInput = "q"

// Prompter collects the operator decisions of the tag workflow. Every
// method may return ErrCanceled.

type Prompter interface {
	SelectApp(apps []string) (string, error)
	SelectIncrement() (domain.IncrementClass, error)
	ConfirmVersion(proposed *domain.Version) (*domain.Version, error)
	SelectCommit(commits []domain.CommitRef, head string) (string, error)
	ReadMessage(defaultMessage string) (string, error)
	ConfirmPush() (bool, error)
}

// terminalPrompter implements Prompter over plain stdio. No prompt library
// is used; menus are numbered lists and answers are read line by line.
type terminalPrompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewTerminalPrompter creates a Prompter reading from in and writing to out.
func NewTerminalPrompter(in io.Reader, out io.Writer) Prompter {
	return &terminalPrompter{in: bufio.NewScanner(in), out: out}
}

// readLine returns the next input line trimmed. End of input means the
// operator walked away, which counts as cancellation.
func (p *terminalPrompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", ErrCanceled
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// SelectApp presents the discovered applications as a numbered menu.
func (p *terminalPrompter) SelectApp(apps []string) (string, error) {
	if len(apps) == 0 {
		return "", errors.New("no applications to select from")
	}
	fmt.Fprintln(p.out, "Applications:")
	for i, app := range apps {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, app)
	}
	for {
		fmt.Fprintf(p.out, "Select application [1-%d] (%s to cancel): ", len(apps), cancelInput)
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		if line == cancelInput {
			return "", ErrCanceled
		}
		if idx, err := strconv.Atoi(line); err == nil && idx >= 1 && idx <= len(apps) {
			return apps[idx-1], nil
		}
		for _, app := range apps {
			if line == app {
				return app, nil
			}
		}
		fmt.Fprintf(p.out, "Invalid selection: %q\n", line)
	}
}

// SelectIncrement asks which version component should advance.
func (p *terminalPrompter) SelectIncrement() (domain.IncrementClass, error) {
	classes := domain.IncrementClasses()
	fmt.Fprintln(p.out, "Increment:")
	for i, class := range classes {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, class)
	}
	for {
		fmt.Fprintf(p.out, "Select increment [1-%d] (%s to cancel): ", len(classes), cancelInput)
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		if line == cancelInput {
			return "", ErrCanceled
		}
		if idx, err := strconv.Atoi(line); err == nil && idx >= 1 && idx <= len(classes) {
			return classes[idx-1], nil
		}
		if class, err := domain.ParseIncrementClass(line); err == nil {
			return class, nil
		}
		fmt.Fprintf(p.out, "Invalid selection: %q\n", line)
	}
}

// ConfirmVersion offers the proposed version and accepts a free-text
// override, re-prompting until the override parses as a strict triple.
func (p *terminalPrompter) ConfirmVersion(proposed *domain.Version) (*domain.Version, error) {
	for {
		fmt.Fprintf(p.out, "Next version [%s] (%s to cancel): ", proposed, cancelInput)
		line, err := p.readLine()
		if err != nil {
			return nil, err
		}
		if line == "" {
			return proposed, nil
		}
		if line == cancelInput {
			return nil, ErrCanceled
		}
		version, err := domain.ParseVersion(line)
		if err == nil {
			return version, nil
		}
		fmt.Fprintf(p.out, "Not a version: %q (expected major.minor.patch)\n", line)
	}
}

// SelectCommit lets the operator pick a recent commit or enter any ref.
// Empty input keeps HEAD.
func (p *terminalPrompter) SelectCommit(commits []domain.CommitRef, head string) (string, error) {
	fmt.Fprintln(p.out, "Recent commits:")
	for i, commit := range commits {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, commit.Display())
	}
	fmt.Fprintf(p.out, "Commit to tag [HEAD] (number, ref, or %s to cancel): ", cancelInput)
	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return head, nil
	}
	if line == cancelInput {
		return "", ErrCanceled
	}
	if idx, err := strconv.Atoi(line); err == nil && idx >= 1 && idx <= len(commits) {
		return commits[idx-1].Hash, nil
	}
	return line, nil
}

// ReadMessage reads a non-empty tag message, offering a default.
func (p *terminalPrompter) ReadMessage(defaultMessage string) (string, error) {
	for {
		if defaultMessage != "" {
			fmt.Fprintf(p.out, "Tag message [%s]: ", defaultMessage)
		} else {
			fmt.Fprint(p.out, "Tag message: ")
		}
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		if line == "" && defaultMessage != "" {
			return defaultMessage, nil
		}
		if line != "" {
			return line, nil
		}
		fmt.Fprintln(p.out, "Tag message cannot be empty")
	}
}

// ConfirmPush asks whether the created tag should be pushed.
func (p *terminalPrompter) ConfirmPush() (bool, error) {
	for {
		fmt.Fprint(p.out, "Push tag to remote? [y/N]: ")
		line, err := p.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "", "n", "no":
			return false, nil
		}
		fmt.Fprintf(p.out, "Invalid answer: %q\n", line)
	}
}
