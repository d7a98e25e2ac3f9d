package domain

import (
	"fmt"
	"regexp"
)

// CommitRef identifies a commit for display and tagging. It is sourced from
// repository history and never constructed by this tool.
type CommitRef struct {
	Hash      string
	ShortHash string
	Subject   string
}

// SubjectParts is the best-effort decomposition of a conventional-commit
// subject line.
type SubjectParts struct {
	Scope   string
	Message string
}

var conventionalSubject = regexp.MustCompile(`^[a-zA-Z]+\(([^()]+)\)!?:\s*(.*)$`)

// SplitSubject decomposes "type(scope): message" subjects. Anything else
// keeps the whole subject as the message with an empty scope.
func SplitSubject(subject string) SubjectParts {
	if m := conventionalSubject.FindStringSubmatch(subject); m != nil {
		return SubjectParts{Scope: m[1], Message: m[2]}
	}
	return SubjectParts{Message: subject}
}

// Display renders a one-line summary suitable for a selection menu.
func (c CommitRef) Display() string {
	parts := SplitSubject(c.Subject)
	if parts.Scope != "" {
		return fmt.Sprintf("%s [%s] %s", c.ShortHash, parts.Scope, parts.Message)
	}
	return fmt.Sprintf("%s %s", c.ShortHash, parts.Message)
}
