package model

import "strings"

// BranchIDLength is the number of change ID characters used in remote branch
// names.
const BranchIDLength = 8

// CommitMessage is a change description split into title and body.
type CommitMessage struct {
	Title string
	Body  string
}

// Change is a node in the local Jujutsu chain. The change ID is stable across
// edits; the commit ID identifies the current content snapshot and moves every
// time the change is edited.
type Change struct {
	ChangeID        string
	CommitID        string
	Message         CommitMessage
	ParentChangeIDs []string
}

// ParseMessage splits a raw jj description into title (first line) and body
// (everything after the first line, trimmed).
func ParseMessage(description string) CommitMessage {
	lines := strings.Split(description, "\n")
	msg := CommitMessage{}
	if len(lines) > 0 {
		msg.Title = strings.TrimSpace(lines[0])
	}
	if len(lines) > 1 {
		msg.Body = strings.TrimSpace(strings.Join(lines[1:], "\n"))
	}
	return msg
}

// FullMessage reconstructs the complete commit message from title and body.
func (c *Change) FullMessage() string {
	switch {
	case c.Message.Title != "" && c.Message.Body != "":
		return c.Message.Title + "\n\n" + c.Message.Body
	case c.Message.Title != "":
		return c.Message.Title
	default:
		return c.Message.Body
	}
}

// ShortID returns the abbreviated change ID shown in status output.
func (c *Change) ShortID() string {
	if len(c.ChangeID) < 4 {
		return c.ChangeID
	}
	return c.ChangeID[:4]
}

// BranchName derives the deterministic remote branch name for a change ID:
// the configured prefix followed by the first BranchIDLength characters.
func BranchName(changeID, prefix string) string {
	n := BranchIDLength
	if len(changeID) < n {
		n = len(changeID)
	}
	return prefix + changeID[:n]
}
