package ui

import "fmt"

// StructuralError reports a widget tree whose shape does not match the
// state stack: a slot lookup found zero or several candidates, or a slot
// held an unexpected type. It is raised with panic; the positional state
// mapping cannot be recovered once it happens.
type StructuralError struct {
	Op      string
	Tag     Tag
	Matches int
	Detail  string
}

func (e *StructuralError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("ui: %s %v: %s", e.Op, e.Tag, e.Detail)
	}
	return fmt.Sprintf("ui: %s %v: %d matching slots, want exactly 1", e.Op, e.Tag, e.Matches)
}

func structural(op string, tag Tag, matches int) {
	panic(&StructuralError{Op: op, Tag: tag, Matches: matches})
}
