// Package messages implements a two-step message workflow on top of a state
// graph: a process node and a finalize node, each appending one record to the
// state threaded through the walk.
package messages

import (
	"fmt"
	"strings"
)

// Status tags a message with the step that produced it.
type Status string

const (
	StatusProcessed Status = "processed"
	StatusFinalized Status = "finalized"
)

// Message is a single record accumulated by the workflow. It is never updated
// once appended.
type Message struct {
	Content string
	Status  Status
}

// State holds the ordered message records threaded through the graph.
type State struct {
	Messages []Message
}

// Append returns the state with the given message appended.
func (s State) Append(msg Message) State {
	s.Messages = append(s.Messages, msg)

	return s
}

// String renders the state as a single-line mapping, insertion order
// preserved.
func (s State) String() string {
	var b strings.Builder

	b.WriteString("{messages: [")
	for i, msg := range s.Messages {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "{content: %q, status: %q}", msg.Content, string(msg.Status))
	}
	b.WriteString("]}")

	return b.String()
}
