package engine

import "time"

// EventType represents different lifecycle phases in command execution
type EventType string

const (
	EventLexStart   EventType = "lex_start"
	EventLexEnd     EventType = "lex_end"
	EventParseStart EventType = "parse_start"
	EventParseEnd   EventType = "parse_end"
	EventExecStart  EventType = "exec_start"
	EventExecEnd    EventType = "exec_end"
	EventFailed     EventType = "command_failed" // Data is a FailureData
)

// FailureData describes the phase a command failed in
type FailureData struct {
	Phase string `json:"phase"` // "lex", "parse" or "exec"
	Error string `json:"error"`
}

// Event represents a lifecycle event in command execution
type Event struct {
	Type      EventType   // Type of event
	CommandID string      // Unique per Execute call, for tracing
	Timestamp time.Time   // When the event occurred
	Data      interface{} // Phase-specific data (e.g., input line, token count, parsed command)
}

// Observer interface for event subscribers
// Observers receive events at major execution phases
type Observer interface {
	OnEvent(event Event)
}
