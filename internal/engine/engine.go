package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/leengari/datagrid/internal/domain/grid"
	"github.com/leengari/datagrid/internal/executor"
	"github.com/leengari/datagrid/internal/parser"
	"github.com/leengari/datagrid/internal/parser/lexer"
	"github.com/leengari/datagrid/internal/storage"
)

// Engine runs console commands against a single grid.
// It is not safe for concurrent use; give each session its own Engine.
type Engine struct {
	state     executor.State
	observers []Observer // Observers for lifecycle events
}

// New creates an Engine with no grid. Relative LOAD paths resolve against baseDir.
func New(baseDir string) *Engine {
	return &Engine{
		state:     executor.State{BaseDir: baseDir},
		observers: make([]Observer, 0),
	}
}

// NewWithGrid creates an Engine working on an existing grid
func NewWithGrid(g *grid.Grid, baseDir string) *Engine {
	e := New(baseDir)
	e.state.Grid = g
	return e
}

// Grid returns the grid the engine currently works on, or nil
func (e *Engine) Grid() *grid.Grid {
	return e.state.Grid
}

// Execute processes one command line and returns the result
func (e *Engine) Execute(line string) (*executor.Result, error) {
	cmdID := uuid.New().String()

	// 1. Tokenize
	e.notify(Event{Type: EventLexStart, CommandID: cmdID, Data: line})
	tokens, err := lexer.Tokenize(line)
	if err != nil {
		return nil, e.fail(cmdID, "lex", fmt.Errorf("lexer error: %w", err))
	}
	e.notify(Event{Type: EventLexEnd, CommandID: cmdID, Data: len(tokens)})

	// 2. Parse
	e.notify(Event{Type: EventParseStart, CommandID: cmdID})
	cmd, err := parser.New(tokens).Parse()
	if err != nil {
		return nil, e.fail(cmdID, "parse", fmt.Errorf("parse error: %w", err))
	}
	e.notify(Event{Type: EventParseEnd, CommandID: cmdID, Data: cmd.String()})

	// 3. Execute
	e.notify(Event{Type: EventExecStart, CommandID: cmdID})
	result, err := executor.Execute(cmd, &e.state)
	if err != nil {
		return nil, e.fail(cmdID, "exec", fmt.Errorf("execution error: %w", err))
	}
	e.notify(Event{Type: EventExecEnd, CommandID: cmdID, Data: map[string]interface{}{
		"command":   cmd.TokenLiteral(),
		"row_count": result.RowCount,
	}})

	return result, nil
}

// fail reports err to the observers and returns it
func (e *Engine) fail(cmdID, phase string, err error) error {
	e.notify(Event{Type: EventFailed, CommandID: cmdID, Data: FailureData{Phase: phase, Error: err.Error()}})
	return err
}

// ListDatasets returns the datasets available to LOAD
func (e *Engine) ListDatasets() ([]string, error) {
	dir := e.state.BaseDir
	if dir == "" {
		dir = "."
	}
	return storage.ListDatasets(dir)
}

// AddObserver registers an observer to receive lifecycle events
func (e *Engine) AddObserver(observer Observer) {
	e.observers = append(e.observers, observer)
}

// RemoveObserver unregisters an observer
func (e *Engine) RemoveObserver(observer Observer) {
	for i, o := range e.observers {
		if o == observer {
			e.observers = append(e.observers[:i], e.observers[i+1:]...)
			return
		}
	}
}

// notify sends an event to all registered observers
func (e *Engine) notify(event Event) {
	event.Timestamp = time.Now()
	for _, observer := range e.observers {
		observer.OnEvent(event)
	}
}
