package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"

	"github.com/leengari/datagrid/internal/engine"
	"github.com/leengari/datagrid/internal/executor"
)

type Request struct {
	Command string `json:"command"`
}

// Start listens on port and serves until ctx is cancelled
func Start(ctx context.Context, port int, baseDir string) error {
	addr := fmt.Sprintf(":%d", port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to bind to port %d: %w", port, err)
	}

	slog.Info("Running on port", "port", port)
	return Serve(ctx, listener, baseDir)
}

// Serve accepts connections on listener until ctx is cancelled.
// Every connection gets its own engine and therefore its own grid.
// Cancelling ctx also closes open connections; Serve returns once their
// handlers have finished.
func Serve(ctx context.Context, listener net.Listener, baseDir string) error {
	conns := &connSet{conns: make(map[net.Conn]struct{})}
	var wg sync.WaitGroup
	defer wg.Wait()

	go func() {
		<-ctx.Done()
		listener.Close()
		conns.closeAll()
	}()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			slog.Error("Failed to accept connection", "error", err)
			continue
		}
		if !conns.add(conn) {
			conn.Close()
			return nil
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer conns.remove(conn)
			handleConnection(conn, baseDir)
		}()
	}
}

// connSet tracks live connections so shutdown can close them
type connSet struct {
	mu     sync.Mutex
	conns  map[net.Conn]struct{}
	closed bool
}

func (s *connSet) add(conn net.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.conns[conn] = struct{}{}
	return true
}

func (s *connSet) remove(conn net.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conns, conn)
}

func (s *connSet) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for conn := range s.conns {
		conn.Close()
	}
}

func handleConnection(conn net.Conn, baseDir string) {
	defer conn.Close()

	eng := engine.New(baseDir)

	// Register logging observer for lifecycle tracing
	eng.AddObserver(engine.NewLoggingObserver().With("remote", conn.RemoteAddr().String()))

	decoder := json.NewDecoder(conn)
	encoder := json.NewEncoder(conn)

	for {
		var req Request
		if err := decoder.Decode(&req); err != nil {
			if err == io.EOF {
				return // Connection closed gracefully
			}
			if errors.Is(err, net.ErrClosed) {
				return // Closed by shutdown
			}
			slog.Error("decode error", "error", err)

			errResult := &executor.Result{
				Error: fmt.Sprintf("Invalid request format: %v", err),
			}
			_ = encoder.Encode(errResult)
			return
		}

		if req.Command == "exit" || req.Command == "\\q" {
			return
		}

		result, err := eng.Execute(req.Command)
		if err != nil {
			result = &executor.Result{Error: err.Error()}
		}

		if err := encoder.Encode(result); err != nil {
			slog.Error("encode error", "error", err)
			return
		}
	}
}
