package testutil

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
)

// StubHTTPServer implements the server's httpServer contract for tests.
// ListenAndServe blocks until Shutdown unless ListenErr is set.
type StubHTTPServer struct {
	AddrVal     string
	HandlerVal  http.Handler
	ListenErr   error
	ShutdownErr error

	listenCalls   atomic.Int32
	shutdownCalls atomic.Int32
	stopped       chan struct{}
	stopOnce      atomic.Bool
}

// NewStubHTTPServer returns a stub listening on addr.
func NewStubHTTPServer(addr string, handler http.Handler) *StubHTTPServer {
	return &StubHTTPServer{AddrVal: addr, HandlerVal: handler, stopped: make(chan struct{})}
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.listenCalls.Add(1)
	if s.ListenErr != nil {
		return s.ListenErr
	}
	if s.stopped != nil {
		<-s.stopped
	}
	return http.ErrServerClosed
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	s.shutdownCalls.Add(1)
	if s.stopped != nil && s.stopOnce.CompareAndSwap(false, true) {
		close(s.stopped)
	}
	return s.ShutdownErr
}

func (s *StubHTTPServer) Addr() string {
	return s.AddrVal
}

func (s *StubHTTPServer) Handler() http.Handler {
	return s.HandlerVal
}

// ListenCalls reports how many times ListenAndServe ran.
func (s *StubHTTPServer) ListenCalls() int {
	return int(s.listenCalls.Load())
}

// ShutdownCalls reports how many times Shutdown ran.
func (s *StubHTTPServer) ShutdownCalls() int {
	return int(s.shutdownCalls.Load())
}

// ErrHTTPServer returns an error on ListenAndServe; Shutdown increments a counter.
type ErrHTTPServer struct {
	shutdownCalls atomic.Int32
}

func (e *ErrHTTPServer) ListenAndServe() error {
	return errors.New("listen failure")
}

func (e *ErrHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	e.shutdownCalls.Add(1)
	return nil
}

func (e *ErrHTTPServer) Addr() string {
	return ":0"
}

func (e *ErrHTTPServer) Handler() http.Handler {
	return http.NewServeMux()
}

// ShutdownCalls reports how many times Shutdown ran.
func (e *ErrHTTPServer) ShutdownCalls() int {
	return int(e.shutdownCalls.Load())
}
