// Package grpc is the platform's internal RPC transport: newline-delimited
// JSON over persistent TCP connections. It exists so chat can pull
// trending queries from analytics without either service growing a
// dependency on the full google.golang.org/grpc stack; the wire format
// stays greppable in tcpdump and the whole framework fits in two files.
//
// Serving side:
//
//	s := grpc.NewServer()
//	s.Register("Analytics.TopQueries", func(ctx context.Context, req json.RawMessage) (any, error) {
//	    var topReq proto.TopQueriesRequest
//	    json.Unmarshal(req, &topReq)
//	    return &proto.TopQueriesResponse{...}, nil
//	})
//	s.Serve(":9000")
//
// Calling side:
//
//	c, _ := grpc.Dial("localhost:9000")
//	var resp proto.TopQueriesResponse
//	c.Call("Analytics.TopQueries", &proto.TopQueriesRequest{Limit: 10}, &resp)
package grpc

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"sync"
)

// HandlerFunc serves one method. The raw params are the request's
// "params" field, which may be empty.
type HandlerFunc func(ctx context.Context, req json.RawMessage) (any, error)

// Request is one call on the wire.
type Request struct {
	Method string          `json:"method"`
	ID     string          `json:"id"`
	Params json.RawMessage `json:"params"`
}

// Response answers the request with the matching ID. Exactly one of
// Data and Error is set.
type Response struct {
	ID    string `json:"id"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// Server dispatches method calls arriving over TCP. Connections are
// persistent: a client sends any number of requests and reads one
// response per request, in order.
type Server struct {
	mu       sync.RWMutex
	handlers map[string]HandlerFunc
	listener net.Listener
	logger   *slog.Logger
	wg       sync.WaitGroup
	closed   chan struct{}
}

// NewServer creates a Server with no methods registered.
func NewServer() *Server {
	return &Server{
		handlers: make(map[string]HandlerFunc),
		logger:   slog.Default().With("component", "rpc-server"),
		closed:   make(chan struct{}),
	}
}

// Register adds a method under a "Service.Method" name. Later
// registrations replace earlier ones.
func (s *Server) Register(method string, handler HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[method] = handler
	s.logger.Debug("method registered", "method", method)
}

// Serve accepts connections on addr until Stop is called. It blocks;
// run it on its own goroutine.
func (s *Server) Serve(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	s.listener = ln
	s.logger.Info("rpc server listening", "addr", addr)

	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-s.closed:
				return nil
			default:
				s.logger.Error("accept failed", "error", err)
				continue
			}
		}
		s.wg.Add(1)
		go s.serveConn(conn)
	}
}

func (s *Server) serveConn(conn net.Conn) {
	defer s.wg.Done()
	defer conn.Close()

	dec := json.NewDecoder(conn)
	enc := json.NewEncoder(conn)
	for {
		var req Request
		if err := dec.Decode(&req); err != nil {
			// EOF when the client hangs up, anything else is a framing
			// error; either way the connection is done.
			return
		}
		if err := enc.Encode(s.dispatch(req)); err != nil {
			s.logger.Error("response write failed", "method", req.Method, "error", err)
			return
		}
	}
}

func (s *Server) dispatch(req Request) Response {
	s.mu.RLock()
	handler, ok := s.handlers[req.Method]
	s.mu.RUnlock()

	resp := Response{ID: req.ID}
	if !ok {
		resp.Error = fmt.Sprintf("unknown method: %s", req.Method)
		return resp
	}
	data, err := handler(context.Background(), req.Params)
	if err != nil {
		resp.Error = err.Error()
		return resp
	}
	resp.Data = data
	return resp
}

// MethodCount reports how many methods are registered. Health checks use
// it to confirm wiring happened.
func (s *Server) MethodCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.handlers)
}

// Stop closes the listener and waits for in-flight connections to
// finish.
func (s *Server) Stop() {
	close(s.closed)
	if s.listener != nil {
		s.listener.Close()
	}
	s.wg.Wait()
	s.logger.Info("rpc server stopped")
}
