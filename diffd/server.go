package diffd

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"sync"

	"go.lsp.dev/jsonrpc2"
)

const DefaultAddr = "localhost:9127"

// Spec configures a Server.
type Spec struct {
	Log  *slog.Logger
	Addr string
}

// Server accepts TCP connections and serves comparison requests on
// each as a JSON-RPC session.
type Server struct {
	Spec Spec

	mu       sync.Mutex
	listener net.Listener
	nextID   int
}

// New creates a new Server instance.
func New(spec *Spec) *Server {
	if spec.Log == nil {
		spec.Log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slogLevel(),
		}))
	}
	if spec.Addr == "" {
		spec.Addr = DefaultAddr
	}
	return &Server{
		Spec: *spec,
	}
}

func slogLevel() slog.Level {
	if os.Getenv("DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// Start begins listening on the configured address.  The accept loop
// runs in a separate goroutine.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return fmt.Errorf("listener already running")
	}
	listener, err := net.Listen("tcp", s.Spec.Addr)
	if err != nil {
		return err
	}
	s.listener = listener
	go s.acceptLoop(ctx, listener)
	return nil
}

func (s *Server) acceptLoop(ctx context.Context, listener net.Listener) {
	for {
		conn, err := listener.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
			default:
				s.Spec.Log.Error("accept error", "error", err)
			}
			return
		}
		s.mu.Lock()
		s.nextID++
		id := strconv.Itoa(s.nextID)
		s.mu.Unlock()
		go s.serveConn(ctx, id, conn)
	}
}

func (s *Server) serveConn(ctx context.Context, id string, conn net.Conn) {
	log := s.Spec.Log.With("session", id, "remote", conn.RemoteAddr().String())
	log.Info("session open")
	rpc := jsonrpc2.NewConn(jsonrpc2.NewStream(conn))
	rpc.Go(ctx, s.handle)
	select {
	case <-rpc.Done():
	case <-ctx.Done():
		rpc.Close()
	}
	log.Info("session closed")
}

// Close stops the listener.  Sessions already open run to completion.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	err := s.listener.Close()
	s.listener = nil
	return err
}

// Addr returns the listener's address, or empty string if not running.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}
