package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"sync"
)

// Server is the treed tree daemon: named in-memory live trees behind a
// JSON-RPC interface.
type Server struct {
	Spec  Spec
	store *Store

	mu       sync.Mutex
	listener net.Listener
	sessions map[string]*Session
	nextID   int
}

func New(spec *Spec) *Server {
	if spec.Log == nil {
		spec.Log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slogLevel(),
		}))
	}
	if spec.Config == nil {
		spec.Config = DefaultConfig()
	}
	if spec.Addr == "" {
		spec.Addr = spec.Config.Addr
	}
	return &Server{
		Spec:     *spec,
		store:    NewStore(),
		sessions: map[string]*Session{},
	}
}

func slogLevel() slog.Level {
	if os.Getenv("DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// StartTCP starts accepting connections on the configured address. The accept
// loop runs in its own goroutine.
func (s *Server) StartTCP() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return fmt.Errorf("TCP listener already running")
	}
	l, err := net.Listen("tcp", s.Spec.Addr)
	if err != nil {
		return err
	}
	s.listener = l
	go s.acceptLoop(l)
	return nil
}

func (s *Server) acceptLoop(l net.Listener) {
	for {
		conn, err := l.Accept()
		if err != nil {
			s.Spec.Log.Debug("accept loop ending", "error", err)
			return
		}
		s.mu.Lock()
		s.nextID++
		id := fmt.Sprintf("session-%d", s.nextID)
		sess := NewSession(id, conn, s.store, s.Spec.Log)
		s.sessions[id] = sess
		s.mu.Unlock()

		go func() {
			defer func() {
				s.mu.Lock()
				delete(s.sessions, id)
				s.mu.Unlock()
			}()
			if err := sess.Run(context.Background()); err != nil {
				s.Spec.Log.Debug("session ended", "session", id, "error", err)
			}
		}()
	}
}

// StopTCP closes the listener and all live sessions.
func (s *Server) StopTCP() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	err := s.listener.Close()
	s.listener = nil
	for _, sess := range s.sessions {
		sess.Close()
	}
	return err
}

// TCPAddr returns the listener's address, or "" if not running.
func (s *Server) TCPAddr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Store exposes the document store, mainly for tests.
func (s *Server) Store() *Store {
	return s.store
}
