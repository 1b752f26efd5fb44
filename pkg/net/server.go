package net

import (
	"fmt"
	stdnet "net"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/shardkeeper/shardkeeper/pkg/auth"
	"github.com/shardkeeper/shardkeeper/pkg/events"
	"github.com/shardkeeper/shardkeeper/pkg/game"
	"github.com/shardkeeper/shardkeeper/pkg/log"
	"github.com/shardkeeper/shardkeeper/pkg/protocol"
	wld "github.com/shardkeeper/shardkeeper/pkg/world"
)

const (
	defaultKeepAliveInterval = 10 * time.Second
	defaultKeepAliveTimeout  = 30 * time.Second
)

// Server accepts TCP connections and drives each through the Session state
// machine. It holds the live session set as a plain map guarded by a
// mutex, mutated only by Server's own methods.
type Server struct {
	listener stdnet.Listener
	registry *protocol.Registry
	keys     *auth.KeyPair
	world    *game.World
	broker   *events.Broker
	chunks   wld.ChunkProvider
	logger   zerolog.Logger

	keepAliveInterval time.Duration
	keepAliveTimeout  time.Duration

	sessionsMu sync.RWMutex
	sessions   map[*Session]struct{}

	stopCh chan struct{}
}

// NewServer binds addr and returns a Server ready to Serve. It does not
// start accepting until Serve is called.
func NewServer(addr string, world *game.World, broker *events.Broker) (*Server, error) {
	ln, err := stdnet.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("net: listen %s: %w", addr, err)
	}

	keys, err := auth.NewKeyPair()
	if err != nil {
		ln.Close()
		return nil, fmt.Errorf("net: generate keypair: %w", err)
	}

	return &Server{
		listener:          ln,
		registry:          protocol.NewRegistry(),
		keys:              keys,
		world:             world,
		broker:            broker,
		chunks:            wld.NewAirProvider(),
		logger:            log.WithComponent("net.server"),
		keepAliveInterval: defaultKeepAliveInterval,
		keepAliveTimeout:  defaultKeepAliveTimeout,
		sessions:          make(map[*Session]struct{}),
		stopCh:            make(chan struct{}),
	}, nil
}

// Addr returns the server's bound local address.
func (s *Server) Addr() stdnet.Addr { return s.listener.Addr() }

// Serve accepts connections until Stop is called or the listener errors.
func (s *Server) Serve() error {
	s.logger.Info().Str("addr", s.listener.Addr().String()).Msg("listening")
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-s.stopCh:
				return nil
			default:
				return fmt.Errorf("net: accept: %w", err)
			}
		}
		go newSession(conn, s).run()
	}
}

// Stop closes the listener and signals every running session's keep-alive
// loop to exit; it does not forcibly close already-accepted connections
// beyond that.
func (s *Server) Stop() {
	close(s.stopCh)
	s.listener.Close()
}

// SessionCount returns the number of sessions currently in Play state.
func (s *Server) SessionCount() int {
	s.sessionsMu.RLock()
	defer s.sessionsMu.RUnlock()
	return len(s.sessions)
}

func (s *Server) addSession(sess *Session) {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()
	s.sessions[sess] = struct{}{}
}

func (s *Server) removeSession(sess *Session) {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()
	delete(s.sessions, sess)
}
