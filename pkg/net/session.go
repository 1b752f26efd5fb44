package net

import (
	"bufio"
	stdnet "net"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shardkeeper/shardkeeper/pkg/auth"
	"github.com/shardkeeper/shardkeeper/pkg/ecs"
	"github.com/shardkeeper/shardkeeper/pkg/events"
	"github.com/shardkeeper/shardkeeper/pkg/game"
	"github.com/shardkeeper/shardkeeper/pkg/log"
	"github.com/shardkeeper/shardkeeper/pkg/metrics"
	"github.com/shardkeeper/shardkeeper/pkg/protocol"
	wld "github.com/shardkeeper/shardkeeper/pkg/world"
)

// Session is one accepted connection's state machine, from Handshake
// through Play until disconnect.
type Session struct {
	conn  stdnet.Conn
	r     *bufio.Reader
	w     *bufio.Writer
	state protocol.ConnState

	server *Server
	logger zerolog.Logger

	mu       sync.Mutex
	entity   ecs.Entity
	hasEntity bool
	identity game.PlayerIdentity

	lastKeepAliveID int64
	keepAliveAckCh  chan int64
}

func newSession(conn stdnet.Conn, srv *Server) *Session {
	return &Session{
		conn:           conn,
		r:              bufio.NewReader(conn),
		w:              bufio.NewWriter(conn),
		state:          protocol.StateHandshake,
		server:         srv,
		logger:         log.WithComponent("net.session"),
		keepAliveAckCh: make(chan int64, 1),
	}
}

// run drives the session through its entire lifecycle. It returns once the
// connection is closed, by either side.
func (s *Session) run() {
	defer s.close()

	hs, err := s.readHandshake()
	if err != nil {
		s.logger.Debug().Err(err).Msg("handshake failed")
		return
	}

	switch hs.NextState {
	case int32(protocol.StateLogin):
		s.state = protocol.StateLogin
	default:
		// Status pings and any other declared next-state are not
		// implemented; close rather than pretend to serve them.
		return
	}

	if err := s.login(); err != nil {
		s.logger.Debug().Err(err).Msg("login failed")
		return
	}

	s.play()
}

func (s *Session) readHandshake() (*protocol.Handshake, error) {
	pkt, err := protocol.ReadFrame(s.r, protocol.StateHandshake, protocol.Serverbound, s.server.registry)
	if err != nil {
		return nil, err
	}
	hs := pkt.(*protocol.Handshake)
	metrics.PacketsTotal.WithLabelValues("in", "handshake").Inc()
	return hs, nil
}

func (s *Session) login() error {
	pkt, err := protocol.ReadFrame(s.r, protocol.StateLogin, protocol.Serverbound, s.server.registry)
	if err != nil {
		return err
	}
	start := pkt.(*protocol.LoginStart)
	metrics.PacketsTotal.WithLabelValues("in", "login_start").Inc()

	id := auth.OfflinePlayerUUID(start.Name)
	playerUUID, err := uuid.FromBytes(id[:])
	if err != nil {
		return err
	}

	s.identity = game.PlayerIdentity{UUID: playerUUID, Username: start.Name}
	s.logger = s.logger.With().Str("player", start.Name).Logger()

	success := &protocol.LoginSuccess{UUID: playerUUID, Username: start.Name}
	if err := protocol.WriteFrame(s.w, success); err != nil {
		return err
	}
	metrics.PacketsTotal.WithLabelValues("out", "login_success").Inc()

	s.state = protocol.StatePlay
	return nil
}

// play spawns the player's entity, joins the world, and runs the keep-alive
// loop until disconnect.
func (s *Session) play() {
	spawn := game.Position{}
	if !s.server.chunks.Loaded(wld.ChunkPos{X: int32(spawn.X) >> 4, Z: int32(spawn.Z) >> 4}) {
		s.logger.Warn().Msg("spawn chunk not loaded")
		return
	}

	entity := s.server.world.Registry.Create()
	s.mu.Lock()
	s.entity = entity
	s.hasEntity = true
	s.mu.Unlock()

	_ = ecs.Insert(s.server.world.Storage, entity, spawn)
	_ = ecs.Insert(s.server.world.Storage, entity, game.Health{Current: 20, Max: 20})
	_ = ecs.Insert(s.server.world.Storage, entity, s.identity)

	s.server.addSession(s)
	s.server.world.AddSession()
	s.server.broker.Publish(&events.Event{
		Type:    events.EventPlayerJoined,
		Message: s.identity.Username,
	})
	s.logger.Info().Msg("player joined")

	defer func() {
		s.server.removeSession(s)
		s.server.world.RemoveSession()
		s.server.world.Registry.Destroy(entity)
		s.server.broker.Publish(&events.Event{
			Type:    events.EventPlayerLeft,
			Message: s.identity.Username,
		})
		s.logger.Info().Msg("player left")
	}()

	go s.readLoop()
	s.keepAliveLoop()
}

// readLoop decodes every serverbound Play packet and dispatches keep-alive
// echoes to keepAliveLoop. It exits (closing the connection) on any read
// error, which in turn unblocks keepAliveLoop.
func (s *Session) readLoop() {
	defer s.conn.Close()
	for {
		pkt, err := protocol.ReadFrame(s.r, protocol.StatePlay, protocol.Serverbound, s.server.registry)
		if err != nil {
			return
		}
		if ka, ok := pkt.(*protocol.KeepAlive); ok {
			metrics.PacketsTotal.WithLabelValues("in", "keep_alive").Inc()
			select {
			case s.keepAliveAckCh <- ka.ID:
			default:
			}
		}
	}
}

// keepAliveLoop sends a KeepAlive every interval and disconnects the
// session if the previous one was never echoed back within the timeout.
func (s *Session) keepAliveLoop() {
	ticker := time.NewTicker(s.server.keepAliveInterval)
	defer ticker.Stop()
	defer s.conn.Close()

	for {
		select {
		case <-ticker.C:
			id := time.Now().UnixNano()
			s.lastKeepAliveID = id
			if err := protocol.WriteFrame(s.w, &protocol.KeepAlive{ID: id}); err != nil {
				return
			}
			metrics.PacketsTotal.WithLabelValues("out", "keep_alive").Inc()

			select {
			case got := <-s.keepAliveAckCh:
				if got != id {
					return
				}
			case <-time.After(s.server.keepAliveTimeout):
				metrics.KeepAliveTimeoutsTotal.Inc()
				s.server.broker.Publish(&events.Event{
					Type:    events.EventKeepAliveTimeout,
					Message: s.identity.Username,
				})
				return
			}
		case <-s.server.stopCh:
			return
		}
	}
}

func (s *Session) close() {
	s.conn.Close()
}
