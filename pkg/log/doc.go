/*
Package log provides structured logging for shardkeeper using zerolog.

The log package wraps the zerolog library to provide JSON-structured logging
with component-specific loggers, configurable log levels, and helper
functions for common logging patterns. All logs include timestamps and
support filtering by severity level for production debugging.

# Architecture

	┌──────────────────── LOGGING SYSTEM ──────────────────────┐
	│                                                            │
	│  ┌────────────────────────────────────────────┐          │
	│  │            Global Logger                    │          │
	│  │  - Zerolog instance                         │          │
	│  │  - Initialized via log.Init()               │          │
	│  │  - Thread-safe for concurrent use           │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │           Configuration                     │          │
	│  │  - Level: debug/info/warn/error             │          │
	│  │  - Format: JSON or console (human)          │          │
	│  │  - Output: stdout, file, or custom writer   │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │         Component Loggers                   │          │
	│  │  - WithComponent("net.session")              │          │
	│  │  - WithEntityID(42)                         │          │
	│  │  - WithPlayerID("player-uuid")              │          │
	│  │  - WithSessionID("session-id")               │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │            Log Output                       │          │
	│  │  JSON:    {"level":"info","component":     │          │
	│  │            "net.session","message":"..."}   │          │
	│  │  Console: 2026-01-02T10:30:00Z INF player   │          │
	│  │           joined component=net.session      │          │
	│  └────────────────────────────────────────────┘           │
	└────────────────────────────────────────────────────────┘

# Usage

	import "github.com/shardkeeper/shardkeeper/pkg/log"

	// JSON output (production)
	log.Init(log.Config{Level: log.InfoLevel, JSONOutput: true, Output: os.Stdout})

	// Console output (development)
	log.Init(log.Config{Level: log.DebugLevel, JSONOutput: false, Output: os.Stdout})

Simple logging:

	log.Info("tick loop started")
	log.Debug("checking session state")
	log.Warn("keep-alive missed")
	log.Error("failed to open player data store")
	log.Fatal("cannot start without a listen address") // exits process

Component loggers, the form every long-running loop in this codebase
(tick loop, connection acceptor, admin HTTP server) actually uses:

	sessionLog := log.WithComponent("net.session")
	sessionLog.Info().Msg("session started")

	playerLog := log.WithPlayerID(playerUUID.String()).
		With().Str("username", username).Logger()
	playerLog.Info().Msg("player joined")
	playerLog.Error().Err(err).Msg("login failed")

# Integration Points

This package integrates with:

  - pkg/game: logs tick loop start/stop and system errors
  - pkg/net: logs the listener, session lifecycle (player joined/left) and handshake/login failures
  - cmd/shardkeeper: logs startup, shutdown and admin/network server exit errors

pkg/api and pkg/playerdata do not log.

# Design Patterns

Global Logger Pattern: a single package-level Logger instance, initialized
once at process start, accessible from every package without threading it
through call signatures — useful for the deeply nested call paths a tick
loop's systems end up with.

Context Logger Pattern: create child loggers carrying fixed fields (a
player UUID, a component name) once, then log through the child rather
than repeating `.Str(...)` at every call site.

Structured Logging Pattern: typed fields (.Str, .Int, .Err) rather than
string concatenation, so logs stay machine-parseable.

# Security

Never log secrets: the RSA private key and AES shared secret pkg/auth
derives per session never appear in a log line, structured or otherwise.
*/
package log
