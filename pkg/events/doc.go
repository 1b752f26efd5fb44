/*
Package events provides an in-memory event broker for broadcasting game
events to interested subscribers.

The events package implements a lightweight event bus for notifying
interested subscribers about player and entity lifecycle changes. It
supports non-blocking publish with buffered per-subscriber delivery,
decoupling the publisher (pkg/net) from whatever consumes these events.

# Architecture

	┌──────────────────── EVENT BROKER ────────────────────────┐
	│                                                            │
	│  ┌────────────────────────────────────────────┐          │
	│  │              Event Broker                   │          │
	│  │  - In-memory message bus                    │          │
	│  │  - All events broadcast to every subscriber │          │
	│  │  - Non-blocking publish                     │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │          Event Distribution                 │          │
	│  │                                              │          │
	│  │  Publisher → Event Channel (buffer: 100)    │          │
	│  │       ↓                                      │          │
	│  │  Broadcast Loop                              │          │
	│  │       ↓                                      │          │
	│  │  Subscriber Channels (buffer: 50 each)      │          │
	│  └────────────────────────────────────────────┘          │
	│                                                            │
	│  Event Types:                                             │
	│    - player.joined, player.left                           │
	│    - entity.spawned, entity.destroyed                     │
	│    - chat.message                                         │
	│    - session.keepalive_timeout                            │
	└────────────────────────────────────────────────────────────┘

# Delivery semantics

Publish never blocks on a slow subscriber: broadcast uses a non-blocking
send per subscriber channel, dropping the event for any subscriber whose
buffer is full rather than stalling the whole broker. A subscriber that
needs a guarantee of seeing every event should drain its channel promptly.

# Usage

	broker := events.NewBroker()
	broker.Start()
	defer broker.Stop()

	sub := broker.Subscribe()
	defer broker.Unsubscribe(sub)

	go func() {
		for ev := range sub {
			switch ev.Type {
			case events.EventPlayerJoined:
				log.Info("player joined: " + ev.Message)
			case events.EventKeepAliveTimeout:
				log.Warn("session timed out: " + ev.Message)
			}
		}
	}()

	broker.Publish(&events.Event{
		Type:     events.EventPlayerJoined,
		Message:  "Notch joined the game",
		Metadata: map[string]string{"player_id": playerID.String()},
	})

# Integration points

  - pkg/net: publishes player.joined, player.left, session.keepalive_timeout
  - cmd/shardkeeper: creates, starts and stops the broker for pkg/net

entity.spawned, entity.destroyed and chat.message are defined here but
nothing in this tree publishes them, and no package in this tree
subscribes to the broker.
*/
package events
