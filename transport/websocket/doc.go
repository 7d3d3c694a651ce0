// Package websocket provides WebSocket transport for the Theseus maze chase.
//
// The websocket package implements:
//   - Real-time state broadcasting after each turn
//   - Session-aware WebSocket connections
//   - Connection lifecycle management
//   - Message routing and handling
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a dedicated
// goroutine that manages reading, writing, and cleanup.
//
// Message Protocol:
//
// Outgoing messages are JSON-encoded:
//
//	{
//	  "session_id": "abc1",
//	  "event": "state_update",
//	  "state": { ... game snapshot ... }
//	}
//
// Clients do not send game commands over the socket; turns are played via
// the REST API and the resulting state is pushed to every connected watcher.
//
// Session Integration:
//
// WebSocket connections are session-aware. Clients specify their session ID
// via query parameter (?session=abc1) when establishing the connection.
// State updates are broadcast only to clients connected to the same session.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// inside an HTTP handler
//	hub.ServeWS(w, r, sessionID)
//
// Connection Lifecycle:
//
// 1. Client connects with session ID
// 2. Connection registered with hub
// 3. Client receives state updates as turns are played
// 4. Disconnection triggers cleanup
//
// Concurrency:
//
// The hub and client handlers are designed for concurrent operation.
// Multiple clients can connect, disconnect, and receive messages
// simultaneously without blocking each other.
package websocket
