// Package api provides HTTP REST API handlers for the Theseus maze chase.
//
// The api package implements:
//   - RESTful endpoints for game operations
//   - Session management endpoints
//   - Board listing, retrieval, and upload
//   - WebSocket upgrade handling
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session (optional board name)
//   - GET /api/sessions - List all sessions
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Game Operations:
//   - GET /api/sessions/{id}/state - Get current game state
//   - GET /api/sessions/{id}/render - Get text rendering of the board
//   - POST /api/sessions/{id}/turn - Play one turn
//   - POST /api/sessions/{id}/reset - Restart the game on the same board
//   - GET /api/sessions/{id}/history - Get turn history with pagination
//
// Boards:
//   - GET /api/boards - List available boards
//   - GET /api/boards/{name} - Get board text
//   - POST /api/boards - Upload a new board
//
// Request/Response Format:
//
// All endpoints accept and return JSON. A turn is sent as POST with a JSON
// body:
//
//	{
//	  "input": "w|a|s|d|up|down|left|right|wait|."
//	}
//
// Quit-style input ("q", "quit", "exit" or anything unrecognized) plays no
// turn; the response carries "quit": true and the unchanged game state.
//
// Usage:
//
//	server := api.NewServer(gameService, hub)
//	http.ListenAndServe(":8080", server)
//
// Error Handling:
//
// Errors are returned as JSON with appropriate HTTP status codes:
//
//	{
//	  "error": "error message"
//	}
package api
