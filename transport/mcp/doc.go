// Package mcp provides a Model Context Protocol interface for the maze game.
//
// The package is a thin client: every tool call is proxied to the REST API
// server, so MCP agents and HTTP clients always see the same sessions and
// the same state.
//
// MCP Tools:
//
//   - create_session: Create a new game session with optional board selection
//   - get_session: Get specific session details
//   - list_sessions: List all active sessions
//   - game_state: Get the current game state
//   - render_board: Get a text drawing of the board
//   - turn: Play one turn (Theseus moves, then the Minotaur chases)
//   - reset_game: Restart the game on the same board
//   - turn_history: Retrieve turn history with pagination
//   - list_boards: List available boards
//   - game_instructions: Get comprehensive game rules
//
// Transport Modes:
//
// The underlying MCP server supports stdio for local clients and HTTP for
// remote integration; both are wired up in the main package.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
package mcp
