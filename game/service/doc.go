// Package service provides the business logic layer for the Theseus maze chase.
//
// The service package implements:
//   - Multi-session game management
//   - Board loading and validation
//   - Turn processing (player command plus Minotaur chase)
//   - Session lifecycle management
//   - Turn history tracking
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// BoardManager loads and validates board files.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the game engine, providing session isolation, board management, and business
// logic orchestration. Each session maintains its own game engine instance with
// independent state.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	boardMgr, _ := boards.NewManager("boards")
//	gameService := service.NewGameService(sessionMgr, boardMgr)
//
//	// Create a new session
//	sessionInfo, err := gameService.CreateSession(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Play a turn
//	result, err := gameService.Turn(ctx, sessionInfo.ID, "w")
//
// Session Management:
//
// Sessions are identified by unique 4-character IDs and maintain independent
// game state. Multiple sessions can run concurrently on different boards.
// Sessions track creation time, last access time, and turn history for
// analytics and debugging.
package service
