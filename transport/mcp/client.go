package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mazegames/theseus/game/engine"
	"github.com/mazegames/theseus/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Theseus and the Minotaur",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Theseus and the Minotaur - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Guide Theseus (T) to the goal (G) before the Minotaur (M) catches him.
Every turn Theseus moves one square, then the Minotaur takes one greedy
step toward him: horizontal first, vertical as fallback, standing still
when both are blocked.

AVAILABLE TOOLS:
- game_state: Get current game state
- render_board: Get a text drawing of the board
- turn: Play one turn (w/a/s/d or up/down/left/right or wait)
- reset_game: Restart the game on the same board
- turn_history: View past turns
- create_session: Create new game session
- get_session: Get session details
- list_sessions: List all active sessions
- list_boards: List available boards
- game_instructions: Get comprehensive game instructions and rules

HINT: Walls block the Minotaur too. The winning trick is to use the
greedy chase against him: bait him behind walls so he wastes turns.`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional board selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"board": map[string]interface{}{
					"type":        "string",
					"description": "Name of the board to play (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current game state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "render_board",
		Description: "Get a text drawing of the current board",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleRenderBoard)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "turn",
		Description: "Play one turn: move Theseus, then the Minotaur chases",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"input": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"w", "a", "s", "d", "up", "down", "left", "right", "wait", "."},
					"description": "Movement command, or wait to skip the move",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this turn (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id", "input"},
		},
	}, c.handleTurn)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Restart the game on the same board",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleReset)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "turn_history",
		Description: "Get turn history for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Items per page",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleTurnHistory)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_boards",
		Description: "List available boards",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListBoards)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	boardName, _ := args["board"].(string)

	body := map[string]string{}
	if boardName != "" {
		body["board"] = boardName
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nBoard: %s\n\n%s",
		session.ID, session.BoardName, formatSnapshot(&session.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		result += fmt.Sprintf("- %s (Board: %s, Turns: %d, Created: %s)\n",
			s.ID, s.BoardName, s.Turns, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.Snapshot
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSnapshot(&state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleRenderBoard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Board  string `json:"board"`
		Status string `json:"status"`
	}

	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/render", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := response.Board
	if response.Status != "continue" {
		result += fmt.Sprintf("\n\nStatus: %s", response.Status)
	}
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleTurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	input, _ := args["input"].(string)

	// The intent argument is for the caller's benefit only; it never reaches
	// the game.

	body := map[string]interface{}{
		"input": input,
	}

	var result service.TurnResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/turn", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatTurnResult(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Message string              `json:"message"`
		Session service.SessionInfo `json:"session"`
	}

	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/reset", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatSnapshot(&response.Session.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleTurnHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	params := "?"
	if page, ok := args["page"].(float64); ok {
		params += fmt.Sprintf("page=%d&", int(page))
	}
	if limit, ok := args["limit"].(float64); ok {
		params += fmt.Sprintf("limit=%d&", int(limit))
	}

	var history service.HistoryResponse
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/history%s", sessionID, params), nil, &history)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatHistory(&history)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListBoards(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var boards []service.BoardInfo
	err := c.apiCall("GET", "/api/boards", nil, &boards)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Boards:\n\n"
	for _, board := range boards {
		result += fmt.Sprintf("• %s\n  Size: %dx%d, Theseus: (%d,%d), Minotaur: (%d,%d), Goal: (%d,%d)\n\n",
			board.BoardID, board.Width, board.Height,
			board.Theseus.Row, board.Theseus.Col,
			board.Minotaur.Row, board.Minotaur.Col,
			board.Goal.Row, board.Goal.Col)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `Theseus and the Minotaur - Complete Instructions

GAME OBJECTIVE:
Guide Theseus (T) to the goal square (G) before the Minotaur (M) catches him.

TURN STRUCTURE:
Each turn has two phases, always in this order:
1. Theseus acts: move one square up/down/left/right, or wait in place
2. The Minotaur takes exactly one chase step toward Theseus

A move into a wall or off the board is silently ignored; Theseus stays put
but the turn is still consumed and the Minotaur still moves.

MINOTAUR BEHAVIOR (fully deterministic):
The Minotaur is greedy and horizontal-first:
1. If it can close the column gap, it steps left or right toward Theseus
2. Otherwise, if it can close the row gap, it steps up or down
3. Otherwise it stands still for the turn
It never steps into walls and never moves diagonally. The same position
always produces the same chase step, so its path can be predicted exactly.

WIN / LOSE:
- Lose: the Minotaur occupies the same square as Theseus (checked first)
- Win: Theseus stands on the goal square
The capture check runs before the goal check, so being caught on the goal
square is a loss.

BOARD LEGEND:
- T - Theseus (you)
- M - Minotaur
- G - Goal (exit of the labyrinth)
- X - Wall (impassable for everyone)
- space - Open floor

MOVEMENT COMMANDS:
- w / up - move up
- s / down - move down
- a / left - move left
- d / right - move right
- wait / . / empty - skip the move (the Minotaur still moves!)

STRATEGY:
The Minotaur is faster than you in open terrain because it moves every
turn, just like you. The winning technique is to exploit its greedy
horizontal-first rule: position yourself so its preferred horizontal step
is walled off, forcing it into dead ends or making it oscillate, then run
for the goal. Waiting is a real tactical move: a well-timed wait can lure
the Minotaur one square into a trap.

SESSION MANAGEMENT:
- Multiple game sessions can run simultaneously
- Each session has a unique 4-character ID
- Sessions maintain independent state and board
- Use reset_game to replay the same board from the start`

	return mcp.NewToolResultText(instructions), nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	finished := ""
	if session.Finished {
		finished = " (finished)"
	}
	return fmt.Sprintf("Session: %s\nBoard: %s\nTurns: %d%s\nCreated: %s\n\n%s",
		session.ID, session.BoardName, session.Turns, finished,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatSnapshot(&session.State))
}

func formatSnapshot(state *engine.Snapshot) string {
	if state == nil {
		return "No game state available"
	}

	var result strings.Builder

	result.WriteString(fmt.Sprintf("Theseus: (%d,%d) | Minotaur: (%d,%d) | Goal: (%d,%d) | Status: %s\n\n",
		state.Theseus.Row, state.Theseus.Col,
		state.Minotaur.Row, state.Minotaur.Col,
		state.Goal.Row, state.Goal.Col,
		state.Status))

	for _, row := range state.Rows {
		result.WriteString(row)
		result.WriteString("\n")
	}

	switch state.Status {
	case "win":
		result.WriteString("\nTheseus escaped the labyrinth!")
	case "lose":
		result.WriteString("\nThe Minotaur caught Theseus.")
	}

	return result.String()
}

func formatTurnResult(result *service.TurnResult) string {
	if result.Quit {
		return "Input not recognized as a game command; no turn was played.\n\n" +
			formatSnapshot(&result.State)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Turn %d: %s", result.Turn, result.Command))
	if result.Blocked {
		b.WriteString(" (blocked, Theseus stayed put)")
	}
	b.WriteString("\n")

	if result.Record != nil {
		r := result.Record
		b.WriteString(fmt.Sprintf("Theseus (%d,%d)→(%d,%d) | Minotaur (%d,%d)→(%d,%d)\n",
			r.TheseusFrom.Row, r.TheseusFrom.Col, r.TheseusTo.Row, r.TheseusTo.Col,
			r.MinotaurFrom.Row, r.MinotaurFrom.Col, r.MinotaurTo.Row, r.MinotaurTo.Col))
	}

	b.WriteString("\n")
	b.WriteString(formatSnapshot(&result.State))
	return b.String()
}

func formatHistory(history *service.HistoryResponse) string {
	result := fmt.Sprintf("Turn History (Page %d/%d) - Total turns: %d\n\n",
		history.Page, history.TotalPages, history.TotalTurns)

	for _, turn := range history.Turns {
		blocked := ""
		if turn.Blocked {
			blocked = " (blocked)"
		}
		result += fmt.Sprintf("%d. %s%s | Theseus (%d,%d)→(%d,%d) | Minotaur (%d,%d)→(%d,%d) | %s\n",
			turn.Turn, turn.Command, blocked,
			turn.TheseusFrom.Row, turn.TheseusFrom.Col, turn.TheseusTo.Row, turn.TheseusTo.Col,
			turn.MinotaurFrom.Row, turn.MinotaurFrom.Col, turn.MinotaurTo.Row, turn.MinotaurTo.Col,
			turn.Status)
	}

	return result
}
