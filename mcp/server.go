// Package mcp serves the tool registry over the Model Context Protocol
// (JSON-RPC 2.0 over HTTP POST).
package mcp

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forhad-fhj/SkillBridge/tools"
)

// ProtocolVersion is the MCP revision reported by initialize
const ProtocolVersion = "2024-11-05"

// JSON-RPC error codes
const (
	codeParseError     = -32700
	codeInvalidRequest = -32600
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
)

// Server exposes the registered tools to external AI agents
type Server struct {
	registry *tools.Registry
	name     string
	version  string
}

// NewServer creates a new MCP server. name and version identify the server
// in the initialize handshake.
func NewServer(registry *tools.Registry, name, version string) *Server {
	return &Server{
		registry: registry,
		name:     name,
		version:  version,
	}
}

// MCPRequest is a JSON-RPC request
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse is a JSON-RPC response
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError is a JSON-RPC error object
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// InitializeResult answers the initialize handshake
type InitializeResult struct {
	ProtocolVersion string                 `json:"protocolVersion"`
	Capabilities    map[string]interface{} `json:"capabilities"`
	ServerInfo      ServerInfo             `json:"serverInfo"`
}

// ServerInfo names the server
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ToolsListResult is the result of tools/list
type ToolsListResult struct {
	Tools []tools.Definition `json:"tools"`
}

// ToolCallParams are the parameters of tools/call
type ToolCallParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// ToolCallResult is the result of tools/call. The text content holds the
// tools.Result JSON; StructuredContent carries the same value decoded.
type ToolCallResult struct {
	Content           []ContentItem `json:"content"`
	StructuredContent tools.Result  `json:"structuredContent"`
	IsError           bool          `json:"isError,omitempty"`
}

// ContentItem is one content block of a tool result
type ContentItem struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// RegisterRoutes registers the MCP endpoints on the given router group
func (s *Server) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/mcp", s.HandleMCP)
	router.POST("/mcp/tools/call", s.HandleToolsCall)
	router.GET("/tools", s.GetTools)
}

// HandleMCP handles MCP JSON-RPC requests
// @Summary MCP JSON-RPC endpoint
// @Description Handle initialize, ping, tools/list and tools/call JSON-RPC 2.0 requests. Tool arguments are validated against the tool's input schema before it runs.
// @Tags Tools
// @Accept json
// @Produce json
// @Param request body MCPRequest true "JSON-RPC request"
// @Success 200 {object} MCPResponse "JSON-RPC response"
// @Router /mcp [post]
func (s *Server) HandleMCP(c *gin.Context) {
	var req MCPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.sendError(c, nil, codeParseError, "Parse error", err.Error())
		return
	}
	if req.JSONRPC != "2.0" {
		s.sendError(c, req.ID, codeInvalidRequest, "Invalid request", "jsonrpc must be \"2.0\"")
		return
	}

	switch req.Method {
	case "initialize":
		s.sendResult(c, req.ID, InitializeResult{
			ProtocolVersion: ProtocolVersion,
			Capabilities:    map[string]interface{}{"tools": map[string]interface{}{}},
			ServerInfo:      ServerInfo{Name: s.name, Version: s.version},
		})
	case "ping":
		s.sendResult(c, req.ID, struct{}{})
	case "tools/list":
		s.sendResult(c, req.ID, ToolsListResult{Tools: s.registry.Definitions()})
	case "tools/call":
		var params ToolCallParams
		if err := json.Unmarshal(req.Params, &params); err != nil {
			s.sendError(c, req.ID, codeInvalidParams, "Invalid params", err.Error())
			return
		}
		result, err := s.call(c.Request.Context(), params)
		if err != nil {
			s.sendError(c, req.ID, codeInvalidParams, "Unknown tool", params.Name)
			return
		}
		s.sendResult(c, req.ID, result)
	default:
		s.sendError(c, req.ID, codeMethodNotFound, "Method not found", req.Method)
	}
}

// HandleToolsCall runs a tool without the JSON-RPC envelope
// @Summary Call a tool
// @Description Run a registered tool by name. Unknown tools return 404.
// @Tags Tools
// @Accept json
// @Produce json
// @Param request body ToolCallParams true "Tool name and arguments"
// @Success 200 {object} ToolCallResult "Tool result"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Unknown tool"
// @Router /mcp/tools/call [post]
func (s *Server) HandleToolsCall(c *gin.Context) {
	var params ToolCallParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	result, err := s.call(c.Request.Context(), params)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetTools returns available MCP tools
// @Summary List available tools
// @Description Get a list of all available MCP tools for AI agents
// @Tags Tools
// @Produce json
// @Success 200 {object} ToolsListResult "List of tools"
// @Router /tools [get]
func (s *Server) GetTools(c *gin.Context) {
	c.JSON(http.StatusOK, ToolsListResult{Tools: s.registry.Definitions()})
}

// call runs the tool and wraps its outcome as MCP content. The error is
// non-nil only for unknown tools.
func (s *Server) call(ctx context.Context, params ToolCallParams) (*ToolCallResult, error) {
	log.Printf("[MCP] Executing tool: %s", params.Name)
	outcome, err := s.registry.Call(ctx, params.Name, params.Arguments)
	if err != nil {
		log.Printf("[MCP] Tool %s: %v", params.Name, err)
		return nil, err
	}

	text, err := json.Marshal(outcome)
	if err != nil {
		return nil, err
	}
	if !outcome.Success {
		log.Printf("[MCP] Tool %s failed: %s", params.Name, outcome.Error)
	}
	return &ToolCallResult{
		Content:           []ContentItem{{Type: "text", Text: string(text)}},
		StructuredContent: outcome,
		IsError:           !outcome.Success,
	}, nil
}

func (s *Server) sendResult(c *gin.Context, id interface{}, result interface{}) {
	c.JSON(http.StatusOK, MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	})
}

func (s *Server) sendError(c *gin.Context, id interface{}, code int, message string, data interface{}) {
	c.JSON(http.StatusOK, MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	})
}
