// ABOUTME: MCP tool definitions for the knowledge assistant server
// ABOUTME: Registers remember, ingest_document, ask and get_history tools
package mcp

import (
	"go.uber.org/zap"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/platonbot/platon/internal/history"
	"github.com/platonbot/platon/internal/knowledge"
)

// RegisterTools registers all MCP tools with the server.
func RegisterTools(server *mcpserver.MCPServer, ingestor *knowledge.Ingestor, engine *knowledge.AnswerEngine, log *history.Log, logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	handlers := &Handlers{
		ingestor: ingestor,
		engine:   engine,
		history:  log,
		logger:   logger,
	}

	// 1. remember - store a free-text note in the owner's knowledge base
	server.AddTool(mcp.Tool{
		Name:        "remember",
		Description: "Store a free-text note in the owner's knowledge base for later retrieval.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"owner_id": map[string]interface{}{
					"type":        "number",
					"description": "Opaque integer identifying the owner of the note",
				},
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Note text to store",
				},
			},
			Required: []string{"owner_id", "text"},
		},
	}, handlers.Remember)

	// 2. ingest_document - ingest a .pdf or .txt file
	server.AddTool(mcp.Tool{
		Name:        "ingest_document",
		Description: "Ingest a .pdf or .txt document into the owner's knowledge base. Other formats are rejected.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"owner_id": map[string]interface{}{
					"type":        "number",
					"description": "Opaque integer identifying the owner of the document",
				},
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Path to the document on the server's filesystem",
				},
			},
			Required: []string{"owner_id", "path"},
		},
	}, handlers.IngestDocument)

	// 3. ask - answer a question from the owner's knowledge base
	server.AddTool(mcp.Tool{
		Name:        "ask",
		Description: "Answer a question from the owner's knowledge base, using recent conversation history as short-term context.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"owner_id": map[string]interface{}{
					"type":        "number",
					"description": "Opaque integer identifying the asking owner",
				},
				"question": map[string]interface{}{
					"type":        "string",
					"description": "Question to answer",
				},
			},
			Required: []string{"owner_id", "question"},
		},
	}, handlers.Ask)

	// 4. get_history - dump the owner's short-term conversation history
	server.AddTool(mcp.Tool{
		Name:        "get_history",
		Description: "Return the owner's recent conversation turns, oldest first.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"owner_id": map[string]interface{}{
					"type":        "number",
					"description": "Opaque integer identifying the owner",
				},
			},
			Required: []string{"owner_id"},
		},
	}, handlers.GetHistory)

	return handlers
}
