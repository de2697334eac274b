// ABOUTME: MCP tool handler implementations for the knowledge assistant
// ABOUTME: Translates pipeline errors into tool errors, never crashes the server
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/platonbot/platon/internal/history"
	"github.com/platonbot/platon/internal/knowledge"
	"github.com/platonbot/platon/internal/models"
)

// Handlers contains the handler functions for all MCP tools.
type Handlers struct {
	ingestor *knowledge.Ingestor
	engine   *knowledge.AnswerEngine
	history  *history.Log
	logger   *zap.Logger
}

// Remember handles the remember tool.
func (h *Handlers) Remember(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ownerID, err := requireOwnerID(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text argument is required and must be a string"), nil
	}

	result, err := h.ingestor.IngestText(ctx, text, ownerID)
	if err != nil {
		if errors.Is(err, models.ErrEmptyInput) {
			return mcp.NewToolResultError("note text is empty"), nil
		}
		h.logger.Warn("note ingestion failed", zap.Int64("owner_id", ownerID), zap.Error(err))
		return mcp.NewToolResultError(fmt.Sprintf("ingestion failed: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{
		"stored":         true,
		"fragment_count": result.FragmentCount,
	})
}

// IngestDocument handles the ingest_document tool.
func (h *Handlers) IngestDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ownerID, err := requireOwnerID(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path argument is required and must be a string"), nil
	}

	result, err := h.ingestor.IngestFile(ctx, path, ownerID)
	if err != nil {
		if errors.Is(err, models.ErrUnsupportedFormat) {
			return mcp.NewToolResultError(fmt.Sprintf("unsupported format: %v", err)), nil
		}
		h.logger.Warn("document ingestion failed",
			zap.Int64("owner_id", ownerID),
			zap.String("path", path),
			zap.Error(err),
		)
		return mcp.NewToolResultError(fmt.Sprintf("ingestion failed: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{
		"stored":         true,
		"fragment_count": result.FragmentCount,
	})
}

// Ask handles the ask tool. The owner's history is read before answering and
// updated with both sides of the exchange afterwards.
func (h *Handlers) Ask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ownerID, err := requireOwnerID(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("question argument is required and must be a string"), nil
	}

	answer, err := h.engine.Answer(ctx, question, ownerID, h.history.Get(ownerID))
	if err != nil {
		h.logger.Warn("answer failed", zap.Int64("owner_id", ownerID), zap.Error(err))
		return mcp.NewToolResultError(fmt.Sprintf("answer failed: %v", err)), nil
	}

	h.history.Append(ownerID, models.RoleUser, question)
	h.history.Append(ownerID, models.RoleAssistant, answer)

	return jsonResult(map[string]interface{}{
		"answer": answer,
	})
}

// GetHistory handles the get_history tool.
func (h *Handlers) GetHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ownerID, err := requireOwnerID(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	turns := h.history.Get(ownerID)
	if turns == nil {
		turns = []models.ConversationTurn{}
	}
	return jsonResult(map[string]interface{}{
		"turns": turns,
	})
}

// requireOwnerID extracts the mandatory owner_id argument.
func requireOwnerID(request mcp.CallToolRequest) (int64, error) {
	ownerID, err := request.RequireInt("owner_id")
	if err != nil {
		return 0, fmt.Errorf("owner_id argument is required and must be an integer")
	}
	return int64(ownerID), nil
}

// jsonResult marshals a response map into a text tool result.
func jsonResult(response map[string]interface{}) (*mcp.CallToolResult, error) {
	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}
