package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for Oracle resources.
	uriScheme = "oracle://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the loaded document text.
	s.core.AddResource(&mcp.Resource{
		URI:         uriScheme + "document",
		Name:        "document",
		Description: "Full text of the currently loaded document",
		MIMEType:    "text/plain",
	}, s.handleDocumentResource)

	// Static resource for the active session configuration.
	s.core.AddResource(&mcp.Resource{
		URI:         uriScheme + "session",
		Name:        "session",
		Description: "Provider, model and source of the active session",
		MIMEType:    "application/json",
	}, s.handleSessionResource)

	// Static resource for the conversation history.
	s.core.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Conversation history in chronological order",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)
}

// handleDocumentResource returns the full text of the loaded document.
func (s *Server) handleDocumentResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	doc, ok := s.ports.Session.Document()
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     doc.Content,
		}},
	}, nil
}

// handleSessionResource describes the active chain.
func (s *Server) handleSessionResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	chain, ok := s.ports.Session.Chain()
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	info := struct {
		Provider   string    `json:"provider"`
		Model      string    `json:"model"`
		SourceType string    `json:"source_type"`
		Location   string    `json:"location"`
		CreatedAt  time.Time `json:"created_at"`
	}{
		Provider:   string(chain.Provider),
		Model:      chain.Model,
		SourceType: chain.SourceType.String(),
		Location:   chain.SourceLocation,
		CreatedAt:  chain.CreatedAt,
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling session: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleHistoryResource returns the conversation buffer as JSON.
func (s *Server) handleHistoryResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	history := s.ports.Conversation.History()

	type messageInfo struct {
		Role    string    `json:"role"`
		Content string    `json:"content"`
		At      time.Time `json:"at"`
	}

	infos := make([]messageInfo, len(history))
	for i := range history {
		infos[i] = messageInfo{
			Role:    history[i].Role.String(),
			Content: history[i].Content,
			At:      history[i].At,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling history: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
