package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pythia-labs/oracle-cli/internal/core/domain"
	"github.com/pythia-labs/oracle-cli/internal/core/ports/driving"
)

// InitializeInput is the input schema for the oracle_initialize tool.
type InitializeInput struct {
	SourceType string `json:"source_type" jsonschema:"document source type: website, youtube, pdf, csv or txt"`
	Location   string `json:"location" jsonschema:"URL for remote sources, file path otherwise"`
	Provider   string `json:"provider,omitempty" jsonschema:"model provider (groq or openai); defaults to the stored settings"`
	Model      string `json:"model,omitempty" jsonschema:"model identifier; defaults to the provider's default model"`
	APIKey     string `json:"api_key,omitempty" jsonschema:"provider credential; defaults to the stored key"`
}

// InitializeOutput is the output schema for the oracle_initialize tool.
type InitializeOutput struct {
	Provider   string `json:"provider"`
	Model      string `json:"model"`
	SourceType string `json:"source_type"`
	Location   string `json:"location"`
}

// AskInput is the input schema for the oracle_ask tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the question to ask about the loaded document"`
}

// AskOutput is the output schema for the oracle_ask tool.
type AskOutput struct {
	Answer string `json:"answer"`
}

// ClearHistoryInput is the input schema for the oracle_clear_history tool.
type ClearHistoryInput struct{}

// ClearHistoryOutput is the output schema for the oracle_clear_history tool.
type ClearHistoryOutput struct {
	Cleared bool `json:"cleared"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.core, &mcp.Tool{
		Name:        "oracle_initialize",
		Description: "Load a document and bind a chat model to it",
	}, s.handleInitialise)

	mcp.AddTool(s.core, &mcp.Tool{
		Name:        "oracle_ask",
		Description: "Ask a question about the loaded document",
	}, s.handleAsk)

	mcp.AddTool(s.core, &mcp.Tool{
		Name:        "oracle_clear_history",
		Description: "Clear the conversation history",
	}, s.handleClearHistory)
}

// handleInitialise handles the oracle_initialize tool invocation.
func (s *Server) handleInitialise(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input InitializeInput,
) (*mcp.CallToolResult, InitializeOutput, error) {
	srcType, err := domain.ParseSourceType(input.SourceType)
	if err != nil {
		return nil, InitializeOutput{}, err
	}
	if input.Location == "" {
		return nil, InitializeOutput{}, errors.New("location is required")
	}

	cfg, err := s.resolveInitConfig(input)
	if err != nil {
		return nil, InitializeOutput{}, err
	}
	cfg.Source = domain.Source{Type: srcType, Location: input.Location}

	chain, err := s.ports.Session.Initialise(ctx, cfg)
	if err != nil {
		return nil, InitializeOutput{}, err
	}

	output := InitializeOutput{
		Provider:   string(chain.Provider),
		Model:      chain.Model,
		SourceType: chain.SourceType.String(),
		Location:   chain.SourceLocation,
	}

	return nil, output, nil
}

// resolveInitConfig layers the tool arguments over the persisted defaults.
func (s *Server) resolveInitConfig(input InitializeInput) (driving.InitConfig, error) {
	settings := domain.DefaultAppSettings()
	if s.ports.Settings != nil {
		if stored, err := s.ports.Settings.Get(); err == nil && stored != nil {
			settings = *stored
		}
	}

	cfg := driving.InitConfig{
		Provider: settings.LLM.Provider,
		Model:    settings.LLM.Model,
		APIKey:   settings.LLM.APIKey,
	}

	if input.Provider != "" {
		p, err := domain.ParseProvider(input.Provider)
		if err != nil {
			return cfg, err
		}
		cfg.Provider = p
		// The stored default key belongs to the stored default provider
		cfg.Model = domain.DefaultModel(p)
		cfg.APIKey = ""
		if s.ports.Settings != nil {
			cfg.APIKey = s.ports.Settings.APIKeyFor(p)
		}
	}
	if input.Model != "" {
		cfg.Model = input.Model
	}
	if input.APIKey != "" {
		cfg.APIKey = input.APIKey
	}

	return cfg, nil
}

// handleAsk handles the oracle_ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	if input.Question == "" {
		return nil, AskOutput{}, errors.New("question is required")
	}

	answer, err := s.ports.Conversation.Ask(ctx, input.Question)
	if err != nil {
		return nil, AskOutput{}, err
	}

	return nil, AskOutput{Answer: answer}, nil
}

// handleClearHistory handles the oracle_clear_history tool invocation.
func (s *Server) handleClearHistory(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ClearHistoryInput,
) (*mcp.CallToolResult, ClearHistoryOutput, error) {
	s.ports.Conversation.ClearHistory()
	return nil, ClearHistoryOutput{Cleared: true}, nil
}
