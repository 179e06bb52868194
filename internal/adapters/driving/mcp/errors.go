// Package mcp provides an MCP (Model Context Protocol) server adapter for Oracle.
// It enables AI assistants like Claude to load a document and chat with it.
package mcp

import "errors"

// ErrMissingSessionService is returned when the session service is not provided.
var ErrMissingSessionService = errors.New("mcp: session service is required")

// ErrMissingConversationService is returned when the conversation service is not provided.
var ErrMissingConversationService = errors.New("mcp: conversation service is required")
