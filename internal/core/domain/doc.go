// Package domain defines the core business entities for Oracle.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - Source: a user-supplied pointer to a document (URL, file path or bytes)
//   - Document: the extracted text of a loaded source
//   - Chain: the instruction prompt bound to a configured chat model
//   - Message: one entry in the conversation buffer
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library, ID generation only
//   - Cannot Import: Any internal/ package
package domain
