package driving

import (
	"context"

	"github.com/pythia-labs/oracle-cli/internal/core/domain"
)

// ContentService loads the textual content of a source.
// Dispatch is by source type over the registered loaders; the extracted
// fragments are flattened into a single opaque string.
type ContentService interface {
	// Load extracts the document for a source descriptor.
	Load(ctx context.Context, src domain.Source) (domain.Document, error)

	// SupportedTypes returns the source types with a registered loader.
	SupportedTypes() []domain.SourceType
}
