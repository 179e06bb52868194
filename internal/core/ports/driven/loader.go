package driven

import (
	"context"

	"github.com/pythia-labs/oracle-cli/internal/core/domain"
)

// Loader extracts the textual content of one source type.
// Each loader returns a sequence of text fragments (one per page, row or
// section); flattening into the final document text is the content
// service's job, so the join rule lives in exactly one place.
type Loader interface {
	// Type is the source type this loader handles.
	Type() domain.SourceType

	// Load extracts text fragments from the source. Implementations may
	// fetch over the network (remote types) or read Location when
	// src.Data is nil (file-backed types).
	Load(ctx context.Context, src domain.Source) ([]string, error)
}
