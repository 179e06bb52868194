package services

import (
	"context"
	"fmt"

	"github.com/pythia-labs/oracle-cli/internal/core/domain"
	"github.com/pythia-labs/oracle-cli/internal/core/ports/driven"
	"github.com/pythia-labs/oracle-cli/internal/core/ports/driving"
)

// Ensure ContentService implements the interface.
var _ driving.ContentService = (*ContentService)(nil)

// ContentService loads documents through source-type specific loaders.
type ContentService struct {
	loaders map[domain.SourceType]driven.Loader
}

// NewContentService creates a content service with the given loaders.
// Registering two loaders for the same source type keeps the last one.
func NewContentService(loaders ...driven.Loader) *ContentService {
	s := &ContentService{
		loaders: make(map[domain.SourceType]driven.Loader, len(loaders)),
	}
	for _, l := range loaders {
		s.loaders[l.Type()] = l
	}
	return s
}

// Load validates the source, dispatches to the matching loader and joins
// the extracted fragments into a single document.
func (s *ContentService) Load(ctx context.Context, src domain.Source) (domain.Document, error) {
	if err := src.Validate(); err != nil {
		return domain.Document{}, err
	}

	loader, ok := s.loaders[src.Type]
	if !ok {
		return domain.Document{}, fmt.Errorf("%w: %s", domain.ErrUnsupportedSourceType, src.Type)
	}

	fragments, err := loader.Load(ctx, src)
	if err != nil {
		return domain.Document{}, fmt.Errorf("load %s content: %w", src.Type, err)
	}

	doc := domain.NewDocument(src, fragments)
	if doc.IsEmpty() {
		return domain.Document{}, fmt.Errorf("%w: %s yielded no content", domain.ErrEmptyDocument, src.DisplayName())
	}

	return doc, nil
}

// SupportedTypes returns the source types with a registered loader,
// in catalogue order.
func (s *ContentService) SupportedTypes() []domain.SourceType {
	types := make([]domain.SourceType, 0, len(s.loaders))
	for _, t := range domain.AllSourceTypes() {
		if _, ok := s.loaders[t]; ok {
			types = append(types, t)
		}
	}
	return types
}
