package domain

import (
	"strings"
	"time"
)

// FragmentSeparator joins extracted fragments (one per page, row or
// section) into the final document text.
const FragmentSeparator = "\n\n"

// Document is the extracted text of a single loaded source.
// It is produced once per initialisation and immutable thereafter.
type Document struct {
	// SourceType is the declared type of the originating source.
	SourceType SourceType

	// Location is the URL or file path the document was loaded from.
	// Empty for uploads without a path.
	Location string

	// Content is the full extracted text: fragments joined with
	// FragmentSeparator, no fragment-level structure retained.
	Content string

	// Fragments is the number of fragments the extraction produced.
	Fragments int

	// LoadedAt is when extraction completed.
	LoadedAt time.Time
}

// JoinFragments flattens extraction output into the document text.
// Given fragments F1..Fn the result is exactly F1 + "\n\n" + F2 + ... + Fn.
func JoinFragments(fragments []string) string {
	return strings.Join(fragments, FragmentSeparator)
}

// NewDocument assembles a Document from extraction output.
func NewDocument(src Source, fragments []string) Document {
	return Document{
		SourceType: src.Type,
		Location:   src.Location,
		Content:    JoinFragments(fragments),
		Fragments:  len(fragments),
		LoadedAt:   time.Now(),
	}
}

// IsEmpty returns true if the document holds no usable text.
func (d Document) IsEmpty() bool {
	return strings.TrimSpace(d.Content) == ""
}
