package domain

import (
	"fmt"
	"strings"
)

// SourceType identifies the kind of document a session is built from.
// The set is closed: anything else is rejected at load time.
type SourceType string

// Available source types. The string values are the canonical display
// names and are embedded verbatim into the instruction prompt.
const (
	// SourceTypeWebsite is a web page fetched by URL.
	SourceTypeWebsite SourceType = "Website"

	// SourceTypeYoutube is a YouTube video's transcript, by URL or video ID.
	SourceTypeYoutube SourceType = "Youtube"

	// SourceTypePdf is a PDF file.
	SourceTypePdf SourceType = "Pdf"

	// SourceTypeCsv is a CSV file.
	SourceTypeCsv SourceType = "Csv"

	// SourceTypeTxt is a plain text file.
	SourceTypeTxt SourceType = "Txt"
)

// IsValid returns true if the source type is recognised.
func (t SourceType) IsValid() bool {
	switch t {
	case SourceTypeWebsite, SourceTypeYoutube, SourceTypePdf, SourceTypeCsv, SourceTypeTxt:
		return true
	default:
		return false
	}
}

// IsRemote returns true if the source is addressed by URL rather than
// by a local file path or uploaded bytes.
func (t SourceType) IsRemote() bool {
	return t == SourceTypeWebsite || t == SourceTypeYoutube
}

// String returns the string representation.
func (t SourceType) String() string {
	return string(t)
}

// Description returns a human-readable description of the source type.
func (t SourceType) Description() string {
	switch t {
	case SourceTypeWebsite:
		return "Website (page URL)"
	case SourceTypeYoutube:
		return "Youtube (video URL)"
	case SourceTypePdf:
		return "Pdf (PDF file)"
	case SourceTypeCsv:
		return "Csv (CSV file)"
	case SourceTypeTxt:
		return "Txt (plain text file)"
	default:
		return unknownDescription
	}
}

// AllSourceTypes returns all supported source types in display order.
func AllSourceTypes() []SourceType {
	return []SourceType{
		SourceTypeWebsite,
		SourceTypeYoutube,
		SourceTypePdf,
		SourceTypeCsv,
		SourceTypeTxt,
	}
}

// ParseSourceType resolves a case-insensitive name to a source type.
func ParseSourceType(s string) (SourceType, error) {
	for _, t := range AllSourceTypes() {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedSourceType, s)
}

// Source describes where a document comes from.
// Remote types carry a URL in Location. File-backed types carry either a
// local path in Location or the raw content in Data; when both are set,
// Data wins (upload semantics).
type Source struct {
	// Type is the declared source type.
	Type SourceType

	// Location is a URL for remote types, a file path otherwise.
	Location string

	// Data is the raw file content for file-backed types. Optional.
	Data []byte
}

// Validate checks the source descriptor is loadable in principle.
// It does not touch the network or the filesystem.
func (s Source) Validate() error {
	if !s.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedSourceType, string(s.Type))
	}
	if s.Type.IsRemote() {
		if strings.TrimSpace(s.Location) == "" {
			return fmt.Errorf("%w: %s requires a URL", ErrInvalidSource, s.Type)
		}
		return nil
	}
	if strings.TrimSpace(s.Location) == "" && len(s.Data) == 0 {
		return fmt.Errorf("%w: %s requires a file path or content", ErrInvalidSource, s.Type)
	}
	return nil
}

// DisplayName returns a short descriptor for status lines.
func (s Source) DisplayName() string {
	loc := s.Location
	if loc == "" {
		loc = "(uploaded content)"
	}
	return fmt.Sprintf("%s: %s", s.Type, loc)
}
