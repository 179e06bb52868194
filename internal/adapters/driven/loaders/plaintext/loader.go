// Package plaintext loads plain text files verbatim.
package plaintext

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/pythia-labs/oracle-cli/internal/core/domain"
	"github.com/pythia-labs/oracle-cli/internal/core/ports/driven"
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// Ensure Loader implements the interface.
var _ driven.Loader = (*Loader)(nil)

// Loader reads text files as a single fragment.
type Loader struct{}

// New creates a plain text loader.
func New() *Loader {
	return &Loader{}
}

// Type is the source type this loader handles.
func (l *Loader) Type() domain.SourceType {
	return domain.SourceTypeTxt
}

// Load returns the file content as-is. Binary files are rejected rather
// than fed to the model as mojibake.
func (l *Loader) Load(_ context.Context, src domain.Source) ([]string, error) {
	data, err := contentOf(src)
	if err != nil {
		return nil, err
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: content is not valid UTF-8", domain.ErrInvalidSource)
	}

	text := string(data)
	if text == "" {
		return nil, nil
	}
	return []string{text}, nil
}

func contentOf(src domain.Source) ([]byte, error) {
	if len(src.Data) > 0 {
		return src.Data, nil
	}
	data, err := os.ReadFile(src.Location)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", src.Location, err)
	}
	return data, nil
}
