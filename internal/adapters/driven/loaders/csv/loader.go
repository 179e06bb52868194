// Package csv loads tabular documents, one fragment per data row.
package csv

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/pythia-labs/oracle-cli/internal/core/domain"
	"github.com/pythia-labs/oracle-cli/internal/core/ports/driven"
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// Ensure Loader implements the interface.
var _ driven.Loader = (*Loader)(nil)

// Loader parses CSV files.
type Loader struct{}

// New creates a CSV loader.
func New() *Loader {
	return &Loader{}
}

// Type is the source type this loader handles.
func (l *Loader) Type() domain.SourceType {
	return domain.SourceTypeCsv
}

// Load parses the records; the first is the header and every later one
// becomes a fragment of "column: value" lines. A header-only file yields
// no fragments.
func (l *Loader) Load(_ context.Context, src domain.Source) ([]string, error) {
	data, err := contentOf(src)
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	r.FieldsPerRecord = -1 // tolerate ragged rows

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	header := records[0]
	fragments := make([]string, 0, len(records)-1)
	for _, record := range records[1:] {
		fragments = append(fragments, renderRow(header, record))
	}
	return fragments, nil
}

// renderRow formats one record as a line per column. Missing trailing
// fields render as empty values; fields past the header are dropped.
func renderRow(header, record []string) string {
	var b strings.Builder
	for i, name := range header {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(name)
		b.WriteString(": ")
		if i < len(record) {
			b.WriteString(record[i])
		}
	}
	return b.String()
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
