// Package pdf extracts text from PDF files with the poppler pdftotext
// tool.
package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/pythia-labs/oracle-cli/internal/core/domain"
	"github.com/pythia-labs/oracle-cli/internal/core/ports/driven"
)

// ErrPDFToolNotFound indicates pdftotext is not installed.
var ErrPDFToolNotFound = errors.New("pdftotext not found in PATH")

// pdfToTextBin is the poppler extraction binary.
const pdfToTextBin = "pdftotext"

// CommandRunner executes an external command and returns its stdout.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// execRunner runs commands with os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return nil, fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}

// Ensure Loader implements the interface.
var _ driven.Loader = (*Loader)(nil)

// Loader extracts PDF text by shelling out to pdftotext.
type Loader struct {
	runner CommandRunner
}

// New creates a PDF loader using the system pdftotext.
func New() *Loader {
	return &Loader{runner: execRunner{}}
}

// NewWithRunner creates a PDF loader with a custom command runner.
func NewWithRunner(runner CommandRunner) *Loader {
	return &Loader{runner: runner}
}

// Type is the source type this loader handles.
func (l *Loader) Type() domain.SourceType {
	return domain.SourceTypePdf
}

// Load writes the PDF bytes to a transient temp file, runs pdftotext on
// it and splits the output into one fragment per page. pdftotext needs a
// path, and the temp file never outlives the call.
func (l *Loader) Load(ctx context.Context, src domain.Source) ([]string, error) {
	data := src.Data
	if len(data) == 0 {
		var err error
		data, err = os.ReadFile(src.Location)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", src.Location, err)
		}
	}

	tmp, err := os.CreateTemp("", "oracle-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	// -layout keeps columns readable; "-" sends the text to stdout.
	out, err := l.runner.Run(ctx, pdfToTextBin, "-layout", "-enc", "UTF-8", tmp.Name(), "-")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, ErrPDFToolNotFound
		}
		return nil, fmt.Errorf("pdftotext failed: %w", err)
	}

	return splitPages(string(out)), nil
}

// splitPages cuts the pdftotext output on form feeds, one per page.
// Blank pages are dropped.
func splitPages(text string) []string {
	var pages []string
	for _, page := range strings.Split(text, "\f") {
		page = strings.TrimSpace(page)
		if page != "" {
			pages = append(pages, page)
		}
	}
	return pages
}

// CheckAvailable reports whether pdftotext is installed.
func CheckAvailable() error {
	if _, err := exec.LookPath(pdfToTextBin); err != nil {
		return ErrPDFToolNotFound
	}
	return nil
}

// InstallInstructions returns per-platform install guidance.
func InstallInstructions() string {
	return `pdftotext is required for PDF extraction.

  macOS:         brew install poppler
  Debian/Ubuntu: sudo apt install poppler-utils
  Fedora:        sudo dnf install poppler-utils`
}
