// Package website loads the readable text of a web page.
package website

import (
	"context"
	"html"
	"regexp"
	"strings"

	"github.com/pythia-labs/oracle-cli/internal/adapters/driven/loaders/fetch"
	"github.com/pythia-labs/oracle-cli/internal/core/domain"
	"github.com/pythia-labs/oracle-cli/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.Loader = (*Loader)(nil)

// Loader fetches a page over HTTP and strips the markup.
type Loader struct {
	client *fetch.Client
}

// New creates a website loader on the shared fetch client.
func New(client *fetch.Client) *Loader {
	return &Loader{client: client}
}

// Type is the source type this loader handles.
func (l *Loader) Type() domain.SourceType {
	return domain.SourceTypeWebsite
}

// Load fetches the page at src.Location and returns its visible text as
// a single fragment. Challenge interstitials pass through untouched so
// their text reaches the conversation.
func (l *Loader) Load(ctx context.Context, src domain.Source) ([]string, error) {
	body, err := l.client.Get(ctx, normaliseURL(src.Location))
	if err != nil {
		return nil, err
	}

	text := stripHTML(string(body))
	if text == "" {
		return nil, nil
	}
	return []string{text}, nil
}

// normaliseURL defaults the scheme so a bare host is accepted.
func normaliseURL(location string) string {
	location = strings.TrimSpace(location)
	if !strings.Contains(location, "://") {
		return "https://" + location
	}
	return location
}

// Pre-compiled regular expressions for HTML parsing performance.
var (
	scriptTag         = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleTag          = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	noscriptTag       = regexp.MustCompile(`(?is)<noscript[^>]*>.*?</noscript>`)
	svgTag            = regexp.MustCompile(`(?is)<svg[^>]*>.*?</svg>`)
	htmlComments      = regexp.MustCompile(`(?s)<!--.*?-->`)
	blockElements     = regexp.MustCompile(`(?i)</(p|div|br|hr|h[1-6]|li|tr|blockquote|pre|table|section|article|title)>`)
	openBlockElements = regexp.MustCompile(`(?i)<(p|div|h[1-6]|li|tr|blockquote|pre|table|section|article)[^>]*>`)
	brTags            = regexp.MustCompile(`(?i)<br\s*/?>`)
	hrTags            = regexp.MustCompile(`(?i)<hr\s*/?>`)
	allTags           = regexp.MustCompile(`<[^>]+>`)
	multiSpaces       = regexp.MustCompile(`[ \t]+`)
	multiNewlines     = regexp.MustCompile(`\n{3,}`)
)

// stripHTML removes HTML tags and extracts readable text content.
// The <head> is not dropped wholesale: the <title> text is part of the
// visible page (anti-bot interstitials carry their message there).
func stripHTML(content string) string {
	// Remove script, style, noscript and svg tags entirely
	content = scriptTag.ReplaceAllString(content, "")
	content = styleTag.ReplaceAllString(content, "")
	content = noscriptTag.ReplaceAllString(content, "")
	content = svgTag.ReplaceAllString(content, "")

	// Remove HTML comments
	content = htmlComments.ReplaceAllString(content, "")

	// Add newlines around block elements for readability
	content = openBlockElements.ReplaceAllString(content, "\n")
	content = blockElements.ReplaceAllString(content, "\n")

	// Convert <br> and <hr> to newlines
	content = brTags.ReplaceAllString(content, "\n")
	content = hrTags.ReplaceAllString(content, "\n")

	// Strip all remaining HTML tags
	content = allTags.ReplaceAllString(content, "")

	// Decode HTML entities
	content = html.UnescapeString(content)

	// Collapse multiple spaces (but preserve newlines)
	content = multiSpaces.ReplaceAllString(content, " ")

	// Collapse multiple newlines
	content = multiNewlines.ReplaceAllString(content, "\n\n")

	// Trim each line and remove empty lines
	lines := strings.Split(content, "\n")
	var result []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			result = append(result, line)
		}
	}

	return strings.Join(result, "\n")
}
