// Package youtube loads the caption transcript of a YouTube video.
//
// The transcript is assembled in two requests: the watch page embeds the
// available caption tracks as JSON, and the chosen track's timedtext URL
// returns the snippets as XML. No API key is involved.
package youtube

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"net/url"
	"regexp"
	"strings"

	"github.com/pythia-labs/oracle-cli/internal/adapters/driven/loaders/fetch"
	"github.com/pythia-labs/oracle-cli/internal/core/domain"
	"github.com/pythia-labs/oracle-cli/internal/core/ports/driven"
)

// DefaultWatchBase is the public watch page endpoint.
const DefaultWatchBase = "https://www.youtube.com"

// captionTracksKey marks the caption track list inside the player
// response embedded in the watch page.
const captionTracksKey = `"captionTracks":`

// Ensure Loader implements the interface.
var _ driven.Loader = (*Loader)(nil)

// Loader fetches video transcripts.
type Loader struct {
	client    *fetch.Client
	languages []string
	watchBase string
}

// New creates a transcript loader on the shared fetch client. The
// languages list is tried in order; empty defaults to Portuguese.
func New(client *fetch.Client, languages []string) *Loader {
	if len(languages) == 0 {
		languages = domain.DefaultAppSettings().Loader.YoutubeLanguages
	}
	return &Loader{
		client:    client,
		languages: languages,
		watchBase: DefaultWatchBase,
	}
}

// Type is the source type this loader handles.
func (l *Loader) Type() domain.SourceType {
	return domain.SourceTypeYoutube
}

// Load resolves the video ID, picks a caption track matching the
// configured languages and returns the transcript as a single fragment.
// A video without a matching track is domain.ErrTranscriptUnavailable;
// there is no silent fallback to another language.
func (l *Loader) Load(ctx context.Context, src domain.Source) ([]string, error) {
	videoID, err := extractVideoID(src.Location)
	if err != nil {
		return nil, err
	}

	page, err := l.client.Get(ctx, l.watchBase+"/watch?v="+url.QueryEscape(videoID))
	if err != nil {
		return nil, err
	}

	tracks, err := parseCaptionTracks(string(page), videoID)
	if err != nil {
		return nil, err
	}

	track, ok := pickTrack(tracks, l.languages)
	if !ok {
		return nil, fmt.Errorf("%w: no %s captions for video %s",
			domain.ErrTranscriptUnavailable, strings.Join(l.languages, "/"), videoID)
	}

	body, err := l.client.Get(ctx, track.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("fetch transcript: %w", err)
	}

	text, err := flattenTranscript(body)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	return []string{text}, nil
}

// videoIDPattern matches a bare 11-character video ID.
var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// extractVideoID accepts a bare ID or any of the usual URL shapes:
// watch?v=, youtu.be/, embed/, shorts/ and live/.
func extractVideoID(location string) (string, error) {
	location = strings.TrimSpace(location)
	if videoIDPattern.MatchString(location) {
		return location, nil
	}

	raw := location
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a video URL or ID", domain.ErrInvalidSource, location)
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	var id string
	switch host {
	case "youtu.be":
		id = firstSegment(u.Path)
	case "youtube.com", "m.youtube.com", "music.youtube.com", "youtube-nocookie.com":
		if v := u.Query().Get("v"); v != "" {
			id = v
			break
		}
		for _, prefix := range []string{"/embed/", "/shorts/", "/live/"} {
			if strings.HasPrefix(u.Path, prefix) {
				id = firstSegment(strings.TrimPrefix(u.Path, prefix))
				break
			}
		}
	}

	if !videoIDPattern.MatchString(id) {
		return "", fmt.Errorf("%w: %q is not a video URL or ID", domain.ErrInvalidSource, location)
	}
	return id, nil
}

func firstSegment(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		return path[:i]
	}
	return path
}

// captionTrack is one entry of the embedded caption track list.
type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" marks auto-generated tracks
}

// parseCaptionTracks finds the caption track array inside the watch page.
func parseCaptionTracks(page, videoID string) ([]captionTrack, error) {
	idx := strings.Index(page, captionTracksKey)
	if idx == -1 {
		return nil, fmt.Errorf("%w: video %s has no captions", domain.ErrTranscriptUnavailable, videoID)
	}

	dec := json.NewDecoder(strings.NewReader(page[idx+len(captionTracksKey):]))
	var tracks []captionTrack
	if err := dec.Decode(&tracks); err != nil {
		return nil, fmt.Errorf("%w: malformed caption metadata for video %s", domain.ErrTranscriptUnavailable, videoID)
	}
	return tracks, nil
}

// pickTrack returns the first track matching the language preference
// list. Per language, a manually authored track beats an auto-generated
// one, and a bare code accepts regional variants (pt matches pt-BR).
func pickTrack(tracks []captionTrack, languages []string) (captionTrack, bool) {
	for _, lang := range languages {
		for _, t := range tracks {
			if strings.EqualFold(t.LanguageCode, lang) && t.Kind != "asr" {
				return t, true
			}
		}
		for _, t := range tracks {
			if strings.EqualFold(t.LanguageCode, lang) {
				return t, true
			}
		}
		for _, t := range tracks {
			if strings.HasPrefix(strings.ToLower(t.LanguageCode), strings.ToLower(lang)+"-") {
				return t, true
			}
		}
	}
	return captionTrack{}, false
}

// transcript mirrors the timedtext XML document.
type transcript struct {
	Texts []struct {
		Value string `xml:",chardata"`
	} `xml:"text"`
}

// flattenTranscript joins the snippet texts with single spaces.
// Snippets arrive double-escaped (HTML entities inside XML), so they are
// unescaped once more after decoding.
func flattenTranscript(body []byte) (string, error) {
	var tr transcript
	if err := xml.Unmarshal(body, &tr); err != nil {
		return "", fmt.Errorf("%w: malformed transcript", domain.ErrTranscriptUnavailable)
	}

	parts := make([]string, 0, len(tr.Texts))
	for _, t := range tr.Texts {
		snippet := strings.TrimSpace(html.UnescapeString(t.Value))
		if snippet != "" {
			parts = append(parts, snippet)
		}
	}
	return strings.Join(parts, " "), nil
}
