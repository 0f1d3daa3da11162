package source

import (
	"context"
	"os"
	"strings"
	"time"

	"icon-scraper/internal/errors"
)

// DefaultUserAgent identifies the scraper to remote hosts
const DefaultUserAgent = "icon-scraper/1.0 (+https://github.com/icon-scraper/icon-scraper)"

// DefaultTimeout bounds a single remote load
const DefaultTimeout = 30 * time.Second

// Source kinds accepted by New
const (
	KindFile    = "file"
	KindHTTP    = "http"
	KindColly   = "colly"
	KindBrowser = "browser"
)

// Source loads the raw text of one page
type Source interface {
	// Load returns the page content as text
	Load(ctx context.Context) (string, error)
	// Describe names the page for progress output
	Describe() string
}

// Options tune remote sources. Zero values fall back to defaults.
type Options struct {
	UserAgent     string
	Timeout       time.Duration
	RespectRobots bool
}

func (o Options) userAgent() string {
	if o.UserAgent == "" {
		return DefaultUserAgent
	}
	return o.UserAgent
}

func (o Options) timeout() time.Duration {
	if o.Timeout <= 0 {
		return DefaultTimeout
	}
	return o.Timeout
}

// New picks a source implementation by kind
func New(kind, target string, opts Options) (Source, error) {
	if target == "" {
		return nil, errors.NewValidationError("target", "a file path or URL is required")
	}

	switch kind {
	case KindFile:
		return &FileSource{Path: target}, nil
	case KindHTTP, "":
		return NewHTTPSource(target, opts), nil
	case KindColly:
		return &CollySource{URL: target, Options: opts}, nil
	case KindBrowser:
		return &BrowserSource{URL: target, Options: opts}, nil
	default:
		return nil, errors.NewValidationError("fetcher", "unknown fetcher "+kind+" (want file, http, colly or browser)")
	}
}

// FileSource reads a local HTML file
type FileSource struct {
	Path string
}

func (f *FileSource) Describe() string {
	return f.Path
}

func (f *FileSource) Load(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return "", err
	}
	return decodeText(b), nil
}

// decodeText reads page bytes as UTF-8, replacing each invalid sequence with
// U+FFFD so tokens match what encoding/json later writes.
func decodeText(b []byte) string {
	return strings.ToValidUTF8(string(b), "\uFFFD")
}
