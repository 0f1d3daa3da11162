package extract

import (
	"regexp"
	"strings"
	"unicode"

	"icon-scraper/internal/errors"
)

// DefaultMarkerPattern matches the icon name inside an IcoMoon demo page span.
const DefaultMarkerPattern = `<span class="mls">\s*([^<]+)\s*</span>`

// DefaultPrefix is the line prefix used by Font Awesome style glyph listings.
const DefaultPrefix = "fa-"

// Strategy kinds accepted by ParseStrategy
const (
	KindPattern = "pattern"
	KindPrefix  = "prefix"
)

// Strategy turns a blob of page text into icon tokens.
type Strategy interface {
	Name() string
	Extract(text string) Set
}

// PatternMatch collects the first capture group of every match of Pattern.
// Duplicates are kept.
type PatternMatch struct {
	Pattern *regexp.Regexp
}

// NewPatternMatch compiles expr into a PatternMatch strategy
func NewPatternMatch(expr string) (*PatternMatch, error) {
	if expr == "" {
		return nil, errors.NewValidationError("pattern", "pattern cannot be empty")
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.NewValidationError("pattern", err.Error())
	}
	return &PatternMatch{Pattern: re}, nil
}

func (p *PatternMatch) Name() string {
	return KindPattern + "(" + p.Pattern.String() + ")"
}

// Extract returns the trimmed captures in source order. A capture that is
// only whitespace still yields an (empty) token.
func (p *PatternMatch) Extract(text string) Set {
	group := 0
	if p.Pattern.NumSubexp() > 0 {
		group = 1
	}

	icons := Set{}
	for _, m := range p.Pattern.FindAllStringSubmatch(text, -1) {
		icons = append(icons, trimToken(m[group]))
	}
	return icons
}

// LinePrefix keeps trimmed lines that start with Prefix, deduplicated in
// first-occurrence order.
type LinePrefix struct {
	Prefix string
}

// NewLinePrefix creates a LinePrefix strategy
func NewLinePrefix(prefix string) (*LinePrefix, error) {
	if strings.TrimSpace(prefix) == "" {
		return nil, errors.NewValidationError("prefix", "prefix cannot be empty")
	}
	return &LinePrefix{Prefix: prefix}, nil
}

func (l *LinePrefix) Name() string {
	return KindPrefix + "(" + l.Prefix + ")"
}

func (l *LinePrefix) Extract(text string) Set {
	icons := Set{}
	for _, line := range strings.Split(text, "\n") {
		line = trimToken(line)
		if strings.HasPrefix(line, l.Prefix) {
			icons = append(icons, line)
		}
	}
	return icons.Unique()
}

// trimToken strips the characters a browser's String.prototype.trim strips:
// Unicode white space and line terminators plus the byte order mark, but
// not NEL (U+0085).
func trimToken(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		if r == '\uFEFF' {
			return true
		}
		return r != '\u0085' && unicode.IsSpace(r)
	})
}

// ParseStrategy builds a strategy from its kind and argument. An empty arg
// selects the default pattern or prefix for the kind.
func ParseStrategy(kind, arg string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case KindPattern:
		if arg == "" {
			arg = DefaultMarkerPattern
		}
		return NewPatternMatch(arg)
	case KindPrefix:
		if arg == "" {
			arg = DefaultPrefix
		}
		return NewLinePrefix(arg)
	default:
		return nil, errors.NewValidationError("strategy", "unknown strategy "+kind+" (want pattern or prefix)")
	}
}
