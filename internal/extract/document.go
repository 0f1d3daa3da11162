package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Result is the outcome of extracting icons from one document
type Result struct {
	Icons Set
	// UsedFallback is set when the raw text yielded nothing and the rendered
	// body text was scanned instead.
	UsedFallback bool
}

// BodyText returns the rendered text content of the document body.
func BodyText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc.Find("body").Text(), nil
}

// ExtractDocument runs s over the raw html. A LinePrefix strategy that finds
// nothing is retried against the rendered body text, and whatever that pass
// yields is returned.
func ExtractDocument(s Strategy, html string) (Result, error) {
	icons := s.Extract(html)
	if len(icons) > 0 {
		return Result{Icons: icons}, nil
	}

	if _, ok := s.(*LinePrefix); !ok {
		return Result{Icons: icons}, nil
	}

	text, err := BodyText(html)
	if err != nil {
		return Result{Icons: Set{}, UsedFallback: true}, err
	}
	return Result{Icons: s.Extract(text), UsedFallback: true}, nil
}
