package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"icon-scraper/internal/errors"
)

// Listing is the JSON shape written by WriteJSON
type Listing struct {
	FontName    string   `json:"fontName"`
	TotalGlyphs int      `json:"totalGlyphs"`
	Icons       []string `json:"icons"`
}

// NewListing builds a listing whose glyph count matches icons
func NewListing(fontName string, icons []string) Listing {
	if icons == nil {
		icons = []string{}
	}
	return Listing{
		FontName:    fontName,
		TotalGlyphs: len(icons),
		Icons:       icons,
	}
}

// WriteText writes icons one per line, replacing any existing file.
func WriteText(path string, icons []string) error {
	return writeFile(path, []byte(strings.Join(icons, "\n")))
}

// WriteJSON writes icons as an indented Listing, replacing any existing file.
func WriteJSON(path, fontName string, icons []string) error {
	b, err := json.MarshalIndent(NewListing(fontName, icons), "", "  ")
	if err != nil {
		return errors.NewWriteError(path, err)
	}
	return writeFile(path, b)
}

// ReadJSON loads a listing previously written by WriteJSON
func ReadJSON(path string) (*Listing, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var l Listing
	if err := json.Unmarshal(b, &l); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &l, nil
}

// Resolve places name under dir unless name is already absolute or dir is empty
func Resolve(dir, name string) string {
	if dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.NewWriteError(path, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.NewWriteError(path, err)
	}
	return nil
}
