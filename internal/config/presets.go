package config

import (
	"sort"
	"strings"
)

// Preset bundles everything needed to scrape one icon font listing
type Preset struct {
	Name        string
	Description string
	// Fetcher is a source kind: file, http, colly or browser
	Fetcher string
	// Target is a file path or URL depending on Fetcher
	Target string
	// Strategy is pattern or prefix; StrategyArg is the regex or prefix
	Strategy    string
	StrategyArg string
	// Unique dedupes the extracted tokens before writing
	Unique   bool
	FontName string
	Expected int // Glyph count advertised by the page, 0 if unknown
	Origin   string
	Sorted   string
	JSON     string // Empty disables JSON output
}

// GetPresets returns the built-in presets
func GetPresets() map[string]Preset {
	return map[string]Preset{
		"icomoon": {
			Name:        "icomoon",
			Description: "IcoMoon demo page saved locally - class names inside <span class=\"mls\">",
			Fetcher:     "file",
			Target:      "icon.html",
			Strategy:    "pattern",
			Origin:      "icons-origin.txt",
			Sorted:      "icons-sort.txt",
		},
		"uncode": {
			Name:        "uncode",
			Description: "Uncode icon reference - one fa- name per line",
			Fetcher:     "http",
			Target:      "https://undsgn.com/uncode-icons/",
			Strategy:    "prefix",
			StrategyArg: "fa-",
			Unique:      true,
			FontName:    "uncodeicon",
			Expected:    1444,
			Origin:      "uncode-icons.txt",
			Sorted:      "uncode-icons-sort.txt",
			JSON:        "uncode-icons.json",
		},
	}
}

// GetPreset looks a preset up by name, ignoring case
func GetPreset(name string) (Preset, bool) {
	preset, ok := GetPresets()[strings.ToLower(strings.TrimSpace(name))]
	return preset, ok
}

// PresetNames lists the preset names in order
func PresetNames() []string {
	presets := GetPresets()
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
