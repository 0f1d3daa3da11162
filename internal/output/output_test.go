package output

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"icon-scraper/internal/errors"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(b)
}

func TestWriteText(t *testing.T) {
	tests := []struct {
		name  string
		icons []string
		want  string
	}{
		{"two icons", []string{"home", "star"}, "home\nstar"},
		{"single icon", []string{"home"}, "home"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "icons.txt")
			if err := WriteText(path, tt.icons); err != nil {
				t.Fatalf("WriteText: %v", err)
			}
			if got := readFile(t, path); got != tt.want {
				t.Errorf("content = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteText_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icons.txt")
	if err := os.WriteFile(path, []byte("old\ncontent\nthat is longer"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteText(path, []string{"new"}); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if got := readFile(t, path); got != "new" {
		t.Errorf("content = %q, want %q", got, "new")
	}
}

func TestWriteText_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "nested", "icons.txt")
	if err := WriteText(path, []string{"a"}); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if got := readFile(t, path); got != "a" {
		t.Errorf("content = %q, want %q", got, "a")
	}
}

func TestWriteText_FailureIsWriteError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	err := WriteText(filepath.Join(blocker, "icons.txt"), []string{"a"})
	var writeErr *errors.WriteError
	if !stderrors.As(err, &writeErr) {
		t.Fatalf("err = %v, want *errors.WriteError", err)
	}
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icons.json")
	icons := []string{"fa-home", "fa-user", "fa-star"}

	if err := WriteJSON(path, "uncodeicon", icons); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	l, err := ReadJSON(path)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if l.FontName != "uncodeicon" {
		t.Errorf("FontName = %q, want %q", l.FontName, "uncodeicon")
	}
	if l.TotalGlyphs != len(icons) {
		t.Errorf("TotalGlyphs = %d, want %d", l.TotalGlyphs, len(icons))
	}
	if !reflect.DeepEqual(l.Icons, icons) {
		t.Errorf("Icons = %q, want %q", l.Icons, icons)
	}

	raw := readFile(t, path)
	for _, key := range []string{`"fontName"`, `"totalGlyphs"`, `"icons"`} {
		if !strings.Contains(raw, key) {
			t.Errorf("output missing key %s: %s", key, raw)
		}
	}
}

func TestWriteJSON_EmptyIconsIsArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icons.json")
	if err := WriteJSON(path, "font", nil); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	raw := readFile(t, path)
	if !strings.Contains(raw, `"icons": []`) {
		t.Errorf("empty icons should serialize as []: %s", raw)
	}
	if !strings.Contains(raw, `"totalGlyphs": 0`) {
		t.Errorf("totalGlyphs should be 0: %s", raw)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		dir, name, want string
	}{
		{"", "icons.txt", "icons.txt"},
		{"out", "icons.txt", filepath.Join("out", "icons.txt")},
		{"out", "/tmp/icons.txt", "/tmp/icons.txt"},
	}
	for _, tt := range tests {
		if got := Resolve(tt.dir, tt.name); got != tt.want {
			t.Errorf("Resolve(%q, %q) = %q, want %q", tt.dir, tt.name, got, tt.want)
		}
	}
}
