package source

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
	"unicode/utf8"

	"icon-scraper/internal/errors"
)

const iconPage = "<html><body>\nfa-home\nfa-user\n</body></html>"

func newIconServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "User-agent: *\nDisallow: /private\n")
	})
	mux.HandleFunc("/icons", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, iconPage)
	})
	mux.HandleFunc("/private/icons", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, iconPage)
	})
	mux.HandleFunc("/gone", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	})
	mux.HandleFunc("/accepted", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		fmt.Fprint(w, iconPage)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPSource_Load(t *testing.T) {
	srv := newIconServer(t)

	tests := []struct {
		name       string
		path       string
		robots     bool
		want       string
		wantStatus int
		wantValid  bool
	}{
		{name: "ok", path: "/icons", want: iconPage},
		{name: "not found", path: "/missing", wantStatus: http.StatusNotFound},
		{name: "gone", path: "/gone", wantStatus: http.StatusGone},
		{name: "2xx other than 200", path: "/accepted", wantStatus: http.StatusAccepted},
		{name: "robots ignored", path: "/private/icons", want: iconPage},
		{name: "robots respected", path: "/private/icons", robots: true, wantValid: true},
		{name: "robots allows", path: "/icons", robots: true, want: iconPage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewHTTPSource(srv.URL+tt.path, Options{Timeout: 5 * time.Second, RespectRobots: tt.robots})
			got, err := src.Load(context.Background())

			switch {
			case tt.wantStatus != 0:
				var apiErr *errors.APIError
				if !stderrors.As(err, &apiErr) {
					t.Fatalf("err = %v, want *errors.APIError", err)
				}
				if apiErr.StatusCode != tt.wantStatus {
					t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.wantStatus)
				}
				if !errors.IsFetchError(err) {
					t.Error("IsFetchError() = false, want true")
				}
			case tt.wantValid:
				var valErr *errors.ValidationError
				if !stderrors.As(err, &valErr) {
					t.Fatalf("err = %v, want *errors.ValidationError", err)
				}
			default:
				if err != nil {
					t.Fatalf("Load: %v", err)
				}
				if got != tt.want {
					t.Errorf("Load() = %q, want %q", got, tt.want)
				}
			}
		})
	}
}

func TestHTTPSource_SendsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	if _, err := NewHTTPSource(srv.URL, Options{UserAgent: "tester/1.0"}).Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if gotUA != "tester/1.0" {
		t.Errorf("User-Agent = %q, want %q", gotUA, "tester/1.0")
	}
}

func TestHTTPSource_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	_, err := NewHTTPSource(addr, Options{Timeout: 2 * time.Second}).Load(context.Background())
	var netErr *errors.NetworkError
	if !stderrors.As(err, &netErr) {
		t.Fatalf("err = %v, want *errors.NetworkError", err)
	}
}

func TestCollySource_Load(t *testing.T) {
	srv := newIconServer(t)

	got, err := (&CollySource{URL: srv.URL + "/icons"}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != iconPage {
		t.Errorf("Load() = %q, want %q", got, iconPage)
	}

	_, err = (&CollySource{URL: srv.URL + "/gone"}).Load(context.Background())
	var apiErr *errors.APIError
	if !stderrors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *errors.APIError", err)
	}
	if apiErr.StatusCode != http.StatusGone {
		t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, http.StatusGone)
	}
}

func TestFileSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.html")
	if err := os.WriteFile(path, []byte(iconPage), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := (&FileSource{Path: path}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != iconPage {
		t.Errorf("Load() = %q, want %q", got, iconPage)
	}

	if _, err := (&FileSource{Path: filepath.Join(t.TempDir(), "missing.html")}).Load(context.Background()); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFileSource_LoadReplacesInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.html")
	if err := os.WriteFile(path, []byte("<span class=\"mls\">ic\xffon</span>"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := (&FileSource{Path: path}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if want := "<span class=\"mls\">ic\uFFFDon</span>"; got != want {
		t.Errorf("Load() = %q, want %q", got, want)
	}
	if !utf8.ValidString(got) {
		t.Errorf("Load() returned invalid UTF-8: %q", got)
	}
}

func TestHTTPSource_LoadReplacesInvalidUTF8(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fa-\xc3home"))
	}))
	defer srv.Close()

	got, err := NewHTTPSource(srv.URL, Options{}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if want := "fa-\uFFFDhome"; got != want {
		t.Errorf("Load() = %q, want %q", got, want)
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		kind    string
		target  string
		want    string
		wantErr bool
	}{
		{KindFile, "icon.html", "*source.FileSource", false},
		{KindHTTP, "https://example.com", "*source.HTTPSource", false},
		{"", "https://example.com", "*source.HTTPSource", false},
		{KindColly, "https://example.com", "*source.CollySource", false},
		{KindBrowser, "https://example.com", "*source.BrowserSource", false},
		{"ftp", "https://example.com", "", true},
		{KindHTTP, "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.kind+" "+tt.target, func(t *testing.T) {
			src, err := New(tt.kind, tt.target, Options{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := fmt.Sprintf("%T", src); got != tt.want {
				t.Errorf("New() type = %s, want %s", got, tt.want)
			}
		})
	}
}
