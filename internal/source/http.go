package source

import (
	"context"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"

	"icon-scraper/internal/errors"

	"github.com/temoto/robotstxt"
)

// HTTPSource fetches a page with a single GET. Only status 200 counts as
// success and there are no retries.
type HTTPSource struct {
	URL     string
	Client  *http.Client
	Options Options
}

// NewHTTPSource creates an HTTPSource with a client tuned like a crawler's
func NewHTTPSource(rawURL string, opts Options) *HTTPSource {
	return &HTTPSource{
		URL:     rawURL,
		Options: opts,
		Client: &http.Client{
			Timeout: opts.timeout(),
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   opts.timeout(),
					KeepAlive: opts.timeout(),
				}).DialContext,
				TLSHandshakeTimeout: opts.timeout(),
			},
		},
	}
}

func (h *HTTPSource) Describe() string {
	return h.URL
}

func (h *HTTPSource) Load(ctx context.Context) (string, error) {
	if h.Options.RespectRobots {
		allowed, err := h.allowedByRobots(ctx)
		if err != nil {
			// fail open
			log.Printf("could not check robots.txt for %s: %v", h.URL, err)
		} else if !allowed {
			return "", errors.NewValidationError("url", h.URL+" is disallowed by robots.txt")
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return "", errors.NewValidationError("url", err.Error())
	}
	req.Header.Set("User-Agent", h.Options.userAgent())

	resp, err := h.Client.Do(req)
	if err != nil {
		return "", errors.NewNetworkError("send request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.NewAPIError(resp.StatusCode, h.URL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.NewNetworkError("read response", err)
	}
	return decodeText(body), nil
}

// allowedByRobots fetches robots.txt for the page's host and tests its path
func (h *HTTPSource) allowedByRobots(ctx context.Context) (bool, error) {
	parsed, err := url.Parse(h.URL)
	if err != nil || parsed.Host == "" {
		return false, errors.NewValidationError("url", "cannot parse "+h.URL)
	}
	robotsURL := parsed.Scheme + "://" + parsed.Host + "/robots.txt"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("User-Agent", h.Options.userAgent())

	resp, err := h.Client.Do(req)
	if err != nil {
		return false, errors.NewNetworkError("fetch robots.txt", err)
	}
	defer resp.Body.Close()

	data, err := robotstxt.FromResponse(resp)
	if err != nil {
		return false, err
	}
	path := parsed.EscapedPath()
	if path == "" {
		path = "/"
	}
	return data.TestAgent(path, h.Options.userAgent()), nil
}
