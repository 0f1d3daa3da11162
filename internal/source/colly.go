package source

import (
	"context"
	"log"
	"net/http"

	"icon-scraper/internal/errors"

	"github.com/gocolly/colly/v2"
)

// CollySource fetches a single page through a colly collector. Links are
// not followed.
type CollySource struct {
	URL     string
	Options Options
}

func (c *CollySource) Describe() string {
	return c.URL
}

func (c *CollySource) Load(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	collector := colly.NewCollector(
		colly.UserAgent(c.Options.userAgent()),
		colly.MaxDepth(1),
	)
	collector.SetRequestTimeout(c.Options.timeout())
	collector.IgnoreRobotsTxt = !c.Options.RespectRobots

	var body string
	var loadErr error
	collector.OnResponse(func(r *colly.Response) {
		if r.StatusCode != http.StatusOK {
			loadErr = errors.NewAPIError(r.StatusCode, c.URL)
			return
		}
		body = decodeText(r.Body)
	})
	collector.OnError(func(r *colly.Response, err error) {
		log.Printf("colly: error fetching %s: %v", c.URL, err)
		if r != nil && r.StatusCode != 0 {
			loadErr = errors.NewAPIError(r.StatusCode, c.URL)
			return
		}
		loadErr = errors.NewNetworkError("visit", err)
	})

	if err := collector.Visit(c.URL); err != nil && loadErr == nil {
		if err == colly.ErrRobotsTxtBlocked {
			return "", errors.NewValidationError("url", c.URL+" is disallowed by robots.txt")
		}
		loadErr = errors.NewNetworkError("visit", err)
	}
	collector.Wait()

	if loadErr != nil {
		return "", loadErr
	}
	return body, nil
}
