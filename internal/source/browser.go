package source

import (
	"context"

	"icon-scraper/internal/errors"

	"github.com/chromedp/chromedp"
)

// BrowserSource renders the page in headless Chrome and returns the final
// document HTML, for icon lists built by JavaScript.
type BrowserSource struct {
	URL     string
	Options Options
}

func (b *BrowserSource) Describe() string {
	return b.URL + " (rendered)"
}

func (b *BrowserSource) Load(ctx context.Context) (string, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:], chromedp.UserAgent(b.Options.userAgent()))...)
	defer cancelAlloc()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	runCtx, cancelRun := context.WithTimeout(browserCtx, b.Options.timeout())
	defer cancelRun()

	var html string
	err := chromedp.Run(runCtx,
		chromedp.Navigate(b.URL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", errors.NewNetworkError("render page", err)
	}
	return decodeText([]byte(html)), nil
}
