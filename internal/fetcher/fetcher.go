package fetcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vetparser/internal/browser"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Fetcher renders pages in a single browser tab. It implements
// scraper.Renderer.
type Fetcher struct {
	browser         *browser.Browser
	page            *rod.Page
	navigateTimeout time.Duration
}

// NewFetcher creates a Fetcher on b. navigateTimeout bounds each navigation;
// zero means no bound.
func NewFetcher(b *browser.Browser, navigateTimeout time.Duration) *Fetcher {
	return &Fetcher{
		browser:         b,
		navigateTimeout: navigateTimeout,
	}
}

// Navigate loads url, opening the tab on first use.
func (f *Fetcher) Navigate(ctx context.Context, url string) error {
	page, err := f.ensurePage()
	if err != nil {
		return err
	}

	p := page.Context(ctx)
	if f.navigateTimeout > 0 {
		p = p.Timeout(f.navigateTimeout)
	}
	if err := p.Navigate(url); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	return nil
}

// WaitFor polls for selector until it appears or timeout elapses.
func (f *Fetcher) WaitFor(ctx context.Context, selector string, timeout time.Duration) (bool, error) {
	if f.page == nil {
		return false, errors.New("wait before navigate")
	}

	_, err := f.page.Context(ctx).Timeout(timeout).Element(selector)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil:
		return false, nil
	default:
		return false, fmt.Errorf("failed to wait for element '%s': %w", selector, err)
	}
}

// HTML returns the rendered document, including whatever has loaded so far.
func (f *Fetcher) HTML(ctx context.Context) (string, error) {
	if f.page == nil {
		return "", errors.New("read before navigate")
	}

	html, err := f.page.Context(ctx).HTML()
	if err != nil {
		return "", fmt.Errorf("failed to read page HTML: %w", err)
	}
	return html, nil
}

// Close closes the tab. The browser itself belongs to the caller.
func (f *Fetcher) Close() error {
	if f.page == nil {
		return nil
	}
	err := f.page.Close()
	f.page = nil
	return err
}

func (f *Fetcher) ensurePage() (*rod.Page, error) {
	if f.page != nil {
		return f.page, nil
	}

	page, err := f.browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	_ = page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: userAgent})
	_, _ = page.EvalOnNewDocument(`Object.defineProperty(navigator, 'webdriver', {get: () => undefined});`)

	f.page = page
	return page, nil
}
