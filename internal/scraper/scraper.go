package scraper

import (
	"context"
	"time"
)

// Scraper collects content from one site through a caller-owned Renderer.
type Scraper interface {
	Name() string
	Scrape(ctx context.Context, r Renderer, target string, opts Options) (Content, error)
}

// Renderer drives a single browser tab. It is not safe for concurrent use;
// the caller owns it for the whole run and releases it.
type Renderer interface {
	// Navigate loads url in the tab.
	Navigate(ctx context.Context, url string) error
	// WaitFor blocks until selector matches an element or timeout elapses.
	// A timeout is reported as ready == false with a nil error.
	WaitFor(ctx context.Context, selector string, timeout time.Duration) (ready bool, err error)
	// HTML returns the currently rendered document markup.
	HTML(ctx context.Context) (string, error)
}

type Content interface {
	ToHTML() (string, error)
	ToText() (string, error)
	ToMarkdown() (string, error)
	ToJSON() ([]byte, error)
	ToCSV() (string, error)
}

type Options struct {
	Pages         int           // number of result pages to walk
	FirstPageWait time.Duration // readiness timeout for page 1
	NextPageWait  time.Duration // readiness timeout for pages 2..N
	Extra         map[string]string
}
