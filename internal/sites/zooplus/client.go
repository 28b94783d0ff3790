package zooplus

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"vetparser/internal/scraper"

	"github.com/sirupsen/logrus"
)

const (
	DefaultFirstPageWait = 10 * time.Second
	// Later pages load noticeably slower.
	DefaultNextPageWait = 15 * time.Second
)

// Client walks the paginated results through a Renderer it does not own.
type Client struct {
	renderer      scraper.Renderer
	log           logrus.FieldLogger
	firstPageWait time.Duration
	nextPageWait  time.Duration
}

// NewClient creates a Client with the default readiness timeouts.
func NewClient(r scraper.Renderer, log logrus.FieldLogger) *Client {
	return &Client{
		renderer:      r,
		log:           log,
		firstPageWait: DefaultFirstPageWait,
		nextPageWait:  DefaultNextPageWait,
	}
}

// SetWaits overrides the readiness timeouts. Zero keeps the current value.
func (c *Client) SetWaits(firstPage, nextPage time.Duration) {
	if firstPage > 0 {
		c.firstPageWait = firstPage
	}
	if nextPage > 0 {
		c.nextPageWait = nextPage
	}
}

// Collect visits pages 1..pageCount in order and returns every listing,
// page 1 first. Any error discards what was collected so far.
func (c *Client) Collect(ctx context.Context, baseURL string, pageCount int) ([]Record, error) {
	if pageCount < 1 {
		return nil, fmt.Errorf("page count must be at least 1, got %d", pageCount)
	}

	var records []Record
	for p := 1; p <= pageCount; p++ {
		c.log.Infof("Start parsing page #%d", p)

		if err := c.renderer.Navigate(ctx, PageURL(baseURL, p)); err != nil {
			return nil, fmt.Errorf("page %d: %w", p, err)
		}

		wait := c.nextPageWait
		if p == 1 {
			wait = c.firstPageWait
		}
		ready, err := c.renderer.WaitFor(ctx, ReadySelector, wait)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", p, err)
		}
		if !ready {
			c.log.Warnf("Page #%d not ready after %s, reading current markup", p, wait)
		}

		html, err := c.renderer.HTML(ctx)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", p, err)
		}

		found, err := ExtractAll(html)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", p, err)
		}
		records = append(records, found...)

		c.log.Infof("Parsing progress: %d%%", p*100/pageCount)
	}

	return records, nil
}

// PageURL returns the address of results page p. Page 1 is baseURL itself.
func PageURL(baseURL string, p int) string {
	if p <= 1 {
		return baseURL
	}
	sep := "&"
	if !strings.Contains(baseURL, "?") {
		sep = "?"
	}
	return baseURL + sep + "page=" + strconv.Itoa(p)
}
