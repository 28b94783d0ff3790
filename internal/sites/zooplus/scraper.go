package zooplus

import (
	"context"
	"fmt"

	"vetparser/internal/scraper"

	log "github.com/sirupsen/logrus"
)

const (
	// SearchURL lists veterinarians for all animal types.
	SearchURL = "https://www.zooplus.de/tierarzt/results?animal_99=true"

	DefaultPages = 5
)

func init() {
	scraper.Register(&ZooplusScraper{})
}

// ZooplusScraper collects veterinarian listings from zooplus.de.
type ZooplusScraper struct{}

func (s *ZooplusScraper) Name() string { return "zooplus" }

// Scrape walks opts.Pages result pages starting at target (SearchURL when
// empty).
func (s *ZooplusScraper) Scrape(ctx context.Context, r scraper.Renderer, target string, opts scraper.Options) (scraper.Content, error) {
	if target == "" {
		target = SearchURL
	}
	pages := opts.Pages
	if pages == 0 {
		pages = DefaultPages
	}

	client := NewClient(r, log.StandardLogger())
	client.SetWaits(opts.FirstPageWait, opts.NextPageWait)

	records, err := client.Collect(ctx, target, pages)
	if err != nil {
		return nil, fmt.Errorf("failed to collect veterinarians: %w", err)
	}

	log.WithFields(log.Fields{"pages": pages, "count": len(records)}).Info("Collected veterinarians")
	return NewVetContent(target, records), nil
}
