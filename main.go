package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"vetparser/internal/browser"
	"vetparser/internal/config"
	"vetparser/internal/fetcher"
	"vetparser/internal/logger"
	"vetparser/internal/output"
	"vetparser/internal/scraper"
	_ "vetparser/internal/sites/zooplus"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configFile   string
	site         string
	pages        int
	outputName   string
	outputFormat string
	logLevel     string
	logFile      string
	showUI       bool
	proxyURL     string
)

var logCloser io.Closer

func main() {
	var rootCmd = &cobra.Command{
		Use:     "vetparser [URL]",
		Short:   "Collect veterinarian listings from a rendered search results page",
		Version: version,
		Long: `vetparser opens a search results page in a headless browser, waits for
the listings to render, walks the result pages in order and writes every
listing to a CSV file.

Without arguments it collects 5 pages of the zooplus.de vet directory into
veterinarians.csv.`,
		Example: `  # Default run
  vetparser

  # Two pages of a narrower search, as JSON
  vetparser --pages 2 -f json "https://www.zooplus.de/tierarzt/results?animal_1=true"

  # Settings from a file, browser visible
  vetparser --config vetparser.yaml --showui`,
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: setupLogging,
		RunE:              run,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.Flags().StringVar(&configFile, "config", "", "YAML config file overriding the built-in defaults")
	rootCmd.Flags().StringVar(&site, "site", "", "Site to scrape (registered: "+strings.Join(scraper.Names(), ", ")+")")
	rootCmd.Flags().IntVar(&pages, "pages", 0, "Number of result pages to collect")
	rootCmd.Flags().StringVarP(&outputName, "output", "o", "", "Output file name without extension")
	rootCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "Output format (csv, json, markdown, text, html)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Log file appended to alongside stdout")
	rootCmd.Flags().BoolVar(&showUI, "showui", false, "Show browser UI (disable headless mode)")
	rootCmd.Flags().StringVarP(&proxyURL, "proxy", "p", os.Getenv("VETPARSER_PROXY"), "Proxy URL, defaults to VETPARSER_PROXY env var")

	err := rootCmd.Execute()
	if err != nil {
		log.WithError(err).Error("Run failed")
	}
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

var cfg *config.Config

// setupLogging loads the configuration and installs the logger before run.
func setupLogging(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = loadConfig(cmd)
	if err != nil {
		return err
	}

	logCloser, err = logger.Setup(cfg.Logging.Level, cfg.Logging.File)
	return err
}

// loadConfig starts from the defaults or --config and applies the flags
// that were set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	c := config.Default()
	if configFile != "" {
		loaded, err := config.LoadConfig(configFile)
		if err != nil {
			return nil, err
		}
		c = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("site") {
		c.Site = site
	}
	if flags.Changed("pages") {
		c.Pages = pages
	}
	if flags.Changed("output") {
		c.Output.Name = outputName
	}
	if flags.Changed("format") {
		c.Output.Format = strings.ToLower(outputFormat)
	}
	if flags.Changed("log-level") {
		c.Logging.Level = logLevel
	}
	if flags.Changed("log-file") {
		c.Logging.File = logFile
	}
	if flags.Changed("showui") {
		c.Browser.ShowUI = showUI
	}
	if proxyURL != "" {
		c.Browser.ProxyURL = proxyURL
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return c, nil
}

func run(cmd *cobra.Command, args []string) error {
	target := cfg.URL
	if len(args) == 1 {
		target = strings.TrimSpace(args[0])
	}

	s, ok := scraper.Get(cfg.Site)
	if !ok {
		return fmt.Errorf("unknown site: %s", cfg.Site)
	}

	b, err := browser.New(browser.Config{
		ProxyURL: cfg.Browser.ProxyURL,
		Headless: !cfg.Browser.ShowUI,
	})
	if err != nil {
		return fmt.Errorf("failed to create browser: %w", err)
	}
	defer b.Close()

	f := fetcher.NewFetcher(b, cfg.Browser.NavigateTimeout)
	defer f.Close()

	content, err := s.Scrape(context.Background(), f, target, scraper.Options{
		Pages:         cfg.Pages,
		FirstPageWait: cfg.Wait.FirstPage,
		NextPageWait:  cfg.Wait.NextPage,
	})
	if err != nil {
		return fmt.Errorf("failed to scrape: %w", err)
	}

	path, err := output.WriteFile(content, cfg.Output.Name, cfg.Output.Format)
	if err != nil {
		return err
	}
	log.Infof("Output written to: %s", path)
	return nil
}
