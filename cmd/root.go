package cmd

import (
	"context"
	"firecrawl-cli/internal/config"
	"firecrawl-cli/internal/models"
	"firecrawl-cli/internal/modules/dispatcher"
	"firecrawl-cli/internal/modules/renderer"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var (
	targetURL    string
	depth        int
	dataType     string
	requestLimit int
)

var rootCmd = &cobra.Command{
	Use:   "firecrawl",
	Short: "Crawl a site through the Firecrawl API and save the results as Markdown",
	Long:  `A CLI tool that delegates crawling to the Firecrawl API and writes the extracted links, text or images to Output/<domain>/crawling_results.md`,
}

// Execute now takes a context and logger
func Execute(ctx context.Context, logger *zap.Logger) {
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return run(ctx, logger)
	}
	rootCmd.SilenceUsage = true
	if err := rootCmd.Execute(); err != nil {
		logger.Error("crawl failed", zap.Error(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&targetURL, "url", "", "URL of the site to crawl, e.g. https://example.com")
	rootCmd.Flags().IntVar(&depth, "depth", 1, "Crawl depth")
	rootCmd.Flags().StringVar(&dataType, "dataType", string(models.DataTypeLinks), "Data to extract: links, text or images")
	rootCmd.Flags().IntVar(&requestLimit, "requestLimit", 10, "Maximum number of requests the crawl may issue")
	pflag.CommandLine.AddFlagSet(rootCmd.Flags())
	rootCmd.MarkFlagRequired("url")
}

func run(ctx context.Context, logger *zap.Logger) error {
	crawlReq, outputDir, err := buildRequest()
	if err != nil {
		return err
	}

	cfg := config.Load(logger)

	logger.Info("starting crawl",
		zap.String("url", crawlReq.URL),
		zap.Int("depth", crawlReq.Depth),
		zap.String("data_type", string(crawlReq.DataType)),
		zap.Int("limit", crawlReq.Limit))

	client := dispatcher.New(cfg.APIURL, cfg.APIKey)
	result, err := client.Crawl(ctx, crawlReq, logger)
	if err != nil {
		return err
	}

	path, err := renderer.New(outputDir).Save(result, crawlReq.DataType, logger)
	if err != nil {
		return err
	}

	logger.Info("results saved", zap.String("path", path))
	return nil
}

// buildRequest validates the flag values and derives the output directory
// from the target URL's host.
func buildRequest() (models.CrawlRequest, string, error) {
	parsed, err := url.Parse(targetURL)
	if err != nil {
		return models.CrawlRequest{}, "", fmt.Errorf("invalid --url %q: %v", targetURL, err)
	}
	if parsed.Host == "" {
		return models.CrawlRequest{}, "", fmt.Errorf("--url %q must include a scheme and host", targetURL)
	}
	if depth < 0 {
		return models.CrawlRequest{}, "", fmt.Errorf("--depth must be >= 0, got %d", depth)
	}
	if requestLimit < 1 {
		return models.CrawlRequest{}, "", fmt.Errorf("--requestLimit must be >= 1, got %d", requestLimit)
	}
	dt := models.DataType(dataType)
	if !dt.Valid() {
		return models.CrawlRequest{}, "", fmt.Errorf("--dataType must be one of links, text or images, got %q", dataType)
	}

	crawlReq := models.CrawlRequest{
		URL:      targetURL,
		Depth:    depth,
		DataType: dt,
		Limit:    requestLimit,
	}
	return crawlReq, filepath.Join("Output", parsed.Host), nil
}
