package dataflows

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"github.com/ivolee/stockdash/config"
)

// NewsScraperClient scrapes recent headlines for sentiment scoring.
type NewsScraperClient struct {
	client *resty.Client
	cache  *CacheManager
}

// NewNewsScraperClient creates a new news scraper client
func NewNewsScraperClient(cfg *config.Config) *NewsScraperClient {
	cacheDir := filepath.Join(cfg.DataCacheDir, "news_scraper")
	cache := NewCacheManager(cacheDir, 2*time.Hour, cfg.CacheEnabled)

	client := resty.New()
	client.SetTimeout(30 * time.Second)
	client.SetHeader("User-Agent", "Mozilla/5.0 (compatible; StockDash/1.0)")

	return &NewsScraperClient{
		client: client,
		cache:  cache,
	}
}

// Headlines scrapes up to maxResults recent Google News headlines for a
// query (typically "<symbol> stock").
func (ns *NewsScraperClient) Headlines(ctx context.Context, query string, maxResults int) ([]*Headline, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("search query cannot be empty")
	}
	if maxResults <= 0 {
		maxResults = 10
	}

	cacheKey := map[string]any{"query": query, "max": maxResults}
	var cached []*Headline
	if ns.cache.Get("google_news", "headlines", cacheKey, &cached) {
		return cached, nil
	}

	newsURL := fmt.Sprintf("https://news.google.com/search?q=%s&hl=en&gl=US&ceid=US:en",
		url.QueryEscape(query))

	var result []*Headline
	err := WithRetry(DefaultRetryConfig(), func() error {
		resp, err := ns.client.R().SetContext(ctx).Get(newsURL)
		if err != nil {
			return fmt.Errorf("failed to fetch headlines: %w", err)
		}

		if resp.StatusCode() != 200 {
			return fmt.Errorf("HTTP error %d when fetching headlines", resp.StatusCode())
		}

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(resp.String()))
		if err != nil {
			return fmt.Errorf("failed to parse HTML: %w", err)
		}

		result = parseHeadlines(doc, maxResults)
		return nil
	})

	if err != nil {
		return nil, err
	}

	ns.cache.Set("google_news", "headlines", cacheKey, result)

	return result, nil
}

// parseHeadlines extracts article headlines from a Google News page.
func parseHeadlines(doc *goquery.Document, maxResults int) []*Headline {
	var headlines []*Headline

	doc.Find("article").EachWithBreak(func(i int, s *goquery.Selection) bool {
		title := strings.TrimSpace(s.Find("h3").Text())
		if title == "" {
			title = strings.TrimSpace(s.Find("h4").Text())
		}
		if title == "" {
			return true // skip entries without a title
		}

		href, _ := s.Find("a").First().Attr("href")

		source := strings.TrimSpace(s.Find("div[data-n-tid]").Text())
		if source == "" {
			source = "Google News"
		}

		headlines = append(headlines, &Headline{
			Title:       title,
			Source:      source,
			URL:         cleanGoogleNewsURL(href),
			PublishedAt: time.Now(),
		})

		return len(headlines) < maxResults
	})

	return headlines
}

// cleanGoogleNewsURL turns Google News relative article links absolute.
func cleanGoogleNewsURL(href string) string {
	if strings.HasPrefix(href, "./") {
		return "https://news.google.com/" + strings.TrimPrefix(href, "./")
	}
	return href
}
