package research

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	apperrors "coursecraft-api/pkg/errors"
	"coursecraft-api/pkg/logger"
	"coursecraft-api/pkg/metrics"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"
)

const scrapeUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// ScrapeResult 单个 URL 的抓取结果
type ScrapeResult struct {
	URL       string `json:"url"`
	Success   bool   `json:"success"`
	Title     string `json:"title,omitempty"`
	Content   string `json:"content,omitempty"`
	WordCount int    `json:"word_count"`
	Error     string `json:"error,omitempty"`
}

// ScrapeResponse 多 URL 抓取汇总，combined_content 仅含成功项
type ScrapeResponse struct {
	Success         bool           `json:"success"`
	Results         []ScrapeResult `json:"results"`
	CombinedContent string         `json:"combined_content"`
}

// ScrapeURL 抓取单个网页并提取正文为 Markdown 文本
func (s *Service) ScrapeURL(ctx context.Context, url string) ScrapeResult {
	result, err := s.scrape(ctx, url)
	if err != nil {
		metrics.VendorRequestTotal.WithLabelValues("scraper", "fetch", "error").Inc()
		logger.Warn(ctx, "scrape failed", "url", url, "error", err.Error())
		return ScrapeResult{URL: url, Success: false, Error: err.Error()}
	}
	metrics.VendorRequestTotal.WithLabelValues("scraper", "fetch", "success").Inc()
	return result
}

// ScrapeURLs 并发抓取多个 URL，结果顺序与输入一致
func (s *Service) ScrapeURLs(ctx context.Context, urls []string) (*ScrapeResponse, error) {
	if len(urls) == 0 {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "at least one url is required")
	}
	if len(urls) > s.maxURLs {
		urls = urls[:s.maxURLs]
	}

	results := make([]ScrapeResult, len(urls))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, url := range urls {
		g.Go(func() error {
			results[i] = s.ScrapeURL(gctx, url)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &ScrapeResponse{Results: results}
	combined := make([]string, 0, len(results))
	for _, r := range results {
		if !r.Success || r.Content == "" {
			continue
		}
		resp.Success = true
		heading := r.Title
		if heading == "" {
			heading = r.URL
		}
		combined = append(combined, fmt.Sprintf("## %s\nKälla: %s\n\n%s", heading, r.URL, r.Content))
	}
	resp.CombinedContent = strings.Join(combined, "\n\n---\n\n")
	return resp, nil
}

func (s *Service) scrape(ctx context.Context, url string) (ScrapeResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ScrapeResult{}, apperrors.Wrap(err, apperrors.CodeScrapeFailed, "invalid url")
	}
	req.Header.Set("User-Agent", scrapeUserAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return ScrapeResult{}, apperrors.Wrap(err, apperrors.CodeScrapeFailed, "request failed")
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ScrapeResult{}, apperrors.New(apperrors.CodeScrapeFailed, fmt.Sprintf("unexpected status %d", resp.StatusCode))
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return ScrapeResult{}, apperrors.Wrap(err, apperrors.CodeScrapeFailed, "html parsing failed")
	}

	doc.Find("script, style, nav, footer, header, aside").Remove()

	title := strings.TrimSpace(doc.Find("title").First().Text())

	// 优先定位正文区域，找不到时退回整个 body
	main := doc.Find("main").First()
	if main.Length() == 0 {
		main = doc.Find("article").First()
	}
	if main.Length() == 0 {
		main = doc.Find(`div[class*="content"], div[class*="article"], div[class*="post"]`).First()
	}
	var text string
	if main.Length() > 0 {
		text = main.Text()
	} else {
		text = doc.Find("body").Text()
	}

	lines := make([]string, 0, 64)
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	content := strings.Join(lines, "\n")

	markdown := content
	if title != "" {
		markdown = fmt.Sprintf("# %s\n\n%s", title, content)
	}

	return ScrapeResult{
		URL:       url,
		Success:   true,
		Title:     title,
		Content:   markdown,
		WordCount: len(strings.Fields(content)),
	}, nil
}
