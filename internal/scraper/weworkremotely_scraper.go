package scraper

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
)

// WeWorkRemotelyScraper is the in-process fallback source: a static scrape of
// the We Work Remotely listing pages, with a headless pass when the static
// page renders empty.
type WeWorkRemotelyScraper struct {
	baseURL     string
	allowedHost string
	logger      *log.Logger
}

func NewWeWorkRemotelyScraper(logger *log.Logger) *WeWorkRemotelyScraper {
	s := &WeWorkRemotelyScraper{baseURL: "https://weworkremotely.com", logger: logger}
	s.allowedHost = hostFromBaseURL(s.baseURL)
	return s
}

func NewWeWorkRemotelyScraperWithBaseURL(baseURL string, logger *log.Logger) *WeWorkRemotelyScraper {
	s := &WeWorkRemotelyScraper{baseURL: strings.TrimSpace(baseURL), logger: logger}
	if s.baseURL == "" {
		s.baseURL = "https://weworkremotely.com"
	}
	s.allowedHost = hostFromBaseURL(s.baseURL)
	return s
}

func (s *WeWorkRemotelyScraper) Name() string {
	return "weworkremotely"
}

type wwrListItem struct {
	Title   string
	Company string
	Region  string
	Link    string
}

func (s *WeWorkRemotelyScraper) Search(ctx context.Context, params SearchParams) ([]RawJob, error) {
	if s == nil {
		return nil, fmt.Errorf("nil scraper")
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	listURL := strings.TrimRight(s.baseURL, "/") + "/remote-jobs/search?term=" + url.QueryEscape(strings.TrimSpace(params.Term))

	items, err := s.scrapeListingPage(ctx, listURL)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		items, err = s.listingFallbackHeadless(ctx, listURL, limit)
		if err != nil {
			return nil, err
		}
	}

	out := make([]RawJob, 0, limit)
	for _, it := range items {
		if len(out) >= limit {
			break
		}
		desc, err := s.scrapeDetailPage(ctx, it.Link)
		if err != nil {
			if s.logger != nil {
				s.logger.Printf("scrape source=weworkremotely detail url=%s error=%v", it.Link, err)
			}
			desc = ""
		}
		out = append(out, RawJob{
			Title:       it.Title,
			Company:     it.Company,
			Location:    it.Region,
			Description: desc,
			URL:         it.Link,
		})
	}
	return out, nil
}

func (s *WeWorkRemotelyScraper) scrapeListingPage(ctx context.Context, listURL string) ([]wwrListItem, error) {
	c := colly.NewCollector(
		colly.AllowedDomains(s.allowedHost),
	)
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*weworkremotely.com*", Parallelism: 2, RandomDelay: 500 * time.Millisecond, Delay: 300 * time.Millisecond})

	items := make([]wwrListItem, 0)

	c.OnHTML("section.jobs li", func(e *colly.HTMLElement) {
		href := strings.TrimSpace(e.ChildAttr("a[href*='/remote-jobs/']", "href"))
		if href == "" {
			return
		}
		abs := e.Request.AbsoluteURL(href)
		if abs == "" {
			return
		}
		items = append(items, wwrListItem{
			Title:   strings.TrimSpace(e.ChildText("span.title")),
			Company: strings.TrimSpace(e.ChildText("span.company")),
			Region:  strings.TrimSpace(e.ChildText("span.region")),
			Link:    abs,
		})
	})

	var reqErr error
	c.OnError(func(_ *colly.Response, err error) {
		reqErr = err
	})
	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", scrapeUserAgent)
	})

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err := c.Visit(listURL); err != nil {
		return nil, err
	}
	c.Wait()
	if reqErr != nil {
		return nil, reqErr
	}

	dedup := map[string]struct{}{}
	out := make([]wwrListItem, 0, len(items))
	for _, it := range items {
		if it.Title == "" || it.Link == "" {
			continue
		}
		if _, ok := dedup[it.Link]; ok {
			continue
		}
		dedup[it.Link] = struct{}{}
		out = append(out, it)
	}
	return out, nil
}

func (s *WeWorkRemotelyScraper) scrapeDetailPage(ctx context.Context, jobURL string) (string, error) {
	c := colly.NewCollector(
		colly.AllowedDomains(s.allowedHost),
	)
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*weworkremotely.com*", Parallelism: 2, RandomDelay: 500 * time.Millisecond, Delay: 300 * time.Millisecond})

	var description string
	var reqErr error

	c.OnHTML("div.listing-container", func(e *colly.HTMLElement) {
		if description == "" {
			description = strings.TrimSpace(e.Text)
		}
	})
	c.OnError(func(_ *colly.Response, err error) {
		reqErr = err
	})
	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", scrapeUserAgent)
	})

	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	if err := c.Visit(jobURL); err != nil {
		return "", err
	}
	c.Wait()
	if reqErr != nil {
		return "", reqErr
	}
	return description, nil
}

const scrapeUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"

func hostFromBaseURL(base string) string {
	u, err := url.Parse(strings.TrimSpace(base))
	if err != nil || u.Host == "" {
		return "weworkremotely.com"
	}
	return u.Host
}

var _ source = (*WeWorkRemotelyScraper)(nil)
