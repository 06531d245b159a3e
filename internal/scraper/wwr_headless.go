package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// listingFallbackHeadless renders the search page in headless Chrome when the
// static fetch came back empty, which happens when the board serves its
// bot-check interstitial.
func (s *WeWorkRemotelyScraper) listingFallbackHeadless(ctx context.Context, listURL string, limit int) ([]wwrListItem, error) {
	if s == nil {
		return nil, fmt.Errorf("nil scraper")
	}
	if limit <= 0 {
		limit = 20
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent(scrapeUserAgent),
		)...,
	)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	reqCtx, reqCancel := context.WithTimeout(browserCtx, 25*time.Second)
	defer reqCancel()

	var rows []map[string]string
	err := chromedp.Run(reqCtx,
		chromedp.Navigate(listURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(1500*time.Millisecond),
		chromedp.EvaluateAsDevTools(`Array.from(document.querySelectorAll('section.jobs li'))
			.map(li => {
				const a = li.querySelector("a[href*='/remote-jobs/']");
				const text = sel => { const el = li.querySelector(sel); return el ? el.textContent.trim() : ''; };
				return {
					href: a ? a.getAttribute('href') : '',
					title: text('span.title'),
					company: text('span.company'),
					region: text('span.region'),
				};
			})
			.filter(r => r.href && r.title)`, &rows),
	)
	if err != nil {
		return nil, err
	}

	base := strings.TrimRight(s.baseURL, "/")
	seen := map[string]struct{}{}
	out := make([]wwrListItem, 0, limit)

	for _, r := range rows {
		if len(out) >= limit {
			break
		}
		h := strings.TrimSpace(r["href"])
		if h == "" {
			continue
		}
		if strings.HasPrefix(h, "/") {
			h = base + h
		} else if !strings.HasPrefix(h, "http://") && !strings.HasPrefix(h, "https://") {
			h = base + "/" + h
		}
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, wwrListItem{
			Title:   strings.TrimSpace(r["title"]),
			Company: strings.TrimSpace(r["company"]),
			Region:  strings.TrimSpace(r["region"]),
			Link:    h,
		})
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no job listings found (headless)")
	}
	return out, nil
}
