package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"career-compass/internal/app"
	"career-compass/internal/config"
	"career-compass/internal/repository"
	"career-compass/internal/scraper"

	_ "github.com/joho/godotenv/autoload"
)

// Scrapes a job search once and persists the rows, so the stored corpus can
// be refreshed from cron without going through the API.
func main() {
	query := flag.String("query", "software engineer", "job search query")
	location := flag.String("location", "India", "job location")
	limit := flag.Int("limit", 20, "maximum jobs to fetch")
	hours := flag.Int("hours", 72, "recency window in hours")
	sites := flag.String("sites", "indeed,linkedin", "comma-separated job boards")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg)
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	params := scraper.SearchParams{
		Term:         strings.TrimSpace(*query),
		Location:     strings.TrimSpace(*location),
		Limit:        *limit,
		RecencyHours: *hours,
		Sites:        splitSites(*sites),
	}

	raws, err := c.Scrapers.Search(ctx, params)
	if err != nil {
		log.Fatalf("scrape failed: %v", err)
	}

	rows := make([]repository.StoredJob, 0, len(raws))
	for _, r := range raws {
		rows = append(rows, repository.StoredJob{
			Title:       r.Title,
			Company:     r.Company,
			Location:    r.Location,
			Description: r.Description,
			URL:         r.ResolveURL(),
		})
	}

	written, err := c.Jobs.UpsertJobs(ctx, rows)
	if err != nil {
		log.Fatalf("persist failed: %v", err)
	}

	log.Printf("scrape done query=%q location=%q fetched=%d written=%d", params.Term, params.Location, len(raws), written)
}

func splitSites(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
