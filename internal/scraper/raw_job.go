package scraper

import "strings"

// SearchParams describe one live job search.
type SearchParams struct {
	Term         string
	Location     string
	Limit        int
	RecencyHours int
	Sites        []string
}

// RawJob is a scraped row before aggregation. Boards disagree on where the
// posting URL lives, so the alternates are carried as-is and resolved later.
type RawJob struct {
	Title       string
	Company     string
	Location    string
	Description string
	URL         string
	JobURL      string
	Link        string
	ApplyLink   string
	Skills      []string
}

// ResolveURL picks the first usable posting URL.
func (r RawJob) ResolveURL() string {
	for _, u := range []string{r.URL, r.JobURL, r.Link, r.ApplyLink} {
		if strings.TrimSpace(u) != "" {
			return u
		}
	}
	return ""
}
