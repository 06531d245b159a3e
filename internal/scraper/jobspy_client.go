package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// JobspyClient talks to the jobspy scrape API, which proxies Indeed/LinkedIn/
// Glassdoor searches and returns rows as stringly-typed records. NaN-ish
// placeholders from its dataframe serialization are coerced to empty strings
// here, once, at the boundary.
type JobspyClient struct {
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

func NewJobspyClient(baseURL string, logger *log.Logger) *JobspyClient {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil
	}
	return &JobspyClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 60 * time.Second},
		logger:  logger,
	}
}

func (c *JobspyClient) Name() string {
	return "jobspy"
}

func (c *JobspyClient) Search(ctx context.Context, params SearchParams) ([]RawJob, error) {
	if c == nil || c.client == nil {
		return nil, fmt.Errorf("nil jobspy client")
	}

	q := url.Values{}
	q.Set("search_term", strings.TrimSpace(params.Term))
	q.Set("location", strings.TrimSpace(params.Location))
	q.Set("results_wanted", strconv.Itoa(max(params.Limit, 1)))
	if params.RecencyHours > 0 {
		q.Set("hours_old", strconv.Itoa(params.RecencyHours))
	}
	if len(params.Sites) > 0 {
		q.Set("site_name", strings.Join(params.Sites, ","))
	}

	endpoint := c.baseURL + "/scrape_jobs?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("jobspy search failed: status=%d", resp.StatusCode)
	}

	var rows []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		// The API answers {"message": "No jobs found"} instead of an
		// empty array when a search comes up dry.
		return nil, nil
	}

	out := make([]RawJob, 0, len(rows))
	for _, row := range rows {
		out = append(out, RawJob{
			Title:       cleanField(row, "title"),
			Company:     cleanField(row, "company"),
			Location:    cleanField(row, "location"),
			Description: cleanField(row, "description"),
			URL:         cleanField(row, "url"),
			JobURL:      cleanField(row, "job_url"),
			Link:        cleanField(row, "link"),
			ApplyLink:   cleanField(row, "apply_link"),
			Skills:      stringList(row["skills"]),
		})
	}
	return out, nil
}

// cleanField reads a scalar column, coercing null and the dataframe's string
// placeholders for missing values to "".
func cleanField(row map[string]any, key string) string {
	v, ok := row[key]
	if !ok || v == nil {
		return ""
	}
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(t)
	default:
		return ""
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nan", "none", "null":
		return ""
	}
	return strings.TrimSpace(s)
}

func stringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		s, ok := it.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

var _ source = (*JobspyClient)(nil)
