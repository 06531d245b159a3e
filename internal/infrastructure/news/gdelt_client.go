package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Article is one employment-news item from the GDELT doc API.
type Article struct {
	URL           string `json:"url"`
	URLMobile     string `json:"url_mobile"`
	Title         string `json:"title"`
	SeenDate      string `json:"seendate"`
	SocialImage   string `json:"socialimage"`
	Domain        string `json:"domain"`
	Language      string `json:"language"`
	SourceCountry string `json:"sourcecountry"`
}

type Client struct {
	baseURL string
	client  *http.Client
}

type searchResponse struct {
	Articles []Article `json:"articles"`
}

func NewClient() *Client {
	return &Client{
		baseURL: "https://api.gdeltproject.org",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func NewClientWithBaseURL(baseURL string) *Client {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return NewClient()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Recent returns English articles matching keyword seen within the last
// `days` days.
func (c *Client) Recent(ctx context.Context, keyword string, days int) ([]Article, error) {
	if c == nil {
		return nil, fmt.Errorf("nil news client")
	}
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		keyword = "employment"
	}
	if days <= 0 {
		days = 2
	}

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -days)

	q := url.Values{}
	q.Set("query", keyword+" sourcelang:english")
	q.Set("mode", "artlist")
	q.Set("format", "json")
	q.Set("startdatetime", start.Format("20060102150405"))
	q.Set("enddatetime", end.Format("20060102150405"))

	endpoint := c.baseURL + "/api/v2/doc/doc?" + q.Encode()
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
		return nil, fmt.Errorf("news search failed: status=%d", resp.StatusCode)
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Articles, nil
}
