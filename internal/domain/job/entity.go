package job

// Source tags where a record was aggregated from.
type Source string

const (
	SourceStore   Source = "store"
	SourceScraped Source = "scraped"
)

// Record is the uniform job shape produced by aggregation. Skills hold
// lower-cased extractor output; MatchScore is assigned during scoring and
// never persisted across requests.
type Record struct {
	Title       string
	Company     string
	Location    string
	Description string
	URL         string
	Skills      []string
	Source      Source
	MatchScore  float64
}
