package dto

import "career-compass/internal/domain/job"

// JobRecordResponse mirrors the aggregated job shape the frontend consumes,
// match score included.
type JobRecordResponse struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Skills      []string `json:"skills"`
	Source      string   `json:"source"`
	MatchScore  float64  `json:"match_score"`
}

func FromJobRecords(records []job.Record) []JobRecordResponse {
	out := make([]JobRecordResponse, 0, len(records))
	for _, r := range records {
		skills := r.Skills
		if skills == nil {
			skills = []string{}
		}
		out = append(out, JobRecordResponse{
			Title:       r.Title,
			Company:     r.Company,
			Location:    r.Location,
			Description: r.Description,
			URL:         r.URL,
			Skills:      skills,
			Source:      string(r.Source),
			MatchScore:  r.MatchScore,
		})
	}
	return out
}
