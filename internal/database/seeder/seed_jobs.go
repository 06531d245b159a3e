package seeder

import (
	"context"
	"fmt"

	"career-compass/internal/database"
)

// JobsSeeder inserts a small starter job corpus so recommendations work
// before the first scrape lands.
type JobsSeeder struct{}

func (JobsSeeder) Name() string { return "jobs" }

func (JobsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "jobs", "id", "title", "company", "location", "description", "url"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Title       string
		Company     string
		Location    string
		Description string
		URL         string
	}{
		{
			Title:       "Backend Engineer",
			Company:     "Northwind Labs",
			Location:    "Bengaluru, India",
			Description: "Build REST API services in go with postgresql and redis. Experience with docker and kubernetes required.",
			URL:         "https://example.com/jobs/backend-engineer-northwind",
		},
		{
			Title:       "Frontend Developer",
			Company:     "Brightline",
			Location:    "Remote",
			Description: "Ship UI features with javascript, react and css. Familiarity with typescript and redux is a plus.",
			URL:         "https://example.com/jobs/frontend-developer-brightline",
		},
		{
			Title:       "Data Scientist",
			Company:     "Helios Analytics",
			Location:    "Mumbai, India",
			Description: "Apply machine learning and data science with python, pandas and sql on large datasets.",
			URL:         "https://example.com/jobs/data-scientist-helios",
		},
		{
			Title:       "DevOps Engineer",
			Company:     "Cloudreach",
			Location:    "Remote",
			Description: "Own ci/cd pipelines with jenkins, terraform, docker and kubernetes on aws.",
			URL:         "https://example.com/jobs/devops-engineer-cloudreach",
		},
	}

	for _, it := range items {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO jobs (id, title, company, location, description, url)
			 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5)
			 ON CONFLICT (url) DO NOTHING`,
			it.Title, it.Company, it.Location, it.Description, it.URL,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
