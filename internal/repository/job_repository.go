package repository

import (
	"context"
	"errors"

	"career-compass/internal/database"

	"github.com/google/uuid"
)

var ErrJobNotFound = errors.New("job not found")

// StoredJob is one row of the jobs table, the persisted half of the job
// corpus. Skills are extracted at read time, not stored.
type StoredJob struct {
	ID          uuid.UUID
	Title       string
	Company     string
	Location    string
	Description string
	URL         string
}

type JobRepository interface {
	ListJobs(ctx context.Context, limit, offset int) ([]StoredJob, error)
	UpsertJobs(ctx context.Context, jobs []StoredJob) (int, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) ListJobs(ctx context.Context, limit, offset int) ([]StoredJob, error) {
	if limit <= 0 {
		limit = 100
	}
	if limit > 1000 {
		limit = 1000
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, COALESCE(title, ''), COALESCE(company, ''), COALESCE(location, ''), COALESCE(description, ''), COALESCE(url, '')
		 FROM jobs
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]StoredJob, 0)
	for rows.Next() {
		var j StoredJob
		if err := rows.Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.Description, &j.URL); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpsertJobs writes a scraped batch, keyed on URL so re-scrapes refresh rather
// than duplicate. Rows without a URL are skipped. Returns the number of rows
// written.
func (r *PostgresJobRepository) UpsertJobs(ctx context.Context, jobs []StoredJob) (int, error) {
	if len(jobs) == 0 {
		return 0, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var written int
	for _, j := range jobs {
		if j.URL == "" {
			continue
		}
		id := j.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO jobs (id, title, company, location, description, url)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 ON CONFLICT (url) DO UPDATE SET
			   title = EXCLUDED.title,
			   company = EXCLUDED.company,
			   location = EXCLUDED.location,
			   description = EXCLUDED.description,
			   updated_at = NOW()`,
			id, j.Title, j.Company, j.Location, j.Description, j.URL,
		); err != nil {
			return written, err
		}
		written++
	}

	if err := tx.Commit(ctx); err != nil {
		return written, err
	}
	return written, nil
}

var _ JobRepository = (*PostgresJobRepository)(nil)
