package seeder

import (
	"context"
	"fmt"
	"strings"

	"career-compass/internal/database"
)

// Seeder is one idempotent startup step. Steps run in order and the first
// failure aborts the boot.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

type Runner struct {
	Seeders []Seeder
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, step := range r.Seeders {
		if step == nil {
			continue
		}
		if err := step.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", step.Name(), err)
		}
	}
	return nil
}

// EnsureTableColumns guards a seeder against running on a stale schema: it
// fails with the full list of missing columns rather than letting the insert
// fail one column at a time.
func EnsureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	if table == "" {
		return fmt.Errorf("empty table")
	}

	rows, err := db.Query(ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	present := map[string]bool{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		present[name] = true
	}
	if err := rows.Err(); err != nil {
		return err
	}

	var missing []string
	for _, col := range columns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("schema mismatch: table %s missing columns %s", table, strings.Join(missing, ", "))
	}
	return nil
}
