package repository

import (
	"context"
	"database/sql"
	"errors"

	"career-compass/internal/database"
	"career-compass/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT user_id, COALESCE(preferred_role, ''), COALESCE(skills, '{}'), COALESCE(location, ''), updated_at
		 FROM user_profiles
		 WHERE user_id = $1`,
		userID,
	)
	var p user.Profile
	if err := row.Scan(&p.UserID, &p.PreferredRole, &p.Skills, &p.Location, &p.UpdatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return user.Profile{}, user.ErrProfileNotFound
		}
		return user.Profile{}, err
	}
	return p, nil
}

func (r *PostgresProfileRepository) Upsert(ctx context.Context, p user.Profile) error {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO user_profiles (user_id, preferred_role, skills, location, updated_at)
		 VALUES ($1, $2, $3, $4, NOW())
		 ON CONFLICT (user_id) DO UPDATE SET
		   preferred_role = EXCLUDED.preferred_role,
		   skills = EXCLUDED.skills,
		   location = EXCLUDED.location,
		   updated_at = NOW()`,
		p.UserID, p.PreferredRole, p.Skills, p.Location,
	)
	return err
}

var _ user.ProfileRepository = (*PostgresProfileRepository)(nil)
