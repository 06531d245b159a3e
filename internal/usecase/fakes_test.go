package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"career-compass/internal/domain/user"
	"career-compass/internal/repository"
	"career-compass/internal/scraper"

	"github.com/google/uuid"
)

type fakeProfiles struct {
	profiles map[uuid.UUID]user.Profile
	err      error
	upserts  []user.Profile
}

func (f *fakeProfiles) GetByUserID(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	if f.err != nil {
		return user.Profile{}, f.err
	}
	p, ok := f.profiles[userID]
	if !ok {
		return user.Profile{}, user.ErrProfileNotFound
	}
	return p, nil
}

func (f *fakeProfiles) Upsert(ctx context.Context, p user.Profile) error {
	if f.err != nil {
		return f.err
	}
	if f.profiles == nil {
		f.profiles = map[uuid.UUID]user.Profile{}
	}
	f.profiles[p.UserID] = p
	f.upserts = append(f.upserts, p)
	return nil
}

type fakeJobs struct {
	stored []repository.StoredJob
	err    error
}

func (f *fakeJobs) ListJobs(ctx context.Context, limit, offset int) ([]repository.StoredJob, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.stored, nil
}

func (f *fakeJobs) UpsertJobs(ctx context.Context, jobs []repository.StoredJob) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.stored = append(f.stored, jobs...)
	return len(jobs), nil
}

type fakeScraper struct {
	jobs       []scraper.RawJob
	err        error
	lastParams scraper.SearchParams
	calls      int
}

func (f *fakeScraper) Search(ctx context.Context, params scraper.SearchParams) ([]scraper.RawJob, error) {
	f.calls++
	f.lastParams = params
	if f.err != nil {
		return nil, f.err
	}
	return f.jobs, nil
}

type fakeCache struct {
	entries map[string][]byte
	getErr  error
	setErr  error
	sets    int
}

func (f *fakeCache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if f.getErr != nil {
		return false, f.getErr
	}
	raw, ok := f.entries[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

func (f *fakeCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if f.entries == nil {
		f.entries = map[string][]byte{}
	}
	f.entries[key] = raw
	return nil
}

var errBoom = errors.New("boom")
