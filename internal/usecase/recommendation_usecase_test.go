package usecase

import (
	"context"
	"errors"
	"log"
	"testing"

	"career-compass/internal/domain/job"
	"career-compass/internal/domain/skills"
	"career-compass/internal/domain/user"
	"career-compass/internal/repository"
	"career-compass/internal/scraper"

	"github.com/google/uuid"
)

func newRecommendationFixture(profiles *fakeProfiles, jobs *fakeJobs, scrapers *fakeScraper) *Recommendation {
	return NewRecommendationUsecase(profiles, jobs, scrapers, skills.NewExtractor(nil, log.Default()), log.Default())
}

func TestRecommendJobsUserNotFound(t *testing.T) {
	u := newRecommendationFixture(&fakeProfiles{}, &fakeJobs{}, &fakeScraper{})

	if _, err := u.RecommendJobs(context.Background(), uuid.New()); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
	if _, err := u.RecommendJobs(context.Background(), uuid.Nil); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("nil uuid: err = %v, want ErrUserNotFound", err)
	}
}

func TestRecommendJobsRepositoryFailure(t *testing.T) {
	u := newRecommendationFixture(&fakeProfiles{err: errBoom}, &fakeJobs{}, &fakeScraper{})

	if _, err := u.RecommendJobs(context.Background(), uuid.New()); !errors.Is(err, ErrInternal) {
		t.Fatalf("err = %v, want ErrInternal", err)
	}
}

func TestRecommendJobsMergesStoreAndScrape(t *testing.T) {
	uid := uuid.New()
	profiles := &fakeProfiles{profiles: map[uuid.UUID]user.Profile{uid: {
		UserID:        uid,
		PreferredRole: "Python Developer",
		Skills:        []string{"Python"},
		Location:      "Remote",
	}}}
	jobs := &fakeJobs{stored: []repository.StoredJob{{
		Title:       "Python Developer",
		Company:     "Acme",
		Location:    "Remote",
		Description: "Build services with python all day.",
		URL:         "https://jobs/store",
	}}}
	scrapers := &fakeScraper{jobs: []scraper.RawJob{{
		Title:       "Senior Python Developer",
		Company:     "Globex",
		Location:    "remote",
		Description: "python and docker in production",
		JobURL:      "https://jobs/scraped",
	}}}

	u := newRecommendationFixture(profiles, jobs, scrapers)
	got, err := u.RecommendJobs(context.Background(), uid)
	if err != nil {
		t.Fatalf("RecommendJobs: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected both corpus halves, got %v", got)
	}

	sources := map[job.Source]bool{}
	for _, j := range got {
		sources[j.Source] = true
		if j.MatchScore <= 0 {
			t.Fatalf("record missing a score: %+v", j)
		}
		if len(j.Skills) == 0 {
			t.Fatalf("skills should be backfilled from the description: %+v", j)
		}
	}
	if !sources[job.SourceStore] || !sources[job.SourceScraped] {
		t.Fatalf("expected store and scraped rows, got %v", got)
	}

	if scrapers.lastParams.Term != "Python Developer" || scrapers.lastParams.Location != "Remote" {
		t.Fatalf("profile should drive the scrape params, got %+v", scrapers.lastParams)
	}
}

func TestRecommendJobsKeepsScrapedSkills(t *testing.T) {
	uid := uuid.New()
	profiles := &fakeProfiles{profiles: map[uuid.UUID]user.Profile{uid: {
		UserID:        uid,
		PreferredRole: "rust developer",
		Skills:        []string{"rust"},
		Location:      "remote",
	}}}
	scrapers := &fakeScraper{jobs: []scraper.RawJob{{
		Title:       "Rust Developer",
		Location:    "remote",
		Description: "python everywhere in this description",
		URL:         "https://jobs/rust",
		Skills:      []string{"rust", "tokio"},
	}}}

	u := newRecommendationFixture(profiles, &fakeJobs{}, scrapers)
	got, err := u.RecommendJobs(context.Background(), uid)
	if err != nil {
		t.Fatalf("RecommendJobs: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one record, got %v", got)
	}
	if len(got[0].Skills) != 2 || got[0].Skills[0] != "rust" || got[0].Skills[1] != "tokio" {
		t.Fatalf("source-provided skills must survive, got %v", got[0].Skills)
	}
}

func TestRecommendJobsScraperOutageDegrades(t *testing.T) {
	uid := uuid.New()
	profiles := &fakeProfiles{profiles: map[uuid.UUID]user.Profile{uid: {
		UserID:        uid,
		PreferredRole: "python developer",
		Skills:        []string{"python"},
		Location:      "remote",
	}}}
	jobs := &fakeJobs{stored: []repository.StoredJob{{
		Title:       "Python Developer",
		Location:    "Remote",
		Description: "python services",
		URL:         "https://jobs/store",
	}}}

	u := newRecommendationFixture(profiles, jobs, &fakeScraper{err: errBoom})
	got, err := u.RecommendJobs(context.Background(), uid)
	if err != nil {
		t.Fatalf("scrape outage must not fail the request: %v", err)
	}
	if len(got) != 1 || got[0].Source != job.SourceStore {
		t.Fatalf("expected the stored row only, got %v", got)
	}
}

func TestRecommendJobsDefaultsForBlankProfile(t *testing.T) {
	uid := uuid.New()
	profiles := &fakeProfiles{profiles: map[uuid.UUID]user.Profile{uid: {UserID: uid}}}
	scrapers := &fakeScraper{}

	u := newRecommendationFixture(profiles, &fakeJobs{}, scrapers)
	if _, err := u.RecommendJobs(context.Background(), uid); err != nil {
		t.Fatalf("RecommendJobs: %v", err)
	}
	if scrapers.lastParams.Term != "software engineer" {
		t.Fatalf("blank role should fall back to the default term, got %q", scrapers.lastParams.Term)
	}
	if scrapers.lastParams.Location != "India" {
		t.Fatalf("blank location should fall back to the default, got %q", scrapers.lastParams.Location)
	}
	if scrapers.lastParams.RecencyHours != 72 || scrapers.lastParams.Limit != 20 {
		t.Fatalf("unexpected scrape window: %+v", scrapers.lastParams)
	}
}
