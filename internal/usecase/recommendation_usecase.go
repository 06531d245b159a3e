package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"career-compass/internal/domain/job"
	"career-compass/internal/domain/matching"
	"career-compass/internal/domain/skills"
	"career-compass/internal/domain/user"
	"career-compass/internal/repository"
	"career-compass/internal/scraper"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

const (
	defaultSearchTerm     = "software engineer"
	defaultSearchLocation = "India"
	recommendScrapeLimit  = 20
	recommendRecencyHours = 72
	storeListLimit        = 500
)

var recommendSites = []string{"indeed", "linkedin"}

type RecommendationUsecase interface {
	RecommendJobs(ctx context.Context, userID uuid.UUID) ([]job.Record, error)
}

// Recommendation merges the stored job corpus with a live scrape, backfills
// skills, and scores everything against the user's profile.
//
// The scraper and the store are both treated as degradable: a failure on
// either side drops that side's rows and the request carries on with what it
// has. Only a missing profile surfaces to the caller.
type Recommendation struct {
	profiles  user.ProfileRepository
	jobs      repository.JobRepository
	scrapers  scraper.Service
	extractor *skills.Extractor
	log       *log.Logger
}

func NewRecommendationUsecase(
	profiles user.ProfileRepository,
	jobs repository.JobRepository,
	scrapers scraper.Service,
	extractor *skills.Extractor,
	logger *log.Logger,
) *Recommendation {
	if logger == nil {
		logger = log.Default()
	}
	return &Recommendation{profiles: profiles, jobs: jobs, scrapers: scrapers, extractor: extractor, log: logger}
}

func (u *Recommendation) RecommendJobs(ctx context.Context, userID uuid.UUID) ([]job.Record, error) {
	if userID == uuid.Nil {
		return nil, ErrUserNotFound
	}

	profile, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrProfileNotFound) || errors.Is(err, user.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrInternal
	}

	all := u.aggregate(ctx, profile)

	engineProfile := matching.Profile{
		PreferredRole: strings.ToLower(strings.TrimSpace(profile.PreferredRole)),
		Skills:        lowerAll(profile.Skills),
		Location:      strings.ToLower(strings.TrimSpace(profile.Location)),
	}

	return matching.Score(engineProfile, all), nil
}

// aggregate builds the uniform record set from the store and the live
// scraper, extracting skills for every record that arrives without them.
func (u *Recommendation) aggregate(ctx context.Context, profile user.Profile) []job.Record {
	all := make([]job.Record, 0)

	stored, err := u.jobs.ListJobs(ctx, storeListLimit, 0)
	if err != nil {
		u.log.Printf("[Recommendation] store listing failed: %v", err)
	}
	for _, s := range stored {
		all = append(all, u.backfillSkills(ctx, job.Record{
			Title:       s.Title,
			Company:     s.Company,
			Location:    s.Location,
			Description: s.Description,
			URL:         s.URL,
			Source:      job.SourceStore,
		}))
	}
	u.log.Printf("[Recommendation] store jobs=%d", len(stored))

	params := scraper.SearchParams{
		Term:         strings.TrimSpace(profile.PreferredRole),
		Location:     strings.TrimSpace(profile.Location),
		Limit:        recommendScrapeLimit,
		RecencyHours: recommendRecencyHours,
		Sites:        recommendSites,
	}
	if params.Term == "" {
		params.Term = defaultSearchTerm
	}
	if params.Location == "" {
		params.Location = defaultSearchLocation
	}

	scraped, err := u.scrapers.Search(ctx, params)
	if err != nil {
		u.log.Printf("[Recommendation] scrape failed: %v", err)
		scraped = nil
	}
	for _, r := range scraped {
		all = append(all, u.backfillSkills(ctx, job.Record{
			Title:       r.Title,
			Company:     r.Company,
			Location:    r.Location,
			Description: r.Description,
			URL:         r.ResolveURL(),
			Skills:      r.Skills,
			Source:      job.SourceScraped,
		}))
	}
	u.log.Printf("[Recommendation] scraped jobs=%d total=%d", len(scraped), len(all))

	return all
}

// backfillSkills fills the record's skill list from its description, widening
// to title+description and finally the title table when earlier passes come
// up empty. Records that already carry skills from their source are left
// untouched.
func (u *Recommendation) backfillSkills(ctx context.Context, r job.Record) job.Record {
	if len(r.Skills) > 0 {
		return r
	}
	r.Skills = u.extractor.Extract(ctx, r.Description)
	if len(r.Skills) == 0 {
		r.Skills = u.extractor.Extract(ctx, r.Title+" "+r.Description)
	}
	if len(r.Skills) == 0 {
		r.Skills = skills.ExtractFromTitle(r.Title)
	}
	return r
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.ToLower(strings.TrimSpace(s)))
	}
	return out
}
