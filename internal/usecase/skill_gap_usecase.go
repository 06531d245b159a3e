package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"career-compass/internal/catalog"
	"career-compass/internal/domain/skills"
	"career-compass/internal/domain/user"
	"career-compass/internal/pipeline"
	"career-compass/internal/scraper"

	"github.com/google/uuid"
)

const (
	trendingSearchTerm   = "software engineer"
	trendingLocation     = "remote"
	trendingScrapeLimit  = 30
	trendingRecencyHours = 72
	trendingWorkers      = 5
	courseTagThreshold   = 70
	maxCourses           = 12
	trendingCacheKey     = "trending:" + trendingSearchTerm
)

var trendingSites = []string{"indeed", "linkedin", "glassdoor"}

// TrendingCache memoizes the trending ranking between requests. A nil cache
// disables memoization.
type TrendingCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type CourseRecommendation struct {
	Name       string
	URL        string
	Rating     *float64
	Difficulty *string
	Tags       []string
	ForSkill   string
}

type SkillGapReport struct {
	UserSkills         []string
	TrendingSkills     []string
	MissingSkills      []string
	RecommendedCourses []CourseRecommendation
}

type SkillGapUsecase interface {
	TrendingSkills(ctx context.Context) ([]string, error)
	Analyze(ctx context.Context, userID uuid.UUID) (SkillGapReport, error)
}

// SkillGap ranks in-demand skills from a live scrape and diffs them against a
// user's validated skill set, pairing each gap with catalog courses.
type SkillGap struct {
	profiles user.ProfileRepository
	scrapers scraper.Service
	trending *pipeline.TrendingPipeline
	vocab    *skills.Vocabulary
	courses  *catalog.Catalog
	cache    TrendingCache
	cacheTTL time.Duration
	log      *log.Logger
}

func NewSkillGapUsecase(
	profiles user.ProfileRepository,
	scrapers scraper.Service,
	trending *pipeline.TrendingPipeline,
	vocab *skills.Vocabulary,
	courses *catalog.Catalog,
	cache TrendingCache,
	cacheTTL time.Duration,
	logger *log.Logger,
) *SkillGap {
	if logger == nil {
		logger = log.Default()
	}
	return &SkillGap{
		profiles: profiles,
		scrapers: scrapers,
		trending: trending,
		vocab:    vocab,
		courses:  courses,
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      logger,
	}
}

// TrendingSkills returns the current top-10 skill ranking. A scrape failure
// degrades to an empty ranking, never an error to the caller.
func (u *SkillGap) TrendingSkills(ctx context.Context) ([]string, error) {
	if u.cache != nil {
		var cached []string
		if hit, err := u.cache.GetJSON(ctx, trendingCacheKey, &cached); err == nil && hit {
			u.log.Printf("[SkillGap] trending cache hit skills=%d", len(cached))
			return cached, nil
		}
	}

	raws, err := u.scrapers.Search(ctx, scraper.SearchParams{
		Term:         trendingSearchTerm,
		Location:     trendingLocation,
		Limit:        trendingScrapeLimit,
		RecencyHours: trendingRecencyHours,
		Sites:        trendingSites,
	})
	if err != nil {
		u.log.Printf("[SkillGap] trending scrape failed: %v", err)
		return []string{}, nil
	}

	descriptions := make([]string, 0, len(raws))
	for _, r := range raws {
		if r.Description == "" {
			continue
		}
		descriptions = append(descriptions, r.Description)
	}

	ranked := u.trending.Rank(ctx, descriptions, pipeline.TrendingParams{Workers: trendingWorkers})

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, trendingCacheKey, ranked, u.cacheTTL); err != nil {
			u.log.Printf("[SkillGap] trending cache store failed: %v", err)
		}
	}
	return ranked, nil
}

func (u *SkillGap) Analyze(ctx context.Context, userID uuid.UUID) (SkillGapReport, error) {
	if userID == uuid.Nil {
		return SkillGapReport{}, ErrUserNotFound
	}

	profile, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrProfileNotFound) || errors.Is(err, user.ErrNotFound) {
			return SkillGapReport{}, ErrUserNotFound
		}
		return SkillGapReport{}, ErrInternal
	}

	userSkills := make([]string, 0, len(profile.Skills))
	for _, raw := range profile.Skills {
		norm := skills.Normalize(raw)
		if norm == "" {
			continue
		}
		if !u.vocab.IsValid(norm, skills.DefaultValidThreshold) {
			continue
		}
		userSkills = append(userSkills, norm)
	}

	trending, err := u.TrendingSkills(ctx)
	if err != nil {
		return SkillGapReport{}, err
	}

	missing := make([]string, 0)
	for _, t := range trending {
		covered := false
		for _, us := range userSkills {
			if skills.FuzzyMatch(t, us, skills.DefaultValidThreshold) {
				covered = true
				break
			}
		}
		if !covered {
			missing = append(missing, t)
		}
	}

	return SkillGapReport{
		UserSkills:         userSkills,
		TrendingSkills:     trending,
		MissingSkills:      missing,
		RecommendedCourses: u.recommendCourses(missing),
	}, nil
}

// recommendCourses pairs each missing skill with catalog courses whose tags
// resemble it, first matching tag wins per course, capped at maxCourses
// overall.
func (u *SkillGap) recommendCourses(missing []string) []CourseRecommendation {
	out := make([]CourseRecommendation, 0, maxCourses)
	for _, skill := range missing {
		for _, course := range u.courses.Courses() {
			if len(out) >= maxCourses {
				return out
			}
			for _, tag := range course.Tags {
				if skills.FuzzyMatch(skill, tag, courseTagThreshold) {
					out = append(out, CourseRecommendation{
						Name:       course.Name,
						URL:        course.URL,
						Rating:     course.Rating,
						Difficulty: course.Difficulty,
						Tags:       course.Tags,
						ForSkill:   skill,
					})
					break
				}
			}
		}
	}
	return out
}
