package matching

import (
	"math"
	"sort"
	"strings"

	"career-compass/internal/domain/job"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

const (
	titleWeight    = 0.5
	locationWeight = 0.3
	skillsWeight   = 0.2

	neutralScore = 50.0
	minScore     = 60.0

	titleThreshold    = 70
	skillThreshold    = 70
	fallbackThreshold = 60

	fallbackScore   = 50.0
	fallbackTrigger = 5
	maxResults      = 10
)

// Profile is the user side of the match.
type Profile struct {
	PreferredRole string
	Skills        []string
	Location      string
}

// Score ranks jobs against the profile. Jobs below the minimum weighted
// total are dropped; when fewer than fallbackTrigger survive, a relaxed
// title-only pass tops the list up to maxResults with a fixed score.
// Ties keep their input order.
func Score(p Profile, jobs []job.Record) []job.Record {
	scored := make([]job.Record, 0, len(jobs))
	for _, j := range jobs {
		total := Total(p, j)
		if total < minScore {
			continue
		}
		j.MatchScore = total
		scored = append(scored, j)
	}

	sort.SliceStable(scored, func(i, k int) bool {
		return scored[i].MatchScore > scored[k].MatchScore
	})

	if len(scored) < fallbackTrigger {
		scored = appendFallback(p, jobs, scored)
	}
	return scored
}

// Total computes the weighted match total, rounded to one decimal.
func Total(p Profile, j job.Record) float64 {
	total := TitleScore(p.PreferredRole, j.Title)*titleWeight +
		LocationScore(p.Location, j.Location)*locationWeight +
		SkillsScore(p.Skills, j.Skills)*skillsWeight
	return math.Round(total*10) / 10
}

// TitleScore is all-or-nothing: 100 when the preferred role appears verbatim
// in the title or aligns at the title threshold, 0 otherwise. Missing either
// side scores neutral.
func TitleScore(preferredRole, title string) float64 {
	role := strings.ToLower(strings.TrimSpace(preferredRole))
	t := strings.ToLower(strings.TrimSpace(title))
	if role == "" || t == "" {
		return neutralScore
	}
	if strings.Contains(t, role) {
		return 100
	}
	if fuzzy.PartialRatio(role, t) >= titleThreshold {
		return 100
	}
	return 0
}

// LocationScore is the raw partial-ratio between the two locations, neutral
// when either is missing.
func LocationScore(userLocation, jobLocation string) float64 {
	u := strings.ToLower(strings.TrimSpace(userLocation))
	j := strings.ToLower(strings.TrimSpace(jobLocation))
	if u == "" || j == "" {
		return neutralScore
	}
	return float64(fuzzy.PartialRatio(u, j))
}

// SkillsScore is the rounded percentage of user skills with at least one
// fuzzy hit among the job's skills. No user skills scores neutral; user
// skills against a skill-less job score 0.
func SkillsScore(userSkills, jobSkills []string) float64 {
	users := lowerNonEmpty(userSkills)
	if len(users) == 0 {
		return neutralScore
	}
	jobs := lowerNonEmpty(jobSkills)
	if len(jobs) == 0 {
		return 0
	}

	matched := 0
	for _, u := range users {
		for _, j := range jobs {
			if fuzzy.PartialRatio(u, j) >= skillThreshold {
				matched++
				break
			}
		}
	}
	return math.Round(float64(matched) / float64(len(users)) * 100)
}

func appendFallback(p Profile, all []job.Record, primary []job.Record) []job.Record {
	role := strings.ToLower(strings.TrimSpace(p.PreferredRole))

	seenURLs := make(map[string]struct{}, len(primary))
	for _, j := range primary {
		seenURLs[j.URL] = struct{}{}
	}

	out := primary
	for _, j := range all {
		if len(out) >= maxResults {
			break
		}
		title := strings.ToLower(strings.TrimSpace(j.Title))
		if !strings.Contains(title, role) && !similar(role, title, fallbackThreshold) {
			continue
		}
		if _, ok := seenURLs[j.URL]; ok {
			continue
		}
		seenURLs[j.URL] = struct{}{}
		j.MatchScore = fallbackScore
		out = append(out, j)
	}
	return out
}

func similar(a, b string, threshold int) bool {
	if a == "" || b == "" {
		return false
	}
	return fuzzy.PartialRatio(a, b) >= threshold
}

func lowerNonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
