package matching

import (
	"testing"

	"career-compass/internal/domain/job"
)

func TestTotalWeightedExample(t *testing.T) {
	p := Profile{
		PreferredRole: "python developer",
		Skills:        []string{"python", "sql"},
		Location:      "remote",
	}
	j := job.Record{
		Title:    "Senior Python Developer",
		Location: "Remote",
		Skills:   []string{"python", "django"},
	}

	// title 100*0.5 + location 100*0.3 + skills 50*0.2
	if got := Total(p, j); got != 90.0 {
		t.Fatalf("Total = %v, want 90.0", got)
	}
}

func TestTitleScore(t *testing.T) {
	if got := TitleScore("", "Backend Engineer"); got != 50 {
		t.Fatalf("missing role should be neutral, got %v", got)
	}
	if got := TitleScore("python developer", ""); got != 50 {
		t.Fatalf("missing title should be neutral, got %v", got)
	}
	if got := TitleScore("python developer", "Junior Python Developer"); got != 100 {
		t.Fatalf("verbatim containment should score 100, got %v", got)
	}
	if got := TitleScore("accountant", "Senior Python Developer"); got != 0 {
		t.Fatalf("unrelated role should score 0, got %v", got)
	}
}

func TestSkillsScore(t *testing.T) {
	if got := SkillsScore(nil, []string{"python"}); got != 50 {
		t.Fatalf("no user skills should be neutral, got %v", got)
	}
	if got := SkillsScore([]string{"python"}, nil); got != 0 {
		t.Fatalf("skill-less job should score 0, got %v", got)
	}
	if got := SkillsScore([]string{"python", "cobol"}, []string{"python", "docker"}); got != 50 {
		t.Fatalf("half coverage should score 50, got %v", got)
	}
	if got := SkillsScore([]string{"python"}, []string{"python3"}); got != 100 {
		t.Fatalf("fuzzy skill hit should count, got %v", got)
	}
}

func TestScoreFiltersAndSorts(t *testing.T) {
	p := Profile{PreferredRole: "python developer", Skills: []string{"python"}, Location: "remote"}
	jobs := []job.Record{
		{Title: "Accountant", Location: "paris", Skills: []string{"excel"}, URL: "u1"},
		{Title: "Python Developer", Location: "remote", Skills: []string{"python"}, URL: "u2"},
		{Title: "Python Developer", Location: "remote", Skills: []string{"java"}, URL: "u3"},
	}

	got := Score(p, jobs)
	if len(got) < 2 {
		t.Fatalf("expected at least the two python jobs, got %v", got)
	}
	if got[0].URL != "u2" {
		t.Fatalf("expected full match first, got %v", got[0].URL)
	}
	if got[0].MatchScore != 100 {
		t.Fatalf("expected 100 for full match, got %v", got[0].MatchScore)
	}
	for _, j := range got {
		if j.URL == "u1" && j.MatchScore >= minScore {
			t.Fatalf("accountant job should not pass the threshold: %v", j)
		}
	}
}

func TestScoreTieKeepsInputOrder(t *testing.T) {
	p := Profile{PreferredRole: "python developer", Skills: []string{"python"}, Location: "remote"}
	jobs := []job.Record{
		{Title: "Python Developer", Location: "remote", Skills: []string{"python"}, URL: "first"},
		{Title: "Python Developer", Location: "remote", Skills: []string{"python"}, URL: "second"},
	}

	got := Score(p, jobs)
	if len(got) < 2 || got[0].URL != "first" || got[1].URL != "second" {
		t.Fatalf("equal scores must keep input order, got %v", got)
	}
}

func TestScoreFallbackTopsUp(t *testing.T) {
	p := Profile{PreferredRole: "python developer", Skills: []string{"python"}, Location: "oslo"}

	// Titles match the role but locations are far off, so nothing clears the
	// threshold and the relaxed pass kicks in.
	jobs := []job.Record{
		{Title: "Python Developer", Location: "sydney", Skills: []string{"java"}, URL: "a"},
		{Title: "Python Developer Intern", Location: "lima", Skills: []string{"java"}, URL: "b"},
		{Title: "Gardener", Location: "oslo", Skills: nil, URL: "c"},
	}

	got := Score(p, jobs)
	if len(got) != 2 {
		t.Fatalf("expected the two title matches via fallback, got %v", got)
	}
	for _, j := range got {
		if j.MatchScore != fallbackScore {
			t.Fatalf("fallback entries carry the fixed score, got %v", j.MatchScore)
		}
		if j.URL == "c" {
			t.Fatalf("gardener should not slip through the fallback: %v", got)
		}
	}
}

func TestScoreFallbackDeduplicatesAndCaps(t *testing.T) {
	p := Profile{PreferredRole: "developer", Skills: []string{"python"}, Location: "remote"}

	jobs := make([]job.Record, 0, 14)
	jobs = append(jobs, job.Record{Title: "Python Developer", Location: "remote", Skills: []string{"python"}, URL: "primary"})
	for i := 0; i < 13; i++ {
		jobs = append(jobs, job.Record{
			Title:    "Junior Developer",
			Location: "mars",
			Skills:   []string{"java"},
			URL:      "fb" + string(rune('a'+i)),
		})
	}

	got := Score(p, jobs)
	if len(got) > maxResults {
		t.Fatalf("fallback must cap the list at %d, got %d", maxResults, len(got))
	}

	seen := map[string]int{}
	for _, j := range got {
		seen[j.URL]++
		if seen[j.URL] > 1 {
			t.Fatalf("duplicate URL %q in %v", j.URL, got)
		}
	}
	if seen["primary"] != 1 {
		t.Fatalf("primary result must survive the fallback, got %v", got)
	}
}
