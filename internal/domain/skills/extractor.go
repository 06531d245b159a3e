package skills

import (
	"context"
	"log"
	"regexp"
	"strings"
)

const (
	// taggerInputLimit caps the text sent to the entity-tagging model.
	taggerInputLimit = 512
)

// techFragments mark a tagged entity as plausibly technical.
var techFragments = []string{"dev", "code", "program", "script", "tech"}

// Entity is a labeled word fragment returned by an entity-tagging model.
type Entity struct {
	Label string
	Word  string
}

// Tagger is the external entity-tagging oracle. Implementations may fail;
// the extractor treats any error as a soft miss.
type Tagger interface {
	Tag(ctx context.Context, text string) ([]Entity, error)
}

// Extractor derives skill candidates from free text. Phrase and variant
// patterns are compiled once at construction; the instance is read-only
// afterwards and safe for concurrent use.
type Extractor struct {
	tagger   Tagger
	logger   *log.Logger
	patterns []phrasePattern
}

type phrasePattern struct {
	skill    string
	exact    *regexp.Regexp
	variants []*regexp.Regexp
}

func NewExtractor(tagger Tagger, logger *log.Logger) *Extractor {
	if logger == nil {
		logger = log.Default()
	}
	e := &Extractor{tagger: tagger, logger: logger}
	e.patterns = make([]phrasePattern, 0, len(CommonSkills))
	for _, skill := range CommonSkills {
		p := phrasePattern{skill: skill, exact: boundaryPattern(skill)}
		for _, v := range phraseVariants(skill) {
			p.variants = append(p.variants, boundaryPattern(v))
		}
		e.patterns = append(e.patterns, p)
	}
	return e
}

// boundaryPattern matches a phrase delimited by non-alphanumeric characters
// or the ends of the text. Phrases like "c++" and "node.js" contain characters
// that defeat \b, so delimiters are matched explicitly.
func boundaryPattern(phrase string) *regexp.Regexp {
	return regexp.MustCompile(`(^|[^a-z0-9])` + regexp.QuoteMeta(phrase) + `([^a-z0-9]|$)`)
}

// phraseVariants generates the spelling/punctuation variants scanned in the
// second pass: dot-to-space, space-to-dot, dot removed and a ".js" suffix.
func phraseVariants(skill string) []string {
	candidates := []string{
		strings.ReplaceAll(skill, ".", " "),
		strings.ReplaceAll(skill, " ", "."),
		strings.ReplaceAll(skill, ".", ""),
	}
	if !strings.HasSuffix(skill, ".js") && !strings.HasSuffix(skill, " js") {
		candidates = append(candidates, skill+".js")
	}
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c != skill && c != "" {
			out = append(out, c)
		}
	}
	return out
}

// Extract returns the deduplicated, lower-cased skill candidates found in
// text, in discovery order. It never fails: an unavailable tagger only costs
// the fallback pass.
func (e *Extractor) Extract(ctx context.Context, text string) []string {
	if e == nil || strings.TrimSpace(text) == "" {
		return nil
	}

	lower := strings.ToLower(text)
	found := make([]string, 0, 8)
	seen := map[string]struct{}{}
	add := func(s string) {
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		found = append(found, s)
	}

	for _, p := range e.patterns {
		if p.exact.MatchString(lower) {
			add(p.skill)
		}
	}

	for _, p := range e.patterns {
		if _, ok := seen[p.skill]; ok {
			continue
		}
		for _, v := range p.variants {
			if v.MatchString(lower) {
				add(p.skill)
				break
			}
		}
	}

	for _, rule := range umbrellaRules {
		if _, ok := seen[rule.Skill]; ok {
			continue
		}
		for _, indicator := range rule.Indicators {
			if strings.Contains(lower, indicator) {
				add(rule.Skill)
				break
			}
		}
	}

	e.tagFallback(ctx, lower, seen, add)

	return found
}

func (e *Extractor) tagFallback(ctx context.Context, lower string, seen map[string]struct{}, add func(string)) {
	if e.tagger == nil {
		return
	}

	entities, err := e.tagger.Tag(ctx, truncateRunes(lower, taggerInputLimit))
	if err != nil {
		e.logger.Printf("[Extractor] entity tagging failed: %v", err)
		return
	}

	for _, ent := range entities {
		if !strings.HasPrefix(ent.Label, "B-") && !strings.HasPrefix(ent.Label, "I-") {
			continue
		}
		word := strings.ToLower(strings.ReplaceAll(ent.Word, "##", ""))
		if len(word) <= 2 {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		for _, frag := range techFragments {
			if strings.Contains(word, frag) {
				add(word)
				break
			}
		}
	}
}

// ExtractFromTitle infers skills from a job title using the fixed title table.
func ExtractFromTitle(title string) []string {
	if strings.TrimSpace(title) == "" {
		return nil
	}

	lower := strings.ToLower(title)
	found := make([]string, 0, 4)
	seen := map[string]struct{}{}

	for _, rule := range titleRules {
		if !strings.Contains(lower, rule.Phrase) {
			continue
		}
		for _, s := range rule.Skills {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			found = append(found, s)
		}
	}
	return found
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
