package pipeline

import (
	"context"
	"log"
	"sort"
	"time"

	"career-compass/internal/domain/skills"
)

const defaultTopN = 10

// TrendingPipeline extracts and validates skills from a batch of job
// descriptions concurrently, then ranks them by mention frequency.
//
// Extraction runs on a worker pool but results land in per-description slots,
// so the final ranking is deterministic: ties keep the order in which a skill
// first appeared across the input batch.
type TrendingPipeline struct {
	extractor *skills.Extractor
	vocab     *skills.Vocabulary
	log       *log.Logger
}

func NewTrendingPipeline(extractor *skills.Extractor, vocab *skills.Vocabulary, logger *log.Logger) *TrendingPipeline {
	if logger == nil {
		logger = log.Default()
	}
	return &TrendingPipeline{extractor: extractor, vocab: vocab, log: logger}
}

type TrendingParams struct {
	Workers int
	TopN    int
}

// Rank returns the top-N validated skills across descriptions, most frequent
// first.
func (p *TrendingPipeline) Rank(ctx context.Context, descriptions []string, params TrendingParams) []string {
	if p == nil || p.extractor == nil || len(descriptions) == 0 {
		return []string{}
	}
	workers := params.Workers
	if workers <= 0 {
		workers = 5
	}
	topN := params.TopN
	if topN <= 0 {
		topN = defaultTopN
	}

	start := time.Now()
	slots := make([][]string, len(descriptions))

	pool := NewWorkerPool(workers, workers*2)
	results := pool.Run(ctx)

	for i, desc := range descriptions {
		i, desc := i, desc
		queued := pool.Submit(ctx, func(ctx context.Context) Result {
			extracted := p.extractor.Extract(ctx, desc)
			kept := make([]string, 0, len(extracted))
			for _, s := range extracted {
				norm := skills.Normalize(s)
				if norm == "" {
					continue
				}
				if p.vocab != nil && !p.vocab.IsValid(norm, skills.DefaultValidThreshold) {
					continue
				}
				kept = append(kept, norm)
			}
			slots[i] = kept
			return Result{Err: nil}
		})
		if !queued {
			break
		}
	}

	pool.Close()
	for r := range results {
		_ = r
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0
	for _, kept := range slots {
		for _, s := range kept {
			if _, ok := counts[s]; !ok {
				firstSeen[s] = order
				order++
			}
			counts[s]++
		}
	}

	ranked := make([]string, 0, len(counts))
	for s := range counts {
		ranked = append(ranked, s)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if counts[ranked[i]] == counts[ranked[j]] {
			return firstSeen[ranked[i]] < firstSeen[ranked[j]]
		}
		return counts[ranked[i]] > counts[ranked[j]]
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	p.log.Printf("pipeline=trending descriptions=%d distinct_skills=%d top=%d duration=%s", len(descriptions), len(counts), len(ranked), time.Since(start))
	return ranked
}
