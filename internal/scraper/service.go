package scraper

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"
)

// Service is the live-scrape collaborator. Implementations may fail; callers
// treat errors as a degraded (empty) result, never a request failure.
type Service interface {
	Search(ctx context.Context, params SearchParams) ([]RawJob, error)
}

type source interface {
	Name() string
	Search(ctx context.Context, params SearchParams) ([]RawJob, error)
}

// FanOut queries every source concurrently and merges their rows, deduplicated
// by resolved URL. A source failure only drops that source's rows; the search
// fails only when every source failed.
type FanOut struct {
	sources []source
	logger  *log.Logger
}

func NewFanOut(logger *log.Logger, sources ...source) *FanOut {
	if logger == nil {
		logger = log.Default()
	}
	return &FanOut{sources: sources, logger: logger}
}

func (s *FanOut) Search(ctx context.Context, params SearchParams) ([]RawJob, error) {
	if s == nil || len(s.sources) == 0 {
		return nil, nil
	}
	if params.Limit <= 0 {
		params.Limit = 20
	}

	type result struct {
		source string
		jobs   []RawJob
		err    error
	}

	outCh := make(chan result, len(s.sources))
	wg := sync.WaitGroup{}

	for _, src := range s.sources {
		src := src
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx2, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()

			jobs, err := src.Search(ctx2, params)
			outCh <- result{source: src.Name(), jobs: jobs, err: err}
		}()
	}

	wg.Wait()
	close(outCh)

	all := make([]RawJob, 0)
	var okCount int
	var lastErr error

	for r := range outCh {
		if r.err != nil {
			lastErr = r.err
			s.logger.Printf("scrape source=%s error=%v", r.source, r.err)
			continue
		}
		okCount++
		s.logger.Printf("scrape source=%s jobs=%d", r.source, len(r.jobs))
		all = append(all, r.jobs...)
	}

	if okCount == 0 && lastErr != nil {
		return nil, lastErr
	}

	seen := make(map[string]struct{}, len(all))
	out := make([]RawJob, 0, len(all))
	for _, j := range all {
		u := strings.TrimSpace(j.ResolveURL())
		if u != "" {
			if _, ok := seen[u]; ok {
				continue
			}
			seen[u] = struct{}{}
		}
		out = append(out, j)
		if len(out) >= params.Limit {
			break
		}
	}
	return out, nil
}

var _ Service = (*FanOut)(nil)
