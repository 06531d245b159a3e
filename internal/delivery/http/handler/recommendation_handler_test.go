package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/domain/job"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type fakeRecommendationUC struct {
	records []job.Record
	err     error
}

func (f *fakeRecommendationUC) RecommendJobs(ctx context.Context, userID uuid.UUID) ([]job.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func newRecommendationApp(uc usecase.RecommendationUsecase) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware().Middleware())
	NewRecommendationHandler(uc).RegisterRoutes(app.Group("/api"))
	return app
}

func TestRecommendJobsInvalidUUID(t *testing.T) {
	app := newRecommendationApp(&fakeRecommendationUC{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/recommend_jobs/not-a-uuid", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	if string(body) != `{"error":"User not found"}` {
		t.Fatalf("body = %s", body)
	}
}

func TestRecommendJobsUnknownUser(t *testing.T) {
	app := newRecommendationApp(&fakeRecommendationUC{err: usecase.ErrUserNotFound})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/recommend_jobs/"+uuid.NewString(), nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	if string(body) != `{"error":"User not found"}` {
		t.Fatalf("body = %s", body)
	}
}

func TestRecommendJobsSuccess(t *testing.T) {
	app := newRecommendationApp(&fakeRecommendationUC{records: []job.Record{{
		Title:      "Python Developer",
		Company:    "Acme",
		Location:   "Remote",
		URL:        "https://jobs/1",
		Skills:     []string{"python"},
		Source:     job.SourceStore,
		MatchScore: 90,
	}}})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/recommend_jobs/"+uuid.NewString(), nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var got []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one record, got %v", got)
	}
	if got[0]["title"] != "Python Developer" || got[0]["match_score"] != 90.0 {
		t.Fatalf("unexpected record: %v", got[0])
	}
	if got[0]["source"] != "store" {
		t.Fatalf("source = %v", got[0]["source"])
	}
}

func TestRecommendJobsEmptyResultIsArray(t *testing.T) {
	app := newRecommendationApp(&fakeRecommendationUC{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/recommend_jobs/"+uuid.NewString(), nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}

	body, _ := io.ReadAll(resp.Body)
	if string(body) != "[]" {
		t.Fatalf("empty result must serialize as [], got %s", body)
	}
}
