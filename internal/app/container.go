package app

import (
	"context"
	"log"
	"time"

	"career-compass/internal/catalog"
	"career-compass/internal/config"
	"career-compass/internal/database"
	dbpostgres "career-compass/internal/database/postgres"
	"career-compass/internal/database/seeder"
	"career-compass/internal/domain/skills"
	"career-compass/internal/domain/user"
	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/infrastructure/ner"
	"career-compass/internal/infrastructure/news"
	"career-compass/internal/pipeline"
	"career-compass/internal/pkg/jwt"
	"career-compass/internal/repository"
	"career-compass/internal/scraper"
	"career-compass/internal/usecase"
)

// Container wires infrastructure and use cases together. Everything downstream
// of the database connection degrades rather than fails: a missing NER
// endpoint, course catalog, jobspy URL or Redis server just narrows what the
// API can do.
type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis

	Users    user.Repository
	Profiles user.ProfileRepository
	Jobs     repository.JobRepository

	Scrapers scraper.Service
	JWT      jwt.Service

	RecommendationUC usecase.RecommendationUsecase
	SkillGapUC       usecase.SkillGapUsecase
	AuthUC           usecase.AuthUsecase
	ProfileUC        usecase.ProfileUsecase
	NewsUC           usecase.NewsUsecase
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.Default()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if cfg.Database.SeedOnStart {
		seedCtx, seedCancel := context.WithTimeout(context.Background(), time.Minute)
		defer seedCancel()
		r := seeder.Runner{Seeders: seeder.Defaults()}
		if err := r.Run(seedCtx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	redisCache := cache.NewRedis(logger)

	var tagger skills.Tagger
	if nerClient := ner.NewClient(cfg.NER.APIURL, cfg.NER.APIToken, logger); nerClient != nil {
		tagger = nerClient
	}
	extractor := skills.NewExtractor(tagger, logger)
	vocab := skills.DefaultVocabulary()

	courses, err := catalog.Load(cfg.Catalog.CoursePath)
	if err != nil {
		logger.Printf("[App] course catalog unavailable: %v", err)
		courses = nil
	}

	users := repository.NewPostgresUserRepository(db)
	profiles := repository.NewPostgresProfileRepository(db)
	jobs := repository.NewPostgresJobRepository(db)

	var fanOut *scraper.FanOut
	if jobspy := scraper.NewJobspyClient(cfg.Scraper.JobspyBaseURL, logger); jobspy != nil {
		fanOut = scraper.NewFanOut(logger, jobspy, scraper.NewWeWorkRemotelyScraper(logger))
	} else {
		fanOut = scraper.NewFanOut(logger, scraper.NewWeWorkRemotelyScraper(logger))
	}

	trending := pipeline.NewTrendingPipeline(extractor, vocab, logger)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	c := &Container{
		Config:   cfg,
		DB:       db,
		Cache:    redisCache,
		Users:    users,
		Profiles: profiles,
		Jobs:     jobs,
		Scrapers: fanOut,
		JWT:      jwtSvc,
	}

	c.RecommendationUC = usecase.NewRecommendationUsecase(profiles, jobs, fanOut, extractor, logger)
	c.SkillGapUC = usecase.NewSkillGapUsecase(profiles, fanOut, trending, vocab, courses, redisCache, cache.DefaultTTLFromEnv(), logger)
	c.AuthUC = usecase.NewAuthUsecase(users, jwtSvc)
	c.ProfileUC = usecase.NewProfileUsecase(profiles)
	c.NewsUC = usecase.NewNewsUsecase(news.NewClient(), logger)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
