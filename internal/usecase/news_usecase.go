package usecase

import (
	"context"
	"log"

	"career-compass/internal/infrastructure/news"
)

const (
	newsKeyword  = "employment"
	newsDaysBack = 2
)

type NewsUsecase interface {
	EmploymentNews(ctx context.Context) ([]news.Article, error)
}

type News struct {
	client *news.Client
	log    *log.Logger
}

func NewNewsUsecase(client *news.Client, logger *log.Logger) *News {
	if logger == nil {
		logger = log.Default()
	}
	return &News{client: client, log: logger}
}

func (u *News) EmploymentNews(ctx context.Context) ([]news.Article, error) {
	articles, err := u.client.Recent(ctx, newsKeyword, newsDaysBack)
	if err != nil {
		u.log.Printf("[News] fetch failed: %v", err)
		return nil, ErrInternal
	}
	if articles == nil {
		articles = []news.Article{}
	}
	return articles, nil
}
