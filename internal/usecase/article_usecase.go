package usecase

import (
	"context"

	"planta/internal/domain/entity"
)

// ArticleInput defines the data required to create or update an article.
type ArticleInput struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	ImageURL string `json:"imageUrl"`
}

// ArticleUsecase defines the interface for article operations.
type ArticleUsecase interface {
	CreateArticle(ctx context.Context, input *ArticleInput) (*entity.Article, error)
	GetArticle(ctx context.Context, id int64) (*entity.Article, error)
	ListArticles(ctx context.Context) ([]*entity.Article, error)
	SearchArticles(ctx context.Context, keyword string) ([]*entity.Article, error)
	UpdateArticle(ctx context.Context, id int64, input *ArticleInput) (*entity.Article, error)
	DeleteArticle(ctx context.Context, id int64) error
}
