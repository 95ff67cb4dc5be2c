// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"planta/internal/domain/entity"
	"planta/internal/errors"
)

// Domain-specific errors for article persistence.
var (
	// ErrArticleNotFound is returned when an article is not found.
	ErrArticleNotFound = errors.New("article not found")
)

// ArticleRepository defines the interface for article-related database operations.
type ArticleRepository interface {
	// Create persists a new article.
	Create(ctx context.Context, article *entity.Article) error

	// FindByID retrieves an article by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Article, error)

	// FindAll retrieves every article.
	FindAll(ctx context.Context) ([]*entity.Article, error)

	// Search retrieves articles whose title or content contains the keyword,
	// case-insensitively.
	Search(ctx context.Context, keyword string) ([]*entity.Article, error)

	// Update overwrites an existing article.
	Update(ctx context.Context, article *entity.Article) error

	// Delete removes an article by its ID.
	Delete(ctx context.Context, id int64) error
}
