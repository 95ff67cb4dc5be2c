package impl

import (
	"context"
	"time"

	"planta/internal/domain/entity"
	domainerrors "planta/internal/domain/errors"
	"planta/internal/domain/repository"
	"planta/internal/usecase"

	"github.com/pkg/errors"
)

type articleService struct {
	articleRepo repository.ArticleRepository
}

// NewArticleService creates a new article service instance
func NewArticleService(articleRepo repository.ArticleRepository) usecase.ArticleUsecase {
	return &articleService{
		articleRepo: articleRepo,
	}
}

func (s *articleService) CreateArticle(ctx context.Context, input *usecase.ArticleInput) (*entity.Article, error) {
	article := &entity.Article{
		Title:     input.Title,
		Content:   input.Content,
		ImageURL:  input.ImageURL,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, errors.Wrap(err, "failed to create article")
	}

	return article, nil
}

func (s *articleService) GetArticle(ctx context.Context, id int64) (*entity.Article, error) {
	article, err := s.articleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return nil, domainerrors.ErrArticleNotFound
		}

		return nil, errors.Wrap(err, "failed to find article by ID")
	}

	return article, nil
}

func (s *articleService) ListArticles(ctx context.Context) ([]*entity.Article, error) {
	articles, err := s.articleRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list articles")
	}

	return articles, nil
}

func (s *articleService) SearchArticles(ctx context.Context, keyword string) ([]*entity.Article, error) {
	articles, err := s.articleRepo.Search(ctx, keyword)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search articles")
	}

	return articles, nil
}

func (s *articleService) UpdateArticle(ctx context.Context, id int64, input *usecase.ArticleInput) (*entity.Article, error) {
	article, err := s.articleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return nil, domainerrors.ErrArticleNotFound
		}

		return nil, errors.Wrap(err, "failed to find article by ID")
	}

	article.Title = input.Title
	article.Content = input.Content
	article.ImageURL = input.ImageURL

	if err := s.articleRepo.Update(ctx, article); err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return nil, domainerrors.ErrArticleNotFound
		}

		return nil, errors.Wrap(err, "failed to update article")
	}

	return article, nil
}

func (s *articleService) DeleteArticle(ctx context.Context, id int64) error {
	if err := s.articleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return domainerrors.ErrArticleNotFound
		}

		return errors.Wrap(err, "failed to delete article")
	}

	return nil
}
