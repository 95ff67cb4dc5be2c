// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"planta/internal/domain/entity"
	domainerrors "planta/internal/domain/errors"
	"planta/internal/domain/repository"
	"planta/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// articleRepository implements the repository.ArticleRepository interface.
type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository is the constructor for articleRepository.
func NewArticleRepository(db *gorm.DB) repository.ArticleRepository {
	return &articleRepository{
		db: db,
	}
}

// Create persists a new article.
func (repo *articleRepository) Create(ctx context.Context, article *entity.Article) error {
	articleM := fromArticleDomain(article)

	if err := repo.db.WithContext(ctx).Create(articleM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required article information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create article")
	}

	article.ID = articleM.ID
	article.CreatedAt = articleM.CreatedAt

	return nil
}

// FindByID retrieves an article by its unique ID.
func (repo *articleRepository) FindByID(ctx context.Context, id int64) (*entity.Article, error) {
	var articleM model.ArticleModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&articleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrArticleNotFound
		}

		return nil, errors.Wrap(err, "failed to find article by ID")
	}

	return toArticleDomain(&articleM), nil
}

// FindAll retrieves every article, newest first.
func (repo *articleRepository) FindAll(ctx context.Context) ([]*entity.Article, error) {
	var articleModels []*model.ArticleModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&articleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find articles")
	}

	articles := make([]*entity.Article, 0, len(articleModels))
	for _, articleM := range articleModels {
		articles = append(articles, toArticleDomain(articleM))
	}

	return articles, nil
}

// Search retrieves articles whose title or content contains the keyword,
// case-insensitively, using PostgreSQL's ILIKE.
func (repo *articleRepository) Search(ctx context.Context, keyword string) ([]*entity.Article, error) {
	var articleModels []*model.ArticleModel

	pattern := "%" + keyword + "%"
	if err := repo.db.WithContext(ctx).
		Where("title ILIKE ? OR content ILIKE ?", pattern, pattern).
		Order("created_at DESC").
		Find(&articleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search articles")
	}

	articles := make([]*entity.Article, 0, len(articleModels))
	for _, articleM := range articleModels {
		articles = append(articles, toArticleDomain(articleM))
	}

	return articles, nil
}

// Update overwrites an existing article.
func (repo *articleRepository) Update(ctx context.Context, article *entity.Article) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ArticleModel{}).
		Where("id = ?", article.ID).
		Updates(map[string]any{
			"title":     article.Title,
			"content":   article.Content,
			"image_url": article.ImageURL,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update article")
	}

	if result.RowsAffected == 0 {
		return repository.ErrArticleNotFound
	}

	return nil
}

// Delete removes an article by its ID.
func (repo *articleRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ArticleModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete article")
	}

	if result.RowsAffected == 0 {
		return repository.ErrArticleNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toArticleDomain converts a GORM ArticleModel to a domain Article entity.
func toArticleDomain(data *model.ArticleModel) *entity.Article {
	if data == nil {
		return nil
	}

	return &entity.Article{
		ID:        data.ID,
		Title:     data.Title,
		Content:   data.Content,
		ImageURL:  data.ImageURL,
		CreatedAt: data.CreatedAt,
	}
}

// fromArticleDomain converts a domain Article entity to a GORM ArticleModel.
func fromArticleDomain(data *entity.Article) *model.ArticleModel {
	if data == nil {
		return nil
	}

	return &model.ArticleModel{
		ID:        data.ID,
		Title:     data.Title,
		Content:   data.Content,
		ImageURL:  data.ImageURL,
		CreatedAt: data.CreatedAt,
	}
}
