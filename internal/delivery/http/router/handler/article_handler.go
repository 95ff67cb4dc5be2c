package handler

import (
	"net/http"

	"planta/internal/delivery/http/response"
	"planta/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ArticleHandler holds dependencies for care-article handlers.
type ArticleHandler struct {
	uc usecase.ArticleUsecase
}

// NewArticleHandler is the constructor for ArticleHandler, injected by Fx.
func NewArticleHandler(uc usecase.ArticleUsecase) *ArticleHandler {
	return &ArticleHandler{uc: uc}
}

// Create handles the article creation request.
func (h *ArticleHandler) Create(c echo.Context) error {
	var input usecase.ArticleInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid article input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	article, err := h.uc.CreateArticle(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, article, "Article created successfully")
}

// Get handles the single article lookup request.
func (h *ArticleHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Article ID must be numeric")
	}

	article, err := h.uc.GetArticle(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, article, "")
}

// List handles the article listing request. A non-empty q query parameter
// switches to a case-insensitive keyword search over titles and bodies.
func (h *ArticleHandler) List(c echo.Context) error {
	keyword := c.QueryParam("q")

	if keyword != "" {
		articles, err := h.uc.SearchArticles(c.Request().Context(), keyword)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, articles, "")
	}

	articles, err := h.uc.ListArticles(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, articles, "")
}

// Update handles the article update request.
func (h *ArticleHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Article ID must be numeric")
	}

	var input usecase.ArticleInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid article input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	article, err := h.uc.UpdateArticle(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, article, "Article updated successfully")
}

// Delete handles the article deletion request.
func (h *ArticleHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Article ID must be numeric")
	}

	if err := h.uc.DeleteArticle(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Article deleted successfully")
}
