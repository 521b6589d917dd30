package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"wetlandwarden/internal/usecase"
	"wetlandwarden/pkg/errors"
	"wetlandwarden/pkg/response"
)

type NewsHandler struct {
	newsUseCase *usecase.NewsUseCase
}

func NewNewsHandler(newsUseCase *usecase.NewsUseCase) *NewsHandler {
	return &NewsHandler{
		newsUseCase: newsUseCase,
	}
}

func (h *NewsHandler) List(c echo.Context) error {
	articles, err := h.newsUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, articles)
}

type createArticleRequest struct {
	Title           string `json:"title" validate:"required"`
	Content         string `json:"content" validate:"required"`
	ImageURL        string `json:"image_url" validate:"omitempty,url"`
	Source          string `json:"source"`
	PublicationDate string `json:"publication_date"`
}

func (h *NewsHandler) Create(c echo.Context) error {
	var req createArticleRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	var publicationDate time.Time
	if req.PublicationDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.PublicationDate)
		if err != nil {
			return response.Error(c, errors.BadRequest("publication_date must be RFC 3339", err))
		}
		publicationDate = parsed
	}

	article, err := h.newsUseCase.Create(c.Request().Context(), usecase.CreateArticleInput{
		Title:           req.Title,
		Content:         req.Content,
		ImageURL:        req.ImageURL,
		Source:          req.Source,
		PublicationDate: publicationDate,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, article)
}
