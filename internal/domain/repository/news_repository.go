package repository

import (
	"context"

	"wetlandwarden/internal/domain/entity"
)

type NewsRepository interface {
	// List returns all articles ordered by publication date, newest first.
	List(ctx context.Context) ([]*entity.NewsArticle, error)
	Create(ctx context.Context, article *entity.NewsArticle) error
}
