package repository

import (
	"context"

	"wetlandwarden/internal/domain/entity"
)

type QuizRepository interface {
	// List returns all quizzes ordered by title.
	List(ctx context.Context) ([]*entity.Quiz, error)
	GetByID(ctx context.Context, id string) (*entity.Quiz, error)
	ListQuestions(ctx context.Context, quizID string) ([]*entity.QuizQuestion, error)
}
