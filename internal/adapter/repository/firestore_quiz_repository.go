package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"wetlandwarden/internal/domain/entity"
	"wetlandwarden/internal/domain/repository"
)

type firestoreQuizRepository struct {
	client *firestore.Client
}

func NewFirestoreQuizRepository(client *firestore.Client) repository.QuizRepository {
	return &firestoreQuizRepository{
		client: client,
	}
}

func (r *firestoreQuizRepository) List(ctx context.Context) ([]*entity.Quiz, error) {
	iter := r.client.Collection("quizzes").OrderBy("title", firestore.Asc).Documents(ctx)

	var quizzes []*entity.Quiz
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var quiz entity.Quiz
		if err := doc.DataTo(&quiz); err != nil {
			return nil, err
		}
		quizzes = append(quizzes, &quiz)
	}

	return quizzes, nil
}

func (r *firestoreQuizRepository) GetByID(ctx context.Context, id string) (*entity.Quiz, error) {
	doc, err := r.client.Collection("quizzes").Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}

	var quiz entity.Quiz
	if err := doc.DataTo(&quiz); err != nil {
		return nil, err
	}

	return &quiz, nil
}

func (r *firestoreQuizRepository) ListQuestions(ctx context.Context, quizID string) ([]*entity.QuizQuestion, error) {
	iter := r.client.Collection("quiz_questions").Where("quizID", "==", quizID).Documents(ctx)

	var questions []*entity.QuizQuestion
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var question entity.QuizQuestion
		if err := doc.DataTo(&question); err != nil {
			return nil, err
		}
		questions = append(questions, &question)
	}

	return questions, nil
}
