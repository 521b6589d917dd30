package entity

import (
	"time"
)

type Quiz struct {
	ID          string    `json:"id" firestore:"id"`
	Title       string    `json:"title" firestore:"title"`
	Description string    `json:"description,omitempty" firestore:"description,omitempty"`
	Difficulty  string    `json:"difficulty,omitempty" firestore:"difficulty,omitempty"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}

type QuizQuestion struct {
	ID            string    `json:"id" firestore:"id"`
	QuizID        string    `json:"quiz_id" firestore:"quizID"`
	Text          string    `json:"text" firestore:"text"`
	Options       []string  `json:"options" firestore:"options"`
	CorrectAnswer int       `json:"correct_answer" firestore:"correctAnswer"`
	CreatedAt     time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt     time.Time `json:"updated_at" firestore:"updatedAt"`
}

// Valid checks the question invariants: a non-empty option list and a
// correct-answer index within bounds.
func (q *QuizQuestion) Valid() bool {
	return len(q.Options) > 0 && q.CorrectAnswer >= 0 && q.CorrectAnswer < len(q.Options)
}
