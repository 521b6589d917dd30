package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"wetlandwarden/internal/domain/entity"
	"wetlandwarden/internal/domain/repository"
	"wetlandwarden/pkg/errors"
	"wetlandwarden/pkg/logger"
)

// FeedbackDuration is how long answer feedback stays on screen before the
// next question becomes answerable.
const FeedbackDuration = 1500 * time.Millisecond

type QuizUseCase struct {
	quizRepo  repository.QuizRepository
	profileUC *ProfileUseCase

	mu       sync.Mutex
	sessions map[string]*quizSession
	now      func() time.Time
}

func NewQuizUseCase(quizRepo repository.QuizRepository, profileUC *ProfileUseCase) *QuizUseCase {
	return &QuizUseCase{
		quizRepo:  quizRepo,
		profileUC: profileUC,
		sessions:  make(map[string]*quizSession),
		now:       time.Now,
	}
}

// quizSession tracks one user's progress through one quiz. States:
// question N active -> feedback shown (FeedbackDuration) -> question N+1
// active or completed.
type quizSession struct {
	questions     []*entity.QuizQuestion
	current       int
	score         int
	completed     bool
	feedbackUntil time.Time
}

func sessionKey(userID, quizID string) string {
	return fmt.Sprintf("%s_%s", userID, quizID)
}

func (uc *QuizUseCase) List(ctx context.Context) ([]*entity.Quiz, error) {
	quizzes, err := uc.quizRepo.List(ctx)
	if err != nil {
		return nil, errors.Internal("Failed to list quizzes", err)
	}
	if quizzes == nil {
		quizzes = []*entity.Quiz{}
	}
	return quizzes, nil
}

func (uc *QuizUseCase) Questions(ctx context.Context, quizID string) ([]*entity.QuizQuestion, error) {
	if _, err := uc.quizRepo.GetByID(ctx, quizID); err != nil {
		return nil, errors.NotFound("Quiz", err)
	}

	questions, err := uc.quizRepo.ListQuestions(ctx, quizID)
	if err != nil {
		return nil, errors.Internal("Failed to list quiz questions", err)
	}
	return questions, nil
}

// QuestionView is a question as shown to the player; the correct index is
// withheld until feedback.
type QuestionView struct {
	Index   int      `json:"index"`
	Total   int      `json:"total"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
	Score   int      `json:"score"`
}

type AnswerResult struct {
	Correct       bool            `json:"correct"`
	CorrectAnswer int             `json:"correct_answer"`
	Score         int             `json:"score"`
	Completed     bool            `json:"completed"`
	FeedbackMs    int64           `json:"feedback_ms"`
	Next          *QuestionView   `json:"next,omitempty"`
	MaxScore      int             `json:"max_score,omitempty"`
	PointsAwarded int             `json:"points_awarded,omitempty"`
	Profile       *entity.Profile `json:"profile,omitempty"`
}

// Start opens (or reopens) a session at question 0 with a zero score.
func (uc *QuizUseCase) Start(ctx context.Context, userID, quizID string) (*QuestionView, error) {
	if _, err := uc.quizRepo.GetByID(ctx, quizID); err != nil {
		return nil, errors.NotFound("Quiz", err)
	}

	questions, err := uc.quizRepo.ListQuestions(ctx, quizID)
	if err != nil {
		return nil, errors.Internal("Failed to load quiz questions", err)
	}
	if len(questions) == 0 {
		return nil, errors.BadRequest("Quiz has no questions", nil)
	}
	for _, q := range questions {
		if !q.Valid() {
			return nil, errors.Internal("Quiz question is malformed", nil)
		}
	}

	session := &quizSession{questions: questions}

	uc.mu.Lock()
	uc.sessions[sessionKey(userID, quizID)] = session
	uc.mu.Unlock()

	return questionView(session), nil
}

// Answer evaluates the selection for the active question. Selections are
// rejected while feedback from the previous answer is still showing, which
// blocks double-submission mid-transition. Completing the last question
// applies the score+bonus award exactly once per completion.
func (uc *QuizUseCase) Answer(ctx context.Context, userID, quizID string, option int) (*AnswerResult, error) {
	uc.mu.Lock()
	session, ok := uc.sessions[sessionKey(userID, quizID)]
	if !ok {
		uc.mu.Unlock()
		return nil, errors.NotFound("Quiz session", nil)
	}

	if session.completed {
		uc.mu.Unlock()
		return nil, errors.BadRequest("Quiz already completed", nil)
	}

	now := uc.now()
	if now.Before(session.feedbackUntil) {
		uc.mu.Unlock()
		return nil, errors.Conflict("Answer feedback still showing")
	}

	question := session.questions[session.current]
	if option < 0 || option >= len(question.Options) {
		uc.mu.Unlock()
		return nil, errors.BadRequest("Selected option is out of range", nil)
	}

	correct := option == question.CorrectAnswer
	if correct {
		session.score += PointsPerCorrectAnswer
	}
	session.feedbackUntil = now.Add(FeedbackDuration)

	result := &AnswerResult{
		Correct:       correct,
		CorrectAnswer: question.CorrectAnswer,
		Score:         session.score,
		FeedbackMs:    FeedbackDuration.Milliseconds(),
	}

	if session.current < len(session.questions)-1 {
		session.current++
		next := questionView(session)
		result.Next = next
		uc.mu.Unlock()
		return result, nil
	}

	session.completed = true
	result.Completed = true
	result.MaxScore = len(session.questions) * PointsPerCorrectAnswer
	result.PointsAwarded = session.score + PointsQuizCompletionBonus
	score := session.score
	uc.mu.Unlock()

	profile, err := uc.profileUC.AwardPoints(ctx, userID, score+PointsQuizCompletionBonus, "quiz_completion")
	if err != nil {
		logger.Error("Quiz completed but point award failed for %s: %v", userID, err)
	} else {
		result.Profile = profile
	}

	if err := uc.profileUC.AwardBadgeOnce(ctx, userID, entity.BadgeQuizMaster); err != nil {
		logger.Warn("Failed to award badge to %s: %v", userID, err)
	}

	return result, nil
}

// Restart returns a completed or in-progress session to question 0 with
// the score reset.
func (uc *QuizUseCase) Restart(ctx context.Context, userID, quizID string) (*QuestionView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	session, ok := uc.sessions[sessionKey(userID, quizID)]
	if !ok {
		return nil, errors.NotFound("Quiz session", nil)
	}

	session.current = 0
	session.score = 0
	session.completed = false
	session.feedbackUntil = time.Time{}

	return questionView(session), nil
}

// Exit discards the session, returning the player to the quiz list.
func (uc *QuizUseCase) Exit(ctx context.Context, userID, quizID string) {
	uc.mu.Lock()
	delete(uc.sessions, sessionKey(userID, quizID))
	uc.mu.Unlock()
}

func questionView(session *quizSession) *QuestionView {
	question := session.questions[session.current]
	return &QuestionView{
		Index:   session.current,
		Total:   len(session.questions),
		Text:    question.Text,
		Options: question.Options,
		Score:   session.score,
	}
}
