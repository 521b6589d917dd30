package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wetlandwarden/internal/domain/entity"
	apperrors "wetlandwarden/pkg/errors"
)

func newTestQuizUseCase() (*QuizUseCase, *fakeQuizRepo, *fakeProfileRepo, *fakeBadgeRepo, *time.Time) {
	quizRepo := newFakeQuizRepo()
	profileRepo := newFakeProfileRepo()
	badgeRepo := &fakeBadgeRepo{}
	profileUC := NewProfileUseCase(profileRepo, &fakeReportRepo{}, newFakeDriveRepo(), badgeRepo)

	uc := NewQuizUseCase(quizRepo, profileUC)
	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return clock }

	return uc, quizRepo, profileRepo, badgeRepo, &clock
}

func seedQuiz(quizRepo *fakeQuizRepo, quizID string, questions int) {
	quizRepo.quizzes[quizID] = &entity.Quiz{ID: quizID, Title: "Wetland Basics"}
	for i := 0; i < questions; i++ {
		quizRepo.questions[quizID] = append(quizRepo.questions[quizID], &entity.QuizQuestion{
			ID:            quizID + "-q" + string(rune('a'+i)),
			QuizID:        quizID,
			Text:          "Question",
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: 1,
		})
	}
}

func TestQuizStart(t *testing.T) {
	uc, quizRepo, _, _, _ := newTestQuizUseCase()
	seedQuiz(quizRepo, "q1", 3)

	question, err := uc.Start(context.Background(), "u1", "q1")
	require.NoError(t, err)

	assert.Equal(t, 0, question.Index)
	assert.Equal(t, 3, question.Total)
	assert.Equal(t, 0, question.Score)
	assert.Len(t, question.Options, 4)
}

func TestQuizStartUnknownQuiz(t *testing.T) {
	uc, _, _, _, _ := newTestQuizUseCase()

	_, err := uc.Start(context.Background(), "u1", "missing")
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
}

func TestQuizStartEmptyQuiz(t *testing.T) {
	uc, quizRepo, _, _, _ := newTestQuizUseCase()
	quizRepo.quizzes["q1"] = &entity.Quiz{ID: "q1"}

	_, err := uc.Start(context.Background(), "u1", "q1")
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))
}

func TestQuizAnswerAdvances(t *testing.T) {
	uc, quizRepo, _, _, clock := newTestQuizUseCase()
	seedQuiz(quizRepo, "q1", 3)
	ctx := context.Background()

	_, err := uc.Start(ctx, "u1", "q1")
	require.NoError(t, err)

	result, err := uc.Answer(ctx, "u1", "q1", 1)
	require.NoError(t, err)
	assert.True(t, result.Correct)
	assert.Equal(t, PointsPerCorrectAnswer, result.Score)
	assert.False(t, result.Completed)
	require.NotNil(t, result.Next)
	assert.Equal(t, 1, result.Next.Index)

	*clock = clock.Add(FeedbackDuration)

	result, err = uc.Answer(ctx, "u1", "q1", 0)
	require.NoError(t, err)
	assert.False(t, result.Correct)
	assert.Equal(t, 1, result.CorrectAnswer)
	assert.Equal(t, PointsPerCorrectAnswer, result.Score)
}

func TestQuizAnswerDuringFeedbackConflicts(t *testing.T) {
	uc, quizRepo, _, _, clock := newTestQuizUseCase()
	seedQuiz(quizRepo, "q1", 3)
	ctx := context.Background()

	_, err := uc.Start(ctx, "u1", "q1")
	require.NoError(t, err)

	_, err = uc.Answer(ctx, "u1", "q1", 1)
	require.NoError(t, err)

	// A second selection inside the feedback window must be rejected.
	*clock = clock.Add(FeedbackDuration / 2)
	_, err = uc.Answer(ctx, "u1", "q1", 1)
	assert.True(t, apperrors.Is(err, "CONFLICT"))

	*clock = clock.Add(FeedbackDuration)
	_, err = uc.Answer(ctx, "u1", "q1", 1)
	assert.NoError(t, err)
}

func TestQuizAnswerOutOfRange(t *testing.T) {
	uc, quizRepo, _, _, _ := newTestQuizUseCase()
	seedQuiz(quizRepo, "q1", 1)
	ctx := context.Background()

	_, err := uc.Start(ctx, "u1", "q1")
	require.NoError(t, err)

	_, err = uc.Answer(ctx, "u1", "q1", 7)
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))

	_, err = uc.Answer(ctx, "u1", "q1", -1)
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))
}

func TestQuizCompletionAwardsPoints(t *testing.T) {
	uc, quizRepo, profileRepo, badgeRepo, clock := newTestQuizUseCase()
	seedQuiz(quizRepo, "q1", 2)
	profileRepo.profiles["u1"] = &entity.Profile{ID: "u1", Points: 0, Level: 1}
	ctx := context.Background()

	_, err := uc.Start(ctx, "u1", "q1")
	require.NoError(t, err)

	_, err = uc.Answer(ctx, "u1", "q1", 1)
	require.NoError(t, err)
	*clock = clock.Add(FeedbackDuration)

	result, err := uc.Answer(ctx, "u1", "q1", 1)
	require.NoError(t, err)

	assert.True(t, result.Completed)
	assert.Equal(t, 2*PointsPerCorrectAnswer, result.Score)
	assert.Equal(t, 2*PointsPerCorrectAnswer, result.MaxScore)
	assert.Equal(t, 2*PointsPerCorrectAnswer+PointsQuizCompletionBonus, result.PointsAwarded)

	require.NotNil(t, result.Profile)
	assert.Equal(t, 70, result.Profile.Points)

	require.Len(t, badgeRepo.badges, 1)
	assert.Equal(t, entity.BadgeQuizMaster, badgeRepo.badges[0].BadgeName)

	// The completed session refuses further answers; no double award.
	*clock = clock.Add(FeedbackDuration)
	_, err = uc.Answer(ctx, "u1", "q1", 1)
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))
	assert.Equal(t, 70, profileRepo.profiles["u1"].Points)
}

func TestQuizRestartResetsSession(t *testing.T) {
	uc, quizRepo, profileRepo, _, _ := newTestQuizUseCase()
	seedQuiz(quizRepo, "q1", 2)
	profileRepo.profiles["u1"] = &entity.Profile{ID: "u1"}
	ctx := context.Background()

	_, err := uc.Start(ctx, "u1", "q1")
	require.NoError(t, err)
	_, err = uc.Answer(ctx, "u1", "q1", 1)
	require.NoError(t, err)

	question, err := uc.Restart(ctx, "u1", "q1")
	require.NoError(t, err)
	assert.Equal(t, 0, question.Index)
	assert.Equal(t, 0, question.Score)

	// The feedback window is cleared too.
	_, err = uc.Answer(ctx, "u1", "q1", 1)
	assert.NoError(t, err)
}

func TestQuizExitDiscardsSession(t *testing.T) {
	uc, quizRepo, _, _, _ := newTestQuizUseCase()
	seedQuiz(quizRepo, "q1", 2)
	ctx := context.Background()

	_, err := uc.Start(ctx, "u1", "q1")
	require.NoError(t, err)

	uc.Exit(ctx, "u1", "q1")

	_, err = uc.Answer(ctx, "u1", "q1", 1)
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
}

func TestQuizSessionsAreIsolatedPerUser(t *testing.T) {
	uc, quizRepo, _, _, _ := newTestQuizUseCase()
	seedQuiz(quizRepo, "q1", 2)
	ctx := context.Background()

	_, err := uc.Start(ctx, "u1", "q1")
	require.NoError(t, err)
	_, err = uc.Start(ctx, "u2", "q1")
	require.NoError(t, err)

	result, err := uc.Answer(ctx, "u1", "q1", 1)
	require.NoError(t, err)
	assert.Equal(t, PointsPerCorrectAnswer, result.Score)

	// u2's session is untouched by u1's progress.
	result, err = uc.Answer(ctx, "u2", "q1", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 1, result.Next.Index)
}
