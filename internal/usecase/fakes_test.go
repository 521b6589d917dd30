package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"

	"wetlandwarden/internal/domain/entity"
	"wetlandwarden/internal/domain/repository"
	"wetlandwarden/internal/infrastructure/realtime"
)

var errNotFound = errors.New("not found")

type fakeProfileRepo struct {
	profiles map[string]*entity.Profile
	failGet  bool
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*entity.Profile)}
}

func (r *fakeProfileRepo) Create(ctx context.Context, profile *entity.Profile) error {
	r.profiles[profile.ID] = profile
	return nil
}

func (r *fakeProfileRepo) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	if r.failGet {
		return nil, errors.New("store unavailable")
	}
	profile, ok := r.profiles[id]
	if !ok {
		return nil, errNotFound
	}
	return profile, nil
}

func (r *fakeProfileRepo) Update(ctx context.Context, profile *entity.Profile) error {
	if _, ok := r.profiles[profile.ID]; !ok {
		return errNotFound
	}
	r.profiles[profile.ID] = profile
	return nil
}

func (r *fakeProfileRepo) SetUsername(ctx context.Context, id, username string) error {
	profile, ok := r.profiles[id]
	if !ok {
		return errNotFound
	}
	profile.Username = username
	profile.Onboarded = true
	return nil
}

func (r *fakeProfileRepo) IncrementPoints(ctx context.Context, id string, amount int) (*entity.Profile, error) {
	profile, ok := r.profiles[id]
	if !ok {
		return nil, errNotFound
	}
	profile.Points += amount
	profile.Level = entity.LevelForPoints(profile.Points)
	return profile, nil
}

type fakeBadgeRepo struct {
	badges []*entity.UserBadge
}

func (r *fakeBadgeRepo) Award(ctx context.Context, badge *entity.UserBadge) error {
	r.badges = append(r.badges, badge)
	return nil
}

func (r *fakeBadgeRepo) ListByUser(ctx context.Context, userID string) ([]*entity.UserBadge, error) {
	var out []*entity.UserBadge
	for _, b := range r.badges {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBadgeRepo) HasBadge(ctx context.Context, userID, badgeName string) (bool, error) {
	for _, b := range r.badges {
		if b.UserID == userID && b.BadgeName == badgeName {
			return true, nil
		}
	}
	return false, nil
}

type fakeReportRepo struct {
	reports []*entity.WetlandReport
}

func (r *fakeReportRepo) Create(ctx context.Context, report *entity.WetlandReport) error {
	r.reports = append(r.reports, report)
	return nil
}

func (r *fakeReportRepo) ListByUser(ctx context.Context, userID string) ([]*entity.WetlandReport, error) {
	var out []*entity.WetlandReport
	for _, report := range r.reports {
		if report.UserID == userID {
			out = append(out, report)
		}
	}
	return out, nil
}

func (r *fakeReportRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	reports, _ := r.ListByUser(ctx, userID)
	return int64(len(reports)), nil
}

type fakeDriveRepo struct {
	drives       map[string]*entity.CommunityDrive
	participants map[string]*entity.DriveParticipant
}

func newFakeDriveRepo() *fakeDriveRepo {
	return &fakeDriveRepo{
		drives:       make(map[string]*entity.CommunityDrive),
		participants: make(map[string]*entity.DriveParticipant),
	}
}

func participantKey(userID, driveID string) string {
	return fmt.Sprintf("%s_%s", userID, driveID)
}

func (r *fakeDriveRepo) Create(ctx context.Context, drive *entity.CommunityDrive) error {
	r.drives[drive.ID] = drive
	return nil
}

func (r *fakeDriveRepo) GetByID(ctx context.Context, id string) (*entity.CommunityDrive, error) {
	drive, ok := r.drives[id]
	if !ok {
		return nil, errNotFound
	}
	return drive, nil
}

func (r *fakeDriveRepo) List(ctx context.Context, limit, offset int) ([]*entity.CommunityDrive, int64, error) {
	var out []*entity.CommunityDrive
	for _, drive := range r.drives {
		out = append(out, drive)
	}
	return out, int64(len(out)), nil
}

func (r *fakeDriveRepo) ListByCreator(ctx context.Context, userID string) ([]*entity.CommunityDrive, error) {
	var out []*entity.CommunityDrive
	for _, drive := range r.drives {
		if drive.CreatorID == userID {
			out = append(out, drive)
		}
	}
	return out, nil
}

func (r *fakeDriveRepo) AddParticipant(ctx context.Context, participant *entity.DriveParticipant) error {
	key := participantKey(participant.UserID, participant.DriveID)
	if _, ok := r.participants[key]; ok {
		return repository.ErrAlreadyParticipant
	}
	r.participants[key] = participant
	return nil
}

func (r *fakeDriveRepo) RemoveParticipant(ctx context.Context, userID, driveID string) error {
	key := participantKey(userID, driveID)
	if _, ok := r.participants[key]; !ok {
		return errNotFound
	}
	delete(r.participants, key)
	return nil
}

func (r *fakeDriveRepo) GetParticipant(ctx context.Context, userID, driveID string) (*entity.DriveParticipant, error) {
	participant, ok := r.participants[participantKey(userID, driveID)]
	if !ok {
		return nil, errNotFound
	}
	return participant, nil
}

func (r *fakeDriveRepo) ListParticipationsByUser(ctx context.Context, userID string) ([]*entity.DriveParticipant, error) {
	var out []*entity.DriveParticipant
	for _, participant := range r.participants {
		if participant.UserID == userID {
			out = append(out, participant)
		}
	}
	return out, nil
}

func (r *fakeDriveRepo) CountParticipants(ctx context.Context, driveID string) (int64, error) {
	var count int64
	for _, participant := range r.participants {
		if participant.DriveID == driveID {
			count++
		}
	}
	return count, nil
}

type fakeQuizRepo struct {
	quizzes   map[string]*entity.Quiz
	questions map[string][]*entity.QuizQuestion
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{
		quizzes:   make(map[string]*entity.Quiz),
		questions: make(map[string][]*entity.QuizQuestion),
	}
}

func (r *fakeQuizRepo) List(ctx context.Context) ([]*entity.Quiz, error) {
	var out []*entity.Quiz
	for _, quiz := range r.quizzes {
		out = append(out, quiz)
	}
	return out, nil
}

func (r *fakeQuizRepo) GetByID(ctx context.Context, id string) (*entity.Quiz, error) {
	quiz, ok := r.quizzes[id]
	if !ok {
		return nil, errNotFound
	}
	return quiz, nil
}

func (r *fakeQuizRepo) ListQuestions(ctx context.Context, quizID string) ([]*entity.QuizQuestion, error) {
	return r.questions[quizID], nil
}

type fakeNewsRepo struct {
	articles []*entity.NewsArticle
}

func (r *fakeNewsRepo) List(ctx context.Context) ([]*entity.NewsArticle, error) {
	return r.articles, nil
}

func (r *fakeNewsRepo) Create(ctx context.Context, article *entity.NewsArticle) error {
	r.articles = append(r.articles, article)
	return nil
}

type fakeStatsRepo struct {
	stats   entity.WetlandStatistics
	failGet bool
}

func (r *fakeStatsRepo) Get(ctx context.Context) (*entity.WetlandStatistics, error) {
	if r.failGet {
		return nil, errors.New("store unavailable")
	}
	stats := r.stats
	return &stats, nil
}

func (r *fakeStatsRepo) IncrementReportsSubmitted(ctx context.Context) (*entity.WetlandStatistics, error) {
	r.stats.ReportsSubmitted++
	stats := r.stats
	return &stats, nil
}

func (r *fakeStatsRepo) IncrementVolunteersEngaged(ctx context.Context) (*entity.WetlandStatistics, error) {
	r.stats.VolunteersEngaged++
	stats := r.stats
	return &stats, nil
}

type fakeVolunteerRepo struct {
	volunteers []*entity.Volunteer
}

func (r *fakeVolunteerRepo) Create(ctx context.Context, volunteer *entity.Volunteer) error {
	r.volunteers = append(r.volunteers, volunteer)
	return nil
}

func (r *fakeVolunteerRepo) List(ctx context.Context, limit, offset int) ([]*entity.Volunteer, int64, error) {
	return r.volunteers, int64(len(r.volunteers)), nil
}

func (r *fakeVolunteerRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	for _, volunteer := range r.volunteers {
		if volunteer.UserID == userID {
			count++
		}
	}
	return count, nil
}

type fakePublisher struct {
	events []realtime.Event
}

func (p *fakePublisher) Publish(event realtime.Event) {
	p.events = append(p.events, event)
}

type fakeAuthProvider struct {
	users       map[string]string
	uids        map[string]string
	unconfirmed map[string]bool
}

func newFakeAuthProvider() *fakeAuthProvider {
	return &fakeAuthProvider{
		users:       make(map[string]string),
		uids:        make(map[string]string),
		unconfirmed: make(map[string]bool),
	}
}

func (p *fakeAuthProvider) CreateUser(ctx context.Context, email, password string) (string, error) {
	if _, ok := p.users[email]; ok {
		return "", errors.New("EMAIL_EXISTS")
	}
	uid := "uid-" + email
	p.users[email] = password
	p.uids[email] = uid
	return uid, nil
}

func (p *fakeAuthProvider) VerifyToken(ctx context.Context, token string) (string, error) {
	for email, uid := range p.uids {
		if token == "token-"+email {
			return uid, nil
		}
	}
	return "", errors.New("invalid token")
}

func (p *fakeAuthProvider) SignInWithEmailPassword(email, password string) (string, string, error) {
	if p.unconfirmed[email] {
		return "", "", errors.New("EMAIL_NOT_CONFIRMED")
	}
	stored, ok := p.users[email]
	if !ok || stored != password {
		return "", "", errors.New("INVALID_PASSWORD")
	}
	return "token-" + email, "refresh-" + email, nil
}

func (p *fakeAuthProvider) RefreshIDToken(refreshToken string) (string, string, error) {
	for email := range p.users {
		if refreshToken == "refresh-"+email {
			return "token-" + email, refreshToken, nil
		}
	}
	return "", "", errors.New("INVALID_REFRESH_TOKEN")
}

type fakeImageStorage struct {
	uploads int
}

func (s *fakeImageStorage) UploadReportImage(ctx context.Context, file io.Reader, contentType, userID string) (string, error) {
	s.uploads++
	return "https://storage.example.com/reports/" + userID + "/photo.jpg", nil
}

func newTestProfileUseCase() (*ProfileUseCase, *fakeProfileRepo, *fakeBadgeRepo) {
	profileRepo := newFakeProfileRepo()
	badgeRepo := &fakeBadgeRepo{}
	uc := NewProfileUseCase(profileRepo, &fakeReportRepo{}, newFakeDriveRepo(), badgeRepo)
	return uc, profileRepo, badgeRepo
}
