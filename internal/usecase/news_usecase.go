package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wetlandwarden/internal/domain/entity"
	"wetlandwarden/internal/domain/repository"
	"wetlandwarden/internal/infrastructure/realtime"
	"wetlandwarden/pkg/errors"
)

// PreviewLength is where article previews are cut for the read-more toggle.
const PreviewLength = 250

type NewsUseCase struct {
	newsRepo  repository.NewsRepository
	publisher ChangePublisher
}

func NewNewsUseCase(newsRepo repository.NewsRepository, publisher ChangePublisher) *NewsUseCase {
	return &NewsUseCase{
		newsRepo:  newsRepo,
		publisher: publisher,
	}
}

type ArticleView struct {
	*entity.NewsArticle
	Preview   string `json:"preview"`
	Truncated bool   `json:"truncated"`
}

func (uc *NewsUseCase) List(ctx context.Context) ([]*ArticleView, error) {
	articles, err := uc.newsRepo.List(ctx)
	if err != nil {
		return nil, errors.Internal("Failed to list news articles", err)
	}

	views := make([]*ArticleView, 0, len(articles))
	for _, article := range articles {
		preview, truncated := Preview(article.Content)
		views = append(views, &ArticleView{
			NewsArticle: article,
			Preview:     preview,
			Truncated:   truncated,
		})
	}

	return views, nil
}

type CreateArticleInput struct {
	Title           string
	Content         string
	ImageURL        string
	Source          string
	PublicationDate time.Time
}

// Create inserts an article and notifies live subscribers, who refetch.
func (uc *NewsUseCase) Create(ctx context.Context, input CreateArticleInput) (*entity.NewsArticle, error) {
	now := time.Now()
	publicationDate := input.PublicationDate
	if publicationDate.IsZero() {
		publicationDate = now
	}

	article := &entity.NewsArticle{
		ID:              uuid.New().String(),
		Title:           input.Title,
		Content:         input.Content,
		ImageURL:        input.ImageURL,
		Source:          input.Source,
		PublicationDate: publicationDate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.newsRepo.Create(ctx, article); err != nil {
		return nil, errors.Internal("Failed to create news article", err)
	}

	uc.publisher.Publish(realtime.Event{
		Topic:  realtime.TopicNewsArticles,
		Action: realtime.ActionInsert,
	})

	return article, nil
}

// Preview truncates content at PreviewLength runes for the collapsed view.
func Preview(content string) (string, bool) {
	runes := []rune(content)
	if len(runes) <= PreviewLength {
		return content, false
	}
	return string(runes[:PreviewLength]) + "...", true
}
