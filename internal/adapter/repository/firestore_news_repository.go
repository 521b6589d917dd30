package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"wetlandwarden/internal/domain/entity"
	"wetlandwarden/internal/domain/repository"
)

type firestoreNewsRepository struct {
	client *firestore.Client
}

func NewFirestoreNewsRepository(client *firestore.Client) repository.NewsRepository {
	return &firestoreNewsRepository{
		client: client,
	}
}

func (r *firestoreNewsRepository) List(ctx context.Context) ([]*entity.NewsArticle, error) {
	iter := r.client.Collection("news_articles").
		OrderBy("publicationDate", firestore.Desc).
		Documents(ctx)

	var articles []*entity.NewsArticle
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var article entity.NewsArticle
		if err := doc.DataTo(&article); err != nil {
			return nil, err
		}
		articles = append(articles, &article)
	}

	return articles, nil
}

func (r *firestoreNewsRepository) Create(ctx context.Context, article *entity.NewsArticle) error {
	_, err := r.client.Collection("news_articles").Doc(article.ID).Set(ctx, article)
	return err
}
