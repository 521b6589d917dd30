package entity

import (
	"time"
)

type NewsArticle struct {
	ID              string    `json:"id" firestore:"id"`
	Title           string    `json:"title" firestore:"title"`
	Content         string    `json:"content" firestore:"content"`
	ImageURL        string    `json:"image_url,omitempty" firestore:"imageURL,omitempty"`
	Source          string    `json:"source,omitempty" firestore:"source,omitempty"`
	PublicationDate time.Time `json:"publication_date" firestore:"publicationDate"`
	CreatedAt       time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt       time.Time `json:"updated_at" firestore:"updatedAt"`
}
