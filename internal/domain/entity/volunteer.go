package entity

import (
	"time"
)

type Volunteer struct {
	ID           string    `json:"id" firestore:"id"`
	UserID       string    `json:"user_id,omitempty" firestore:"userID,omitempty"`
	Name         string    `json:"name" firestore:"name"`
	Email        string    `json:"email" firestore:"email"`
	Expertise    string    `json:"expertise" firestore:"expertise"`
	Availability string    `json:"availability" firestore:"availability"`
	Location     string    `json:"location" firestore:"location"`
	Bio          string    `json:"bio,omitempty" firestore:"bio,omitempty"`
	CreatedAt    time.Time `json:"created_at" firestore:"createdAt"`
}
