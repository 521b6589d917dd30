package entity

import (
	"time"
)

type CommunityDrive struct {
	ID          string    `json:"id" firestore:"id"`
	CreatorID   string    `json:"creator_id,omitempty" firestore:"creatorID,omitempty"`
	Title       string    `json:"title" firestore:"title"`
	Description string    `json:"description" firestore:"description"`
	Date        string    `json:"date" firestore:"date"`
	Time        string    `json:"time" firestore:"time"`
	Location    string    `json:"location" firestore:"location"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}

// DriveParticipant is the join row between a user and a drive. One row
// per (user, drive) pair; duplicate joins are rejected.
type DriveParticipant struct {
	ID       string    `json:"id" firestore:"id"`
	DriveID  string    `json:"drive_id" firestore:"driveID"`
	UserID   string    `json:"user_id" firestore:"userID"`
	JoinedAt time.Time `json:"joined_at" firestore:"joinedAt"`
}
