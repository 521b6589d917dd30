package entity

import (
	"time"
)

const (
	BadgeWetlandReporter = "Wetland Reporter"
	BadgeHelpingHand     = "Helping Hand"
	BadgeQuizMaster      = "Quiz Master"
)

type UserBadge struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"user_id" firestore:"userID"`
	BadgeName string    `json:"badge_name" firestore:"badgeName"`
	AwardedAt time.Time `json:"awarded_at" firestore:"awardedAt"`
}
