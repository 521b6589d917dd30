package entity

import (
	"time"
)

// PointsPerLevel is the canonical level divisor: level 1 covers points
// 0-99, level 2 covers 100-199, and so on.
const PointsPerLevel = 100

type Profile struct {
	ID        string    `json:"id" firestore:"id"`
	Username  string    `json:"username" firestore:"username"`
	Points    int       `json:"points" firestore:"points"`
	Level     int       `json:"level" firestore:"level"`
	AvatarURL string    `json:"avatar_url,omitempty" firestore:"avatarURL,omitempty"`
	Onboarded bool      `json:"onboarded" firestore:"onboarded"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// LevelForPoints derives the profile level from a point total. It is the
// only place the formula lives; monotonically non-decreasing in points.
func LevelForPoints(points int) int {
	if points < 0 {
		points = 0
	}
	return points/PointsPerLevel + 1
}

// NeedsSetup reports whether the first-login username prompt should be
// shown. Provisioned profiles start with Onboarded=false and flip it on
// the first successful username save.
func (p *Profile) NeedsSetup() bool {
	return !p.Onboarded
}

// Activity is one entry of the merged profile activity feed.
type Activity struct {
	Type   string    `json:"type"`
	Title  string    `json:"title"`
	Date   time.Time `json:"date"`
	Points int       `json:"points"`
}
