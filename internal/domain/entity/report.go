package entity

import (
	"time"
)

const (
	ReportStatusSubmitted          = "submitted"
	ReportStatusUnderInvestigation = "under_investigation"
	ReportStatusResolved           = "resolved"
)

type WetlandReport struct {
	ID              string    `json:"id" firestore:"id"`
	UserID          string    `json:"user_id" firestore:"userID"`
	Description     string    `json:"description" firestore:"description"`
	Location        string    `json:"location" firestore:"location"`
	ImageURL        string    `json:"image_url,omitempty" firestore:"imageURL,omitempty"`
	Pollution       bool      `json:"pollution" firestore:"pollution"`
	InvasiveSpecies bool      `json:"invasive_species" firestore:"invasiveSpecies"`
	Drainage        bool      `json:"drainage" firestore:"drainage"`
	Illegal         bool      `json:"illegal" firestore:"illegal"`
	Development     bool      `json:"development" firestore:"development"`
	Status          string    `json:"status" firestore:"status"`
	CreatedAt       time.Time `json:"created_at" firestore:"createdAt"`
}

// HasIssueType reports whether at least one issue-type flag is set.
// Reports without any flag are rejected before reaching the store.
func (r *WetlandReport) HasIssueType() bool {
	return r.Pollution || r.InvasiveSpecies || r.Drainage || r.Illegal || r.Development
}
