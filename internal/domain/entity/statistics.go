package entity

import (
	"time"
)

// WetlandStatistics is a singleton aggregate row. The application reads
// it, increments two counters on its own write paths and pushes updates
// to live subscribers.
type WetlandStatistics struct {
	ID                 string    `json:"id" firestore:"id"`
	WetlandsProtected  int       `json:"wetlands_protected" firestore:"wetlandsProtected"`
	SpeciesSaved       int       `json:"species_saved" firestore:"speciesSaved"`
	VolunteersEngaged  int       `json:"volunteers_engaged" firestore:"volunteersEngaged"`
	ReportsSubmitted   int       `json:"reports_submitted" firestore:"reportsSubmitted"`
	LastUpdated        time.Time `json:"last_updated" firestore:"lastUpdated"`
}
