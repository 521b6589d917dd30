package entity

const (
	SiteStatusProtected   = "protected"
	SiteStatusAtRisk      = "at-risk"
	SiteStatusRestoration = "restoration"
)

// WetlandSite is a map marker entry. The directory is a static in-process
// list rather than a store-backed table.
type WetlandSite struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Longitude   float64 `json:"longitude"`
	Latitude    float64 `json:"latitude"`
	Status      string  `json:"status"`
	Description string  `json:"description"`
	AreaHa      int     `json:"area_ha"`
}
