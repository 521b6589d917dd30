package usecase

import (
	"wetlandwarden/internal/domain/entity"
	"wetlandwarden/pkg/errors"
)

// MapUseCase serves the wetland map directory: a static in-process site
// list with status-specific recommendations for the side panel.
type MapUseCase struct {
	sites []entity.WetlandSite
}

func NewMapUseCase() *MapUseCase {
	return &MapUseCase{sites: wetlandSites}
}

var wetlandSites = []entity.WetlandSite{
	{
		ID:          "1",
		Name:        "Okefenokee Swamp",
		Longitude:   -82.2667,
		Latitude:    30.6500,
		Status:      entity.SiteStatusProtected,
		Description: "One of the largest intact freshwater ecosystems in North America",
		AreaHa:      177000,
	},
	{
		ID:          "2",
		Name:        "Everglades",
		Longitude:   -80.9000,
		Latitude:    25.3000,
		Status:      entity.SiteStatusAtRisk,
		Description: "Subtropical wetland ecosystem facing threats from urban development",
		AreaHa:      607000,
	},
	{
		ID:          "3",
		Name:        "Great Dismal Swamp",
		Longitude:   -76.5900,
		Latitude:    36.6000,
		Status:      entity.SiteStatusRestoration,
		Description: "Forested wetland undergoing active restoration efforts",
		AreaHa:      45000,
	},
	{
		ID:          "4",
		Name:        "Prairie Pothole Region",
		Longitude:   -99.1300,
		Latitude:    48.1500,
		Status:      entity.SiteStatusAtRisk,
		Description: "Critical habitat for North American waterfowl facing drainage threats",
		AreaHa:      70000,
	},
	{
		ID:          "5",
		Name:        "Chesapeake Bay Wetlands",
		Longitude:   -76.1200,
		Latitude:    37.9000,
		Status:      entity.SiteStatusRestoration,
		Description: "Tidal wetlands being restored to improve water quality",
		AreaHa:      29000,
	},
}

var statusRecommendations = map[string][]string{
	entity.SiteStatusProtected: {
		"Visit responsibly and stay on designated trails",
		"Support the organizations maintaining this protection",
		"Report any violations you observe to local authorities",
	},
	entity.SiteStatusAtRisk: {
		"Join or organize a community drive in this area",
		"Report threats such as pollution or illegal development",
		"Contact local representatives about protection measures",
	},
	entity.SiteStatusRestoration: {
		"Volunteer for planting and cleanup events",
		"Avoid disturbing recovering habitat zones",
		"Track restoration progress and share updates",
	},
}

func (uc *MapUseCase) Sites() []entity.WetlandSite {
	return uc.sites
}

type SiteDetail struct {
	entity.WetlandSite
	StatusLabel     string   `json:"status_label"`
	Recommendations []string `json:"recommendations"`
}

func (uc *MapUseCase) Site(id string) (*SiteDetail, error) {
	for _, site := range uc.sites {
		if site.ID == id {
			return &SiteDetail{
				WetlandSite:     site,
				StatusLabel:     statusLabel(site.Status),
				Recommendations: statusRecommendations[site.Status],
			}, nil
		}
	}
	return nil, errors.NotFound("Wetland site", nil)
}

func statusLabel(status string) string {
	switch status {
	case entity.SiteStatusProtected:
		return "Protected"
	case entity.SiteStatusAtRisk:
		return "At Risk"
	case entity.SiteStatusRestoration:
		return "Under Restoration"
	default:
		return "Unknown"
	}
}
