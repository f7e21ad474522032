package services

import "github.com/nikitaraj/foodbridge/app/repositories"

// Overview feeds the four count tiles on the dashboard home page.
type Overview struct {
	Providers    int64 `json:"providers"`
	Receivers    int64 `json:"receivers"`
	FoodListings int64 `json:"food_listings"`
	Claims       int64 `json:"claims"`
}

// DashboardService aggregates the home-page numbers.
type DashboardService struct {
	providers *repositories.ProviderRepository
	receivers *repositories.ReceiverRepository
	listings  *repositories.ListingRepository
	claims    *repositories.ClaimRepository
}

func NewDashboardService() *DashboardService {
	return &DashboardService{
		providers: repositories.NewProviderRepository(),
		receivers: repositories.NewReceiverRepository(),
		listings:  repositories.NewListingRepository(),
		claims:    repositories.NewClaimRepository(),
	}
}

// Overview returns the total row count of each of the four tables.
func (s *DashboardService) Overview() (*Overview, error) {
	var (
		out Overview
		err error
	)

	if out.Providers, err = s.providers.Count(); err != nil {
		return nil, err
	}
	if out.Receivers, err = s.receivers.Count(); err != nil {
		return nil, err
	}
	if out.FoodListings, err = s.listings.Count(); err != nil {
		return nil, err
	}
	if out.Claims, err = s.claims.Count(); err != nil {
		return nil, err
	}

	return &out, nil
}
