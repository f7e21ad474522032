package controllers

import (
	"net/http"

	"github.com/nikitaraj/foodbridge/app/repositories"
	"github.com/nikitaraj/foodbridge/pkg/logger"
	"github.com/nikitaraj/foodbridge/pkg/response"
)

type ProviderController struct {
	repo *repositories.ProviderRepository
}

func NewProviderController() *ProviderController {
	return &ProviderController{repo: repositories.NewProviderRepository()}
}

// List returns all providers, filtered by ?city= when present.
func (c *ProviderController) List(w http.ResponseWriter, r *http.Request) {
	providers, err := c.repo.List(r.URL.Query().Get("city"))
	if err != nil {
		logger.WithCtx(r.Context()).Error("list providers", "error", err)
		response.FromError(w, err)
		return
	}

	response.Success(w, providers)
}

// Cities returns the distinct provider cities for the filter dropdown.
func (c *ProviderController) Cities(w http.ResponseWriter, r *http.Request) {
	cities, err := c.repo.Cities()
	if err != nil {
		logger.WithCtx(r.Context()).Error("list provider cities", "error", err)
		response.FromError(w, err)
		return
	}

	response.Success(w, cities)
}
