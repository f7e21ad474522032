package controllers

import (
	"net/http"

	"github.com/nikitaraj/foodbridge/app/repositories"
	"github.com/nikitaraj/foodbridge/pkg/logger"
	"github.com/nikitaraj/foodbridge/pkg/response"
)

type ReceiverController struct {
	repo *repositories.ReceiverRepository
}

func NewReceiverController() *ReceiverController {
	return &ReceiverController{repo: repositories.NewReceiverRepository()}
}

// List returns all receivers, filtered by ?city= when present.
func (c *ReceiverController) List(w http.ResponseWriter, r *http.Request) {
	receivers, err := c.repo.List(r.URL.Query().Get("city"))
	if err != nil {
		logger.WithCtx(r.Context()).Error("list receivers", "error", err)
		response.FromError(w, err)
		return
	}

	response.Success(w, receivers)
}

// Cities returns the distinct receiver cities for the filter dropdown.
func (c *ReceiverController) Cities(w http.ResponseWriter, r *http.Request) {
	cities, err := c.repo.Cities()
	if err != nil {
		logger.WithCtx(r.Context()).Error("list receiver cities", "error", err)
		response.FromError(w, err)
		return
	}

	response.Success(w, cities)
}
