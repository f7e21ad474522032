package controllers

import (
	"net/http"

	"github.com/nikitaraj/foodbridge/app/services"
	"github.com/nikitaraj/foodbridge/config"
	"github.com/nikitaraj/foodbridge/pkg/logger"
	"github.com/nikitaraj/foodbridge/pkg/response"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

type DashboardController struct {
	service *services.DashboardService
}

func NewDashboardController() *DashboardController {
	return &DashboardController{service: services.NewDashboardService()}
}

// Show returns the four overview counts for the home-page tiles.
func (c *DashboardController) Show(w http.ResponseWriter, r *http.Request) {
	overview, err := c.service.Overview()
	if err != nil {
		logger.WithCtx(r.Context()).Error("dashboard overview", "error", err)
		response.FromError(w, err)
		return
	}

	response.Success(w, overview)
}

// Meta exposes app name, theme, and version to the UI shell.
func (c *DashboardController) Meta(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]string{
		"name":    "FoodBridge",
		"theme":   config.AppTheme(),
		"version": Version,
	})
}
