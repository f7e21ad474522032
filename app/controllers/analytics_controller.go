package controllers

import (
	"net/http"

	"github.com/nikitaraj/foodbridge/app/services"
	"github.com/nikitaraj/foodbridge/pkg/logger"
	"github.com/nikitaraj/foodbridge/pkg/response"
	"github.com/nikitaraj/foodbridge/pkg/router"
)

type AnalyticsController struct {
	service *services.AnalyticsService
}

func NewAnalyticsController() *AnalyticsController {
	return &AnalyticsController{service: services.NewAnalyticsService()}
}

// reportView is a Report plus the chart hint the UI renders with.
type reportView struct {
	*services.Report
	Chart string `json:"chart"`
}

// Index returns the report catalogue.
func (c *AnalyticsController) Index(w http.ResponseWriter, r *http.Request) {
	response.Success(w, c.service.Catalogue())
}

// Show runs one report. Parameterized reports read their filter value
// from the query string (e.g. ?city=Chennai).
func (c *AnalyticsController) Show(w http.ResponseWriter, r *http.Request) {
	key := router.Param(r, "key")

	report, err := c.service.Run(key, r.URL.Query().Get("city"))
	if err != nil {
		logger.WithCtx(r.Context()).Error("run report", "report", key, "error", err)
		response.FromError(w, err)
		return
	}

	response.Success(w, reportView{Report: report, Chart: classifyChart(report)})
}

// classifyChart picks a chart type from the result shape: pie for
// proportional breakdowns (a pct column), bar for two-column categorical
// counts, plain table otherwise.
func classifyChart(report *services.Report) string {
	for _, col := range report.Columns {
		if col == "pct" {
			return "pie"
		}
	}

	if len(report.Columns) == 2 && allNumeric(report.Rows, 1) {
		return "bar"
	}

	return "table"
}

func allNumeric(rows [][]interface{}, col int) bool {
	if len(rows) == 0 {
		return false
	}
	for _, row := range rows {
		if col >= len(row) {
			return false
		}
		switch row[col].(type) {
		case int, int32, int64, float32, float64:
		default:
			return false
		}
	}
	return true
}
