// Package services holds the analytics and dashboard layers. Every
// operation here is a read-only single round trip against the store.
package services

import (
	"time"

	"github.com/nikitaraj/foodbridge/pkg/apperr"
	"github.com/nikitaraj/foodbridge/pkg/cache"
	"github.com/nikitaraj/foodbridge/pkg/database"
	"github.com/nikitaraj/foodbridge/pkg/metrics"
)

// Report is a tabular result: an ordered sequence of named-column rows.
type Report struct {
	Key     string          `json:"key"`
	Title   string          `json:"title"`
	Columns []string        `json:"columns"`
	Rows    [][]interface{} `json:"rows"`
}

// ReportMeta describes one catalogue entry.
type ReportMeta struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Param string `json:"param,omitempty"`
}

// reportDef binds a report key to its SQL. Queries taking a parameter use
// the (? = '' OR col = ?) form so an empty value matches all rows.
type reportDef struct {
	key   string
	title string
	param string
	sql   string
}

// reportDefs is the fixed set of fifteen analytical queries. Each is
// deterministic (ties broken by name) and has no side effects.
var reportDefs = []reportDef{
	{
		key:   "providers-per-city",
		title: "Providers per City",
		sql: `SELECT city, COUNT(*) AS providers
		      FROM providers GROUP BY city ORDER BY providers DESC, city`,
	},
	{
		key:   "receivers-per-city",
		title: "Receivers per City",
		sql: `SELECT city, COUNT(*) AS receivers
		      FROM receivers GROUP BY city ORDER BY receivers DESC, city`,
	},
	{
		key:   "provider-type-quantity",
		title: "Total Quantity by Provider Type",
		sql: `SELECT p.type, COALESCE(SUM(l.quantity), 0) AS total_quantity
		      FROM providers p JOIN food_listings l ON l.provider_id = p.id
		      GROUP BY p.type ORDER BY total_quantity DESC, p.type`,
	},
	{
		key:   "provider-contacts",
		title: "Provider Contact Information",
		param: "city",
		sql: `SELECT name, contact FROM providers
		      WHERE (? = '' OR city = ?) ORDER BY name`,
	},
	{
		key:   "top-receivers",
		title: "Receivers with Most Claims",
		sql: `SELECT r.name, COUNT(c.id) AS claims
		      FROM claims c JOIN receivers r ON r.id = c.receiver_id
		      GROUP BY r.id, r.name ORDER BY claims DESC, r.name`,
	},
	{
		key:   "total-quantity",
		title: "Total Quantity of Food Available",
		sql:   `SELECT COALESCE(SUM(quantity), 0) AS total_quantity FROM food_listings`,
	},
	{
		key:   "listings-per-city",
		title: "Food Listings per City",
		sql: `SELECT location, COUNT(*) AS listings
		      FROM food_listings GROUP BY location ORDER BY listings DESC, location`,
	},
	{
		key:   "common-food-types",
		title: "Most Common Food Types",
		sql: `SELECT food_type, COUNT(*) AS listings
		      FROM food_listings GROUP BY food_type ORDER BY listings DESC, food_type`,
	},
	{
		key:   "claims-per-listing",
		title: "Claims per Food Listing",
		sql: `SELECT l.food_name, COUNT(c.id) AS claims
		      FROM food_listings l LEFT JOIN claims c ON c.food_listing_id = l.id
		      GROUP BY l.id, l.food_name ORDER BY claims DESC, l.food_name`,
	},
	{
		key:   "top-providers-completed",
		title: "Providers with Most Completed Claims",
		sql: `SELECT p.name, COUNT(c.id) AS completed_claims
		      FROM claims c
		      JOIN food_listings l ON l.id = c.food_listing_id
		      JOIN providers p ON p.id = l.provider_id
		      WHERE c.status = 'Completed'
		      GROUP BY p.id, p.name ORDER BY completed_claims DESC, p.name`,
	},
	{
		key:   "claim-status-breakdown",
		title: "Claim Status Percentage",
		sql: `SELECT status, ROUND(COUNT(*) * 100.0 / (SELECT COUNT(*) FROM claims), 2) AS pct
		      FROM claims GROUP BY status ORDER BY pct DESC, status`,
	},
	{
		key:   "avg-claimed-quantity",
		title: "Average Claimed Quantity per Receiver",
		sql: `SELECT r.name, ROUND(AVG(l.quantity), 2) AS avg_quantity
		      FROM claims c
		      JOIN receivers r ON r.id = c.receiver_id
		      JOIN food_listings l ON l.id = c.food_listing_id
		      GROUP BY r.id, r.name ORDER BY avg_quantity DESC, r.name`,
	},
	{
		key:   "meal-type-claims",
		title: "Claims per Meal Type",
		sql: `SELECT l.meal_type, COUNT(c.id) AS claims
		      FROM claims c JOIN food_listings l ON l.id = c.food_listing_id
		      GROUP BY l.meal_type ORDER BY claims DESC, l.meal_type`,
	},
	{
		key:   "provider-quantity",
		title: "Total Quantity Donated per Provider",
		sql: `SELECT p.name, COALESCE(SUM(l.quantity), 0) AS total_quantity
		      FROM providers p JOIN food_listings l ON l.provider_id = p.id
		      GROUP BY p.id, p.name ORDER BY total_quantity DESC, p.name`,
	},
	{
		key:   "meal-type-quantity",
		title: "Available Quantity per Meal Type",
		sql: `SELECT meal_type, COALESCE(SUM(quantity), 0) AS total_quantity
		      FROM food_listings GROUP BY meal_type ORDER BY total_quantity DESC, meal_type`,
	},
}

// reportTTL bounds staleness for cached report rows. Mutations flush the
// prefix anyway; the TTL only matters when another process writes the file.
const reportTTL = time.Minute

// AnalyticsService runs the fixed aggregate reports.
type AnalyticsService struct{}

func NewAnalyticsService() *AnalyticsService {
	return &AnalyticsService{}
}

// Catalogue lists every report in registry order.
func (s *AnalyticsService) Catalogue() []ReportMeta {
	out := make([]ReportMeta, 0, len(reportDefs))
	for _, def := range reportDefs {
		out = append(out, ReportMeta{Key: def.key, Title: def.title, Param: def.param})
	}
	return out
}

// Run executes the report identified by key. param is the optional filter
// value for parameterized reports; reports without a parameter ignore it.
// Unknown keys surface as NotFoundError.
func (s *AnalyticsService) Run(key, param string) (*Report, error) {
	def, ok := findReport(key)
	if !ok {
		return nil, &apperr.Error{Kind: apperr.KindNotFound, Msg: "report " + key + " not found"}
	}

	cacheKey := cache.ReportPrefix + key + ":" + param

	var cached Report
	if cache.Get(cacheKey, &cached) {
		metrics.RecordReport(key, "cache")
		return &cached, nil
	}

	report, err := s.execute(def, param)
	if err != nil {
		return nil, err
	}

	metrics.RecordReport(key, "db")
	cache.Set(cacheKey, report, reportTTL) //nolint:errcheck
	return report, nil
}

func (s *AnalyticsService) execute(def reportDef, param string) (*Report, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var args []interface{}
	if def.param != "" {
		args = []interface{}{param, param}
	}

	rows, err := database.DB.Raw(def.sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	report := &Report{
		Key:     def.key,
		Title:   def.title,
		Columns: columns,
		Rows:    [][]interface{}{},
	}

	for rows.Next() {
		values := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		report.Rows = append(report.Rows, values)
	}

	return report, rows.Err()
}

func findReport(key string) (reportDef, bool) {
	for _, def := range reportDefs {
		if def.key == key {
			return def, true
		}
	}
	return reportDef{}, false
}
