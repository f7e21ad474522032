// Package controllers is the HTTP edge: decode and validate the request,
// call the data or analytics layer, and write the JSON envelope. Chart
// classification lives here too; it is a presentation concern, not part
// of the analytics contract.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/nikitaraj/foodbridge/pkg/apperr"
	"github.com/nikitaraj/foodbridge/pkg/router"
)

// pathID extracts the {id} URL parameter as an unsigned integer.
func pathID(r *http.Request) (uint, error) {
	raw := router.Param(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, apperr.Validation("id must be a positive integer")
	}
	return uint(id), nil
}
