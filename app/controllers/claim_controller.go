package controllers

import (
	"net/http"

	"github.com/nikitaraj/foodbridge/app/models"
	"github.com/nikitaraj/foodbridge/app/repositories"
	"github.com/nikitaraj/foodbridge/pkg/bind"
	"github.com/nikitaraj/foodbridge/pkg/logger"
	"github.com/nikitaraj/foodbridge/pkg/response"
)

type ClaimController struct {
	repo *repositories.ClaimRepository
}

func NewClaimController() *ClaimController {
	return &ClaimController{repo: repositories.NewClaimRepository()}
}

// createClaimRequest is the POST /api/claims body. Status defaults to
// Pending when omitted.
type createClaimRequest struct {
	FoodListingID uint   `json:"food_listing_id" validate:"required,gte=1"`
	ReceiverID    uint   `json:"receiver_id"     validate:"required,gte=1"`
	Status        string `json:"status"          validate:"nullable,in=Pending,Completed,Cancelled"`
}

// updateClaimStatusRequest is the PATCH /api/claims/{id}/status body.
type updateClaimStatusRequest struct {
	Status string `json:"status" validate:"required,in=Pending,Completed,Cancelled"`
}

// List returns claims filtered by ?status= when present.
func (c *ClaimController) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status != "" && !models.ValidClaimStatus(status) {
		response.ValidationError(w, map[string]string{"status": "unknown claim status " + status})
		return
	}

	claims, err := c.repo.List(status)
	if err != nil {
		logger.WithCtx(r.Context()).Error("list claims", "error", err)
		response.FromError(w, err)
		return
	}

	response.Success(w, claims)
}

// Create adds a claim against a food listing for a receiver.
func (c *ClaimController) Create(w http.ResponseWriter, r *http.Request) {
	var req createClaimRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	claim, err := c.repo.Create(req.FoodListingID, req.ReceiverID, req.Status)
	if err != nil {
		logger.WithCtx(r.Context()).Warn("create claim rejected", "error", err)
		response.FromError(w, err)
		return
	}

	logger.WithCtx(r.Context()).Info("claim created", "claim_id", claim.ID)
	response.Created(w, claim)
}

// UpdateStatus mutates the status of one claim.
func (c *ClaimController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.FromError(w, err)
		return
	}

	var req updateClaimStatusRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := c.repo.UpdateStatus(id, req.Status); err != nil {
		response.FromError(w, err)
		return
	}

	logger.WithCtx(r.Context()).Info("claim status updated", "claim_id", id, "status", req.Status)
	response.Success(w, map[string]interface{}{"id": id, "status": req.Status})
}

// Delete removes a claim by id.
func (c *ClaimController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.FromError(w, err)
		return
	}

	if err := c.repo.Delete(id); err != nil {
		response.FromError(w, err)
		return
	}

	logger.WithCtx(r.Context()).Info("claim deleted", "claim_id", id)
	response.Success(w, map[string]uint{"deleted": id})
}
