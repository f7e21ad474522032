package controllers

import (
	"net/http"

	"github.com/nikitaraj/foodbridge/app/models"
	"github.com/nikitaraj/foodbridge/app/repositories"
	"github.com/nikitaraj/foodbridge/pkg/bind"
	"github.com/nikitaraj/foodbridge/pkg/logger"
	"github.com/nikitaraj/foodbridge/pkg/response"
	"github.com/nikitaraj/foodbridge/pkg/validate"
)

type ListingController struct {
	repo *repositories.ListingRepository
}

func NewListingController() *ListingController {
	return &ListingController{repo: repositories.NewListingRepository()}
}

// createListingRequest is the POST /api/listings body.
type createListingRequest struct {
	ProviderID uint   `json:"provider_id" validate:"required,gte=1"`
	FoodName   string `json:"food_name"   validate:"required,min=2,max=255"`
	FoodType   string `json:"food_type"   validate:"required,in=Vegetarian,Non-Vegetarian,Vegan"`
	Quantity   int    `json:"quantity"    validate:"required,integer,gte=0"`
	MealType   string `json:"meal_type"   validate:"required,in=Breakfast,Lunch,Dinner,Snacks"`
	Location   string `json:"location"    validate:"required,min=2,max=100"`
	ExpiryDate string `json:"expiry_date" validate:"required,date"`
}

// List returns food listings filtered by ?location= and ?meal_type=.
func (c *ListingController) List(w http.ResponseWriter, r *http.Request) {
	filter := repositories.ListingFilter{
		Location: r.URL.Query().Get("location"),
		MealType: r.URL.Query().Get("meal_type"),
	}

	listings, err := c.repo.List(filter)
	if err != nil {
		logger.WithCtx(r.Context()).Error("list food listings", "error", err)
		response.FromError(w, err)
		return
	}

	response.Success(w, listings)
}

// Locations returns the distinct listing locations for the filter dropdown.
func (c *ListingController) Locations(w http.ResponseWriter, r *http.Request) {
	locations, err := c.repo.Locations()
	if err != nil {
		logger.WithCtx(r.Context()).Error("list listing locations", "error", err)
		response.FromError(w, err)
		return
	}

	response.Success(w, locations)
}

// Create adds a new food listing with a store-assigned identity.
func (c *ListingController) Create(w http.ResponseWriter, r *http.Request) {
	var req createListingRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	expiry, err := validate.ParseDate(req.ExpiryDate)
	if err != nil {
		response.ValidationError(w, map[string]string{
			"expiry_date": "The expiry_date field must be a valid date.",
		})
		return
	}

	listing := &models.FoodListing{
		ProviderID: req.ProviderID,
		FoodName:   req.FoodName,
		FoodType:   req.FoodType,
		Quantity:   req.Quantity,
		MealType:   req.MealType,
		Location:   req.Location,
		ExpiryDate: expiry,
	}

	if err := c.repo.Create(listing); err != nil {
		logger.WithCtx(r.Context()).Warn("create food listing rejected", "error", err)
		response.FromError(w, err)
		return
	}

	logger.WithCtx(r.Context()).Info("food listing created", "listing_id", listing.ID)
	response.Created(w, listing)
}

// Delete removes a food listing by id.
func (c *ListingController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.FromError(w, err)
		return
	}

	if err := c.repo.Delete(id); err != nil {
		response.FromError(w, err)
		return
	}

	logger.WithCtx(r.Context()).Info("food listing deleted", "listing_id", id)
	response.Success(w, map[string]uint{"deleted": id})
}
