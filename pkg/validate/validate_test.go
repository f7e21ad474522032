package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nikitaraj/foodbridge/pkg/validate"
)

type listingInput struct {
	ProviderID uint   `json:"provider_id" validate:"required,gte=1"`
	FoodName   string `json:"food_name"   validate:"required,min=2,max=255"`
	Quantity   int    `json:"quantity"    validate:"required,integer,gte=0"`
	MealType   string `json:"meal_type"   validate:"required,in=Breakfast,Lunch,Dinner,Snacks"`
	ExpiryDate string `json:"expiry_date" validate:"required,date"`
	Status     string `json:"status"      validate:"nullable,in=Pending,Completed,Cancelled"`
}

func valid() listingInput {
	return listingInput{
		ProviderID: 1,
		FoodName:   "Veg Biryani",
		Quantity:   10,
		MealType:   "Lunch",
		ExpiryDate: "2026-09-05",
	}
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(valid())
	assert.False(t, validate.HasErrors(errs), "unexpected errors: %v", errs)
}

func TestRequired(t *testing.T) {
	in := valid()
	in.FoodName = "  "

	errs := validate.Struct(in)
	assert.Contains(t, errs, "food_name")
}

func TestInRule(t *testing.T) {
	in := valid()
	in.MealType = "Brunch"

	errs := validate.Struct(in)
	assert.Contains(t, errs, "meal_type")
}

func TestInRuleCommaParams(t *testing.T) {
	// The in= options list contains commas; the rule splitter must keep
	// them together.
	in := valid()
	in.Status = "Completed"
	assert.False(t, validate.HasErrors(validate.Struct(in)))

	in.Status = "Lost"
	assert.Contains(t, validate.Struct(in), "status")
}

func TestNullableSkipsEmpty(t *testing.T) {
	in := valid()
	in.Status = ""

	errs := validate.Struct(in)
	assert.False(t, validate.HasErrors(errs))
}

func TestDateRule(t *testing.T) {
	in := valid()
	in.ExpiryDate = "05-09-2026"

	errs := validate.Struct(in)
	assert.Contains(t, errs, "expiry_date")

	in.ExpiryDate = "2026-09-05T00:00:00Z"
	assert.False(t, validate.HasErrors(validate.Struct(in)))

	in.ExpiryDate = "2026-09-05 10:00:00"
	assert.False(t, validate.HasErrors(validate.Struct(in)))
}

func TestParseDateMatchesDateRule(t *testing.T) {
	// Every layout the date rule accepts must parse to the value sent,
	// not silently fall back to the zero time.
	for _, value := range []string{"2026-09-05", "2026-09-05T10:00:00Z", "2026-09-05 10:00:00"} {
		parsed, err := validate.ParseDate(value)
		assert.NoError(t, err, value)
		assert.False(t, parsed.IsZero(), value)
	}

	_, err := validate.ParseDate("05-09-2026")
	assert.Error(t, err)
}

func TestGte(t *testing.T) {
	in := valid()
	in.Quantity = -1

	errs := validate.Struct(in)
	assert.Contains(t, errs, "quantity")
}

func TestMinMaxStringLength(t *testing.T) {
	in := valid()
	in.FoodName = "X"

	errs := validate.Struct(in)
	assert.Contains(t, errs, "food_name")
}

func TestStructPointer(t *testing.T) {
	in := valid()
	errs := validate.Struct(&in)
	assert.False(t, validate.HasErrors(errs))
}
