package branch

import "time"

// Restaurant holds the attributes of the restaurant that owns a branch.
type Restaurant struct {
	Name        string     `json:"name" validate:"required"`
	Description *string    `json:"description"`
	PriceRange  *string    `json:"priceRange"`
	OpeningTime *time.Time `json:"openingTime"`
	ClosingTime *time.Time `json:"closingTime"`
	Status      *string    `json:"status"`
}

// Aggregate is a branch joined with its restaurant, cuisines and review
// ratings, as read from the database.
type Aggregate struct {
	BranchID     int        `json:"branchId" validate:"gt=0"`
	RestaurantID int        `json:"restaurantId" validate:"gt=0"`
	City         string     `json:"city" validate:"required"`
	Area         string     `json:"area" validate:"required"`
	Restaurant   Restaurant `json:"restaurant"`
	Cuisines     []string   `json:"cuisines"`
	Reviews      []int      `json:"reviews" validate:"dive,gte=1,lte=5"`
}

// Filter narrows a branch listing. Zero values mean "any".
type Filter struct {
	RestaurantID int
	City         string
	Area         string
	Cuisines     []string
	OpenOnly     bool
	Limit        int
	Offset       int

	// Status is the literal an open-only listing matches against. The branch
	// service fills it in from OpenOnly.
	Status string
}
