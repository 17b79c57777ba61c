package restaurant

import (
	"time"

	"github.com/xw1nchester/foodfinds-backend/internal/branch/viewmodel"
)

type Restaurant struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	PriceRange  *string    `json:"priceRange,omitempty"`
	OpeningTime *time.Time `json:"openingTime,omitempty"`
	ClosingTime *time.Time `json:"closingTime,omitempty"`
	Status      *string    `json:"status,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type RestaurantSummary struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	BranchCount int    `json:"branchCount"`
}

type Details struct {
	Restaurant Restaurant         `json:"restaurant"`
	Branches   []viewmodel.Branch `json:"branches"`
}
