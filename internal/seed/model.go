package seed

import "github.com/xw1nchester/foodfinds-backend/pkg/types"

type Fixture struct {
	Restaurants []Restaurant `json:"restaurants" validate:"dive"`
}

type Restaurant struct {
	Name        string   `json:"name" validate:"required"`
	Description *string  `json:"description"`
	PriceRange  *string  `json:"priceRange"`
	OpeningTime *string  `json:"openingTime" validate:"omitempty,datetime=15:04"`
	ClosingTime *string  `json:"closingTime" validate:"omitempty,datetime=15:04"`
	Status      *string  `json:"status"`
	Branches    []Branch `json:"branches" validate:"dive"`
}

type Branch struct {
	City     string   `json:"city" validate:"required"`
	Area     string   `json:"area" validate:"required"`
	Cuisines []string `json:"cuisines" validate:"dive,required"`
	Reviews  []Review `json:"reviews" validate:"dive"`
}

type Review struct {
	Rating  types.IntOrString `json:"rating" validate:"gte=1,lte=5"`
	Comment *string           `json:"comment"`
}

type Stats struct {
	Restaurants int
	Branches    int
	Cuisines    int
	Reviews     int
}
