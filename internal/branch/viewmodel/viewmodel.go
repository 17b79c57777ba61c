// Package viewmodel turns branch aggregates into display-ready cards.
//
// Derivation is pure: it performs no I/O, keeps no state between calls and
// never modifies its input, so a single Deriver can be shared by any number
// of goroutines.
package viewmodel

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/xw1nchester/foodfinds-backend/internal/branch"
)

type Config struct {
	// ClockLayout is a time.Format layout applied to opening and closing times.
	ClockLayout      string
	HoursSeparator   string
	CuisineSeparator string
	// OpenStatus is compared to the restaurant status byte for byte.
	OpenStatus        string
	PlaceholderHost   string
	PlaceholderWidth  int
	PlaceholderHeight int
	PlaceholderText   string
	Palette           []string
}

func DefaultConfig() Config {
	return Config{
		ClockLayout:       "3:04 PM",
		HoursSeparator:    " - ",
		CuisineSeparator:  ", ",
		OpenStatus:        "open",
		PlaceholderHost:   "placehold.co",
		PlaceholderWidth:  600,
		PlaceholderHeight: 400,
		PlaceholderText:   "white",
		Palette:           []string{"f97316", "ef4444", "ec4899", "8b5cf6", "6366f1", "3b82f6"},
	}
}

// Rating is an average review score. It is always encoded with one decimal.
type Rating float64

func (r Rating) String() string {
	return strconv.FormatFloat(float64(r), 'f', 1, 64)
}

func (r Rating) MarshalJSON() ([]byte, error) {
	return []byte(r.String()), nil
}

// Branch is the card shown for a single restaurant branch.
type Branch struct {
	BranchID            int     `json:"branchId"`
	RestaurantID        int     `json:"restaurantId"`
	City                string  `json:"city"`
	Area                string  `json:"area"`
	RestaurantName      string  `json:"restaurantName"`
	Description         *string `json:"description,omitempty"`
	PriceRange          *string `json:"priceRange,omitempty"`
	AverageRating       *Rating `json:"averageRating,omitempty"`
	ReviewCount         int     `json:"reviewCount"`
	CuisineLabel        string  `json:"cuisineLabel"`
	OpeningHoursLabel   *string `json:"openingHoursLabel,omitempty"`
	IsOpen              bool    `json:"isOpen"`
	PlaceholderImageURL string  `json:"placeholderImageUrl"`
}

type Page struct {
	Branches []Branch `json:"branches"`
	Total    int      `json:"total"`
}

type Deriver struct {
	cfg Config
}

// NewDeriver fills every zero field of cfg from DefaultConfig.
func NewDeriver(cfg Config) *Deriver {
	def := DefaultConfig()

	if cfg.ClockLayout == "" {
		cfg.ClockLayout = def.ClockLayout
	}
	if cfg.HoursSeparator == "" {
		cfg.HoursSeparator = def.HoursSeparator
	}
	if cfg.CuisineSeparator == "" {
		cfg.CuisineSeparator = def.CuisineSeparator
	}
	if cfg.OpenStatus == "" {
		cfg.OpenStatus = def.OpenStatus
	}
	if cfg.PlaceholderHost == "" {
		cfg.PlaceholderHost = def.PlaceholderHost
	}
	if cfg.PlaceholderWidth <= 0 {
		cfg.PlaceholderWidth = def.PlaceholderWidth
	}
	if cfg.PlaceholderHeight <= 0 {
		cfg.PlaceholderHeight = def.PlaceholderHeight
	}
	if cfg.PlaceholderText == "" {
		cfg.PlaceholderText = def.PlaceholderText
	}
	if len(cfg.Palette) == 0 {
		cfg.Palette = def.Palette
	}
	cfg.Palette = append([]string(nil), cfg.Palette...)

	return &Deriver{cfg: cfg}
}

func (d *Deriver) OpenStatus() string {
	return d.cfg.OpenStatus
}

func (d *Deriver) Derive(a branch.Aggregate) Branch {
	averageRating, reviewCount := d.aggregateRating(a.Reviews)

	return Branch{
		BranchID:            a.BranchID,
		RestaurantID:        a.RestaurantID,
		City:                a.City,
		Area:                a.Area,
		RestaurantName:      a.Restaurant.Name,
		Description:         copyString(a.Restaurant.Description),
		PriceRange:          copyString(a.Restaurant.PriceRange),
		AverageRating:       averageRating,
		ReviewCount:         reviewCount,
		CuisineLabel:        strings.Join(a.Cuisines, d.cfg.CuisineSeparator),
		OpeningHoursLabel:   d.openingHours(a.Restaurant.OpeningTime, a.Restaurant.ClosingTime),
		IsOpen:              a.Restaurant.Status != nil && *a.Restaurant.Status == d.cfg.OpenStatus,
		PlaceholderImageURL: d.PlaceholderImageURL(a.Restaurant.Name),
	}
}

func (d *Deriver) DeriveAll(aggregates []branch.Aggregate) []Branch {
	out := make([]Branch, 0, len(aggregates))
	for _, a := range aggregates {
		out = append(out, d.Derive(a))
	}
	return out
}

// aggregateRating rounds half away from zero, which is half-up for the
// positive ratings we store.
func (d *Deriver) aggregateRating(ratings []int) (*Rating, int) {
	if len(ratings) == 0 {
		return nil, 0
	}

	sum := 0
	for _, r := range ratings {
		sum += r
	}

	avg := Rating(math.Round(float64(sum)*10/float64(len(ratings))) / 10)

	return &avg, len(ratings)
}

// openingHours formats the wall clock stored in each value. No timezone
// conversion happens here.
func (d *Deriver) openingHours(opening, closing *time.Time) *string {
	if opening == nil || closing == nil {
		return nil
	}

	label := opening.Format(d.cfg.ClockLayout) + d.cfg.HoursSeparator + closing.Format(d.cfg.ClockLayout)

	return &label
}

// PlaceholderImageURL depends on name only. The palette slot is the name
// length in UTF-16 code units.
func (d *Deriver) PlaceholderImageURL(name string) string {
	length := len(utf16.Encode([]rune(name)))
	color := d.cfg.Palette[length%len(d.cfg.Palette)]

	return fmt.Sprintf(
		"https://%s/%dx%d/%s/%s?text=%s",
		d.cfg.PlaceholderHost,
		d.cfg.PlaceholderWidth,
		d.cfg.PlaceholderHeight,
		color,
		d.cfg.PlaceholderText,
		escapeComponent(name),
	)
}

func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
