package viewmodel

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/foodfinds-backend/internal/branch"
)

func ptr[T any](v T) *T {
	return &v
}

func clock(hour, minute int) *time.Time {
	return ptr(time.Date(2024, time.January, 1, hour, minute, 0, 0, time.UTC))
}

func sampleAggregate() branch.Aggregate {
	return branch.Aggregate{
		BranchID:     7,
		RestaurantID: 3,
		City:         "Lahore",
		Area:         "Gulberg",
		Restaurant: branch.Restaurant{
			Name:        "Pasta Place",
			Description: ptr("Fresh pasta every day"),
			PriceRange:  ptr("$$"),
			OpeningTime: clock(9, 0),
			ClosingTime: clock(22, 0),
			Status:      ptr("open"),
		},
		Cuisines: []string{"Italian", "Pizza"},
		Reviews:  []int{4, 5},
	}
}

func TestDerive(t *testing.T) {
	d := NewDeriver(DefaultConfig())

	vm := d.Derive(sampleAggregate())

	assert.Equal(t, 7, vm.BranchID)
	assert.Equal(t, 3, vm.RestaurantID)
	assert.Equal(t, "Lahore", vm.City)
	assert.Equal(t, "Gulberg", vm.Area)
	assert.Equal(t, "Pasta Place", vm.RestaurantName)
	assert.Equal(t, ptr("Fresh pasta every day"), vm.Description)
	assert.Equal(t, ptr("$$"), vm.PriceRange)
	require.NotNil(t, vm.AverageRating)
	assert.Equal(t, Rating(4.5), *vm.AverageRating)
	assert.Equal(t, 2, vm.ReviewCount)
	assert.Equal(t, "Italian, Pizza", vm.CuisineLabel)
	assert.Equal(t, ptr("9:00 AM - 10:00 PM"), vm.OpeningHoursLabel)
	assert.True(t, vm.IsOpen)
	assert.Equal(t, "https://placehold.co/600x400/3b82f6/white?text=Pasta%20Place", vm.PlaceholderImageURL)
}

func TestDerive_Rating(t *testing.T) {
	tests := []struct {
		name          string
		reviews       []int
		expected      *Rating
		expectedCount int
	}{
		{name: "no reviews", reviews: nil, expected: nil, expectedCount: 0},
		{name: "empty reviews", reviews: []int{}, expected: nil, expectedCount: 0},
		{name: "single review", reviews: []int{3}, expected: ptr(Rating(3)), expectedCount: 1},
		{name: "half", reviews: []int{4, 5}, expected: ptr(Rating(4.5)), expectedCount: 2},
		{name: "rounds to one decimal", reviews: []int{1, 2, 2}, expected: ptr(Rating(1.7)), expectedCount: 3},
		{name: "tie rounds up", reviews: []int{4, 4, 5, 4}, expected: ptr(Rating(4.3)), expectedCount: 4},
		{name: "all fives", reviews: []int{5, 5, 5}, expected: ptr(Rating(5)), expectedCount: 3},
	}

	d := NewDeriver(DefaultConfig())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := sampleAggregate()
			a.Reviews = tt.reviews

			vm := d.Derive(a)

			assert.Equal(t, tt.expected, vm.AverageRating)
			assert.Equal(t, tt.expectedCount, vm.ReviewCount)
		})
	}
}

func TestDerive_CuisineLabel(t *testing.T) {
	tests := []struct {
		name     string
		cuisines []string
		expected string
	}{
		{name: "nil", cuisines: nil, expected: ""},
		{name: "empty", cuisines: []string{}, expected: ""},
		{name: "single", cuisines: []string{"Thai"}, expected: "Thai"},
		{name: "keeps order", cuisines: []string{"Italian", "Pizza"}, expected: "Italian, Pizza"},
		{name: "keeps duplicates", cuisines: []string{"BBQ", "BBQ"}, expected: "BBQ, BBQ"},
	}

	d := NewDeriver(DefaultConfig())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := sampleAggregate()
			a.Cuisines = tt.cuisines

			assert.Equal(t, tt.expected, d.Derive(a).CuisineLabel)
		})
	}
}

func TestDerive_OpeningHours(t *testing.T) {
	tests := []struct {
		name     string
		opening  *time.Time
		closing  *time.Time
		expected *string
	}{
		{name: "both present", opening: clock(9, 0), closing: clock(22, 0), expected: ptr("9:00 AM - 10:00 PM")},
		{name: "noon and midnight", opening: clock(12, 30), closing: clock(0, 15), expected: ptr("12:30 PM - 12:15 AM")},
		{name: "no opening time", opening: nil, closing: clock(22, 0), expected: nil},
		{name: "no closing time", opening: clock(9, 0), closing: nil, expected: nil},
		{name: "neither", opening: nil, closing: nil, expected: nil},
		{
			name:     "wall clock kept as stored",
			opening:  ptr(time.Date(2024, time.January, 1, 9, 5, 0, 0, time.FixedZone("PKT", 5*60*60))),
			closing:  ptr(time.Date(2024, time.January, 1, 23, 45, 0, 0, time.FixedZone("PKT", 5*60*60))),
			expected: ptr("9:05 AM - 11:45 PM"),
		},
	}

	d := NewDeriver(DefaultConfig())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := sampleAggregate()
			a.Restaurant.OpeningTime = tt.opening
			a.Restaurant.ClosingTime = tt.closing

			assert.Equal(t, tt.expected, d.Derive(a).OpeningHoursLabel)
		})
	}
}

func TestDerive_IsOpen(t *testing.T) {
	tests := []struct {
		name     string
		status   *string
		expected bool
	}{
		{name: "open", status: ptr("open"), expected: true},
		{name: "closed", status: ptr("closed"), expected: false},
		{name: "missing", status: nil, expected: false},
		{name: "wrong case", status: ptr("Open"), expected: false},
		{name: "upper case", status: ptr("OPEN"), expected: false},
		{name: "padded", status: ptr(" open"), expected: false},
	}

	d := NewDeriver(DefaultConfig())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := sampleAggregate()
			a.Restaurant.Status = tt.status

			assert.Equal(t, tt.expected, d.Derive(a).IsOpen)
		})
	}
}

func TestPlaceholderImageURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty name", input: "", expected: "https://placehold.co/600x400/f97316/white?text="},
		{name: "four letters", input: "Thai", expected: "https://placehold.co/600x400/6366f1/white?text=Thai"},
		{name: "six letters wraps", input: "Burger", expected: "https://placehold.co/600x400/f97316/white?text=Burger"},
		{name: "escapes reserved characters", input: "Fish & Chips", expected: "https://placehold.co/600x400/f97316/white?text=Fish%20%26%20Chips"},
		{name: "counts characters not bytes", input: "Café", expected: "https://placehold.co/600x400/6366f1/white?text=Caf%C3%A9"},
		{name: "surrogate pairs count twice", input: "🍕", expected: "https://placehold.co/600x400/ec4899/white?text=%F0%9F%8D%95"},
	}

	d := NewDeriver(DefaultConfig())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, d.PlaceholderImageURL(tt.input))
		})
	}
}

func TestPlaceholderImageURL_DependsOnNameOnly(t *testing.T) {
	d := NewDeriver(DefaultConfig())

	a := sampleAggregate()
	b := sampleAggregate()
	b.BranchID = 99
	b.RestaurantID = 42
	b.City = "Karachi"
	b.Restaurant.OpeningTime = clock(6, 0)
	b.Restaurant.Status = nil

	assert.Equal(t, d.Derive(a).PlaceholderImageURL, d.Derive(b).PlaceholderImageURL)

	b.Restaurant.Name = "Pasta"
	assert.NotEqual(t, d.Derive(a).PlaceholderImageURL, d.Derive(b).PlaceholderImageURL)
}

func TestDerive_DoesNotMutateInput(t *testing.T) {
	d := NewDeriver(DefaultConfig())

	a := sampleAggregate()
	before := sampleAggregate()

	vm := d.Derive(a)
	*vm.Description = "changed"

	assert.Equal(t, before, a)
}

func TestDerive_Idempotent(t *testing.T) {
	d := NewDeriver(DefaultConfig())
	a := sampleAggregate()

	assert.Equal(t, d.Derive(a), d.Derive(a))
}

func TestDerive_Concurrent(t *testing.T) {
	d := NewDeriver(DefaultConfig())
	a := sampleAggregate()
	expected := d.Derive(a)

	var wg sync.WaitGroup
	results := make([]Branch, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = d.Derive(a)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, expected, r)
	}
}

func TestDeriveAll(t *testing.T) {
	d := NewDeriver(DefaultConfig())

	first := sampleAggregate()
	second := sampleAggregate()
	second.BranchID = 8
	second.Reviews = nil

	out := d.DeriveAll([]branch.Aggregate{first, second})

	require.Len(t, out, 2)
	assert.Equal(t, 7, out[0].BranchID)
	assert.Equal(t, 8, out[1].BranchID)
	assert.Nil(t, out[1].AverageRating)

	assert.Empty(t, d.DeriveAll(nil))
}

func TestNewDeriver_Config(t *testing.T) {
	d := NewDeriver(Config{
		ClockLayout:      "15:04",
		HoursSeparator:   "–",
		CuisineSeparator: " / ",
		OpenStatus:       "OPEN",
		PlaceholderHost:  "img.example.com",
		PlaceholderWidth: 300,
		Palette:          []string{"000000"},
	})

	a := sampleAggregate()
	a.Restaurant.Status = ptr("OPEN")

	vm := d.Derive(a)

	assert.Equal(t, ptr("09:00–22:00"), vm.OpeningHoursLabel)
	assert.Equal(t, "Italian / Pizza", vm.CuisineLabel)
	assert.True(t, vm.IsOpen)
	assert.Equal(t, "https://img.example.com/300x400/000000/white?text=Pasta%20Place", vm.PlaceholderImageURL)
}

func TestBranch_JSON(t *testing.T) {
	d := NewDeriver(DefaultConfig())

	a := sampleAggregate()
	a.Reviews = []int{4, 4}

	body, err := json.Marshal(d.Derive(a))
	require.NoError(t, err)
	assert.Contains(t, string(body), `"averageRating":4.0`)
	assert.Contains(t, string(body), `"reviewCount":2`)

	a.Reviews = nil
	a.Restaurant.OpeningTime = nil

	body, err = json.Marshal(d.Derive(a))
	require.NoError(t, err)
	assert.NotContains(t, string(body), "averageRating")
	assert.NotContains(t, string(body), "openingHoursLabel")
	assert.Contains(t, string(body), `"reviewCount":0`)
	assert.Contains(t, string(body), `"cuisineLabel":"Italian, Pizza"`)
}
