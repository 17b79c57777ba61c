package tests

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/xw1nchester/foodfinds-backend/internal/seed"
	seeddb "github.com/xw1nchester/foodfinds-backend/internal/seed/db"
	pgtx "github.com/xw1nchester/foodfinds-backend/pkg/transactor/postgresql"
)

type branchCard struct {
	BranchID            int      `json:"branchId"`
	RestaurantID        int      `json:"restaurantId"`
	City                string   `json:"city"`
	Area                string   `json:"area"`
	RestaurantName      string   `json:"restaurantName"`
	AverageRating       *float64 `json:"averageRating"`
	ReviewCount         int      `json:"reviewCount"`
	CuisineLabel        string   `json:"cuisineLabel"`
	OpeningHoursLabel   *string  `json:"openingHoursLabel"`
	IsOpen              bool     `json:"isOpen"`
	PlaceholderImageURL string   `json:"placeholderImageUrl"`
}

type branchesBody struct {
	Branches []branchCard `json:"branches"`
	Total    int          `json:"total"`
}

func (s *APITestSuite) seedFixture() {
	f, err := os.Open("../fixtures/restaurants.json")
	s.Require().NoError(err)
	defer f.Close()

	fixture, err := seed.Decode(f)
	s.Require().NoError(err)

	seeder := seed.New(seeddb.New(s.dbClient, s.logger), pgtx.NewPgManager(s.dbClient), s.logger)

	stats, err := seeder.Seed(context.Background(), *fixture)
	s.Require().NoError(err)
	s.Equal(4, stats.Branches)
}

func (s *APITestSuite) getBranches(query string) *branchesBody {
	response, err := http.Get(fmt.Sprintf("%s/branches%s", s.baseUrl, query))
	s.Require().NoError(err)
	s.Require().Equal(http.StatusOK, response.StatusCode)

	body, err := decodeResponseBody[branchesBody](response)
	s.Require().NoError(err)

	return body
}

func (s *APITestSuite) TestBranches() {
	s.seedFixture()

	body := s.getBranches("")
	s.Require().Len(body.Branches, 4)
	s.Equal(4, body.Total)

	pasta := body.Branches[0]
	s.Equal("Pasta Place", pasta.RestaurantName)
	s.Equal("Italian, Pizza", pasta.CuisineLabel)
	s.Require().NotNil(pasta.AverageRating)
	s.Equal(4.5, *pasta.AverageRating)
	s.Equal(2, pasta.ReviewCount)
	s.Require().NotNil(pasta.OpeningHoursLabel)
	s.Equal("9:00 AM - 10:00 PM", *pasta.OpeningHoursLabel)
	s.True(pasta.IsOpen)
	s.Equal("https://placehold.co/600x400/3b82f6/white?text=Pasta%20Place", pasta.PlaceholderImageURL)

	clifton := body.Branches[1]
	s.Nil(clifton.AverageRating)
	s.Equal(0, clifton.ReviewCount)

	karahi := body.Branches[2]
	s.Require().NotNil(karahi.AverageRating)
	s.Equal(4.3, *karahi.AverageRating)
	s.Equal("12:00 PM - 11:30 PM", *karahi.OpeningHoursLabel)
	s.False(karahi.IsOpen)

	sushi := body.Branches[3]
	s.Nil(sushi.OpeningHoursLabel)
	s.Equal(3.0, *sushi.AverageRating)
}

func (s *APITestSuite) TestBranchesFilters() {
	s.seedFixture()

	lahore := s.getBranches("?city=Lahore")
	s.Equal(2, lahore.Total)

	open := s.getBranches("?open=true")
	s.Equal(3, open.Total)
	for _, b := range open.Branches {
		s.True(b.IsOpen)
	}

	italian := s.getBranches("?cuisine=Italian")
	s.Equal(2, italian.Total)

	paged := s.getBranches("?limit=1&offset=1")
	s.Require().Len(paged.Branches, 1)
	s.Equal(4, paged.Total)
	s.Equal(2, paged.Branches[0].BranchID)
}

func (s *APITestSuite) TestBranch() {
	s.seedFixture()

	response, err := http.Get(fmt.Sprintf("%s/restaurants/2/branches/3", s.baseUrl))
	s.Require().NoError(err)
	s.Require().Equal(http.StatusOK, response.StatusCode)

	body, err := decodeResponseBody[struct {
		Branch branchCard `json:"branch"`
	}](response)
	s.Require().NoError(err)
	s.Equal("Karahi House", body.Branch.RestaurantName)
	s.Equal("Pakistani, BBQ", body.Branch.CuisineLabel)

	response, err = http.Get(fmt.Sprintf("%s/restaurants/1/branches/3", s.baseUrl))
	s.Require().NoError(err)
	response.Body.Close()
	s.Equal(http.StatusNotFound, response.StatusCode)
}

func (s *APITestSuite) TestCities() {
	s.seedFixture()

	response, err := http.Get(fmt.Sprintf("%s/cities", s.baseUrl))
	s.Require().NoError(err)
	s.Require().Equal(http.StatusOK, response.StatusCode)

	body, err := decodeResponseBody[struct {
		Cities []struct {
			Name        string `json:"name"`
			BranchCount int    `json:"branchCount"`
		} `json:"cities"`
	}](response)
	s.Require().NoError(err)
	s.Require().Len(body.Cities, 3)
	s.Equal("Islamabad", body.Cities[0].Name)
	s.Equal("Lahore", body.Cities[2].Name)
	s.Equal(2, body.Cities[2].BranchCount)

	response, err = http.Get(fmt.Sprintf("%s/cities/Quetta/areas", s.baseUrl))
	s.Require().NoError(err)
	response.Body.Close()
	s.Equal(http.StatusNotFound, response.StatusCode)
}
