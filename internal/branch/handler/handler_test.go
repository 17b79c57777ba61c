package branchhandler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/xw1nchester/foodfinds-backend/internal/apperror"
	"github.com/xw1nchester/foodfinds-backend/internal/branch"
	mockbranchhandler "github.com/xw1nchester/foodfinds-backend/internal/branch/handler/mocks"
	"github.com/xw1nchester/foodfinds-backend/internal/branch/viewmodel"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func rating(v float64) *viewmodel.Rating {
	r := viewmodel.Rating(v)
	return &r
}

func newRouter(s Service) chi.Router {
	router := chi.NewRouter()
	New(s, zap.NewNop()).Register(router)
	return router
}

func TestHandler_getBranchesHandler(t *testing.T) {
	type mockBehavior func(s *mockbranchhandler.MockService)

	page := &viewmodel.Page{
		Branches: []viewmodel.Branch{
			{
				BranchID:            1,
				RestaurantID:        2,
				City:                "Lahore",
				Area:                "Gulberg",
				RestaurantName:      "Pasta Place",
				AverageRating:       rating(4.0),
				ReviewCount:         2,
				CuisineLabel:        "Italian, Pizza",
				IsOpen:              true,
				PlaceholderImageURL: "https://placehold.co/600x400/3b82f6/white?text=Pasta%20Place",
			},
		},
		Total: 1,
	}

	testTable := []struct {
		name               string
		query              string
		mockBehavior       mockBehavior
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name:  "OK",
			query: "",
			mockBehavior: func(s *mockbranchhandler.MockService) {
				s.EXPECT().GetBranches(gomock.Any(), branch.Filter{Limit: 20}).Return(page, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedBody: `{"branches":[{"branchId":1,"restaurantId":2,"city":"Lahore","area":"Gulberg",` +
				`"restaurantName":"Pasta Place","averageRating":4.0,"reviewCount":2,"cuisineLabel":"Italian, Pizza",` +
				`"isOpen":true,"placeholderImageUrl":"https://placehold.co/600x400/3b82f6/white?text=Pasta%20Place"}],` +
				`"total":1,"limit":20,"offset":0}`,
		},
		{
			name:  "Filters",
			query: "?city=Lahore&area=Gulberg&cuisine=Italian,Pizza&cuisine=Italian&open=true&limit=5&offset=10",
			mockBehavior: func(s *mockbranchhandler.MockService) {
				s.EXPECT().GetBranches(gomock.Any(), branch.Filter{
					City:     "Lahore",
					Area:     "Gulberg",
					Cuisines: []string{"Italian", "Pizza"},
					OpenOnly: true,
					Limit:    5,
					Offset:   10,
				}).Return(&viewmodel.Page{Branches: []viewmodel.Branch{}}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedBody:       `{"branches":[],"total":0,"limit":5,"offset":10}`,
		},
		{
			name:               "Invalid open flag",
			query:              "?open=maybe",
			mockBehavior:       func(s *mockbranchhandler.MockService) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       `{"message":"open should be a boolean"}`,
		},
		{
			name:               "Invalid limit",
			query:              "?limit=ten",
			mockBehavior:       func(s *mockbranchhandler.MockService) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       `{"message":"limit should be an integer"}`,
		},
		{
			name:               "Limit out of range",
			query:              "?limit=1000",
			mockBehavior:       func(s *mockbranchhandler.MockService) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       `{"message":"field Limit must be at most 100"}`,
		},
		{
			name:               "Negative offset",
			query:              "?offset=-1",
			mockBehavior:       func(s *mockbranchhandler.MockService) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       `{"message":"field Offset must be at least 0"}`,
		},
		{
			name:  "Service unexpected failure",
			query: "",
			mockBehavior: func(s *mockbranchhandler.MockService) {
				s.EXPECT().GetBranches(gomock.Any(), gomock.Any()).Return(nil, errors.New("unexpected error"))
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedBody:       `{"message":"internal error"}`,
		},
	}

	for _, tc := range testTable {
		t.Run(tc.name, func(t *testing.T) {
			c := gomock.NewController(t)
			defer c.Finish()

			service := mockbranchhandler.NewMockService(c)
			tc.mockBehavior(service)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/branches"+tc.query, nil)

			newRouter(service).ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatusCode, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestHandler_getBranchHandler(t *testing.T) {
	type mockBehavior func(s *mockbranchhandler.MockService, ctx context.Context)

	testTable := []struct {
		name               string
		path               string
		mockBehavior       mockBehavior
		expectedStatusCode int
	}{
		{
			name: "OK",
			path: "/restaurants/2/branches/1",
			mockBehavior: func(s *mockbranchhandler.MockService, ctx context.Context) {
				s.EXPECT().GetBranch(gomock.Any(), 2, 1).Return(&viewmodel.Branch{BranchID: 1, RestaurantID: 2}, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "Invalid restaurant id",
			path:               "/restaurants/abc/branches/1",
			mockBehavior:       func(s *mockbranchhandler.MockService, ctx context.Context) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "Non-positive branch id",
			path:               "/restaurants/2/branches/0",
			mockBehavior:       func(s *mockbranchhandler.MockService, ctx context.Context) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name: "Not found",
			path: "/restaurants/2/branches/1",
			mockBehavior: func(s *mockbranchhandler.MockService, ctx context.Context) {
				s.EXPECT().GetBranch(gomock.Any(), 2, 1).Return(nil, apperror.ErrNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name: "Invalid aggregate",
			path: "/restaurants/2/branches/1",
			mockBehavior: func(s *mockbranchhandler.MockService, ctx context.Context) {
				s.EXPECT().GetBranch(gomock.Any(), 2, 1).Return(nil, viewmodel.ErrInvalidAggregate)
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testTable {
		t.Run(tc.name, func(t *testing.T) {
			c := gomock.NewController(t)
			defer c.Finish()

			service := mockbranchhandler.NewMockService(c)
			tc.mockBehavior(service, context.Background())

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)

			newRouter(service).ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatusCode, w.Code)
		})
	}
}
