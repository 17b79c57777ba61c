package branchhandler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/xw1nchester/foodfinds-backend/internal/apperror"
	"github.com/xw1nchester/foodfinds-backend/internal/branch"
	"github.com/xw1nchester/foodfinds-backend/internal/branch/viewmodel"
	"github.com/xw1nchester/foodfinds-backend/pkg/utils"
)

const defaultLimit = 20

type BranchesRequest struct {
	City     string   `validate:"max=100"`
	Area     string   `validate:"max=100"`
	Cuisines []string `validate:"max=10,dive,max=64"`
	Limit    int      `validate:"gte=1,lte=100"`
	Offset   int      `validate:"gte=0"`
	Open     bool
}

// NewBranchesRequest reads the listing query. cuisine may be repeated or
// comma separated.
func NewBranchesRequest(r *http.Request) (*BranchesRequest, error) {
	q := r.URL.Query()

	req := &BranchesRequest{
		City:  strings.TrimSpace(q.Get("city")),
		Area:  strings.TrimSpace(q.Get("area")),
		Limit: defaultLimit,
	}

	var cuisines []string
	for _, v := range q["cuisine"] {
		cuisines = append(cuisines, strings.Split(v, ",")...)
	}
	req.Cuisines = utils.RemoveDuplicates(utils.CompactStrings(cuisines))

	if v := q.Get("open"); v != "" {
		open, err := strconv.ParseBool(v)
		if err != nil {
			return nil, apperror.NewAppError("open should be a boolean")
		}
		req.Open = open
	}

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return nil, apperror.NewAppError("limit should be an integer")
		}
		req.Limit = limit
	}

	if v := q.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			return nil, apperror.NewAppError("offset should be an integer")
		}
		req.Offset = offset
	}

	return req, nil
}

func (br *BranchesRequest) ToFilter() branch.Filter {
	var cuisines []string
	if len(br.Cuisines) > 0 {
		cuisines = br.Cuisines
	}

	return branch.Filter{
		City:     br.City,
		Area:     br.Area,
		Cuisines: cuisines,
		OpenOnly: br.Open,
		Limit:    br.Limit,
		Offset:   br.Offset,
	}
}

type BranchesResponse struct {
	Branches []viewmodel.Branch `json:"branches"`
	Total    int                `json:"total"`
	Limit    int                `json:"limit"`
	Offset   int                `json:"offset"`
}

type BranchResponse struct {
	Branch viewmodel.Branch `json:"branch"`
}
