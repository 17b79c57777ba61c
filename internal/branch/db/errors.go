package branchdb

import "errors"

var (
	ErrBranchNotFound = errors.New("branch not found")
)
