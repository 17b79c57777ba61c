package location

type City struct {
	Name        string `json:"name"`
	BranchCount int    `json:"branchCount"`
}

type Area struct {
	Name        string `json:"name"`
	BranchCount int    `json:"branchCount"`
}
