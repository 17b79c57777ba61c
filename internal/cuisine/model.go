package cuisine

type Cuisine struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	BranchCount int    `json:"branchCount"`
}
