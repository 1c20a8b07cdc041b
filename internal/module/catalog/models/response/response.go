package response

type Package struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Duration    string   `json:"duration"`
	CoverImage  string   `json:"cover_image"`
	Features    []string `json:"features"`
	Category    string   `json:"category"`
	PackageType string   `json:"package_type"`
}

// PackageList marks Fallback when the requested event type matched nothing
// and the full catalog was returned instead.
type PackageList struct {
	Packages []Package `json:"packages"`
	Fallback bool      `json:"fallback"`
}
