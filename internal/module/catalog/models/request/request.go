package request

type UpsertPackage struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"required,gte=0"`
	Duration    string   `json:"duration"`
	CoverImage  string   `json:"cover_image" validate:"omitempty,uri"`
	Features    []string `json:"features"`
	Category    string   `json:"category" validate:"required"`
	PackageType string   `json:"package_type"`
	Active      bool     `json:"active"`
}
