package domain

type Product struct {
	ID          int64    `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Price       float64  `json:"price" yaml:"price"`
	Category    string   `json:"category" yaml:"category"`
	Description string   `json:"description" yaml:"description"`
	Image       string   `json:"image" yaml:"image"`
	Stock       int      `json:"stock" yaml:"stock"`
	Rating      float64  `json:"rating" yaml:"rating"`
	Tags        []string `json:"tags" yaml:"tags"`
}

// Filters narrows a product search. Empty Category and nil bounds mean no constraint.
type Filters struct {
	Category string   `json:"category,omitempty"`
	MinPrice *float64 `json:"min_price,omitempty"`
	MaxPrice *float64 `json:"max_price,omitempty"`
}

// IsZero reports whether no filter is set.
func (f Filters) IsZero() bool {
	return f.Category == "" && f.MinPrice == nil && f.MaxPrice == nil
}
