package models

type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// ProductFilter - optional criteria of a product query, nil means no constraint.
type ProductFilter struct {
	Category *string
	MinPrice *float64
	MaxPrice *float64
	Name     *string
}
