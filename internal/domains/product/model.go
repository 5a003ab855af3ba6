package product

import "demo-api/internal/store"

// Product is the catalogue entity.
type Product struct {
	store.Record `yaml:",inline"`

	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Price       float64 `json:"price" yaml:"price"`
	Category    string  `json:"category" yaml:"category"`
	InStock     bool    `json:"inStock" yaml:"inStock"`
}
