package product

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	MaxNameLength = 100
)

// positive rejects prices that are zero or negative. nil passes so it can be
// combined with NotNil or used on optional fields.
var positive = validation.By(func(value interface{}) error {
	value, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	if v, ok := value.(float64); ok && v <= 0 {
		return validation.NewError("validation_price_positive", "Price must be positive")
	}
	return nil
})

// CreateProductRequest - POST /products
type CreateProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category"`
	// InStock defaults to true.
	InStock *bool `json:"inStock,omitempty"`
}

func (r *CreateProductRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.Category = strings.TrimSpace(r.Category)
}

func (r CreateProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("Name is required"),
			validation.RuneLength(1, MaxNameLength).Error("Name too long"),
		),
		validation.Field(&r.Description, validation.Required.Error("Description is required")),
		validation.Field(&r.Price, validation.NotNil.Error("Price is required"), positive),
		validation.Field(&r.Category, validation.Required.Error("Category is required")),
	)
}

func (r CreateProductRequest) ToEntity() Product {
	p := Product{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		InStock:     true,
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.InStock != nil {
		p.InStock = *r.InStock
	}
	return p
}

// UpdateProductRequest - PUT /products/:id
type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Category    *string  `json:"category,omitempty"`
	InStock     *bool    `json:"inStock,omitempty"`
}

func (r *UpdateProductRequest) Normalize() {
	r.Name = trimPtr(r.Name)
	r.Description = trimPtr(r.Description)
	r.Category = trimPtr(r.Category)
}

func (r UpdateProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty.Error("Name is required"),
			validation.RuneLength(1, MaxNameLength).Error("Name too long"),
		),
		validation.Field(&r.Description, validation.NilOrNotEmpty.Error("Description is required")),
		validation.Field(&r.Price, positive),
		validation.Field(&r.Category, validation.NilOrNotEmpty.Error("Category is required")),
	)
}

func (r UpdateProductRequest) ApplyTo(p *Product) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.Category != nil {
		p.Category = *r.Category
	}
	if r.InStock != nil {
		p.InStock = *r.InStock
	}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
