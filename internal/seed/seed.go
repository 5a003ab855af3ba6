// Package seed fills the repositories with the initial demo records, either
// the built-in set or one loaded from a YAML file.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"demo-api/internal/domains/post"
	"demo-api/internal/domains/product"
	"demo-api/internal/domains/user"
	"demo-api/internal/store"
)

var (
	ErrFileNotFound = errors.New("seed file not found")
	ErrInvalidYAML  = errors.New("invalid seed YAML")
)

// Data is the content of a seed file.
type Data struct {
	Users    []user.User       `yaml:"users"`
	Posts    []post.Post       `yaml:"posts"`
	Products []product.Product `yaml:"products"`
}

// Counts reports how many records of each kind were inserted.
type Counts struct {
	Users    int
	Posts    int
	Products int
}

// Default returns the built-in demo records.
func Default() Data {
	return Data{
		Users: []user.User{
			{Record: store.Record{ID: "1"}, Name: "John Doe", Email: "john@example.com"},
			{Record: store.Record{ID: "2"}, Name: "Jane Smith", Email: "jane@example.com"},
		},
		Posts: []post.Post{
			{
				Record:    store.Record{ID: "1"},
				Title:     "Getting Started with Next.js",
				Content:   "Next.js is a powerful React framework...",
				AuthorID:  "1",
				Published: true,
			},
			{
				Record:   store.Record{ID: "2"},
				Title:    "API Routes in Next.js",
				Content:  "Learn how to create API routes...",
				AuthorID: "2",
			},
		},
		Products: []product.Product{
			{
				Record:      store.Record{ID: "1"},
				Name:        "Laptop",
				Description: "High-performance laptop for developers",
				Price:       1299.99,
				Category:    "Electronics",
				InStock:     true,
			},
			{
				Record:      store.Record{ID: "2"},
				Name:        "Coffee Mug",
				Description: "Perfect mug for your morning coffee",
				Price:       19.99,
				Category:    "Home",
				InStock:     true,
			},
		},
	}
}

// LoadFile reads seed data from a YAML file.
func LoadFile(path string) (Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Data{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return Data{}, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes seed data from YAML.
func Parse(raw []byte) (Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return Data{}, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return data, nil
}

// Apply validates data, then inserts it into the repositories keeping the
// given ids. Records without an id get a generated one.
func Apply(
	ctx context.Context,
	data Data,
	users user.Repository,
	posts post.Repository,
	products product.Repository,
) (Counts, error) {
	var counts Counts

	if err := Validate(ctx, data, users); err != nil {
		return counts, err
	}

	for _, u := range data.Users {
		if _, err := users.Insert(ctx, u); err != nil {
			return counts, err
		}
		counts.Users++
	}
	for _, p := range data.Posts {
		if _, err := posts.Insert(ctx, p); err != nil {
			return counts, err
		}
		counts.Posts++
	}
	for _, p := range data.Products {
		if _, err := products.Insert(ctx, p); err != nil {
			return counts, err
		}
		counts.Products++
	}

	return counts, nil
}
