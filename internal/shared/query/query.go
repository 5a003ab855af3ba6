// Package query implements the list pipeline shared by every resource:
// query-string parsing, filtering, newest-first ordering and pagination,
// plus the relevance score used by global search.
package query

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"demo-api/internal/shared/apperror"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Pagination is a validated 1-indexed page request.
type Pagination struct {
	Page  int
	Limit int
}

// Meta describes the window returned by Paginate.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// ListQuery is the parsed form of the query string accepted by list endpoints.
type ListQuery struct {
	Pagination
	Q        string
	Category string
	// Published is nil when the parameter is absent.
	Published *bool
}

// ParsePagination reads page and limit. It never fails: absent, unparsable or
// non-positive values fall back to defaults and limit is clamped to MaxLimit.
func ParsePagination(values url.Values) Pagination {
	p := Pagination{
		Page:  positiveInt(values.Get("page"), DefaultPage),
		Limit: positiveInt(values.Get("limit"), DefaultLimit),
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// ParseList reads pagination plus the q, category and published filters.
// published must be "true" or "false" when present.
func ParseList(values url.Values) (ListQuery, error) {
	lq := ListQuery{
		Pagination: ParsePagination(values),
		Q:          strings.TrimSpace(values.Get("q")),
		Category:   strings.TrimSpace(values.Get("category")),
	}

	if raw, ok := values["published"]; ok {
		value := ""
		if len(raw) > 0 {
			value = strings.ToLower(strings.TrimSpace(raw[0]))
		}
		err := validation.Validate(value,
			validation.Required.Error("published must be true or false"),
			validation.In("true", "false").Error("published must be true or false"),
		)
		if err != nil {
			return ListQuery{}, apperror.Validation(map[string]string{"published": err.Error()})
		}
		published := value == "true"
		lq.Published = &published
	}

	return lq, nil
}

func positiveInt(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// Filter keeps the items accepted by keep. A nil keep keeps everything.
func Filter[T any](items []T, keep func(T) bool) []T {
	if keep == nil {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// SortNewest orders items by createdAt descending. Ties keep their input order.
func SortNewest[T any](items []T, createdAt func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]).After(createdAt(items[j]))
	})
}

// Paginate returns the requested window and its metadata. Pages past the end
// yield an empty, non-nil window.
func Paginate[T any](items []T, p Pagination) ([]T, Meta) {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}

	total := len(items)
	meta := Meta{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: (total + p.Limit - 1) / p.Limit,
	}

	start := (p.Page - 1) * p.Limit
	if start >= total {
		return make([]T, 0), meta
	}
	end := start + p.Limit
	if end > total {
		end = total
	}
	return items[start:end], meta
}

// List runs the fixed pipeline: filter, newest first, paginate.
func List[T any](items []T, keep func(T) bool, createdAt func(T) time.Time, p Pagination) ([]T, Meta) {
	filtered := Filter(items, keep)
	SortNewest(filtered, createdAt)
	return Paginate(filtered, p)
}

// ContainsFold reports whether substr is within s, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// AnyContainsFold reports whether any of fields contains substr, ignoring case.
func AnyContainsFold(substr string, fields ...string) bool {
	for _, f := range fields {
		if ContainsFold(f, substr) {
			return true
		}
	}
	return false
}
