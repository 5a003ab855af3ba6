package stats

import "time"

// RecentWindow is how far back a record counts as recent.
const RecentWindow = 7 * 24 * time.Hour

type Stats struct {
	Users    UserStats    `json:"users"`
	Posts    PostStats    `json:"posts"`
	Products ProductStats `json:"products"`
	Overview Overview     `json:"overview"`
}

type UserStats struct {
	Total  int `json:"total"`
	Recent int `json:"recent"`
}

type PostStats struct {
	Total     int `json:"total"`
	Published int `json:"published"`
	Draft     int `json:"draft"`
	Recent    int `json:"recent"`
}

type ProductStats struct {
	Total      int            `json:"total"`
	InStock    int            `json:"inStock"`
	OutOfStock int            `json:"outOfStock"`
	Categories int            `json:"categories"`
	ByCategory map[string]int `json:"byCategory"`
	// AveragePrice is rounded to cents; 0 when there are no products.
	AveragePrice float64 `json:"averagePrice"`
}

type Overview struct {
	TotalEntities int `json:"totalEntities"`
	// LastUpdated is when these numbers were computed.
	LastUpdated time.Time `json:"lastUpdated"`
}
