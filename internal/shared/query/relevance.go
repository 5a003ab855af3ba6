package query

import "strings"

// Relevance weights.
const (
	ScorePhrase = 10
	ScoreWord   = 5
	ScorePrefix = 3
)

// Relevance scores how well fields match query. Per field it adds ScorePhrase
// when the whole query is contained, ScoreWord for each whitespace-separated
// query word contained, and ScorePrefix when the field starts with the query.
// Matching is case-insensitive. A blank query scores 0.
func Relevance(query string, fields ...string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0
	}
	words := strings.Fields(q)

	score := 0
	for _, field := range fields {
		f := strings.ToLower(field)
		if strings.Contains(f, q) {
			score += ScorePhrase
		}
		for _, w := range words {
			if strings.Contains(f, w) {
				score += ScoreWord
			}
		}
		if strings.HasPrefix(f, q) {
			score += ScorePrefix
		}
	}
	return score
}
