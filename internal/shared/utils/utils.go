package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"demo-api/internal/shared/apperror"
)

// ErrInvalidJSON is returned for bodies that are not valid JSON for the target type.
var ErrInvalidJSON = apperror.BadRequest("Invalid JSON in request body")

// BindJSON decodes the request body into dest. Decoding failures become
// ErrInvalidJSON so they never reach validation.
func BindJSON(c *gin.Context, dest interface{}) error {
	if err := c.ShouldBindJSON(dest); err != nil {
		return ErrInvalidJSON
	}
	return nil
}

// Average returns the mean of values rounded to places, computed in decimal
// arithmetic so that summing prices does not drift. Empty input yields 0.
func Average(values []float64, places int32) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(decimal.NewFromFloat(v))
	}
	return sum.Div(decimal.NewFromInt(int64(len(values)))).Round(places).InexactFloat64()
}
