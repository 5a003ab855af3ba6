package product

import "demo-api/internal/shared/apperror"

var ErrProductNotFound = apperror.NotFound("Product not found")
