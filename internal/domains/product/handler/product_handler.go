package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"demo-api/internal/domains/product"
	"demo-api/internal/shared/query"
	"demo-api/internal/shared/response"
	"demo-api/internal/shared/utils"
)

// ProductHandler handles HTTP requests for the product resource.
type ProductHandler struct {
	service product.Service
}

func NewProductHandler(svc product.Service) *ProductHandler {
	return &ProductHandler{
		service: svc,
	}
}

// List handles GET /products?page=&limit=&q=&category=
func (h *ProductHandler) List(c *gin.Context) {
	q, err := query.ParseList(c.Request.URL.Query())
	if err != nil {
		response.HandleError(c, err)
		return
	}

	products, meta, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.SuccessWithPagination(c, "Products retrieved successfully", products, meta)
}

// Create handles POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	var req product.CreateProductRequest
	if err := utils.BindJSON(c, &req); err != nil {
		response.HandleError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	c.Header("Location", "/products/"+created.ID)
	response.Success(c, http.StatusCreated, "Product created successfully", created)
}

// GetByID handles GET /products/:id
func (h *ProductHandler) GetByID(c *gin.Context) {
	p, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Product retrieved successfully", p)
}

// Update handles PUT /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	var req product.UpdateProductRequest
	if err := utils.BindJSON(c, &req); err != nil {
		response.HandleError(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Product updated successfully", updated)
}

// Delete handles DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Product deleted successfully", nil)
}
