package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"demo-api/internal/domains/user"
	"demo-api/internal/shared/query"
	"demo-api/internal/shared/response"
	"demo-api/internal/shared/utils"
)

// UserHandler handles HTTP requests for the user resource.
// It is stateless; it only holds dependencies.
type UserHandler struct {
	service user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{
		service: svc,
	}
}

// List handles GET /users?page=&limit=&q=
func (h *UserHandler) List(c *gin.Context) {
	q, err := query.ParseList(c.Request.URL.Query())
	if err != nil {
		response.HandleError(c, err)
		return
	}

	users, meta, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.SuccessWithPagination(c, "Users retrieved successfully", users, meta)
}

// Create handles POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req user.CreateUserRequest
	if err := utils.BindJSON(c, &req); err != nil {
		response.HandleError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	c.Header("Location", "/users/"+created.ID)
	response.Success(c, http.StatusCreated, "User created successfully", created)
}

// GetByID handles GET /users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	u, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "User retrieved successfully", u)
}

// Update handles PUT /users/:id
func (h *UserHandler) Update(c *gin.Context) {
	var req user.UpdateUserRequest
	if err := utils.BindJSON(c, &req); err != nil {
		response.HandleError(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "User updated successfully", updated)
}

// Delete handles DELETE /users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "User deleted successfully", nil)
}
