package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"demo-api/internal/domains/post"
	"demo-api/internal/shared/query"
	"demo-api/internal/shared/response"
	"demo-api/internal/shared/utils"
)

// PostHandler handles HTTP requests for the post resource.
type PostHandler struct {
	service post.Service
}

func NewPostHandler(svc post.Service) *PostHandler {
	return &PostHandler{
		service: svc,
	}
}

// List handles GET /posts?page=&limit=&q=&published=
func (h *PostHandler) List(c *gin.Context) {
	q, err := query.ParseList(c.Request.URL.Query())
	if err != nil {
		response.HandleError(c, err)
		return
	}

	posts, meta, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.SuccessWithPagination(c, "Posts retrieved successfully", posts, meta)
}

// ListByAuthor handles GET /users/:id/posts
func (h *PostHandler) ListByAuthor(c *gin.Context) {
	posts, meta, err := h.service.ListByAuthor(
		c.Request.Context(),
		c.Param("id"),
		query.ParsePagination(c.Request.URL.Query()),
	)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.SuccessWithPagination(c, "User posts retrieved successfully", posts, meta)
}

// Create handles POST /posts
func (h *PostHandler) Create(c *gin.Context) {
	var req post.CreatePostRequest
	if err := utils.BindJSON(c, &req); err != nil {
		response.HandleError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	c.Header("Location", "/posts/"+created.ID)
	response.Success(c, http.StatusCreated, "Post created successfully", created)
}

// GetByID handles GET /posts/:id
func (h *PostHandler) GetByID(c *gin.Context) {
	p, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Post retrieved successfully", p)
}

// Update handles PUT /posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	var req post.UpdatePostRequest
	if err := utils.BindJSON(c, &req); err != nil {
		response.HandleError(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Post updated successfully", updated)
}

// Delete handles DELETE /posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Post deleted successfully", nil)
}
