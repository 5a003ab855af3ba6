package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demo-api/internal/shared/apperror"
	"demo-api/internal/shared/query"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/things", nil)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSuccess(t *testing.T) {
	c, w := newContext()

	Success(c, http.StatusCreated, "Thing created successfully", map[string]string{"id": "1"})

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Thing created successfully", body["message"])
	assert.Equal(t, map[string]interface{}{"id": "1"}, body["data"])
	assert.NotContains(t, body, "error")
	assert.NotContains(t, body, "pagination")
}

func TestSuccessWithPagination_EmptySliceStaysInBody(t *testing.T) {
	c, w := newContext()

	SuccessWithPagination(c, "ok", []string{}, query.Meta{Page: 4, Limit: 10, Total: 25, TotalPages: 3})

	body := decode(t, w)
	assert.Equal(t, []interface{}{}, body["data"])
	assert.Equal(t, map[string]interface{}{
		"page": 4.0, "limit": 10.0, "total": 25.0, "totalPages": 3.0,
	}, body["pagination"])
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"validation", apperror.Validation(map[string]string{"name": "name is required"}), 400, "Validation error: name: name is required"},
		{"malformed body", apperror.BadRequest("Invalid JSON in request body"), 400, "Invalid JSON in request body"},
		{"not found", fmt.Errorf("get: %w", apperror.NotFound("User not found")), 404, "User not found"},
		{"conflict", apperror.Conflict("User with this email already exists"), 409, "User with this email already exists"},
		{"internal", apperror.Internal(errors.New("secret detail")), 500, apperror.InternalMessage},
		{"plain error", errors.New("secret detail"), 500, apperror.InternalMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext()

			HandleError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decode(t, w)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantMessage, body["error"])
			assert.NotContains(t, w.Body.String(), "secret detail")
		})
	}
}

func TestHandleError_ValidationDetails(t *testing.T) {
	c, w := newContext()

	HandleError(c, apperror.Validation(map[string]string{"email": "invalid email format"}))

	body := decode(t, w)
	assert.Equal(t, map[string]interface{}{"email": "invalid email format"}, body["details"])
}
