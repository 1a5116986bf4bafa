package dto

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	res "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type bindTarget struct {
	Title      string `json:"title" binding:"required,min=5"`
	ModuleCode string `json:"module_code" binding:"required"`
}

func perform(handler gin.HandlerFunc, body string) *httptest.ResponseRecorder {
	r := gin.New()
	r.POST("/", handler)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestValidationErrorResponse(t *testing.T) {
	w := perform(func(c *gin.Context) {
		var req bindTarget
		if err := c.ShouldBindJSON(&req); err != nil {
			ValidationErrorResponse(c, err)
			return
		}
		SuccessResponse(c, req)
	}, `{"title":"abc"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body res.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, res.ParseError, body.Code)
	assert.Contains(t, body.Details, "title")
	assert.Contains(t, body.Details, "module_code")
	assert.Equal(t, body.Message, body.Error)
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"business", res.ErrNotFound("topic"), http.StatusNotFound, "topic not found"},
		{"wrapped business", errors.Join(res.ErrForbidden("nope")), http.StatusForbidden, "nope"},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(func(c *gin.Context) { HandleError(c, tt.err) }, `{}`)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantMsg)
			assert.NotContains(t, w.Body.String(), "disk on fire")
		})
	}
}

func TestToSnakeCase(t *testing.T) {
	assert.Equal(t, "module_code", toSnakeCase("ModuleCode"))
	assert.Equal(t, "recipient_id", toSnakeCase("RecipientID"))
	assert.Equal(t, "title", toSnakeCase("Title"))
}
