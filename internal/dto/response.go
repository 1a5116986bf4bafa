package dto

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/logger"
	res "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/pkg/response"
)

func SuccessResponse(c *gin.Context, data any) {
	c.JSON(http.StatusOK, res.SuccessResponse(data))
}

func CreatedResponse(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, res.SuccessResponse(data))
}

// ErrorResponse writes err with its mapped status. Server-side failures are
// logged with their cause; the client only sees the generic message.
func ErrorResponse(c *gin.Context, err *res.BusinessError) {
	status := err.HTTPStatus()
	if status >= http.StatusInternalServerError {
		logger.FromContext(c.Request.Context()).Error(c.Request.Context(), "request failed",
			zap.String("path", c.FullPath()),
			zap.Int("status", status),
			zap.Error(err),
		)
	}
	c.AbortWithStatusJSON(status, res.ErrorResponse(err))
}

// HandleError normalises any error into the taxonomy; unknown errors become 500
func HandleError(c *gin.Context, err error) {
	var be *res.BusinessError
	if errors.As(err, &be) {
		ErrorResponse(c, be)
		return
	}
	ErrorResponse(c, res.ErrInternal(err))
}

// ValidationErrorResponse turns binding errors into a 400 with per-field details
func ValidationErrorResponse(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		details := make(map[string]string, len(validationErrs))
		for _, fe := range validationErrs {
			details[getJSONFieldName(fe)] = fieldMessage(fe)
		}
		first := validationErrs[0]
		ErrorResponse(c, res.NewBusinessError(
			res.WithErrorCode(res.ParseError),
			res.WithErrorMessage(fieldMessage(first)),
			res.WithDetails(details),
		))
		return
	}

	ErrorResponse(c, res.NewBusinessError(
		res.WithErrorCode(res.ParseError),
		res.WithErrorMessage("invalid request body"),
	))
}

func fieldMessage(fe validator.FieldError) string {
	field := getJSONFieldName(fe)
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("field '%s' is required", field)
	case "max":
		return fmt.Sprintf("field '%s' must be at most %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("field '%s' must be at least %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("field '%s' must be >= %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("field '%s' must be <= %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("field '%s' must be one of: %s", field, fe.Param())
	case "email":
		return fmt.Sprintf("field '%s' must be a valid email", field)
	default:
		return fmt.Sprintf("field '%s' failed validation: %s", field, fe.Tag())
	}
}

// getJSONFieldName snake_cases the struct field name, which matches the json tags
func getJSONFieldName(fe validator.FieldError) string {
	field := fe.StructNamespace()
	if parts := strings.Split(field, "."); len(parts) > 1 {
		return toSnakeCase(parts[len(parts)-1])
	}
	return toSnakeCase(fe.Field())
}

func toSnakeCase(s string) string {
	var result strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if i > 0 && r >= 'A' && r <= 'Z' {
			prevLower := runes[i-1] >= 'a' && runes[i-1] <= 'z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if prevLower || nextLower {
				result.WriteRune('_')
			}
		}
		result.WriteRune(r)
	}
	return strings.ToLower(result.String())
}
