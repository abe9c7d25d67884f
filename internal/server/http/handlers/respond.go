package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"userauth-server/internal/logging"
)

// respondValidationError shapes a binding failure into a 400 with per-field
// detail. Validation failures use 400; 409 is reserved for duplicate email.
func respondValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Validation failed",
		"details": validationDetails(err),
	})
}

// respondInternal is the fallback for unexpected failures: the cause is
// logged, the client sees a fixed message.
func respondInternal(c *gin.Context, log logging.Logger, err error) {
	log.Error(c.Request.Context(), "request failed", "path", c.Request.URL.Path, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func validationDetails(err error) map[string]string {
	details := map[string]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		details["body"] = "must be valid JSON"
		return details
	}

	for _, fe := range verrs {
		details[strings.ToLower(fe.Field())] = validationMessage(fe)
	}
	return details
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return "is invalid"
	}
}
