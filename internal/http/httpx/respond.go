// Package httpx is the single place request bodies are validated and
// handler outcomes become HTTP responses. Handlers never write error JSON
// themselves; everything funnels through BindJSON and Error so every route
// speaks the same taxonomy.
package httpx

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/fam-OS/truenorth-sub002/domain"
)

// FieldError is one per-field validation issue.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// BindJSON deserializes and validates the request body. Malformed JSON and
// validation failures are answered here with a 400; the caller only proceeds
// on validated input.
func BindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			details := make([]FieldError, 0, len(verrs))
			for _, fe := range verrs {
				details = append(details, FieldError{
					Field:   strings.ToLower(fe.Field()),
					Message: validationMessage(fe),
				})
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": details})
			return false
		}

		// Syntax errors, type mismatches, and empty bodies all land here.
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed request body"})
		return false
	}
	return true
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}

// Error maps a handler outcome to its response. The mapping is the whole
// error contract: 404 for missing entities, 409 for constraint conflicts,
// 401/403 for auth failures, 500 with a redacted message for the rest.
func Error(c *gin.Context, err error) {
	var nf *domain.NotFoundError
	switch {
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, gin.H{"error": nf.Error()})
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, domain.ErrConflict), errors.Is(err, gorm.ErrDuplicatedKey):
		c.JSON(http.StatusConflict, gin.H{"error": "Resource already exists"})
	case errors.Is(err, domain.ErrUserAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrSessionExpired),
		errors.Is(err, domain.ErrTokenInvalid), errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenMalformed):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrUserInactive):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, domain.ErrOTPInvalid), errors.Is(err, domain.ErrOTPExpired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OTP code"})
	case errors.Is(err, domain.ErrOTPNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "OTP not found"})
	case errors.Is(err, domain.ErrOTPMaxAttempts):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Maximum attempts exceeded"})
	default:
		// Internal detail stays in the log, not the response.
		log.Printf("INTERNAL_ERROR: path=%s error=%v", c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// Created writes the 201 response for a create.
func Created(c *gin.Context, body any) {
	c.JSON(http.StatusCreated, body)
}

// OK writes the 200 response for reads, updates, and lists.
func OK(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// Deleted writes the 200 response for deletes.
func Deleted(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// IDParam parses a numeric path parameter. A non-numeric value reads as a
// missing resource, not a validation failure.
func IDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
		return 0, false
	}
	return uint(id), true
}
