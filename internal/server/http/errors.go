package http

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/gin-gonic/gin"
)

// statusOf maps service errors onto HTTP statuses and client-facing text.
func statusOf(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, common.ErrConflict):
		return http.StatusConflict, "Email already registered"
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, common.ErrInvalidCredentials):
		return http.StatusBadRequest, "Invalid credentials"
	case errors.Is(err, common.ErrUnauthenticated), errors.Is(err, common.ErrInvalidToken):
		return http.StatusUnauthorized, "Unauthenticated"
	case errors.Is(err, common.ErrExpired):
		return http.StatusGone, "Expired"
	case errors.Is(err, common.ErrRateLimited):
		return http.StatusTooManyRequests, "Too many attempts, try again later"
	default:
		return http.StatusInternalServerError, "Internal error"
	}
}

func writeError(c *gin.Context, err error) {
	_ = c.Error(err)
	code, msg := statusOf(err)
	c.AbortWithStatusJSON(code, gin.H{"message": msg})
}
