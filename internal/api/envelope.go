package api

import (
	"errors"
	"net/http"

	"github.com/alexanderramin/trailmap/internal/repository"
	"github.com/alexanderramin/trailmap/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Envelope is the body of every API response.
type Envelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Status: statusSuccess, Data: data})
}

func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(statusFor(err), Envelope{Status: statusError, Message: err.Error()})
}

func respondBadRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, Envelope{Status: statusError, Message: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrExists), errors.Is(err, service.ErrAlreadyComplete):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidName):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
