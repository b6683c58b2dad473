// Package handlers contains the gin HTTP handlers for the API surface.
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/studypulse/backend/internal/apierror"
	"github.com/studypulse/backend/internal/logger"
	"github.com/studypulse/backend/internal/repository"
	"github.com/studypulse/backend/internal/service"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

// parseListParams reads limit/offset query parameters with defaults.
// Invalid values fall back to the defaults rather than erroring.
func parseListParams(c *gin.Context) (limit, offset int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultListLimit)))
	if err != nil || limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

// parseIDParam reads the :id path parameter as a positive integer.
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, "id must be a positive integer", "Invalid resource ID"))
		return 0, false
	}
	return id, true
}

// writeServiceError maps service and repository errors to problem responses.
// resource names what was being operated on, for not-found messages.
func writeServiceError(c *gin.Context, err error, resource, id string) {
	requestID := apierror.GetRequestID(c)

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, validationErr.Fields))
		return
	}
	if errors.Is(err, repository.ErrNotFound) {
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, resource, id))
		return
	}

	logger.Ctx(c.Request.Context()).Error("request failed", logger.Err(err))
	apierror.WriteProblem(c, apierror.NewInternalError(requestID))
}

// writeBindError reports a malformed or unparseable request body.
func writeBindError(c *gin.Context, err error) {
	requestID := apierror.GetRequestID(c)
	apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid request body"))
}
