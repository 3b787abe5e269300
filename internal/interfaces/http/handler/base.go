package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bondtrack/backend/internal/domain/shared"
	"github.com/bondtrack/backend/internal/infrastructure/event"
	"github.com/bondtrack/backend/internal/infrastructure/logger"
	"github.com/bondtrack/backend/internal/interfaces/http/dto"
	"github.com/bondtrack/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

func getRequestID(c *gin.Context) string {
	if id := c.GetString("request_id"); id != "" {
		return id
	}
	return c.GetHeader("X-Request-ID")
}

// getTenantID returns the tenant for this request. Routes that reach
// here sit behind the JWT and tenant middlewares, so a missing tenant
// means the chain was misconfigured; it is still reported as the
// forbidden outcome, never an unscoped query.
func getTenantID(c *gin.Context) (uuid.UUID, bool) {
	return middleware.GetTenantID(c)
}

// parseUUIDParam parses a path parameter as a UUID
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

// flushSignals drains the request's refresh signal collector into the
// HX-Trigger header as a JSON object, one key per signal. Must run
// before the response body is written.
func flushSignals(c *gin.Context) {
	collector := event.CollectorFromContext(c.Request.Context())
	if collector == nil {
		return
	}
	signals := collector.Signals()
	if len(signals) == 0 {
		return
	}
	payload := make(map[string]bool, len(signals))
	for _, s := range signals {
		payload[s] = true
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return
	}
	c.Header("HX-Trigger", string(body))
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	flushSignals(c)
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessList sends a success response with list metadata
func (h *BaseHandler) SuccessList(c *gin.Context, data any, count, limit int) {
	flushSignals(c)
	c.JSON(http.StatusOK, dto.NewListResponse(data, count, limit))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	flushSignals(c)
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	flushSignals(c)
	c.Status(http.StatusNoContent)
}

// Error sends an error response with the given status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, getRequestID(c)))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeValidation, message)
}

// NotFound sends a 404 not found response
func (h *BaseHandler) NotFound(c *gin.Context) {
	h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, "Resource not found")
}

// Unauthorized sends a 401 unauthorized response
func (h *BaseHandler) Unauthorized(c *gin.Context, message string) {
	h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, message)
}

// NoTenant sends the 403 response for users without a tenant
func (h *BaseHandler) NoTenant(c *gin.Context) {
	h.Error(c, http.StatusForbidden, dto.ErrCodeNoTenant, shared.ErrNoTenant.Message)
}

// InternalError sends a 500 internal server error response. The
// payload stays generic; detail goes to the log only.
func (h *BaseHandler) InternalError(c *gin.Context) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, "Internal server error")
}

// HandleDomainError converts domain errors to HTTP responses. Unknown
// errors are logged and surfaced as a generic 500.
func (h *BaseHandler) HandleDomainError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		code := dto.NormalizeErrorCode(domainErr.Code)
		h.Error(c, dto.GetHTTPStatus(code), code, domainErr.Message)
		return
	}

	logger.L(c.Request.Context()).Error("Unhandled error",
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	)
	h.InternalError(c)
}
