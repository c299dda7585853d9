package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"libraryhub/internal/microservices/http-api/middleware"
	"libraryhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

const defaultRequestTimeout = 5 * time.Second

// Options are shared by the resource handlers. Zero values fall back to
// slog.Default() and a 5s request timeout.
type Options struct {
	Logger *slog.Logger
	// RequestTimeout bounds the storage work of a single request.
	RequestTimeout time.Duration
}

type base struct {
	logger  *slog.Logger
	timeout time.Duration
}

func newBase(opts Options) base {
	b := base{logger: opts.Logger, timeout: opts.RequestTimeout}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	if b.timeout <= 0 {
		b.timeout = defaultRequestTimeout
	}
	return b
}

func (b base) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), b.timeout)
}

// respondError maps service errors onto HTTP status codes.
func (b base) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUsernameRequired), errors.Is(err, service.ErrTitleRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrBookNotFound),
		errors.Is(err, service.ErrInvalidReference):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "request timed out"})
	default:
		b.logger.Error("request_failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"request_id", c.GetString(middleware.RequestIDKey),
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// parseIDParam reads a positive int64 path parameter, writing a 400 on failure.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}
