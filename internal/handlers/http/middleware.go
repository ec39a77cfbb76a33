package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gabapcia/chainscope/internal/explorer"
	"github.com/gabapcia/chainscope/internal/infra/chain/lcd"
	"github.com/gabapcia/chainscope/internal/infra/chain/tendermint"
	"github.com/gabapcia/chainscope/internal/pkg/logger"
	"github.com/gabapcia/chainscope/internal/pkg/transport"
	"github.com/gabapcia/chainscope/internal/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// ErrorBody is the JSON body of every error response.
type ErrorBody struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// requestLogger tags the request context with a request id and logs each
// request once it completes.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(requestIDHeader, requestID)

		ctx := logger.Derive(c.Request.Context(), "http.request_id", requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		kv := []any{
			"http.method", c.Request.Method,
			"http.path", c.FullPath(),
			"http.status", c.Writer.Status(),
			"http.latency", time.Since(start),
		}
		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			logger.Error(ctx, "request failed", append(kv, "error", c.Errors.String())...)
		case status >= http.StatusBadRequest:
			logger.Warn(ctx, "request rejected", append(kv, "error", c.Errors.String())...)
		default:
			logger.Debug(ctx, "request served", kv...)
		}
	}
}

// errorResponder writes the last error attached by a handler. Handlers set
// the user-facing title as the error's meta.
func errorResponder() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		last := c.Errors.Last()
		title, _ := last.Meta.(string)
		if title == "" {
			title = "Request failed"
		}

		c.JSON(statusFor(last.Err), ErrorBody{
			Title:       title,
			Description: last.Err.Error(),
		})
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, explorer.ErrInvalidAddress),
		errors.Is(err, explorer.ErrInvalidHash),
		errors.Is(err, explorer.ErrInvalidHeight),
		errors.Is(err, explorer.ErrInvalidPage),
		errors.Is(err, validator.ErrValidationFailed):
		return http.StatusBadRequest
	case errors.Is(err, tendermint.ErrNotFound),
		errors.Is(err, lcd.ErrNotFound):
		return http.StatusNotFound
	case transport.IsNetworkError(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
