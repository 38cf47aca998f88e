package middleware

import (
	"log/slog"
	"net/http"

	"rental-pricing/internal/handler/httperr"
	"rental-pricing/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler logs the errors handlers attached with httperr.AbortWithError
// and writes a JSON body for requests that were aborted without one.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, e := range c.Errors {
			logHandlerError(c, e)
		}

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, internalError())
	}
}

const maxStackLines = 12

func logHandlerError(c *gin.Context, e *gin.Error) {
	status := c.Writer.Status()
	if resp, ok := e.Meta.(httperr.Response); ok {
		status = resp.Status
	}
	if status < http.StatusInternalServerError {
		slog.WarnContext(c.Request.Context(), "request rejected",
			"request_id", GetRequestID(c), "status", status, "path", c.FullPath(), "error", e.Err.Error())
		return
	}
	slog.ErrorContext(c.Request.Context(), "request failed",
		"request_id", GetRequestID(c), "status", status, "path", c.FullPath(), "error", e.Err.Error(),
		"stack", errs.ExtractStackLines(e.Err, maxStackLines))
}

func internalError() httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	return resp
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.ErrorContext(c.Request.Context(), "recovered from panic", "error", err, "path", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusInternalServerError, internalError())
			}
		}()
		c.Next()
	}
}
