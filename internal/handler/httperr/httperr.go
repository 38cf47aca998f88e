package httperr

import (
	"rental-pricing/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError writes msg to the client and keeps err on the gin context
// for ErrorHandler to log. An error passed as detail is flattened to its
// message so stack traces never reach the body. Without a detail, the hint
// attached with errs.WithHint is used.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	if de, ok := detail.(error); ok {
		detail = de.Error()
	}
	if detail == nil {
		if hint := errs.Hint(err); hint != "" {
			detail = hint
		}
	}
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
