package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the flat error envelope every endpoint returns.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
}

// Abort records err on the gin context for the deferred error handler and
// writes the envelope. err must be non-nil.
func Abort(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("httperr.Abort: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
