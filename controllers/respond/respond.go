// Package respond turns service errors into JSON error bodies.
package respond

import (
	"errors"
	"io"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/apperr"
)

// Error writes {"error": msg} with the status for err's kind. Causes of
// internal failures are logged and never sent to the client.
func Error(c *gin.Context, err error) {
	if apperr.KindOf(err) == apperr.Unavailable {
		log.Printf("❌ %s %s: %v", c.Request.Method, c.FullPath(), err)
	}
	c.JSON(apperr.Status(err), gin.H{"error": apperr.Message(err)})
}

// Abort is Error for middleware: later handlers do not run.
func Abort(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

// BindJSON decodes the request body into dst. An empty body leaves dst
// untouched; a malformed one is a validation error.
func BindJSON(c *gin.Context, dst interface{}) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return apperr.NewValidation("Invalid request body")
	}
	return nil
}
