package middleware

import (
	"errors"
	"net/http"

	"rincon-reservas/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

const (
	// receipts travel inline as base64 data URLs: 10 MB of image plus encoding overhead
	DefaultMaxBodyBytes int64 = 15 << 20

	MsgPayloadTooLarge = "La solicitud es demasiado grande"
)

// BodyLimit caps request bodies at limit bytes. Declared oversize bodies are
// rejected with 413 before any handler runs; undeclared ones fail when read.
func BodyLimit(limit int64) gin.HandlerFunc {
	if limit <= 0 {
		limit = DefaultMaxBodyBytes
	}
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
				httperr.NewResponse(http.StatusRequestEntityTooLarge, MsgPayloadTooLarge))
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}

// IsBodyTooLarge reports whether err came from reading past the BodyLimit cap.
func IsBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
