package middleware

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"go-http-exercises/apierror"
)

// Responder renders one kind of condition into a response.
type Responder func(c *gin.Context, err *apierror.Error)

// ErrorBoundary renders the last error attached with c.Error, unless the handler already wrote
// a response. Kinds without a responder get a bare {"error": category} body.
func ErrorBoundary(responders map[apierror.Kind]Responder) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil || c.Writer.Written() {
			return
		}
		apiErr := apierror.From(last.Err)
		if respond, ok := responders[apiErr.Kind]; ok {
			respond(c, apiErr)
			return
		}
		c.JSON(apiErr.Kind.Status(), gin.H{"error": apiErr.Kind.Category()})
	}
}

// Recovery turns a panic into an internal fault for the boundary to render.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		cause, ok := recovered.(error)
		if !ok {
			cause = fmt.Errorf("%v", recovered)
		}
		_ = c.Error(apierror.NewInternalFault("panic recovered", cause))
		c.Abort()
	})
}
