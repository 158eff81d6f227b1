package routers

import (
	"github.com/gin-gonic/gin"
	"go-http-exercises/apierror"
)

func NoRouteHandler(c *gin.Context) {
	fail(c, apierror.NewNotFound("no route for "+c.Request.URL.Path))
}

func NoMethodHandler(c *gin.Context) {
	fail(c, apierror.NewMethodNotAllowed(c.Request.Method+" not allowed on "+c.Request.URL.Path))
}

// FailOnPurpose panics so the internal fault responder can be exercised.
func FailOnPurpose(c *gin.Context) {
	panic("test-error endpoint raised on purpose")
}
