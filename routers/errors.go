package routers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"go-http-exercises/apierror"
	"go-http-exercises/middleware"
)

// fail attaches err for the error boundary and stops the chain.
func fail(c *gin.Context, err *apierror.Error) {
	_ = c.Error(err)
	c.Abort()
}

func errorBody(kind apierror.Kind) gin.H {
	return gin.H{"error": kind.Category()}
}

// DefaultResponders - the process-wide responders, one per condition kind.
func DefaultResponders(logger *slog.Logger) map[apierror.Kind]middleware.Responder {
	return map[apierror.Kind]middleware.Responder{
		apierror.BadRequest:       BadRequestResponder(logger),
		apierror.NotFound:         NotFoundResponder(logger),
		apierror.MethodNotAllowed: MethodNotAllowedResponder(logger),
		apierror.InternalFault:    InternalFaultResponder(logger),
	}
}

func BadRequestResponder(logger *slog.Logger) middleware.Responder {
	return func(c *gin.Context, err *apierror.Error) {
		logger.Warn("Bad Request (400): Invalid request", "path", c.Request.URL.Path, "reason", err.Message)
		c.JSON(err.Kind.Status(), errorBody(err.Kind))
	}
}

func NotFoundResponder(logger *slog.Logger) middleware.Responder {
	return func(c *gin.Context, err *apierror.Error) {
		logger.Info("Not Found (404): Resource not found", "path", c.Request.URL.Path, "reason", err.Message)
		c.JSON(err.Kind.Status(), errorBody(err.Kind))
	}
}

func MethodNotAllowedResponder(logger *slog.Logger) middleware.Responder {
	return func(c *gin.Context, err *apierror.Error) {
		logger.Warn("Method Not Allowed (405): Invalid method", "method", c.Request.Method, "path", c.Request.URL.Path)
		c.JSON(err.Kind.Status(), errorBody(err.Kind))
	}
}

// InternalFaultResponder also records the failing path and the cause.
func InternalFaultResponder(logger *slog.Logger) middleware.Responder {
	return func(c *gin.Context, err *apierror.Error) {
		logger.Error("Internal Server Error (500)", "path", c.Request.URL.Path, "cause", err.Error())
		c.JSON(err.Kind.Status(), errorBody(err.Kind))
	}
}
