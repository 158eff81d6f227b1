package routers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go-http-exercises/utils"
)

type levelEndpoint struct {
	path  string
	label string
	level slog.Level
}

var levelEndpoints = []levelEndpoint{
	{path: "/info", label: "INFO", level: slog.LevelInfo},
	{path: "/warning", label: "WARNING", level: slog.LevelWarn},
	{path: "/error", label: "ERROR", level: slog.LevelError},
	{path: "/critical", label: "CRITICAL", level: utils.LevelCritical},
}

func LoggingRoutes(logger *slog.Logger) func(rg *gin.RouterGroup) {
	return func(rg *gin.RouterGroup) {
		for _, endpoint := range levelEndpoints {
			getOrHead(rg, endpoint.path, logAtLevel(logger, endpoint))
		}
		getOrHead(rg, "/status", func(c *gin.Context) {
			LogStatus(c, logger)
		})
	}
}

func logAtLevel(logger *slog.Logger, endpoint levelEndpoint) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger.Log(c.Request.Context(), endpoint.level, endpoint.label+": Message logged")
		c.String(http.StatusOK, endpoint.label+" message logged")
	}
}

// LogStatus logs a status check at the level named by ?level=, anything unknown is info.
func LogStatus(c *gin.Context, logger *slog.Logger) {
	switch c.DefaultQuery("level", "info") {
	case "warning":
		logger.Warn("WARNING: Status check")
		c.String(http.StatusOK, "Warning logged")
	case "error":
		logger.Error("ERROR: Status check")
		c.String(http.StatusOK, "Error logged")
	default:
		logger.Info("INFO: Status check")
		c.String(http.StatusOK, "Info logged")
	}
}
