package routers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GreetingRoutes(rg *gin.RouterGroup) {
	getOrHead(rg, "/hello", func(c *gin.Context) {
		c.String(http.StatusOK, "¡Hola mundo!")
	})
	getOrHead(rg, "/goodbye", func(c *gin.Context) {
		c.String(http.StatusOK, "¡Adiós mundo!")
	})
	getOrHead(rg, "/greet/:name", func(c *gin.Context) {
		c.String(http.StatusOK, "¡Hola, %s!", c.Param("name"))
	})
}
