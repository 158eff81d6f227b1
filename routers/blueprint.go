package routers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CoreRoutes - landing pages of the namespaced api.
func CoreRoutes(rg *gin.RouterGroup) {
	getOrHead(rg, "/", func(c *gin.Context) {
		c.String(http.StatusOK, "¡Bienvenida a la aplicación!")
	})
	getOrHead(rg, "/about", func(c *gin.Context) {
		c.String(http.StatusOK, "Esta es una aplicación con grupos de rutas")
	})
}

// UserRoutes - user pages, mounted beneath the core prefix.
func UserRoutes(rg *gin.RouterGroup) {
	getOrHead(rg, "/profile/:username", func(c *gin.Context) {
		c.String(http.StatusOK, "Perfil de usuario: %s", c.Param("username"))
	})
	getOrHead(rg, "/list", func(c *gin.Context) {
		c.String(http.StatusOK, "Lista de usuarios: user1, user2, user3")
	})
}
