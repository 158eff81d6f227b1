package middleware

import (
	"github.com/gin-gonic/gin"
	"go-http-exercises/store"
)

// AnimalStoreKey - context key the animal handlers read their store from.
const AnimalStoreKey = "animalStore"

// ApiMiddleware - adds the animal store for routers to use
func ApiMiddleware(rp store.AnimalStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(AnimalStoreKey, rp)
		c.Next()
	}
}
