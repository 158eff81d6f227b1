package routers

import "github.com/gin-gonic/gin"

// Group - a handler set bound to a path prefix.
type Group struct {
	Prefix   string
	Register func(rg *gin.RouterGroup)
}

// Mount resolves every binding into the router once, at startup.
func Mount(r gin.IRouter, groups ...Group) {
	for _, group := range groups {
		group.Register(r.Group(group.Prefix))
	}
}

// getOrHead binds handlers to GET and HEAD, net/http drops the body of a HEAD response.
func getOrHead(rg gin.IRoutes, path string, handlers ...gin.HandlerFunc) {
	rg.GET(path, handlers...)
	rg.HEAD(path, handlers...)
}
