package service

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"
	"go-http-exercises/middleware"
	"go-http-exercises/routers"
	"go-http-exercises/store"
	"go-http-exercises/utils"
)

type Service struct {
	Config   *utils.Config
	Logger   *slog.Logger
	Animals  store.AnimalStore
	Products *store.ProductCatalog
	Uploads  store.UploadStore
}

func NewService(config *utils.Config, logger *slog.Logger) (*Service, error) {
	// setup upload directory
	uploads, err := store.NewDirUploadStore(config.UploadDir)
	if err != nil {
		return nil, err
	}
	return &Service{
		Config:   config,
		Logger:   logger,
		Animals:  store.NewMemoryAnimalStore(store.SeedAnimals()),
		Products: store.NewProductCatalog(store.SeedProducts()),
		Uploads:  uploads,
	}, nil
}

// Routes - every handler set bound to its prefix.
func (service *Service) Routes() []routers.Group {
	return []routers.Group{
		{Prefix: "/", Register: routers.GreetingRoutes},
		{Prefix: "/", Register: routers.ProductRoutes(service.Products)},
		{Prefix: "/", Register: routers.LoggingRoutes(service.Logger)},
		{Prefix: "/", Register: routers.AnimalRoutes(service.Animals)},
		{Prefix: "/", Register: routers.IntrospectionRoutes},
		{Prefix: "/", Register: routers.MimeResponseRoutes},
		{Prefix: "/", Register: routers.MimeIngestRoutes(service.Uploads)},
		{Prefix: "/api/v1", Register: routers.CoreRoutes},
		{Prefix: "/api/v1/user", Register: routers.UserRoutes},
	}
}

// Engine builds the gin engine with the process-wide middleware and responders.
func (service *Service) Engine() *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.ForwardedByClientIP = true
	if err := r.SetTrustedProxies(service.Config.TrustedProxies); err != nil {
		service.Logger.Warn("Ignoring invalid trusted proxies", "error", err)
	}

	// middleware
	r.Use(middleware.RequestLogger(service.Logger))
	r.Use(middleware.ErrorBoundary(routers.DefaultResponders(service.Logger)))
	r.Use(middleware.Recovery())
	r.Use(middleware.CORSMiddleware(service.Config.CORSAllowOrigin)) // preflight requests

	r.NoRoute(routers.NoRouteHandler)
	r.NoMethod(routers.NoMethodHandler)

	routers.Mount(r, service.Routes()...)
	return r
}

// Handler - the engine, gzip compressed when enabled.
func (service *Service) Handler() http.Handler {
	engine := service.Engine()
	if service.Config.Compression {
		return gzhttp.GzipHandler(engine)
	}
	return engine
}
