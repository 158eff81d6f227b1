package routers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go-http-exercises/apierror"
	"go-http-exercises/models"
	"go-http-exercises/store"
)

func ProductRoutes(catalog *store.ProductCatalog) func(rg *gin.RouterGroup) {
	return func(rg *gin.RouterGroup) {
		getOrHead(rg, "/products", func(c *gin.Context) {
			GetProducts(c, catalog)
		})
	}
}

// GetProducts answers with the catalog filtered by the query, an empty result is still a 200.
func GetProducts(c *gin.Context, catalog *store.ProductCatalog) {
	filter, err := parseProductFilter(c)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, catalog.Filter(filter))
}

func parseProductFilter(c *gin.Context) (models.ProductFilter, *apierror.Error) {
	var filter models.ProductFilter
	filter.Category = optionalQuery(c, "category")
	filter.Name = optionalQuery(c, "name")

	var err *apierror.Error
	if filter.MinPrice, err = optionalPrice(c, "min_price"); err != nil {
		return filter, err
	}
	if filter.MaxPrice, err = optionalPrice(c, "max_price"); err != nil {
		return filter, err
	}
	return filter, nil
}

// optionalQuery treats an empty value the same as an absent one.
func optionalQuery(c *gin.Context, key string) *string {
	value := c.Query(key)
	if value == "" {
		return nil
	}
	return &value
}

func optionalPrice(c *gin.Context, key string) (*float64, *apierror.Error) {
	raw := optionalQuery(c, key)
	if raw == nil {
		return nil, nil
	}
	price, err := strconv.ParseFloat(*raw, 64)
	if err != nil {
		return nil, apierror.NewBadRequest(key+" must be a number", err)
	}
	return &price, nil
}
