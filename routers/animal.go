package routers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go-http-exercises/apierror"
	"go-http-exercises/middleware"
	"go-http-exercises/models"
	"go-http-exercises/store"
)

func AnimalRoutes(rp store.AnimalStore) func(rg *gin.RouterGroup) {
	return func(rg *gin.RouterGroup) {
		rg.Use(middleware.ApiMiddleware(rp))
		getOrHead(rg, "/animals", GetAnimals)
		getOrHead(rg, "/animals/:id", GetAnimalByID)
		rg.POST("/animals", CreateAnimal)
		rg.DELETE("/animals/:id", DeleteAnimal)
		getOrHead(rg, "/test-error", FailOnPurpose)
	}
}

func retrieveStore(c *gin.Context) store.AnimalStore {
	// retrieve middleware store object
	return c.MustGet(middleware.AnimalStoreKey).(store.AnimalStore)
}

// parseID - ids that are not integers cannot name an animal
func parseID(c *gin.Context) (int, *apierror.Error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, apierror.NewNotFound("animal id must be an integer")
	}
	return id, nil
}

func notFound(err error) *apierror.Error {
	var missing *store.NotFoundError
	if errors.As(err, &missing) {
		return &apierror.Error{Kind: apierror.NotFound, Message: "animal not found", Cause: err}
	}
	return apierror.NewInternalFault("animal store failure", err)
}

func GetAnimals(c *gin.Context) {
	rp := retrieveStore(c)
	c.JSON(http.StatusOK, rp.FindAll())
}

func GetAnimalByID(c *gin.Context) {
	rp := retrieveStore(c)
	id, apiErr := parseID(c)
	if apiErr != nil {
		fail(c, apiErr)
		return
	}
	animal, err := rp.FindByID(id)
	if err != nil {
		fail(c, notFound(err))
		return
	}
	c.JSON(http.StatusOK, animal)
}

func CreateAnimal(c *gin.Context) {
	rp := retrieveStore(c)

	// incorrect input format handling
	var input models.AnimalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, apierror.NewBadRequest("name and species are required", err))
		return
	}

	animal := rp.Create(*input.Name, *input.Species)
	c.JSON(http.StatusCreated, animal)
}

func DeleteAnimal(c *gin.Context) {
	rp := retrieveStore(c)
	id, apiErr := parseID(c)
	if apiErr != nil {
		fail(c, apiErr)
		return
	}
	if err := rp.Delete(id); err != nil {
		fail(c, notFound(err))
		return
	}
	c.Status(http.StatusNoContent)
}
