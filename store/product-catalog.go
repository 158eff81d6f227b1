package store

import (
	"go-http-exercises/models"
	"strings"
)

// SeedProducts - the fixed product list, read-only after start.
func SeedProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Laptop Pro", Price: 999.99, Category: "electronics"},
		{ID: 2, Name: "Smartphone X", Price: 699.99, Category: "electronics"},
		{ID: 3, Name: "Tablet Mini", Price: 349.99, Category: "electronics"},
		{ID: 4, Name: "Office Desk", Price: 249.99, Category: "furniture"},
		{ID: 5, Name: "Ergonomic Chair", Price: 189.99, Category: "furniture"},
		{ID: 6, Name: "Coffee Maker Pro", Price: 89.99, Category: "appliances"},
		{ID: 7, Name: "Wireless Headphones", Price: 129.99, Category: "electronics"},
		{ID: 8, Name: "Smart Watch", Price: 199.99, Category: "accessories"},
	}
}

type ProductCatalog struct {
	products []models.Product
}

func NewProductCatalog(products []models.Product) *ProductCatalog {
	return &ProductCatalog{products: products}
}

// Filter returns the products matching every set criterion, in catalog order.
// The result is never nil so it always encodes as a JSON list.
func (p *ProductCatalog) Filter(filter models.ProductFilter) []models.Product {
	predicates := productPredicates(filter)
	result := []models.Product{}
	for _, product := range p.products {
		if matchesAll(product, predicates) {
			result = append(result, product)
		}
	}
	return result
}

type productPredicate func(models.Product) bool

func productPredicates(filter models.ProductFilter) []productPredicate {
	var predicates []productPredicate
	if filter.Category != nil {
		category := *filter.Category
		predicates = append(predicates, func(p models.Product) bool {
			return p.Category == category
		})
	}
	if filter.MinPrice != nil {
		minPrice := *filter.MinPrice
		predicates = append(predicates, func(p models.Product) bool {
			return p.Price >= minPrice
		})
	}
	if filter.MaxPrice != nil {
		maxPrice := *filter.MaxPrice
		predicates = append(predicates, func(p models.Product) bool {
			return p.Price <= maxPrice
		})
	}
	if filter.Name != nil {
		name := strings.ToLower(*filter.Name)
		predicates = append(predicates, func(p models.Product) bool {
			return strings.Contains(strings.ToLower(p.Name), name)
		})
	}
	return predicates
}

func matchesAll(product models.Product, predicates []productPredicate) bool {
	for _, predicate := range predicates {
		if !predicate(product) {
			return false
		}
	}
	return true
}
