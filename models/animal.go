package models

// Animal - one catalog record.
type Animal struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species"`
}

// AnimalInput - create request body, both fields must be present.
type AnimalInput struct {
	Name    *string `json:"name" binding:"required"`
	Species *string `json:"species" binding:"required"`
}
