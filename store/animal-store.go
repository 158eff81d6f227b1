package store

import (
	"fmt"
	"go-http-exercises/models"
	"slices"
	"sync"
	"time"
)

type AnimalStore interface {
	FindAll() []models.Animal
	FindByID(id int) (models.Animal, error)
	Create(name, species string) models.Animal
	Delete(id int) error
}

type NotFoundError struct {
	When time.Time
	Id   int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Id Not Found: %d at %v",
		e.Id, e.When)
}

// SeedAnimals - catalog contents at process start.
func SeedAnimals() []models.Animal {
	return []models.Animal{
		{ID: 1, Name: "León", Species: "Panthera leo"},
		{ID: 2, Name: "Elefante", Species: "Loxodonta africana"},
		{ID: 3, Name: "Jirafa", Species: "Giraffa camelopardalis"},
	}
}

// MemoryAnimalStore - owns the animal list and the id counter, ids are never reused.
type MemoryAnimalStore struct {
	mu      sync.Mutex
	animals []models.Animal
	nextID  int
}

func NewMemoryAnimalStore(seed []models.Animal) AnimalStore {
	s := &MemoryAnimalStore{animals: slices.Clone(seed), nextID: 1}
	for _, animal := range seed {
		if animal.ID >= s.nextID {
			s.nextID = animal.ID + 1
		}
	}
	return s
}

func (s *MemoryAnimalStore) FindAll() []models.Animal {
	s.mu.Lock()
	defer s.mu.Unlock()
	// hand out a snapshot so callers never see later mutations
	animals := slices.Clone(s.animals)
	if animals == nil {
		animals = []models.Animal{}
	}
	return animals
}

func (s *MemoryAnimalStore) FindByID(id int) (models.Animal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, animal := range s.animals {
		if animal.ID == id {
			return animal, nil
		}
	}
	return models.Animal{}, &NotFoundError{Id: id, When: time.Now()}
}

func (s *MemoryAnimalStore) Create(name, species string) models.Animal {
	s.mu.Lock()
	defer s.mu.Unlock()
	animal := models.Animal{ID: s.nextID, Name: name, Species: species}
	s.animals = append(s.animals, animal)
	s.nextID++
	return animal
}

func (s *MemoryAnimalStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.animals, func(animal models.Animal) bool {
		return animal.ID == id
	})
	if i < 0 {
		return &NotFoundError{Id: id, When: time.Now()}
	}
	s.animals = slices.Delete(s.animals, i, i+1)
	return nil
}
