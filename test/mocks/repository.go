package mocks

import (
	"github.com/stretchr/testify/mock"
	"go-http-exercises/models"
)

// MockAnimalStore - mock animal store implementation
type MockAnimalStore struct {
	mock.Mock
}

// mock methods to satisfy interface

func (m *MockAnimalStore) FindAll() []models.Animal {
	args := m.Called()
	return args.Get(0).([]models.Animal)
}

func (m *MockAnimalStore) FindByID(id int) (models.Animal, error) {
	args := m.Called(id)
	return args.Get(0).(models.Animal), args.Error(1)
}

func (m *MockAnimalStore) Create(name, species string) models.Animal {
	args := m.Called(name, species)
	return args.Get(0).(models.Animal)
}

func (m *MockAnimalStore) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockUploadStore - mock upload store implementation
type MockUploadStore struct {
	mock.Mock
}

func (m *MockUploadStore) Save(prefix, ext string, data []byte) (string, error) {
	args := m.Called(prefix, ext, data)
	return args.String(0), args.Error(1)
}
