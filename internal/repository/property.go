// Package repository stores the catalogue entities in memory.
//
// Each repository owns one container as its single source of truth and a
// monotonically increasing id counter starting at 1; ids are never reused.
// Lookups keep the absent contract of the underlying containers: a missing
// entity is reported as nil or false, never as an error.
//
// Repositories are not safe for concurrent use.
package repository

import (
	"github.com/SystemBuilders/HouseRev/internal/container"
	"github.com/SystemBuilders/HouseRev/internal/domain"
)

// PropertyRepository stores properties by id.
type PropertyRepository struct {
	table  *container.Table[int, domain.Property]
	nextID int
}

// NewPropertyRepository returns a new, empty PropertyRepository.
func NewPropertyRepository() *PropertyRepository {
	return &PropertyRepository{
		table:  container.NewTable[int, domain.Property](),
		nextID: 1,
	}
}

// Create stores a new property under the next id.
func (pr *PropertyRepository) Create(title, country, city string) *domain.Property {
	prop := domain.NewProperty(pr.nextID, title, country, city)
	pr.table.Put(prop.ID, prop)
	pr.nextID++
	return prop
}

// Get returns the property with the given id, or nil.
func (pr *PropertyRepository) Get(id int) *domain.Property {
	return pr.table.Get(id)
}

// Update overwrites the descriptive fields of a property in place.
// It returns nil if the property doesn't exist.
func (pr *PropertyRepository) Update(id int, title, country, city string) *domain.Property {
	prop := pr.Get(id)
	if prop == nil {
		return nil
	}
	prop.Title = title
	prop.Country = country
	prop.City = city
	pr.table.Put(id, prop)
	return prop
}

// Delete removes the property from the repository.
//
// Reviews of the property are not deleted, they stay reachable by id
// from the ReviewRepository.
func (pr *PropertyRepository) Delete(id int) bool {
	if !pr.table.Contains(id) {
		return false
	}
	pr.table.Delete(id)
	return true
}

// List returns all properties in creation order.
func (pr *PropertyRepository) List() []*domain.Property {
	properties := make([]*domain.Property, 0, pr.table.Len())
	for _, prop := range pr.table.All() {
		properties = append(properties, prop)
	}
	return properties
}

// Len returns the number of stored properties.
func (pr *PropertyRepository) Len() int {
	return pr.table.Len()
}
