package service

import "github.com/SystemBuilders/HouseRev/internal/domain"

// CreateProperty stores a new property.
func (hs *HousingService) CreateProperty(title, country, city string) *domain.Property {
	hs.mu.Lock()
	defer hs.mu.Unlock()

	prop := hs.repos.Properties.Create(title, country, city)
	hs.record(domain.ActionCreated, domain.EntityProperty, prop.ID)
	return prop.Clone()
}

// GetProperty returns the property with the given id.
func (hs *HousingService) GetProperty(id int) (*domain.Property, error) {
	hs.mu.RLock()
	defer hs.mu.RUnlock()

	prop := hs.repos.Properties.Get(id)
	if prop == nil {
		return nil, ErrPropertyNotFound
	}
	return prop.Clone(), nil
}

// UpdateProperty overwrites the fields of a property.
func (hs *HousingService) UpdateProperty(id int, title, country, city string) (*domain.Property, error) {
	hs.mu.Lock()
	defer hs.mu.Unlock()

	prop := hs.repos.Properties.Update(id, title, country, city)
	if prop == nil {
		return nil, ErrPropertyNotFound
	}
	hs.record(domain.ActionUpdated, domain.EntityProperty, id)
	return prop.Clone(), nil
}

// DeleteProperty removes a property without touching its reviews.
func (hs *HousingService) DeleteProperty(id int) error {
	hs.mu.Lock()
	defer hs.mu.Unlock()

	if !hs.repos.Properties.Delete(id) {
		return ErrPropertyNotFound
	}
	hs.record(domain.ActionDeleted, domain.EntityProperty, id)
	return nil
}

// ListProperties returns every property in creation order.
func (hs *HousingService) ListProperties() []*domain.Property {
	hs.mu.RLock()
	defer hs.mu.RUnlock()

	return cloneAll(hs.repos.Properties.List())
}

func cloneAll[T interface{ Clone() T }](items []T) []T {
	clones := make([]T, 0, len(items))
	for _, item := range items {
		clones = append(clones, item.Clone())
	}
	return clones
}
