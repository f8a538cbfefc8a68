package service

import "github.com/SystemBuilders/HouseRev/internal/domain"

// AddFavorite marks an existing property as favorite.
func (hs *HousingService) AddFavorite(propertyID int) error {
	hs.mu.Lock()
	defer hs.mu.Unlock()

	if hs.repos.Properties.Get(propertyID) == nil {
		hs.
			log.
			Debug().
			Int("property", propertyID).
			Msg("can't favorite, property doesn't exist")
		return ErrPropertyNotFound
	}
	if hs.repos.Favorites.Add(propertyID) {
		hs.record(domain.ActionFavorited, domain.EntityProperty, propertyID)
	}
	return nil
}

// RemoveFavorite unmarks a property.
func (hs *HousingService) RemoveFavorite(propertyID int) error {
	hs.mu.Lock()
	defer hs.mu.Unlock()

	if !hs.repos.Favorites.Remove(propertyID) {
		return ErrFavoriteNotFound
	}
	hs.record(domain.ActionUnfavorited, domain.EntityProperty, propertyID)
	return nil
}

// IsFavorite reports whether the property is a favorite.
func (hs *HousingService) IsFavorite(propertyID int) bool {
	hs.mu.RLock()
	defer hs.mu.RUnlock()

	return hs.repos.Favorites.Contains(propertyID)
}

// ListFavorites returns the favorite properties that still exist.
func (hs *HousingService) ListFavorites() []*domain.Property {
	hs.mu.RLock()
	defer hs.mu.RUnlock()

	ids := hs.repos.Favorites.List()
	favorites := make([]*domain.Property, 0, len(ids))
	for _, id := range ids {
		if prop := hs.repos.Properties.Get(id); prop != nil {
			favorites = append(favorites, prop.Clone())
		}
	}
	return favorites
}
