package repository

import "github.com/SystemBuilders/HouseRev/internal/container"

// FavoritesRepository keeps the favorite property ids as an ordered set.
type FavoritesRepository struct {
	favorites *container.List[int]
}

// NewFavoritesRepository returns a new, empty FavoritesRepository.
func NewFavoritesRepository() *FavoritesRepository {
	return &FavoritesRepository{
		favorites: container.NewList[int](),
	}
}

// Add appends propertyID to the favorites. Ids already present are left
// where they are and Add returns false.
func (fr *FavoritesRepository) Add(propertyID int) bool {
	if fr.favorites.Contains(propertyID) {
		return false
	}
	fr.favorites.AddLast(propertyID)
	return true
}

// Remove deletes propertyID from the favorites. It returns false if the id
// wasn't a favorite.
func (fr *FavoritesRepository) Remove(propertyID int) bool {
	return fr.favorites.Remove(propertyID)
}

// Contains reports whether propertyID is a favorite.
func (fr *FavoritesRepository) Contains(propertyID int) bool {
	return fr.favorites.Contains(propertyID)
}

// List returns the favorite ids in the order they were added.
func (fr *FavoritesRepository) List() []int {
	return fr.favorites.Values()
}

// Len returns the number of favorites.
func (fr *FavoritesRepository) Len() int {
	return fr.favorites.Len()
}
