// Package service orchestrates the repositories behind the catalogue.
//
// Services validate that a referenced parent exists before creating a
// child and otherwise delegate to the repositories. They are the only
// layer that is safe for concurrent use, and they hand out detached
// copies of entities so callers never share state with the repositories.
package service

import "github.com/SystemBuilders/HouseRev/internal/domain"

// PropertyService describes the operations on properties.
type PropertyService interface {
	// CreateProperty stores a new property and returns it.
	CreateProperty(title, country, city string) *domain.Property
	// GetProperty returns the property with the given id.
	// ErrPropertyNotFound is returned if it doesn't exist.
	GetProperty(id int) (*domain.Property, error)
	// UpdateProperty overwrites the fields of a property.
	UpdateProperty(id int, title, country, city string) (*domain.Property, error)
	// DeleteProperty removes a property. Its reviews are left in place.
	DeleteProperty(id int) error
	// ListProperties returns every property in creation order.
	ListProperties() []*domain.Property
}

// ReviewService describes the operations on reviews.
type ReviewService interface {
	// CreateReview stores a review of an existing property. The returned
	// error matches both ErrParentNotFound and ErrPropertyNotFound if the
	// property doesn't exist, and nothing is stored.
	CreateReview(propertyID int, title, body string, rating int) (*domain.Review, error)
	GetReview(id int) (*domain.Review, error)
	UpdateReview(id int, title, body string, rating int) (*domain.Review, error)
	// DeleteReview removes a review and unlinks it from its property.
	DeleteReview(id int) error
	// ListReviewsByProperty returns the reviews of a property, or none if
	// the property doesn't exist.
	ListReviewsByProperty(propertyID int) []*domain.Review
}

// CommentService describes the operations on comments.
type CommentService interface {
	// CreateComment stores a comment on an existing review. The returned
	// error matches both ErrParentNotFound and ErrReviewNotFound if the
	// review doesn't exist, and nothing is stored.
	CreateComment(reviewID int, body string) (*domain.Comment, error)
	GetComment(id int) (*domain.Comment, error)
	UpdateComment(id int, body string) (*domain.Comment, error)
	DeleteComment(id int) error
	ListCommentsByReview(reviewID int) []*domain.Comment
}

// FavoritesService describes the favorites list.
type FavoritesService interface {
	// AddFavorite marks an existing property as favorite. Adding a
	// favorite twice is not an error.
	AddFavorite(propertyID int) error
	// RemoveFavorite unmarks a property. ErrFavoriteNotFound is returned
	// if it wasn't a favorite.
	RemoveFavorite(propertyID int) error
	// IsFavorite reports whether the property is a favorite.
	IsFavorite(propertyID int) bool
	// ListFavorites returns the favorite properties in the order they were
	// added, skipping those that have since been deleted.
	ListFavorites() []*domain.Property
}

// ActivityService describes the activity feed.
type ActivityService interface {
	// RecentActivity returns up to limit activities, newest first.
	// A limit of zero or less returns the whole feed.
	RecentActivity(limit int) []domain.Activity
}

// Stats holds the entity counts of the catalogue.
type Stats struct {
	Properties int `json:"properties"`
	Reviews    int `json:"reviews"`
	Comments   int `json:"comments"`
	Favorites  int `json:"favorites"`
}
