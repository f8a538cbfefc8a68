package repository

import (
	"github.com/SystemBuilders/HouseRev/internal/container"
	"github.com/SystemBuilders/HouseRev/internal/domain"
)

// ReviewRepository stores reviews by id and links every review into the
// review list of its property.
type ReviewRepository struct {
	properties *PropertyRepository
	table      *container.Table[int, domain.Review]
	nextID     int
}

// NewReviewRepository returns a new, empty ReviewRepository that resolves
// parents through properties.
func NewReviewRepository(properties *PropertyRepository) *ReviewRepository {
	return &ReviewRepository{
		properties: properties,
		table:      container.NewTable[int, domain.Review](),
		nextID:     1,
	}
}

// Create stores a new review under the next id and appends it to the
// property's reviews.
func (rr *ReviewRepository) Create(prop *domain.Property, title, body string, rating int) *domain.Review {
	review := domain.NewReview(rr.nextID, prop.ID, title, body, rating)
	prop.AddReview(review)
	rr.table.Put(review.ID, review)
	rr.nextID++
	return review
}

// Get returns the review with the given id, or nil.
func (rr *ReviewRepository) Get(id int) *domain.Review {
	return rr.table.Get(id)
}

// Update overwrites the fields of a review in place. It returns nil if
// the review doesn't exist.
func (rr *ReviewRepository) Update(id int, title, body string, rating int) *domain.Review {
	review := rr.Get(id)
	if review == nil {
		return nil
	}
	review.Title = title
	review.Body = body
	review.Rating = rating
	rr.table.Put(id, review)
	return review
}

// Delete unlinks the review from its property, if the property still
// exists, and removes it from the repository.
func (rr *ReviewRepository) Delete(id int) bool {
	review := rr.Get(id)
	if review == nil {
		return false
	}
	if prop := rr.properties.Get(review.PropertyID); prop != nil {
		prop.RemoveReview(review)
	}
	rr.table.Delete(id)
	return true
}

// ListByProperty returns the reviews of a property in the order they were
// added, or an empty slice if the property doesn't exist.
func (rr *ReviewRepository) ListByProperty(propertyID int) []*domain.Review {
	prop := rr.properties.Get(propertyID)
	if prop == nil {
		return []*domain.Review{}
	}
	return prop.Reviews()
}

// Len returns the number of stored reviews.
func (rr *ReviewRepository) Len() int {
	return rr.table.Len()
}
