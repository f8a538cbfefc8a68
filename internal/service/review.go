package service

import "github.com/SystemBuilders/HouseRev/internal/domain"

// CreateReview stores a review of an existing property.
func (hs *HousingService) CreateReview(propertyID int, title, body string, rating int) (*domain.Review, error) {
	hs.mu.Lock()
	defer hs.mu.Unlock()

	prop := hs.repos.Properties.Get(propertyID)
	if prop == nil {
		hs.
			log.
			Debug().
			Int("property", propertyID).
			Msg("can't create review, property doesn't exist")
		return nil, parentNotFound(ErrPropertyNotFound)
	}
	review := hs.repos.Reviews.Create(prop, title, body, rating)
	hs.record(domain.ActionCreated, domain.EntityReview, review.ID)
	return review.Clone(), nil
}

// GetReview returns the review with the given id.
func (hs *HousingService) GetReview(id int) (*domain.Review, error) {
	hs.mu.RLock()
	defer hs.mu.RUnlock()

	review := hs.repos.Reviews.Get(id)
	if review == nil {
		return nil, ErrReviewNotFound
	}
	return review.Clone(), nil
}

// UpdateReview overwrites the fields of a review.
func (hs *HousingService) UpdateReview(id int, title, body string, rating int) (*domain.Review, error) {
	hs.mu.Lock()
	defer hs.mu.Unlock()

	review := hs.repos.Reviews.Update(id, title, body, rating)
	if review == nil {
		return nil, ErrReviewNotFound
	}
	hs.record(domain.ActionUpdated, domain.EntityReview, id)
	return review.Clone(), nil
}

// DeleteReview removes a review and unlinks it from its property.
func (hs *HousingService) DeleteReview(id int) error {
	hs.mu.Lock()
	defer hs.mu.Unlock()

	if !hs.repos.Reviews.Delete(id) {
		return ErrReviewNotFound
	}
	hs.record(domain.ActionDeleted, domain.EntityReview, id)
	return nil
}

// ListReviewsByProperty returns the reviews of a property.
func (hs *HousingService) ListReviewsByProperty(propertyID int) []*domain.Review {
	hs.mu.RLock()
	defer hs.mu.RUnlock()

	return cloneAll(hs.repos.Reviews.ListByProperty(propertyID))
}
