package service

import "github.com/SystemBuilders/HouseRev/internal/domain"

// CreateComment stores a comment on an existing review.
func (hs *HousingService) CreateComment(reviewID int, body string) (*domain.Comment, error) {
	hs.mu.Lock()
	defer hs.mu.Unlock()

	review := hs.repos.Reviews.Get(reviewID)
	if review == nil {
		hs.
			log.
			Debug().
			Int("review", reviewID).
			Msg("can't create comment, review doesn't exist")
		return nil, parentNotFound(ErrReviewNotFound)
	}
	comment := hs.repos.Comments.Create(review, body)
	hs.record(domain.ActionCreated, domain.EntityComment, comment.ID)
	return comment.Clone(), nil
}

// GetComment returns the comment with the given id.
func (hs *HousingService) GetComment(id int) (*domain.Comment, error) {
	hs.mu.RLock()
	defer hs.mu.RUnlock()

	comment := hs.repos.Comments.Get(id)
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	return comment.Clone(), nil
}

// UpdateComment overwrites the body of a comment.
func (hs *HousingService) UpdateComment(id int, body string) (*domain.Comment, error) {
	hs.mu.Lock()
	defer hs.mu.Unlock()

	comment := hs.repos.Comments.Update(id, body)
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	hs.record(domain.ActionUpdated, domain.EntityComment, id)
	return comment.Clone(), nil
}

// DeleteComment removes a comment and drops it from its review's queue.
func (hs *HousingService) DeleteComment(id int) error {
	hs.mu.Lock()
	defer hs.mu.Unlock()

	if !hs.repos.Comments.Delete(id) {
		return ErrCommentNotFound
	}
	hs.record(domain.ActionDeleted, domain.EntityComment, id)
	return nil
}

// ListCommentsByReview returns the comments of a review oldest first.
func (hs *HousingService) ListCommentsByReview(reviewID int) []*domain.Comment {
	hs.mu.RLock()
	defer hs.mu.RUnlock()

	return cloneAll(hs.repos.Comments.ListByReview(reviewID))
}
