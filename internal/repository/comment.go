package repository

import (
	"github.com/SystemBuilders/HouseRev/internal/container"
	"github.com/SystemBuilders/HouseRev/internal/domain"
)

// CommentRepository stores comments by id and queues every comment on
// its review.
type CommentRepository struct {
	reviews *ReviewRepository
	table   *container.Table[int, domain.Comment]
	nextID  int
}

// NewCommentRepository returns a new, empty CommentRepository that
// resolves parents through reviews.
func NewCommentRepository(reviews *ReviewRepository) *CommentRepository {
	return &CommentRepository{
		reviews: reviews,
		table:   container.NewTable[int, domain.Comment](),
		nextID:  1,
	}
}

// Create stores a new comment under the next id and enqueues it on the
// review.
func (cr *CommentRepository) Create(review *domain.Review, body string) *domain.Comment {
	comment := domain.NewComment(cr.nextID, review.ID, body)
	review.AddComment(comment)
	cr.table.Put(comment.ID, comment)
	cr.nextID++
	return comment
}

// Get returns the comment with the given id, or nil.
func (cr *CommentRepository) Get(id int) *domain.Comment {
	return cr.table.Get(id)
}

// Update overwrites the body of a comment in place. It returns nil if the
// comment doesn't exist.
func (cr *CommentRepository) Update(id int, body string) *domain.Comment {
	comment := cr.Get(id)
	if comment == nil {
		return nil
	}
	comment.Body = body
	cr.table.Put(id, comment)
	return comment
}

// Delete drops the comment from its review's queue, if the review still
// exists, and removes it from the repository.
func (cr *CommentRepository) Delete(id int) bool {
	comment := cr.Get(id)
	if comment == nil {
		return false
	}
	if review := cr.reviews.Get(comment.ReviewID); review != nil {
		review.RemoveComment(comment)
	}
	cr.table.Delete(id)
	return true
}

// ListByReview returns the comments of a review oldest first, or an empty
// slice if the review doesn't exist.
func (cr *CommentRepository) ListByReview(reviewID int) []*domain.Comment {
	review := cr.reviews.Get(reviewID)
	if review == nil {
		return []*domain.Comment{}
	}
	return review.Comments()
}

// Len returns the number of stored comments.
func (cr *CommentRepository) Len() int {
	return cr.table.Len()
}
