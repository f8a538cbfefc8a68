package domain

import "github.com/SystemBuilders/HouseRev/internal/container"

// Review is a rated review of a Property.
type Review struct {
	ID         int    `json:"id"`
	PropertyID int    `json:"property_id"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	Rating     int    `json:"rating"`

	comments container.Queue[*Comment]
}

// NewReview returns a new Review with no comments.
func NewReview(id, propertyID int, title, body string, rating int) *Review {
	return &Review{
		ID:         id,
		PropertyID: propertyID,
		Title:      title,
		Body:       body,
		Rating:     rating,
	}
}

// AddComment enqueues comment behind the review's existing comments.
func (r *Review) AddComment(comment *Comment) {
	r.comments.Enqueue(comment)
}

// RemoveComment drops comment from the review's queue, keeping the order
// of the remaining comments. It returns false if the comment was not
// queued on this review.
func (r *Review) RemoveComment(comment *Comment) bool {
	if !r.comments.Contains(comment) {
		return false
	}
	var kept container.Queue[*Comment]
	for c := range r.comments.All() {
		if c != comment {
			kept.Enqueue(c)
		}
	}
	r.comments = kept
	return true
}

// Comments returns the review's comments oldest first.
func (r *Review) Comments() []*Comment {
	return r.comments.Values()
}

// CommentCount returns the number of comments queued on the review.
func (r *Review) CommentCount() int {
	return r.comments.Len()
}

// Comment is a reply to a Review.
type Comment struct {
	ID       int    `json:"id"`
	ReviewID int    `json:"review_id"`
	Body     string `json:"body"`
}

// NewComment returns a new Comment.
func NewComment(id, reviewID int, body string) *Comment {
	return &Comment{
		ID:       id,
		ReviewID: reviewID,
		Body:     body,
	}
}
