package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropertyReviews(t *testing.T) {
	p := NewProperty(1, "Loft", "PT", "Lisbon")
	first := NewReview(1, p.ID, "Great", "Bright and quiet", 5)
	second := NewReview(2, p.ID, "Great", "Bright and quiet", 5)

	p.AddReview(first)
	p.AddReview(second)
	assert.Equal(t, []*Review{first, second}, p.Reviews())
	assert.Equal(t, 2, p.ReviewCount())

	t.Run("removal is by identity", func(t *testing.T) {
		assert.True(t, p.RemoveReview(second))
		assert.Len(t, p.Reviews(), 1)
		assert.Same(t, first, p.Reviews()[0])
		assert.False(t, p.RemoveReview(second))
	})
}

func TestReviewComments(t *testing.T) {
	r := NewReview(1, 1, "Ok", "Fine", 3)
	a := NewComment(1, r.ID, "first")
	b := NewComment(2, r.ID, "second")
	c := NewComment(3, r.ID, "third")
	r.AddComment(a)
	r.AddComment(b)
	r.AddComment(c)

	assert.True(t, r.RemoveComment(b))
	assert.Equal(t, []*Comment{a, c}, r.Comments())
	assert.Equal(t, 2, r.CommentCount())

	assert.False(t, r.RemoveComment(NewComment(1, r.ID, "first")))
	assert.Equal(t, 2, r.CommentCount())
}
