package service

import (
	"sync"
	"testing"
	"time"

	"github.com/SystemBuilders/HouseRev/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *HousingService {
	return NewHousingService(zerolog.Nop(), NewRepositories())
}

func TestEndToEnd(t *testing.T) {
	hs := newTestService()

	prop := hs.CreateProperty("Loft", "PT", "Lisbon")
	review, err := hs.CreateReview(prop.ID, "Great", "Bright", 5)
	require.NoError(t, err)
	comment, err := hs.CreateComment(review.ID, "Agreed")
	require.NoError(t, err)

	assert.Equal(t, []*domain.Review{review}, hs.ListReviewsByProperty(prop.ID))
	assert.Equal(t, []*domain.Comment{comment}, hs.ListCommentsByReview(review.ID))

	require.NoError(t, hs.DeleteReview(review.ID))
	assert.Empty(t, hs.ListReviewsByProperty(prop.ID))
	_, err = hs.GetReview(review.ID)
	assert.ErrorIs(t, err, ErrReviewNotFound)
	assert.ErrorIs(t, hs.DeleteReview(review.ID), ErrReviewNotFound)
}

func TestCreateChildOfMissingParent(t *testing.T) {
	hs := newTestService()

	t.Run("review of a missing property", func(t *testing.T) {
		before := hs.Stats().Reviews
		_, err := hs.CreateReview(7, "Great", "Bright", 5)
		assert.ErrorIs(t, err, ErrParentNotFound)
		assert.ErrorIs(t, err, ErrPropertyNotFound)
		assert.Equal(t, before, hs.Stats().Reviews)
	})

	t.Run("comment of a missing review", func(t *testing.T) {
		_, err := hs.CreateComment(7, "hi")
		assert.ErrorIs(t, err, ErrParentNotFound)
		assert.ErrorIs(t, err, ErrReviewNotFound)
		assert.Equal(t, 0, hs.Stats().Comments)
	})
}

func TestPropertyOperations(t *testing.T) {
	hs := newTestService()
	prop := hs.CreateProperty("Loft", "PT", "Lisbon")

	got, err := hs.GetProperty(prop.ID)
	require.NoError(t, err)
	assert.Equal(t, prop, got)

	updated, err := hs.UpdateProperty(prop.ID, "Attic", "PT", "Porto")
	require.NoError(t, err)
	assert.Equal(t, "Attic", updated.Title)

	_, err = hs.UpdateProperty(99, "x", "y", "z")
	assert.ErrorIs(t, err, ErrPropertyNotFound)
	_, err = hs.GetProperty(99)
	assert.ErrorIs(t, err, ErrPropertyNotFound)

	t.Run("returned entities are detached", func(t *testing.T) {
		got.Title = "changed by caller"
		again, err := hs.GetProperty(prop.ID)
		require.NoError(t, err)
		assert.Equal(t, "Attic", again.Title)
	})

	require.NoError(t, hs.DeleteProperty(prop.ID))
	assert.ErrorIs(t, hs.DeleteProperty(prop.ID), ErrPropertyNotFound)
	assert.Empty(t, hs.ListProperties())
}

func TestDeletePropertyKeepsReviews(t *testing.T) {
	hs := newTestService()
	prop := hs.CreateProperty("Loft", "PT", "Lisbon")
	review, err := hs.CreateReview(prop.ID, "Great", "Bright", 5)
	require.NoError(t, err)

	require.NoError(t, hs.DeleteProperty(prop.ID))

	orphan, err := hs.GetReview(review.ID)
	require.NoError(t, err)
	assert.Equal(t, prop.ID, orphan.PropertyID)
	assert.Equal(t, 1, hs.Stats().Reviews)
	assert.Empty(t, hs.ListReviewsByProperty(prop.ID))
}

func TestCommentOperations(t *testing.T) {
	hs := newTestService()
	prop := hs.CreateProperty("Loft", "PT", "Lisbon")
	review, err := hs.CreateReview(prop.ID, "Great", "Bright", 5)
	require.NoError(t, err)
	comment, err := hs.CreateComment(review.ID, "first")
	require.NoError(t, err)

	updated, err := hs.UpdateComment(comment.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Body)

	got, err := hs.GetComment(comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", got.Body)

	require.NoError(t, hs.DeleteComment(comment.ID))
	assert.Empty(t, hs.ListCommentsByReview(review.ID))
	assert.ErrorIs(t, hs.DeleteComment(comment.ID), ErrCommentNotFound)
	_, err = hs.UpdateComment(comment.ID, "again")
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestFavorites(t *testing.T) {
	hs := newTestService()
	a := hs.CreateProperty("Loft", "PT", "Lisbon")
	b := hs.CreateProperty("Cabin", "NO", "Bergen")

	require.NoError(t, hs.AddFavorite(b.ID))
	require.NoError(t, hs.AddFavorite(a.ID))
	require.NoError(t, hs.AddFavorite(b.ID))
	assert.Equal(t, []*domain.Property{b, a}, hs.ListFavorites())
	assert.True(t, hs.IsFavorite(a.ID))

	assert.ErrorIs(t, hs.AddFavorite(99), ErrPropertyNotFound)
	assert.ErrorIs(t, hs.RemoveFavorite(99), ErrFavoriteNotFound)

	t.Run("deleted properties are skipped", func(t *testing.T) {
		require.NoError(t, hs.DeleteProperty(b.ID))
		assert.Equal(t, []*domain.Property{a}, hs.ListFavorites())
		assert.Equal(t, 2, hs.Stats().Favorites)
	})

	require.NoError(t, hs.RemoveFavorite(a.ID))
	assert.False(t, hs.IsFavorite(a.ID))
}

func TestRecentActivity(t *testing.T) {
	hs := newTestService()
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	hs.now = func() time.Time { return at }

	prop := hs.CreateProperty("Loft", "PT", "Lisbon")
	review, err := hs.CreateReview(prop.ID, "Great", "Bright", 5)
	require.NoError(t, err)
	require.NoError(t, hs.AddFavorite(prop.ID))
	require.NoError(t, hs.AddFavorite(prop.ID))
	_, err = hs.CreateReview(99, "x", "y", 1)
	require.Error(t, err)

	want := []domain.Activity{
		{Action: domain.ActionFavorited, Entity: domain.EntityProperty, ID: prop.ID, At: at},
		{Action: domain.ActionCreated, Entity: domain.EntityReview, ID: review.ID, At: at},
		{Action: domain.ActionCreated, Entity: domain.EntityProperty, ID: prop.ID, At: at},
	}
	assert.Equal(t, want, hs.RecentActivity(0))
	assert.Equal(t, want[:2], hs.RecentActivity(2))
	assert.Equal(t, want, hs.RecentActivity(10))
}

func TestConcurrentMutation(t *testing.T) {
	hs := newTestService()
	prop := hs.CreateProperty("Loft", "PT", "Lisbon")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				review, err := hs.CreateReview(prop.ID, "t", "b", 3)
				if err != nil {
					t.Error(err)
					return
				}
				_ = hs.ListReviewsByProperty(prop.ID)
				if j%2 == 0 {
					if err := hs.DeleteReview(review.ID); err != nil {
						t.Error(err)
						return
					}
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 200, hs.Stats().Reviews)
	assert.Len(t, hs.ListReviewsByProperty(prop.ID), 200)
}
