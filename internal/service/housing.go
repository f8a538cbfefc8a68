package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/SystemBuilders/HouseRev/internal/container"
	"github.com/SystemBuilders/HouseRev/internal/domain"
	"github.com/SystemBuilders/HouseRev/internal/repository"
	"github.com/rs/zerolog"
)

var (
	_ PropertyService  = (*HousingService)(nil)
	_ ReviewService    = (*HousingService)(nil)
	_ CommentService   = (*HousingService)(nil)
	_ FavoritesService = (*HousingService)(nil)
	_ ActivityService  = (*HousingService)(nil)
)

// Repositories bundles the repositories a HousingService works on.
type Repositories struct {
	Properties *repository.PropertyRepository
	Reviews    *repository.ReviewRepository
	Comments   *repository.CommentRepository
	Favorites  *repository.FavoritesRepository
}

// NewRepositories wires a fresh, empty set of repositories.
func NewRepositories() Repositories {
	properties := repository.NewPropertyRepository()
	reviews := repository.NewReviewRepository(properties)
	return Repositories{
		Properties: properties,
		Reviews:    reviews,
		Comments:   repository.NewCommentRepository(reviews),
		Favorites:  repository.NewFavoritesRepository(),
	}
}

// HousingService implements every service of the catalogue on top of one
// set of repositories.
//
// A single RWMutex guards all repositories since creating or deleting a
// review or comment also mutates the container owned by its parent.
type HousingService struct {
	log   zerolog.Logger
	repos Repositories
	now   func() time.Time

	mu       sync.RWMutex
	activity container.Stack[domain.Activity]
}

// NewHousingService creates and returns a new service ready to use.
func NewHousingService(log zerolog.Logger, repos Repositories) *HousingService {
	return &HousingService{
		log:   log,
		repos: repos,
		now:   time.Now,
	}
}

// record pushes an activity onto the feed. The caller must hold mu.
func (hs *HousingService) record(action domain.Action, entity domain.Entity, id int) {
	hs.activity.Push(domain.Activity{
		Action: action,
		Entity: entity,
		ID:     id,
		At:     hs.now().UTC(),
	})
	hs.
		log.
		Debug().
		Str("entity", string(entity)).
		Int("id", id).
		Msg(string(action))
}

// RecentActivity returns up to limit activities, newest first.
func (hs *HousingService) RecentActivity(limit int) []domain.Activity {
	hs.mu.RLock()
	defer hs.mu.RUnlock()

	if limit <= 0 || limit > hs.activity.Len() {
		limit = hs.activity.Len()
	}
	recent := make([]domain.Activity, 0, limit)
	for a := range hs.activity.All() {
		if len(recent) == limit {
			break
		}
		recent = append(recent, a)
	}
	return recent
}

// Stats returns the current entity counts.
func (hs *HousingService) Stats() Stats {
	hs.mu.RLock()
	defer hs.mu.RUnlock()

	return Stats{
		Properties: hs.repos.Properties.Len(),
		Reviews:    hs.repos.Reviews.Len(),
		Comments:   hs.repos.Comments.Len(),
		Favorites:  hs.repos.Favorites.Len(),
	}
}

func parentNotFound(kind error) error {
	return fmt.Errorf("%w: %w", ErrParentNotFound, kind)
}
