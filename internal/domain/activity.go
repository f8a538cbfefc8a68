package domain

import "time"

// Action names a mutation recorded in the activity feed.
type Action string

// These are the recorded actions.
const (
	ActionCreated     Action = "created"
	ActionUpdated     Action = "updated"
	ActionDeleted     Action = "deleted"
	ActionFavorited   Action = "favorited"
	ActionUnfavorited Action = "unfavorited"
)

// Entity names the kind of entity an Activity refers to.
type Entity string

// These are the entity kinds.
const (
	EntityProperty Entity = "property"
	EntityReview   Entity = "review"
	EntityComment  Entity = "comment"
)

// Activity is one entry of the activity feed.
type Activity struct {
	Action Action    `json:"action"`
	Entity Entity    `json:"entity"`
	ID     int       `json:"id"`
	At     time.Time `json:"at"`
}
