// Package domain holds the entities of the housing review catalogue.
//
// Entities own their children: a Property owns the ordered list of its
// Reviews and a Review owns the queue of its Comments. Children are
// compared by pointer identity inside those containers.
package domain

import "github.com/SystemBuilders/HouseRev/internal/container"

// Property is a listed housing unit.
type Property struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Country string `json:"country"`
	City    string `json:"city"`

	reviews container.List[*Review]
}

// NewProperty returns a new Property with no reviews.
func NewProperty(id int, title, country, city string) *Property {
	return &Property{
		ID:      id,
		Title:   title,
		Country: country,
		City:    city,
	}
}

// AddReview appends review to the property's reviews.
func (p *Property) AddReview(review *Review) {
	p.reviews.AddLast(review)
}

// RemoveReview unlinks review from the property. It returns false if the
// review was not linked to it.
func (p *Property) RemoveReview(review *Review) bool {
	return p.reviews.Remove(review)
}

// Reviews returns the property's reviews in the order they were added.
func (p *Property) Reviews() []*Review {
	return p.reviews.Values()
}

// ReviewCount returns the number of reviews linked to the property.
func (p *Property) ReviewCount() int {
	return p.reviews.Len()
}
