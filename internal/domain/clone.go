package domain

// Clone returns a copy of the property's fields. The copy owns no reviews.
func (p *Property) Clone() *Property {
	return NewProperty(p.ID, p.Title, p.Country, p.City)
}

// Clone returns a copy of the review's fields. The copy owns no comments.
func (r *Review) Clone() *Review {
	return NewReview(r.ID, r.PropertyID, r.Title, r.Body, r.Rating)
}

// Clone returns a copy of the comment.
func (c *Comment) Clone() *Comment {
	clone := *c
	return &clone
}
