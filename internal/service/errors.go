package service

// Error provides constant error strings to the service functions.
type Error string

func (e Error) Error() string { return string(e) }

// Constant errors.
// Rule of thumb, all errors start with a small letter and end with no full stop.
const (
	ErrParentNotFound   = Error("parent entity not found")
	ErrPropertyNotFound = Error("property not found")
	ErrReviewNotFound   = Error("review not found")
	ErrCommentNotFound  = Error("comment not found")
	ErrFavoriteNotFound = Error("favorite not found")
)
