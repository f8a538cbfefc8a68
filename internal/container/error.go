package container

// Error provides constant error strings to the container functions.
type Error string

func (e Error) Error() string { return string(e) }

// Constant errors.
// Rule of thumb, all errors start with a small letter and end with no full stop.
const (
	ErrEmptyContainer  = Error("container is empty")
	ErrIndexOutOfRange = Error("index out of range")
	ErrNotFound        = Error("element not found in container")
)
