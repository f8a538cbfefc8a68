package node

// Error provides constant error strings to the node functions.
type Error string

func (e Error) Error() string { return string(e) }

// Constant errors.
const (
	ErrInvalidPort = Error("port number must be between 0 and 65535")
)
