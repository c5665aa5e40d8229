package ports

// IDGenerator produces unique session identifiers.
type IDGenerator interface {
	NewID() string
}
