package ports

// Defaults exposes persisted session defaults from external configuration
// storage. It is read-only from the core's point of view.
//
//go:generate mockgen -source=defaults.go -destination=mocks/mock_defaults.go -package=mocks
type Defaults interface {
	// DefaultSpace returns the configured default space name, or the empty
	// string when none is set.
	DefaultSpace() string
}
