package config

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors returned while loading configuration.
var (
	// ErrInvalidConfig is returned when a value is out of range or unknown.
	ErrInvalidConfig = constError("invalid configuration")

	// ErrInvalidVersion is returned when the version key is not a semantic version.
	ErrInvalidVersion = constError("invalid config version")

	// ErrUnsupportedVersion is returned when the version key is outside the range this
	// build reads.
	ErrUnsupportedVersion = constError("unsupported config version")
)
