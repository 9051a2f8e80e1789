package theme

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors returned by the theme engine and style loaders.
var (
	// ErrUnknownTheme is returned by New for a skin name it does not know.
	ErrUnknownTheme = constError("unknown theme")

	// ErrUnsupportedStyleFile is returned for palette files that are neither YAML nor TOML.
	ErrUnsupportedStyleFile = constError("unsupported style file format")
)
