package theme

import "fmt"

// Skin names understood by New.
const (
	NameFlat  = "flat"
	NamePlain = "plain"
)

// Names lists the skins New can build.
func Names() []string {
	return []string{NameFlat, NamePlain}
}

// New builds a skin by name. An empty name selects the flat skin. The returned theme is
// not Ready until the host delivers its first style via Refresh.
func New(name string, radius float64) (Theme, error) {
	switch name {
	case "", NameFlat:
		return NewFlat(radius), nil
	case NamePlain:
		return NewPlain(radius), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
}
