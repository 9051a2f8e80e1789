package theme

// Context carries ambient drawing parameters through nested paint scopes.
type Context struct {
	// Radius is the corner radius used for rounded corners.
	Radius float64
	// FillAlpha scales the alpha of selection fills.
	FillAlpha float64
	// LineWidth is the stroke width for outlines.
	LineWidth float64
	// ToplevelBorderCollapse suppresses the outer frame border when the view is
	// embedded flush against its parent.
	ToplevelBorderCollapse bool
}

// DefaultContext is the root context every theme starts with.
func DefaultContext() Context {
	return Context{FillAlpha: 1, LineWidth: 1}
}

// contextStack is a LIFO of contexts with a permanent root entry.
type contextStack struct {
	items []Context
}

func (s *contextStack) push(c Context) {
	s.items = append(s.items, c)
}

// pop removes the top context. Popping the root is a programming error.
func (s *contextStack) pop() Context {
	if len(s.items) <= 1 {
		panic("theme: PopContext without matching PushContext")
	}
	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return top
}

func (s *contextStack) peek() Context {
	return s.items[len(s.items)-1]
}

func (s *contextStack) depth() int {
	return len(s.items)
}
