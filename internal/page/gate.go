package page

import "html/template"

// Gate answers permission questions for presentation code. It mirrors the
// grants the server enforces; hiding a control never replaces the guard on
// the route behind it.
type Gate struct {
	granted map[string]struct{}
}

// NewGate builds a Gate over the given permission names.
func NewGate(permissions []string) Gate {
	granted := make(map[string]struct{}, len(permissions))
	for _, name := range permissions {
		granted[name] = struct{}{}
	}
	return Gate{granted: granted}
}

// Can reports whether the named permission is granted. Unknown names are
// simply not granted.
func (g Gate) Can(name string) bool {
	_, ok := g.granted[name]
	return ok
}

// CanAny reports whether any of the named permissions is granted.
func (g Gate) CanAny(names ...string) bool {
	for _, name := range names {
		if g.Can(name) {
			return true
		}
	}
	return false
}

// FuncMap exposes the gate to templates as {{if can "perm.name"}}.
func (g Gate) FuncMap() template.FuncMap {
	return template.FuncMap{
		"can":    g.Can,
		"canAny": g.CanAny,
	}
}
