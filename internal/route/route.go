// Package route implements the two-route surface the viewer exposes:
// "/" for the list and "/person/{id}" for a detail view, where id is the
// path-escaped character name.
package route

import (
	"fmt"
	"net/url"
	"strings"
)

// Kind identifies which view a route mounts
type Kind int

const (
	KindList Kind = iota
	KindPerson
)

const (
	listPath     = "/"
	personPrefix = "/person/"
)

// Route is a parsed location
type Route struct {
	Kind Kind
	Name string // decoded character name, KindPerson only
}

// List returns the list route
func List() Route {
	return Route{Kind: KindList}
}

// Person returns the detail route for name
func Person(name string) Route {
	return Route{Kind: KindPerson, Name: name}
}

// Path renders the route back to its path form
func (r Route) Path() string {
	if r.Kind == KindPerson {
		return PersonPath(r.Name)
	}
	return listPath
}

// String implements fmt.Stringer
func (r Route) String() string {
	return r.Path()
}

// componentEscaper turns QueryEscape output into the browser
// encodeURIComponent form: space is %20 and !'()* stay literal.
var componentEscaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EscapeComponent escapes s as a single URI component
func EscapeComponent(s string) string {
	return componentEscaper.Replace(url.QueryEscape(s))
}

// PersonPath builds the detail path for a name
func PersonPath(name string) string {
	return personPrefix + EscapeComponent(name)
}

// Parse resolves a path to a route. The id segment is unescaped;
// anything other than "/" or "/person/{id}" is rejected.
func Parse(path string) (Route, error) {
	if path == "" || path == listPath {
		return List(), nil
	}

	rest, ok := strings.CutPrefix(path, personPrefix)
	if !ok {
		return Route{}, fmt.Errorf("unknown route %q", path)
	}
	if rest == "" || strings.Contains(rest, "/") {
		return Route{}, fmt.Errorf("invalid person route %q", path)
	}

	name, err := url.PathUnescape(rest)
	if err != nil {
		return Route{}, fmt.Errorf("invalid person id in %q: %w", path, err)
	}
	return Person(name), nil
}
