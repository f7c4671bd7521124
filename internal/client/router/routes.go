// Package router maps client paths to screens and gates them on the session.
package router

import "strings"

// Screen identifies a client screen
type Screen string

const (
	ScreenLogin          Screen = "login"
	ScreenHome           Screen = "home"
	ScreenBusinessList   Screen = "umkm-list"
	ScreenBusinessNew    Screen = "umkm-new"
	ScreenBusinessEdit   Screen = "umkm-edit"
	ScreenBusinessDetail Screen = "umkm-detail"
	ScreenProductList    Screen = "product-list"
	ScreenProductNew     Screen = "product-new"
	ScreenProductEdit    Screen = "product-edit"
	ScreenProductDetail  Screen = "product-detail"
	ScreenLocation       Screen = "location"
	ScreenProfile        Screen = "profile"
)

// Well-known paths
const (
	PathLogin      = "/login"
	PathHome       = "/"
	PathBusinesses = "/umkm"
	PathProducts   = "/products"
	PathLocation   = "/location"
	PathProfile    = "/profile"
)

// Route binds a path pattern to a screen. Segments in braces are parameters.
type Route struct {
	Screen  Screen
	Pattern string
	Public  bool
}

// Routes in match order: static segments are listed before parameters
// so that /umkm/new never matches /umkm/{id}.
var Routes = []Route{
	{Screen: ScreenLogin, Pattern: PathLogin, Public: true},
	{Screen: ScreenHome, Pattern: PathHome},
	{Screen: ScreenBusinessList, Pattern: PathBusinesses},
	{Screen: ScreenBusinessNew, Pattern: "/umkm/new"},
	{Screen: ScreenBusinessEdit, Pattern: "/umkm/edit/{id}"},
	{Screen: ScreenBusinessDetail, Pattern: "/umkm/{id}"},
	{Screen: ScreenProductList, Pattern: PathProducts},
	{Screen: ScreenProductNew, Pattern: "/products/new"},
	{Screen: ScreenProductEdit, Pattern: "/products/edit/{id}"},
	{Screen: ScreenProductDetail, Pattern: "/products/{id}"},
	{Screen: ScreenLocation, Pattern: PathLocation},
	{Screen: ScreenProfile, Pattern: PathProfile},
}

// Match is a resolved route with its parameters
type Match struct {
	Params map[string]string
	Route  Route
	Path   string
}

// Param returns a path parameter or an empty string
func (m Match) Param(name string) string {
	return m.Params[name]
}

// Lookup finds the route for path. Query strings and trailing slashes are ignored.
func Lookup(path string) (Match, bool) {
	path = Clean(path)
	segs := split(path)

	for _, r := range Routes {
		if params, ok := matchSegments(split(r.Pattern), segs); ok {
			return Match{Route: r, Params: params, Path: path}, true
		}
	}

	return Match{}, false
}

// Clean normalizes a client path
func Clean(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	return path
}

func split(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func matchSegments(pattern, segs []string) (map[string]string, bool) {
	if len(pattern) != len(segs) {
		return nil, false
	}

	params := map[string]string{}
	for i, p := range pattern {
		if strings.HasPrefix(p, "{") && strings.HasSuffix(p, "}") {
			if segs[i] == "" {
				return nil, false
			}
			params[p[1:len(p)-1]] = segs[i]
			continue
		}
		if p != segs[i] {
			return nil, false
		}
	}

	return params, true
}
