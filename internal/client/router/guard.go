package router

// Authenticator reports whether a session is present
type Authenticator interface {
	IsAuthenticated() bool
}

// Decision is the outcome of resolving a path through the guard.
// Match is always the screen to render. When the requested path was
// redirected, From holds it and Replace tells to replace the history entry.
type Decision struct {
	Match   Match
	From    string
	Replace bool
}

// Redirected reports whether the requested path was not rendered as is
func (d Decision) Redirected() bool {
	return d.From != ""
}

// Guard resolves paths and redirects visitors without a session to the login screen
type Guard struct {
	auth Authenticator
}

// NewGuard creates a guard backed by auth
func NewGuard(auth Authenticator) *Guard {
	return &Guard{auth: auth}
}

// Resolve decides which screen to show for path before any screen runs.
// Unknown paths go to the home screen, guarded screens without a session
// go to the login screen; both redirects replace the history entry.
func (g *Guard) Resolve(path string) Decision {
	requested := Clean(path)

	m, ok := Lookup(requested)
	if !ok {
		m, _ = Lookup(PathHome)
	}

	if !m.Route.Public && !g.auth.IsAuthenticated() {
		m, _ = Lookup(PathLogin)
	}

	d := Decision{Match: m}
	if m.Path != requested {
		d.From = requested
		d.Replace = true
	}

	return d
}
