package nav

import (
	"context"
	"fmt"

	"github.com/bloodlink/admincli/internal/logging"
)

// Screen is one navigable screen of the dashboard. Load, when set, is invoked
// each time the screen is entered; the route-entry fetch keeps
// data loading out of the data layer itself.
type Screen struct {
	Path        string
	RequireAuth bool
	Load        func(ctx context.Context)
}

// Session is the slice of the session gate the router needs.
type Session interface {
	IsAuthenticated() bool
	IsLoading() bool
}

// Router tracks the current screen and applies the guard on every transition.
// The redirect is applied at most once per Navigate call, so guarded targets
// cannot chase each other in a loop.
type Router struct {
	session Session
	screens map[string]*Screen
	current string
	from    string
	log     logging.Logger
}

func NewRouter(log logging.Logger) *Router {
	return &Router{screens: make(map[string]*Screen), log: log}
}

// SetSession binds the session gate. Done after construction because the gate
// needs the router as its navigator.
func (r *Router) SetSession(s Session) { r.session = s }

func (r *Router) Add(s *Screen) { r.screens[s.Path] = s }

func (r *Router) Current() string { return r.current }

// ConsumeFrom returns the path that was requested before the last redirect to
// the login screen, clearing it. Empty when there is none.
func (r *Router) ConsumeFrom() string {
	from := r.from
	r.from = ""
	return from
}

// Navigate moves to path, subject to the guard. Unknown paths are an error;
// guard redirects are followed once and the final screen's Load hook runs.
func (r *Router) Navigate(ctx context.Context, path string) error {
	s, ok := r.screens[path]
	if !ok {
		return fmt.Errorf("unknown screen %q", path)
	}

	d := Decide(s.RequireAuth, r.session.IsAuthenticated(), r.session.IsLoading())
	if d.Redirect != "" {
		if d.Redirect == PathLogin {
			// Remember where the user wanted to go for the post-login return.
			r.from = path
		}
		r.log.Debug(ctx, "guard redirect", "requested", path, "target", d.Redirect)
		r.enter(ctx, r.screens[d.Redirect])
		return nil
	}
	if !d.RenderChildren {
		// Session restore still in progress; stay where we are.
		return nil
	}

	r.enter(ctx, s)
	return nil
}

func (r *Router) enter(ctx context.Context, s *Screen) {
	if s == nil {
		return
	}
	r.current = s.Path
	if s.Load != nil {
		s.Load(ctx)
	}
}

// NavigateTo satisfies the session gate's Navigator. Errors are logged, not
// surfaced: the gate's own operation already succeeded.
func (r *Router) NavigateTo(path string) {
	if err := r.Navigate(context.Background(), path); err != nil {
		r.log.Warn(context.Background(), "navigation failed", "path", path, "err", err)
	}
}
