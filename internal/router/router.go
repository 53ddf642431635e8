// Package router maps paths to view identifiers and reacts to navigation.
// Session gating is applied uniformly before table lookup: while the session
// is still resolving only the loading placeholder renders, and an
// unauthenticated session renders the login view whatever path was asked
// for. Only an authenticated session reaches the path table.
package router

import (
	"sync"

	"pawfinder/internal/domain"
	"pawfinder/internal/session"
)

// View identifies what should render for the current path and session state.
type View string

const (
	ViewLoading     View = "loading"
	ViewLogin       View = "login"
	ViewHome        View = "home"
	ViewPredict     View = "predict"
	ViewMarketplace View = "marketplace"
	ViewAbout       View = "about"
	ViewContact     View = "contact"
	ViewCart        View = "cart"
	ViewOrders      View = "orders"
	ViewHistory     View = "history"
	ViewFeedback    View = "feedback"
	ViewProfile     View = "profile"
	ViewProfileEdit View = "profile-edit"
)

// viewsByPath is the finite lookup table of known paths. Unmatched paths
// fall back to the home view.
var viewsByPath = map[string]View{
	"/":             ViewHome,
	"/predict":      ViewPredict,
	"/marketplace":  ViewMarketplace,
	"/about":        ViewAbout,
	"/contact":      ViewContact,
	"/cart":         ViewCart,
	"/orders":       ViewOrders,
	"/history":      ViewHistory,
	"/feedback":     ViewFeedback,
	"/profile":      ViewProfile,
	"/profile/edit": ViewProfileEdit,
}

// SessionSource is the slice of the session machine the router consults.
type SessionSource interface {
	Current() (session.State, *domain.Session)
}

type Router struct {
	sessions SessionSource

	mu          sync.Mutex
	path        string
	back        []string
	next        int
	listeners   []listener
	resetScroll func()
}

type listener struct {
	id int
	fn func(path string)
}

// New builds a router at initialPath. resetScroll is the side effect run on
// every path change; nil is allowed.
func New(initialPath string, sessions SessionSource, resetScroll func()) *Router {
	if initialPath == "" {
		initialPath = "/"
	}
	return &Router{
		sessions:    sessions,
		path:        initialPath,
		resetScroll: resetScroll,
	}
}

func (r *Router) Path() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.path
}

// Navigate pushes a new entry and notifies listeners exactly as an external
// back/forward navigation would. Navigating to the current path is a no-op:
// no history entry, no notification, no scroll reset.
func (r *Router) Navigate(path string) {
	r.mu.Lock()
	if path == r.path {
		r.mu.Unlock()
		return
	}
	r.back = append(r.back, r.path)
	r.path = path
	listeners := r.snapshotLocked()
	r.mu.Unlock()

	r.dispatch(path, listeners)
}

// Back pops the previous entry, mirroring externally-originated history
// navigation. It reports whether there was anywhere to go back to.
func (r *Router) Back() bool {
	r.mu.Lock()
	if len(r.back) == 0 {
		r.mu.Unlock()
		return false
	}
	path := r.back[len(r.back)-1]
	r.back = r.back[:len(r.back)-1]
	r.path = path
	listeners := r.snapshotLocked()
	r.mu.Unlock()

	r.dispatch(path, listeners)
	return true
}

// OnNavigate registers a listener invoked after every path change, in
// registration order.
func (r *Router) OnNavigate(fn func(path string)) (unsubscribe func()) {
	r.mu.Lock()
	r.next++
	id := r.next
	r.listeners = append(r.listeners, listener{id: id, fn: fn})
	r.mu.Unlock()
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		for i, l := range r.listeners {
			if l.id == id {
				r.listeners = append(r.listeners[:i:i], r.listeners[i+1:]...)
				return
			}
		}
	}
}

// View resolves the current path through the session gate and path table.
func (r *Router) View() View {
	return r.Resolve(r.Path())
}

// Resolve applies the gating rule, then the exact-match path table.
func (r *Router) Resolve(path string) View {
	state, _ := r.sessions.Current()
	switch state {
	case session.Initializing:
		return ViewLoading
	case session.Unauthenticated:
		return ViewLogin
	}
	if view, ok := viewsByPath[path]; ok {
		return view
	}
	return ViewHome
}

func (r *Router) snapshotLocked() []listener {
	listeners := make([]listener, len(r.listeners))
	copy(listeners, r.listeners)
	return listeners
}

func (r *Router) dispatch(path string, listeners []listener) {
	for _, l := range listeners {
		l.fn(path)
	}
	if r.resetScroll != nil {
		r.resetScroll()
	}
}
