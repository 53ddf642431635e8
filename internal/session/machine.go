// Package session turns the identity provider's session stream into the
// three-state machine the router gates on. The machine starts Initializing,
// leaves that state exactly once on the first session report (a "no session"
// report resolves to Unauthenticated, not an error), and thereafter moves
// between Authenticated and Unauthenticated as the provider reports
// sign-ins and sign-outs.
package session

import (
	"context"
	"sync"

	"pawfinder/internal/domain"
	"pawfinder/internal/identity"
)

type State int

const (
	Initializing State = iota
	Authenticated
	Unauthenticated
)

func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Authenticated:
		return "authenticated"
	case Unauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

type Machine struct {
	provider identity.Provider

	mu        sync.Mutex
	state     State
	session   *domain.Session
	next      int
	listeners map[int]func(State, *domain.Session)
	unsub     func()
}

// New wires the machine to the provider's change stream. The machine stays
// Initializing until Start performs the initial read or the provider reports
// a change, whichever comes first.
func New(provider identity.Provider) *Machine {
	m := &Machine{
		provider:  provider,
		state:     Initializing,
		listeners: make(map[int]func(State, *domain.Session)),
	}
	m.unsub = provider.OnSessionChange(m.apply)
	return m
}

// Start performs the initial session read. A read error resolves to
// Unauthenticated rather than propagating: an unconfigured or unreachable
// provider means nobody is signed in.
func (m *Machine) Start(ctx context.Context) {
	sess, err := m.provider.Session(ctx)
	if err != nil {
		sess = nil
	}
	m.apply(sess)
}

// Current returns the state and, when Authenticated, the cached session.
func (m *Machine) Current() (State, *domain.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state, m.session
}

// OnChange registers a listener invoked after every state transition.
func (m *Machine) OnChange(fn func(State, *domain.Session)) (unsubscribe func()) {
	m.mu.Lock()
	m.next++
	id := m.next
	m.listeners[id] = fn
	m.mu.Unlock()
	return func() {
		m.mu.Lock()
		delete(m.listeners, id)
		m.mu.Unlock()
	}
}

// Close detaches from the provider's stream. The machine keeps its last
// resolved state; it never returns to Initializing.
func (m *Machine) Close() {
	if m.unsub != nil {
		m.unsub()
	}
}

func (m *Machine) apply(sess *domain.Session) {
	state := Unauthenticated
	if sess != nil {
		state = Authenticated
	}

	m.mu.Lock()
	m.state = state
	m.session = sess
	listeners := make([]func(State, *domain.Session), 0, len(m.listeners))
	for _, fn := range m.listeners {
		listeners = append(listeners, fn)
	}
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(state, sess)
	}
}
