package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawfinder/internal/domain"
	"pawfinder/internal/identity"
)

// fakeProvider drives the machine from tests.
type fakeProvider struct {
	identity.Disabled
	session   *domain.Session
	err       error
	report    func(*domain.Session)
	unsubbed  bool
	subscribe int
}

func (p *fakeProvider) Session(context.Context) (*domain.Session, error) {
	return p.session, p.err
}

func (p *fakeProvider) OnSessionChange(fn func(*domain.Session)) func() {
	p.subscribe++
	p.report = fn
	return func() { p.unsubbed = true }
}

func TestStartsInitializing(t *testing.T) {
	m := New(&fakeProvider{})
	state, sess := m.Current()
	assert.Equal(t, Initializing, state)
	assert.Nil(t, sess)
}

func TestFirstReportOfNoSessionResolvesUnauthenticated(t *testing.T) {
	m := New(&fakeProvider{})
	m.Start(context.Background())
	state, sess := m.Current()
	assert.Equal(t, Unauthenticated, state)
	assert.Nil(t, sess)
}

func TestInitialReadErrorResolvesUnauthenticated(t *testing.T) {
	m := New(&fakeProvider{err: errors.New("provider unreachable")})
	m.Start(context.Background())
	state, _ := m.Current()
	assert.Equal(t, Unauthenticated, state)
}

func TestInitialSessionResolvesAuthenticated(t *testing.T) {
	user := &domain.Session{ID: "u1", Email: "u1@example.com"}
	m := New(&fakeProvider{session: user})
	m.Start(context.Background())
	state, sess := m.Current()
	assert.Equal(t, Authenticated, state)
	assert.Equal(t, user, sess)
}

func TestSignInSignOutTransitions(t *testing.T) {
	p := &fakeProvider{}
	m := New(p)
	m.Start(context.Background())

	var states []State
	m.OnChange(func(s State, _ *domain.Session) { states = append(states, s) })

	p.report(&domain.Session{ID: "u1"})
	p.report(nil)
	p.report(&domain.Session{ID: "u2"})

	assert.Equal(t, []State{Authenticated, Unauthenticated, Authenticated}, states)
	state, sess := m.Current()
	assert.Equal(t, Authenticated, state)
	require.NotNil(t, sess)
	assert.Equal(t, "u2", sess.ID)
}

func TestOnChangeUnsubscribe(t *testing.T) {
	p := &fakeProvider{}
	m := New(p)
	calls := 0
	unsubscribe := m.OnChange(func(State, *domain.Session) { calls++ })

	p.report(nil)
	unsubscribe()
	p.report(&domain.Session{ID: "u1"})

	assert.Equal(t, 1, calls)
}

func TestCloseDetachesFromProvider(t *testing.T) {
	p := &fakeProvider{}
	m := New(p)
	require.Equal(t, 1, p.subscribe)
	m.Close()
	assert.True(t, p.unsubbed)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "initializing", Initializing.String())
	assert.Equal(t, "authenticated", Authenticated.String())
	assert.Equal(t, "unauthenticated", Unauthenticated.String())
}
