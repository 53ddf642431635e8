package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawfinder/internal/domain"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestSessionFromToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub":   "user-1",
		"email": "asha@example.com",
		"user_metadata": map[string]any{
			"full_name": "Asha",
			"phone":     "555-0101",
		},
	})

	sess, err := SessionFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sess.ID)
	assert.Equal(t, "asha@example.com", sess.Email)
	assert.Equal(t, "Asha", sess.Metadata["full_name"])
	assert.Equal(t, "Asha", sess.DisplayName())
}

func TestSessionFromTokenRejectsGarbage(t *testing.T) {
	_, err := SessionFromToken("not-a-jwt")
	assert.Error(t, err)

	_, err = SessionFromToken(signToken(t, jwt.MapClaims{"email": "x@example.com"}))
	assert.Error(t, err, "a token without a subject is unusable")
}

func TestDisabledProviderUniformErrors(t *testing.T) {
	p := Disabled{}
	ctx := context.Background()

	sess, err := p.Session(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess, "no provider means nobody is signed in, not an error")

	_, err = p.SignIn(ctx, "a@example.com", "pw")
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
	_, err = p.SignUp(ctx, "a@example.com", "pw", nil)
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
	assert.ErrorIs(t, p.SignOut(ctx), domain.ErrNotConfigured)
	assert.ErrorIs(t, p.UpdateProfile(ctx, nil), domain.ErrNotConfigured)
	assert.ErrorIs(t, p.DeleteAccount(ctx), domain.ErrUnsupported)
}

func TestHTTPProviderSignInAndOut(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"sub": "user-1", "email": "asha@example.com"})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/v1/token":
			require.Equal(t, "password", r.URL.Query().Get("grant_type"))
			require.Equal(t, "anon-key", r.Header.Get("apikey"))
			_ = json.NewEncoder(w).Encode(map[string]string{"access_token": token})
		case "/auth/v1/logout":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, "anon-key", srv.Client(), nil)
	var reported []*domain.Session
	unsubscribe := p.OnSessionChange(func(s *domain.Session) { reported = append(reported, s) })
	defer unsubscribe()

	sess, err := p.SignIn(context.Background(), "asha@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "user-1", sess.ID)

	cached, err := p.Session(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sess, cached)

	require.NoError(t, p.SignOut(context.Background()))
	cached, _ = p.Session(context.Background())
	assert.Nil(t, cached)

	require.Len(t, reported, 2)
	assert.NotNil(t, reported[0])
	assert.Nil(t, reported[1])
}

func TestHTTPProviderSignInFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error_description": "Invalid login credentials"})
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, "anon-key", srv.Client(), nil)
	_, err := p.SignIn(context.Background(), "asha@example.com", "wrong")
	assert.ErrorContains(t, err, "Invalid login credentials")

	cached, _ := p.Session(context.Background())
	assert.Nil(t, cached)
}

func TestHTTPProviderDeleteAccount(t *testing.T) {
	p := NewHTTPProvider("http://unused", "k", nil, nil)
	assert.ErrorIs(t, p.DeleteAccount(context.Background()), domain.ErrUnsupported)
}
