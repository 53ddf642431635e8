package identity

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"pawfinder/internal/domain"
)

// SessionFromToken extracts {id, email, metadata} from a provider-issued
// access token. The signature is not verified: the token was just handed to
// us by the provider over the same channel, and the app treats the session
// as a read-only cache, not a credential.
func SessionFromToken(token string) (*domain.Session, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("parse access token: %w", err)
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, fmt.Errorf("access token carries no subject")
	}
	email, _ := claims["email"].(string)
	metadata, _ := claims["user_metadata"].(map[string]any)

	return &domain.Session{ID: sub, Email: email, Metadata: metadata}, nil
}
