// File: internal/auth/verifier.go
package auth

import (
	"context"
	"fmt"

	fbauth "firebase.google.com/go/v4/auth"
)

// TokenVerifier validates a bearer ID token and returns the subject UID.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (string, error)
}

// firebaseVerifier delegates validation to the Firebase Admin SDK, which
// checks the Google signature, expiry, and audience.
type firebaseVerifier struct {
	client *fbauth.Client
}

// NewFirebaseVerifier wraps an initialized Firebase auth client.
func NewFirebaseVerifier(client *fbauth.Client) TokenVerifier {
	return &firebaseVerifier{client: client}
}

func (v *firebaseVerifier) Verify(ctx context.Context, idToken string) (string, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	return token.UID, nil
}
