package repositories

import "context"

// CallerAuthenticator resolves a bearer token to the caller's identity.
type CallerAuthenticator interface {
	VerifyIDToken(ctx context.Context, idToken string) (string, error)
}
