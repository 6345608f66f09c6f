package external

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/JosueEspinoza19/barber-ia-functions/internal/domain/repositories"
)

// tokenVerifier is the part of the Firebase auth client we use.
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// FirebaseAuthService resolves callers from Firebase ID tokens.
type FirebaseAuthService struct {
	verifier tokenVerifier
}

func NewFirebaseAuthService(
	ctx context.Context,
	projectID string,
	opts ...option.ClientOption,
) (repositories.CallerAuthenticator, error) {
	var config *firebase.Config
	if projectID != "" {
		config = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, config, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create firebase auth client: %w", err)
	}

	return &FirebaseAuthService{verifier: client}, nil
}

func (s *FirebaseAuthService) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	if idToken == "" {
		return "", errors.New("id token is required")
	}

	token, err := s.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", fmt.Errorf("failed to verify id token: %w", err)
	}

	if token.UID == "" {
		return "", errors.New("id token has no uid")
	}
	return token.UID, nil
}
