package external

import (
	"context"
	"errors"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	token *auth.Token
	err   error
	calls int
}

func (v *stubVerifier) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	v.calls++
	return v.token, v.err
}

func TestFirebaseAuthService_VerifyIDToken(t *testing.T) {
	tests := []struct {
		name     string
		idToken  string
		verifier *stubVerifier
		wantUID  string
		wantErr  bool
		wantCall bool
	}{
		{
			name:     "valid token",
			idToken:  "token",
			verifier: &stubVerifier{token: &auth.Token{UID: "user-1"}},
			wantUID:  "user-1",
			wantCall: true,
		},
		{
			name:     "empty token is rejected without a lookup",
			idToken:  "",
			verifier: &stubVerifier{},
			wantErr:  true,
		},
		{
			name:     "verification failure",
			idToken:  "expired",
			verifier: &stubVerifier{err: errors.New("ID token has expired")},
			wantErr:  true,
			wantCall: true,
		},
		{
			name:     "token without uid",
			idToken:  "token",
			verifier: &stubVerifier{token: &auth.Token{}},
			wantErr:  true,
			wantCall: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &FirebaseAuthService{verifier: tt.verifier}

			uid, err := service.VerifyIDToken(context.Background(), tt.idToken)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantUID, uid)
			assert.Equal(t, tt.wantCall, tt.verifier.calls == 1)
		})
	}
}
