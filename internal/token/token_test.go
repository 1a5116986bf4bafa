package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuer_RoundTrip(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	tests := []struct {
		name   string
		userID uint
		role   string
	}{
		{"student", 1, "student"},
		{"tutor", 42, "tutor"},
		{"admin", 7, "admin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signed, expiresAt, err := issuer.Issue(tt.userID, tt.role)
			require.NoError(t, err)
			assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

			identity, err := issuer.Verify(signed)
			require.NoError(t, err)
			assert.Equal(t, &Identity{UserID: tt.userID, Role: tt.role}, identity)
		})
	}
}

func TestIssuer_Expired(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	base := time.Now()
	issuer.now = func() time.Time { return base }

	signed, _, err := issuer.Issue(1, "student")
	require.NoError(t, err)

	issuer.now = func() time.Time { return base.Add(59 * time.Minute) }
	_, err = issuer.Verify(signed)
	assert.NoError(t, err)

	issuer.now = func() time.Time { return base.Add(61 * time.Minute) }
	_, err = issuer.Verify(signed)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestIssuer_Rejects(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	other := NewIssuer("other-secret", time.Hour)

	foreign, _, err := other.Issue(1, "admin")
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		Role:             "admin",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "1"},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"empty", ""},
		{"wrong secret", foreign},
		{"alg none", noneToken},
		{"missing role", noRole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := issuer.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
