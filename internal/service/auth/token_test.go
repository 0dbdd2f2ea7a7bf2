package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestIssuer(lifetime time.Duration, at time.Time) *TokenIssuer {
	issuer := NewTokenIssuer(testSecret, lifetime)
	issuer.now = func() time.Time { return at }
	return issuer
}

func TestTokenIssuer_IssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour)

	signed, err := issuer.Issue(42)
	require.NoError(t, err)

	id, err := issuer.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestTokenIssuer_Claims(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	issuer := newTestIssuer(30*time.Minute, at)

	signed, err := issuer.Issue(7)
	require.NoError(t, err)

	parsed, err := jwt.Parse(signed, func(*jwt.Token) (any, error) {
		return []byte(testSecret), nil
	}, jwt.WithTimeFunc(func() time.Time { return at }))
	require.NoError(t, err)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "access_token", claims["type"])
	assert.Equal(t, "7", claims["sub"])
	assert.Equal(t, float64(at.Unix()), claims["iat"])
	assert.Equal(t, float64(at.Add(30*time.Minute).Unix()), claims["exp"])
}

func TestTokenIssuer_Verify_Expired(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	issuer := newTestIssuer(time.Hour, issued)

	signed, err := issuer.Issue(7)
	require.NoError(t, err)

	issuer.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = issuer.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_Verify_WrongSecret(t *testing.T) {
	signed, err := NewTokenIssuer(testSecret, time.Hour).Issue(7)
	require.NoError(t, err)

	other := NewTokenIssuer("ffffffffffffffffffffffffffffffff", time.Hour)
	_, err = other.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_Verify_WrongAlgorithm(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour)

	// alg=none tokens must never verify.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"type": "access_token",
		"sub":  "7",
	})
	signed, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = issuer.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_Verify_WrongType(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"type": "refresh_token",
		"sub":  "7",
		"exp":  jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = issuer.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_Verify_Garbage(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour)

	for _, tok := range []string{"", "not.a.jwt", "a.b"} {
		_, err := issuer.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
