package utils_test

import (
	"testing"
	"time"

	"github.com/SscSPs/advisor_client_app/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	secret := "test-secret-key-that-is-long-enough"
	issuedAt := time.Now()

	tok, err := utils.GenerateJWT("a@x.com", "advisor", secret, 24*time.Hour, "advisor-test", issuedAt)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := utils.ParseAndValidateJWT(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "a@x.com", claims.Subject)
	assert.Equal(t, "advisor", claims.Role)
	assert.Equal(t, "advisor-test", claims.Issuer)
	assert.WithinDuration(t, issuedAt.Add(24*time.Hour), claims.ExpiresAt.Time, time.Second)

	parsed, _, err := jwt.NewParser().ParseUnverified(tok, &utils.SessionClaims{})
	require.NoError(t, err)
	assert.Equal(t, jwt.SigningMethodHS512.Alg(), parsed.Method.Alg())
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	secret := "secret"
	tok, err := utils.GenerateJWT("a@x.com", "advisor", secret, time.Hour, "iss", time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(tok, secret)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	tok, err := utils.GenerateJWT("a@x.com", "advisor", "right-secret", time.Hour, "iss", time.Now())
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(tok, "wrong-secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestParseAndValidateJWT_RejectsNoneAlg(t *testing.T) {
	claims := utils.SessionClaims{
		Email: "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(tok, "secret")
	require.Error(t, err)
}
