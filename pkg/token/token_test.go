package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	issued, err := GenerateJWT(7, "coach", "secret", 15)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.ID)

	claims, err := ValidateJWT(issued.Token, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "coach", claims.Role)
	assert.Equal(t, issued.ID, claims.ID)

	other, err := GenerateJWT(7, "coach", "secret", 15)
	require.NoError(t, err)
	assert.NotEqual(t, issued.ID, other.ID)
}

func TestValidateRejects(t *testing.T) {
	issued, err := GenerateJWT(7, "coach", "secret", 15)
	require.NoError(t, err)

	_, err = ValidateJWT(issued.Token, "other-secret")
	assert.ErrorIs(t, err, ErrSignature)

	expired, err := GenerateJWT(7, "coach", "secret", -1)
	require.NoError(t, err)
	_, err = ValidateJWT(expired.Token, "secret")
	assert.ErrorIs(t, err, ErrExpired)

	_, err = ValidateJWT("", "secret")
	assert.ErrorIs(t, err, ErrMissing)

	_, err = ValidateJWT("not-a-token", "secret")
	assert.ErrorIs(t, err, ErrMalformed)
}
