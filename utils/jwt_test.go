package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IsuruKaushika/UNITUNES-sub000/ownership"
)

var testSecret = []byte("test-secret")

func TestJWTRoundTrip(t *testing.T) {
	tokenStr, err := GenerateJWT(testSecret, "S1", ownership.RoleStudent)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	p, err := ValidateJWT(testSecret, tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "S1", p.ID)
	assert.Equal(t, ownership.RoleStudent, p.Role)
}

func TestJWTWrongSecret(t *testing.T) {
	tokenStr, err := GenerateJWT(testSecret, "admin", ownership.RoleAdmin)
	require.NoError(t, err)

	_, err = ValidateJWT([]byte("other-secret"), tokenStr)
	assert.Error(t, err)
}

func TestJWTGarbageToken(t *testing.T) {
	_, err := ValidateJWT(testSecret, "not.a.token")
	assert.Error(t, err)
}

func TestJWTUnknownRoleRejected(t *testing.T) {
	tokenStr, err := GenerateJWT(testSecret, "X", ownership.Role("superuser"))
	require.NoError(t, err)

	_, err = ValidateJWT(testSecret, tokenStr)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, CheckPasswordHash("hunter2", hash))
	assert.False(t, CheckPasswordHash("hunter3", hash))
}
