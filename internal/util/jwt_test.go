package util

import (
	"testing"
	"time"

	"quizdeck_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	user := &model.User{Email: "alice@example.com"}
	user.ID = 7

	token, err := GenerateJWT(user, "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	assert.EqualValues(t, 7, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	user := &model.User{Email: "alice@example.com"}
	user.ID = 7

	token, err := GenerateJWT(user, "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "other")
	assert.Error(t, err)
}

func TestParseJWT_Expired(t *testing.T) {
	user := &model.User{Email: "alice@example.com"}
	user.ID = 7

	token, err := GenerateJWT(user, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret")
	assert.Error(t, err)
}
