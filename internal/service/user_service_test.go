package service

import (
	"testing"

	"quizdeck_backend/internal/model"
	"quizdeck_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db), nil)
	user := seedUser(t, db, "alice@example.com")

	updated, err := svc.UpdateProfile(user.ID, ProfileUpdateRequest{
		Name:   "Alice Cooper",
		Avatar: "https://example.com/a.png",
		Bio:    "quiz enthusiast",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Cooper", updated.Name)

	var stored model.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, "Alice Cooper", stored.Name)
	assert.Equal(t, "quiz enthusiast", stored.Bio)
}

func TestLeaderboard_OrdersByXP(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db), nil)

	low := seedUser(t, db, "low@example.com")
	high := seedUser(t, db, "high@example.com")
	mid := seedUser(t, db, "mid@example.com")
	require.NoError(t, db.Model(&model.User{}).Where("id = ?", low.ID).Update("total_xp", 10).Error)
	require.NoError(t, db.Model(&model.User{}).Where("id = ?", high.ID).Update("total_xp", 300).Error)
	require.NoError(t, db.Model(&model.User{}).Where("id = ?", mid.ID).Update("total_xp", 120).Error)

	entries, err := svc.Leaderboard()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, high.ID, entries[0].UserID)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, mid.ID, entries[1].UserID)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, low.ID, entries[2].UserID)
	assert.Equal(t, 3, entries[2].Rank)
}
