package repository

import (
	"context"
	"testing"

	"textbox/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowRepository_Toggle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	following, err := repo.Toggle(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, following)

	isFollowing, err := repo.IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, isFollowing)

	// the edge is directed
	isFollowing, err = repo.IsFollowing(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, isFollowing)

	// toggling again unfollows
	following, err = repo.Toggle(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, following)

	isFollowing, err = repo.IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, isFollowing)
}

func TestFollowRepository_Toggle_SelfFollow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)

	alice := createTestUser(t, db, "alice")
	_, err := repo.Toggle(context.Background(), alice.ID, alice.ID)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeSelfFollow, appErr.Code)

	var rows int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&rows).Error)
	assert.EqualValues(t, 0, rows)
}

func TestFollowRepository_FollowedIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	_, err := repo.Toggle(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = repo.Toggle(ctx, alice.ID, carol.ID)
	require.NoError(t, err)
	_, err = repo.Toggle(ctx, bob.ID, carol.ID)
	require.NoError(t, err)

	ids, err := repo.FollowedIDs(ctx, alice.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{bob.ID, carol.ID}, ids)

	ids, err = repo.FollowedIDs(ctx, carol.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
