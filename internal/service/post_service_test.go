package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"textbox/internal/contentfilter"
	"textbox/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPostRepo struct {
	mock.Mock
}

func (m *mockPostRepo) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *mockPostRepo) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*models.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostRepo) Recent(ctx context.Context, window time.Duration) ([]*models.Post, error) {
	args := m.Called(ctx, window)
	if p := args.Get(0); p != nil {
		return p.([]*models.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostRepo) RecentByAuthors(ctx context.Context, authorIDs []uint, window time.Duration) ([]*models.Post, error) {
	args := m.Called(ctx, authorIDs, window)
	if p := args.Get(0); p != nil {
		return p.([]*models.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostRepo) TopByLikes(ctx context.Context, window time.Duration, limit int) ([]*models.Post, error) {
	args := m.Called(ctx, window, limit)
	if p := args.Get(0); p != nil {
		return p.([]*models.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockLikeRepo struct {
	mock.Mock
}

func (m *mockLikeRepo) Toggle(ctx context.Context, userID, postID uint) (int, bool, error) {
	args := m.Called(ctx, userID, postID)
	return args.Int(0), args.Bool(1), args.Error(2)
}

func (m *mockLikeRepo) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	args := m.Called(ctx, userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *mockLikeRepo) LikedPostIDs(ctx context.Context, userID uint, postIDs []uint) ([]uint, error) {
	args := m.Called(ctx, userID, postIDs)
	if ids := args.Get(0); ids != nil {
		return ids.([]uint), args.Error(1)
	}
	return nil, args.Error(1)
}

func newTestPostService(postRepo *mockPostRepo, likeRepo *mockLikeRepo) *PostService {
	return NewPostService(postRepo, likeRepo, contentfilter.New(nil))
}

func TestPostService_CreatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("stores filtered content", func(t *testing.T) {
		postRepo := new(mockPostRepo)
		postRepo.On("Create", ctx, mock.MatchedBy(func(p *models.Post) bool {
			return p.Content == "this is a **** test" && p.UserID != nil && *p.UserID == 7
		})).Return(nil)

		svc := newTestPostService(postRepo, new(mockLikeRepo))
		post, err := svc.CreatePost(ctx, 7, "  this is a badword1 test  ")
		require.NoError(t, err)
		assert.Equal(t, "this is a **** test", post.Content)
		postRepo.AssertExpectations(t)
	})

	t.Run("rejects empty content", func(t *testing.T) {
		svc := newTestPostService(new(mockPostRepo), new(mockLikeRepo))
		_, err := svc.CreatePost(ctx, 7, "   ")

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeValidation, appErr.Code)
	})

	t.Run("rejects content over the limit", func(t *testing.T) {
		svc := newTestPostService(new(mockPostRepo), new(mockLikeRepo))
		_, err := svc.CreatePost(ctx, 7, strings.Repeat("a", 281))

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeValidation, appErr.Code)
	})

	t.Run("accepts content at the limit", func(t *testing.T) {
		postRepo := new(mockPostRepo)
		postRepo.On("Create", ctx, mock.Anything).Return(nil)

		svc := newTestPostService(postRepo, new(mockLikeRepo))
		_, err := svc.CreatePost(ctx, 7, strings.Repeat("a", 280))
		assert.NoError(t, err)
	})

	t.Run("limit counts characters not bytes", func(t *testing.T) {
		postRepo := new(mockPostRepo)
		postRepo.On("Create", ctx, mock.Anything).Return(nil)

		svc := newTestPostService(postRepo, new(mockLikeRepo))
		// 280 CJK characters are 840 bytes but still within the limit
		_, err := svc.CreatePost(ctx, 7, strings.Repeat("世", 280))
		assert.NoError(t, err)
	})

	t.Run("rejects 281 multi-byte characters", func(t *testing.T) {
		svc := newTestPostService(new(mockPostRepo), new(mockLikeRepo))
		_, err := svc.CreatePost(ctx, 7, strings.Repeat("世", 281))

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeValidation, appErr.Code)
	})
}

func TestPostService_ToggleLike(t *testing.T) {
	ctx := context.Background()

	t.Run("returns counter and state", func(t *testing.T) {
		likeRepo := new(mockLikeRepo)
		likeRepo.On("Toggle", ctx, uint(7), uint(42)).Return(3, true, nil)

		svc := newTestPostService(new(mockPostRepo), likeRepo)
		likes, liked, err := svc.ToggleLike(ctx, 7, 42)
		require.NoError(t, err)
		assert.Equal(t, 3, likes)
		assert.True(t, liked)
	})

	t.Run("propagates not found", func(t *testing.T) {
		likeRepo := new(mockLikeRepo)
		likeRepo.On("Toggle", ctx, uint(7), uint(42)).
			Return(0, false, models.NewNotFoundError("Post", 42))

		svc := newTestPostService(new(mockPostRepo), likeRepo)
		_, _, err := svc.ToggleLike(ctx, 7, 42)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})
}
