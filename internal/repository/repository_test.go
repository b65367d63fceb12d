package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/glowuphq/glowup-api/internal/database"
	"github.com/glowuphq/glowup-api/internal/models"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func seedPost(t *testing.T, repo PostRepository, id, token string, createdAt time.Time) *models.Post {
	t.Helper()
	post := &models.Post{
		ID:         id,
		Username:   "jess",
		Caption:    "new fit",
		Category:   models.CategoryFit,
		ImageFile:  id + ".jpg",
		ShareToken: token,
		CreatedAt:  createdAt,
	}
	require.NoError(t, repo.Create(context.Background(), post))
	return post
}

func TestPostRepository_GetByToken(t *testing.T) {
	db := setupDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	seedPost(t, repo, "post-1", "tok-1", time.Now().UTC())

	byToken, err := repo.GetByToken(ctx, "tok-1")
	require.NoError(t, err)
	require.NotNil(t, byToken)

	byID, err := repo.GetByToken(ctx, "post-1")
	require.NoError(t, err)
	require.NotNil(t, byID)
	require.Equal(t, byToken, byID)

	missing, err := repo.GetByToken(ctx, "nope")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPostRepository_ListNewestFirst(t *testing.T) {
	db := setupDB(t)
	repo := NewPostRepository(db)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	seedPost(t, repo, "post-old", "tok-old", base)
	seedPost(t, repo, "post-new", "tok-new", base.Add(time.Hour))

	posts, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	require.Equal(t, "post-new", posts[0].ID)
	require.Equal(t, "post-old", posts[1].ID)
}

func TestRatingRepository_Stats(t *testing.T) {
	db := setupDB(t)
	postRepo := NewPostRepository(db)
	ratingRepo := NewRatingRepository(db)
	ctx := context.Background()

	post := seedPost(t, postRepo, "post-1", "tok-1", time.Now().UTC())

	avg, total, err := ratingRepo.Stats(ctx, post.ID)
	require.NoError(t, err)
	require.False(t, avg.Valid)
	require.Equal(t, 0, total)

	for _, score := range []int{8, 6, 10} {
		require.NoError(t, ratingRepo.Create(ctx, &models.Rating{
			PostID:    post.ID,
			RaterName: "Anonymous",
			Score:     score,
			CreatedAt: time.Now().UTC(),
		}))
	}

	avg, total, err = ratingRepo.Stats(ctx, post.ID)
	require.NoError(t, err)
	require.True(t, avg.Valid)
	require.InDelta(t, 8.0, avg.Float64, 0.001)
	require.Equal(t, 3, total)
}

func TestReactionRepository_CountByEmoji(t *testing.T) {
	db := setupDB(t)
	postRepo := NewPostRepository(db)
	reactionRepo := NewReactionRepository(db)
	ctx := context.Background()

	post := seedPost(t, postRepo, "post-1", "tok-1", time.Now().UTC())

	counts, err := reactionRepo.CountByEmoji(ctx, post.ID)
	require.NoError(t, err)
	require.Empty(t, counts)

	for _, emoji := range []string{"🔥", "🔥", "😍"} {
		require.NoError(t, reactionRepo.Create(ctx, &models.Reaction{
			PostID:    post.ID,
			Emoji:     emoji,
			CreatedAt: time.Now().UTC(),
		}))
	}

	counts, err = reactionRepo.CountByEmoji(ctx, post.ID)
	require.NoError(t, err)
	require.Equal(t, map[string]int{"🔥": 2, "😍": 1}, counts)
}

func TestPostRepository_RemoveCascades(t *testing.T) {
	db := setupDB(t)
	postRepo := NewPostRepository(db)
	ratingRepo := NewRatingRepository(db)
	reactionRepo := NewReactionRepository(db)
	ctx := context.Background()

	post := seedPost(t, postRepo, "post-1", "tok-1", time.Now().UTC())
	require.NoError(t, ratingRepo.Create(ctx, &models.Rating{PostID: post.ID, RaterName: "mia", Score: 9, CreatedAt: time.Now().UTC()}))
	require.NoError(t, reactionRepo.Create(ctx, &models.Reaction{PostID: post.ID, Emoji: "🔥", CreatedAt: time.Now().UTC()}))

	require.NoError(t, postRepo.Remove(ctx, post.ID))

	gone, err := postRepo.GetByToken(ctx, post.ID)
	require.NoError(t, err)
	require.Nil(t, gone)

	_, total, err := ratingRepo.Stats(ctx, post.ID)
	require.NoError(t, err)
	require.Equal(t, 0, total)

	counts, err := reactionRepo.CountByEmoji(ctx, post.ID)
	require.NoError(t, err)
	require.Empty(t, counts)
}
