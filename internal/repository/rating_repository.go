package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/glowuphq/glowup-api/internal/models"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	Stats(ctx context.Context, postID string) (avg sql.NullFloat64, total int, err error)
}

type ratingRepository struct {
	db *sql.DB
}

func NewRatingRepository(db *sql.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Create(ctx context.Context, rating *models.Rating) error {
	query := `
		INSERT INTO ratings (post_id, rater_name, score, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, rating.PostID, rating.RaterName, rating.Score, rating.CreatedAt)
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	return nil
}

// Stats returns the average score and rating count for a post. The average
// is NULL when the post has no ratings.
func (r *ratingRepository) Stats(ctx context.Context, postID string) (sql.NullFloat64, int, error) {
	query := `SELECT AVG(score), COUNT(*) FROM ratings WHERE post_id = ?`

	var avg sql.NullFloat64
	var total int
	err := r.db.QueryRowContext(ctx, query, postID).Scan(&avg, &total)
	if err != nil {
		slog.Info(err.Error())
		return sql.NullFloat64{}, 0, err
	}

	return avg, total, nil
}
