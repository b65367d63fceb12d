package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/glowuphq/glowup-api/internal/models"
)

type ReactionRepository interface {
	Create(ctx context.Context, reaction *models.Reaction) error
	CountByEmoji(ctx context.Context, postID string) (map[string]int, error)
}

type reactionRepository struct {
	db *sql.DB
}

func NewReactionRepository(db *sql.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

func (r *reactionRepository) Create(ctx context.Context, reaction *models.Reaction) error {
	query := `
		INSERT INTO reactions (post_id, emoji, created_at)
		VALUES (?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, reaction.PostID, reaction.Emoji, reaction.CreatedAt)
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	return nil
}

func (r *reactionRepository) CountByEmoji(ctx context.Context, postID string) (map[string]int, error) {
	query := `SELECT emoji, COUNT(*) FROM reactions WHERE post_id = ? GROUP BY emoji`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var emoji string
		var count int
		if err := rows.Scan(&emoji, &count); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		counts[emoji] = count
	}
	return counts, rows.Err()
}
