package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/glowuphq/glowup-api/internal/models"
)

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByToken(ctx context.Context, token string) (*models.Post, error)
	List(ctx context.Context) ([]*models.Post, error)
	Remove(ctx context.Context, id string) error
}

type postRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (id, username, caption, category, image_file, share_token, pin_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.Username, post.Caption, post.Category,
		post.ImageFile, post.ShareToken, post.PinHash, post.CreatedAt)
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	return nil
}

// GetByToken resolves either the public share token or the raw post id.
// Returns nil without error when neither matches.
func (r *postRepository) GetByToken(ctx context.Context, token string) (*models.Post, error) {
	query := `SELECT id, username, caption, category, image_file, share_token, pin_hash, created_at FROM posts WHERE share_token = ? OR id = ?`
	row := r.db.QueryRowContext(ctx, query, token, token)

	var post models.Post
	err := row.Scan(&post.ID, &post.Username, &post.Caption, &post.Category, &post.ImageFile, &post.ShareToken, &post.PinHash, &post.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	return &post, nil
}

func (r *postRepository) List(ctx context.Context) ([]*models.Post, error) {
	query := `SELECT id, username, caption, category, image_file, share_token, pin_hash, created_at FROM posts ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		var post models.Post
		err := rows.Scan(&post.ID, &post.Username, &post.Caption, &post.Category, &post.ImageFile, &post.ShareToken, &post.PinHash, &post.CreatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		posts = append(posts, &post)
	}
	return posts, rows.Err()
}

func (r *postRepository) Remove(ctx context.Context, id string) error {
	query := `DELETE FROM posts WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)

	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
