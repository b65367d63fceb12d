package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/glowuphq/glowup-api/internal/models"
	"github.com/glowuphq/glowup-api/internal/repository"
	"github.com/glowuphq/glowup-api/internal/transfer"
	"github.com/glowuphq/glowup-api/pkg/utils"
)

const shareTokenLength = 8

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrInvalidPin       = errors.New("invalid PIN")
	ErrInvalidScore     = errors.New("score must be 1-10")
	ErrNotAnImage       = errors.New("file must be an image")
	ErrUsernameRequired = errors.New("username is required")
)

type PostService interface {
	Create(ctx context.Context, pc *transfer.PostCreation, image *multipart.FileHeader) (*transfer.PostCreated, error)
	List(ctx context.Context, baseURL string) ([]*transfer.PostResponse, error)
	Get(ctx context.Context, token, baseURL string) (*transfer.PostResponse, error)
	Rate(ctx context.Context, token, raterName string, score int) (*transfer.PostStats, error)
	React(ctx context.Context, token, emoji string) (map[string]int, error)
	Remove(ctx context.Context, token, pin string) error
}

type postService struct {
	pr        repository.PostRepository
	rr        repository.RatingRepository
	re        repository.ReactionRepository
	uploadDir string
}

func NewPostService(
	pr repository.PostRepository,
	rr repository.RatingRepository,
	re repository.ReactionRepository,
	uploadDir string) PostService {
	return &postService{
		pr:        pr,
		rr:        rr,
		re:        re,
		uploadDir: uploadDir,
	}
}

func (s *postService) Create(ctx context.Context, pc *transfer.PostCreation, image *multipart.FileHeader) (*transfer.PostCreated, error) {
	if pc == nil || pc.Username == "" {
		slog.Info(ErrUsernameRequired.Error())
		return nil, ErrUsernameRequired
	}

	// Only the declared content type is checked; the bytes are stored as-is.
	contentType := image.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		slog.Info("rejected upload", "content_type", contentType)
		return nil, ErrNotAnImage
	}

	postID := uuid.NewString()
	shareToken, err := gonanoid.New(shareTokenLength)
	if err != nil {
		slog.Error(err.Error())
		return nil, err
	}

	filename := postID + "." + imageExtension(image.Filename)
	if err := s.saveFile(image, filename); err != nil {
		return nil, fmt.Errorf("error saving image: %w", err)
	}

	var pinHash sql.NullString
	if pc.Pin != "" {
		pinHash = sql.NullString{String: utils.HashPin(pc.Pin), Valid: true}
	}

	category := pc.Category
	if category == "" {
		category = models.CategoryOther
	}

	post := models.Post{
		ID:         postID,
		Username:   pc.Username,
		Caption:    pc.Caption,
		Category:   category,
		ImageFile:  filename,
		ShareToken: shareToken,
		PinHash:    pinHash,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.pr.Create(ctx, &post); err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}

	return &transfer.PostCreated{
		ID:         postID,
		ShareToken: shareToken,
		ShareURL:   "/rate/" + shareToken,
	}, nil
}

// imageExtension takes whatever follows the last dot of the original
// filename, falling back to jpg. No sniffing: a misnamed file is stored
// under the wrong extension.
func imageExtension(filename string) string {
	if i := strings.LastIndex(filename, "."); i >= 0 {
		return filename[i+1:]
	}
	return "jpg"
}

func (s *postService) saveFile(image *multipart.FileHeader, filename string) error {
	src, err := image.Open()
	if err != nil {
		slog.Error(err.Error())
		return err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.uploadDir, filename))
	if err != nil {
		slog.Error(err.Error())
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		slog.Error(err.Error())
		return err
	}
	return nil
}

func (s *postService) List(ctx context.Context, baseURL string) ([]*transfer.PostResponse, error) {
	posts, err := s.pr.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}

	responses := make([]*transfer.PostResponse, 0, len(posts))
	for _, post := range posts {
		resp, err := s.toResponse(ctx, post, baseURL)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *postService) Get(ctx context.Context, token, baseURL string) (*transfer.PostResponse, error) {
	post, err := s.resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, post, baseURL)
}

func (s *postService) Rate(ctx context.Context, token, raterName string, score int) (*transfer.PostStats, error) {
	if score < 1 || score > 10 {
		slog.Info("rejected rating", "score", score)
		return nil, ErrInvalidScore
	}

	post, err := s.resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	if raterName == "" {
		raterName = "Anonymous"
	}

	rating := models.Rating{
		PostID:    post.ID,
		RaterName: raterName,
		Score:     score,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.rr.Create(ctx, &rating); err != nil {
		return nil, fmt.Errorf("error saving rating: %w", err)
	}

	return s.stats(ctx, post.ID)
}

func (s *postService) React(ctx context.Context, token, emoji string) (map[string]int, error) {
	post, err := s.resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	reaction := models.Reaction{
		PostID:    post.ID,
		Emoji:     emoji,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.re.Create(ctx, &reaction); err != nil {
		return nil, fmt.Errorf("error saving reaction: %w", err)
	}

	return s.re.CountByEmoji(ctx, post.ID)
}

func (s *postService) Remove(ctx context.Context, token, pin string) error {
	post, err := s.resolve(ctx, token)
	if err != nil {
		return err
	}

	if post.PinHash.Valid {
		if pin == "" || utils.HashPin(pin) != post.PinHash.String {
			slog.Info("rejected delete", "post_id", post.ID)
			return ErrInvalidPin
		}
	}

	// An already-missing image is fine; the row still goes away.
	if err := os.Remove(filepath.Join(s.uploadDir, post.ImageFile)); err != nil && !os.IsNotExist(err) {
		slog.Error(err.Error())
		return err
	}

	if err := s.pr.Remove(ctx, post.ID); err != nil {
		return fmt.Errorf("error removing post: %w", err)
	}
	return nil
}

// resolve looks a post up by share token or id, mapping a miss to
// ErrPostNotFound.
func (s *postService) resolve(ctx context.Context, token string) (*models.Post, error) {
	post, err := s.pr.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (s *postService) stats(ctx context.Context, postID string) (*transfer.PostStats, error) {
	avg, total, err := s.rr.Stats(ctx, postID)
	if err != nil {
		return nil, err
	}

	reactions, err := s.re.CountByEmoji(ctx, postID)
	if err != nil {
		return nil, err
	}

	stats := transfer.PostStats{
		TotalRatings: total,
		Reactions:    reactions,
	}
	if avg.Valid {
		rounded := math.Round(avg.Float64*10) / 10
		stats.AvgRating = &rounded
	}
	return &stats, nil
}

func (s *postService) toResponse(ctx context.Context, post *models.Post, baseURL string) (*transfer.PostResponse, error) {
	stats, err := s.stats(ctx, post.ID)
	if err != nil {
		return nil, err
	}

	return &transfer.PostResponse{
		ID:         post.ID,
		Username:   post.Username,
		Caption:    post.Caption,
		Category:   post.Category,
		ImageURL:   fmt.Sprintf("%s/uploads/%s", baseURL, post.ImageFile),
		ShareToken: post.ShareToken,
		CreatedAt:  post.CreatedAt,
		PostStats:  *stats,
	}, nil
}
