package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glowuphq/glowup-api/internal/service"
	"github.com/glowuphq/glowup-api/internal/transfer"
)

type PostHandler struct {
	s       service.PostService
	baseURL string
}

func NewPostHandler(service service.PostService, baseURL string) *PostHandler {
	return &PostHandler{s: service, baseURL: baseURL}
}

func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	image, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "image file is required",
		})
	}

	created, err := h.s.Create(c.Context(), &transfer.PostCreation{
		Username: c.FormValue("username"),
		Caption:  c.FormValue("caption"),
		Category: c.FormValue("category", "other"),
		Pin:      c.FormValue("pin"),
	}, image)

	if err != nil {
		return c.Status(StatusFromError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(created)
}

func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	posts, err := h.s.List(c.Context(), h.requestBase(c))
	if err != nil {
		return c.Status(StatusFromError(err)).JSON(fiber.Map{
			"error": "Unable to list posts",
		})
	}

	return c.Status(fiber.StatusOK).JSON(posts)
}

func (h *PostHandler) GetPost(c *fiber.Ctx) error {
	post, err := h.s.Get(c.Context(), c.Params("token"), h.requestBase(c))
	if err != nil {
		return c.Status(StatusFromError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

func (h *PostHandler) RatePost(c *fiber.Ctx) error {
	score := c.QueryInt("score")
	raterName := c.Query("rater_name", "Anonymous")

	stats, err := h.s.Rate(c.Context(), c.Params("token"), raterName, score)
	if err != nil {
		return c.Status(StatusFromError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(transfer.RateResult{
		Message:   "Rated!",
		PostStats: *stats,
	})
}

func (h *PostHandler) ReactPost(c *fiber.Ctx) error {
	reactions, err := h.s.React(c.Context(), c.Params("token"), c.Query("emoji"))
	if err != nil {
		return c.Status(StatusFromError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(transfer.ReactResult{
		Message:   "Reacted!",
		Reactions: reactions,
	})
}

func (h *PostHandler) DeletePost(c *fiber.Ctx) error {
	err := h.s.Remove(c.Context(), c.Params("token"), c.Query("pin"))
	if err != nil {
		return c.Status(StatusFromError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Post deleted",
	})
}

// requestBase lets clients override the configured base URL when building
// image links, mirroring how the frontend proxies requests. It has no
// security meaning.
func (h *PostHandler) requestBase(c *fiber.Ctx) string {
	return c.Query("request_base", h.baseURL)
}
