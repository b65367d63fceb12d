package transfer

import "time"

type PostCreation struct {
	Username string
	Caption  string
	Category string
	Pin      string
}

type PostCreated struct {
	ID         string `json:"id"`
	ShareToken string `json:"share_token"`
	ShareURL   string `json:"share_url"`
}

// PostStats is recomputed from the ratings and reactions tables on every
// read; nothing here is persisted. AvgRating is nil until the first rating.
type PostStats struct {
	AvgRating    *float64       `json:"avg_rating"`
	TotalRatings int            `json:"total_ratings"`
	Reactions    map[string]int `json:"reactions"`
}

type PostResponse struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Caption    string    `json:"caption"`
	Category   string    `json:"category"`
	ImageURL   string    `json:"image_url"`
	ShareToken string    `json:"share_token"`
	CreatedAt  time.Time `json:"created_at"`
	PostStats
}

type RateResult struct {
	Message string `json:"message"`
	PostStats
}

type ReactResult struct {
	Message   string         `json:"message"`
	Reactions map[string]int `json:"reactions"`
}
