package models

import (
	"database/sql"
	"time"
)

type Post struct {
	ID         string         `db:"id" json:"id"`
	Username   string         `db:"username" json:"username"`
	Caption    string         `db:"caption" json:"caption"`
	Category   string         `db:"category" json:"category"` // fit, makeup, food, nails, style, other
	ImageFile  string         `db:"image_file" json:"-"`
	ShareToken string         `db:"share_token" json:"share_token"`
	PinHash    sql.NullString `db:"pin_hash" json:"-"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
}

// Known categories. Posts are stored with whatever category string the
// client sends; these are the values the frontend offers.
const (
	CategoryFit    = "fit"
	CategoryMakeup = "makeup"
	CategoryFood   = "food"
	CategoryNails  = "nails"
	CategoryStyle  = "style"
	CategoryOther  = "other"
)
