package models

import "time"

type Rating struct {
	ID        int64     `db:"id" json:"id"`
	PostID    string    `db:"post_id" json:"post_id"`
	RaterName string    `db:"rater_name" json:"rater_name"`
	Score     int       `db:"score" json:"score"` // 1-10
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Reaction struct {
	ID        int64     `db:"id" json:"id"`
	PostID    string    `db:"post_id" json:"post_id"`
	Emoji     string    `db:"emoji" json:"emoji"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
