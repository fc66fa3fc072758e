package models

import "time"

// ReviewDB represents a review row joined with its author's username.
type ReviewDB struct {
	ID       int64     `json:"id" db:"id"`
	TitleID  int64     `json:"-" db:"title_id"`
	AuthorID int64     `json:"-" db:"author_id"`
	Author   string    `json:"author" db:"author"`
	Text     string    `json:"text" db:"text"`
	Score    int       `json:"score" db:"score"`
	PubDate  time.Time `json:"pub_date" db:"pub_date"`
}

// ReviewInput is the payload for posting a review.
type ReviewInput struct {
	Text  string `json:"text" validate:"required"`
	Score int    `json:"score" validate:"required,min=1,max=10"`
}

// ReviewPatch is a partial update of a review.
type ReviewPatch struct {
	Text  *string `json:"text" validate:"omitnil,min=1"`
	Score *int    `json:"score" validate:"omitnil,min=1,max=10"`
}

// CommentDB represents a comment row joined with its author's username.
type CommentDB struct {
	ID       int64     `json:"id" db:"id"`
	ReviewID int64     `json:"-" db:"review_id"`
	AuthorID int64     `json:"-" db:"author_id"`
	Author   string    `json:"author" db:"author"`
	Text     string    `json:"text" db:"text"`
	PubDate  time.Time `json:"pub_date" db:"pub_date"`
}

// CommentInput is the payload for posting a comment.
type CommentInput struct {
	Text string `json:"text" validate:"required"`
}

// CommentPatch is a partial update of a comment.
type CommentPatch struct {
	Text *string `json:"text" validate:"omitnil,min=1"`
}
