package model

import "time"

// Review doubles as a free-text comment and as a user's numeric rating for a
// product. A row may hold a comment, a rating, or both; comments are
// append-only while a (user, product) pair carries at most one rating.
type Review struct {
	ID        int64     `db:"id" json:"id"`
	ProductID int64     `db:"product_id" json:"product_id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Comment   *string   `db:"comment" json:"comment"` // Nullable
	Rating    *int      `db:"rating" json:"rating"`   // Nullable, 1-5
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	Author    string    `db:"author" json:"user_name"` // Joined from users
}

type Favorite struct {
	UserID    int64     `db:"user_id" json:"user_id"`
	ProductID int64     `db:"product_id" json:"product_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
