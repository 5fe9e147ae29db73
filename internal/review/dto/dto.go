package dto

import "github.com/vitrine-app/storefront/internal/model"

// RatingAggregate is the public shape of GET /products/{id}/rating.
// Average is null when the product has no rated reviews.
type RatingAggregate struct {
	Average *float64 `json:"average"`
	Count   int      `json:"count"`
}

// CommentView is a comment row projected for listing, with the author name
// joined in and the timestamp formatted for display.
type CommentView struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	UserName  string `json:"user_name"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}

func NewCommentView(r *model.Review) CommentView {
	comment := ""
	if r.Comment != nil {
		comment = *r.Comment
	}
	return CommentView{
		ID:        r.ID,
		UserID:    r.UserID,
		UserName:  r.Author,
		Comment:   comment,
		CreatedAt: r.CreatedAt.Format("02/01/2006 15:04"),
	}
}
