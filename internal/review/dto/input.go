package dto

type CommentInput struct {
	Comment string `json:"comment" validate:"required"`
}

// RatingInput uses a pointer so "rating absent" fails validation instead of
// defaulting to zero.
type RatingInput struct {
	Rating *int `json:"rating" validate:"required"`
}
