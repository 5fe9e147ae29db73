package dto

type AddFavoriteInput struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
}
