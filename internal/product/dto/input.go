package dto

type CreateProductInput struct {
	Name        string   `json:"name" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Description string   `json:"description"`
	Type        string   `json:"type" validate:"required"`
	ImageURL    string   `json:"image_url"`
	VideoURL    string   `json:"video_url"`
	Stock       *int     `json:"stock" validate:"required,gte=0"`
}

// UpdateProductInput carries partial-patch semantics: nil means "leave the
// current value alone", so every field is a pointer.
type UpdateProductInput struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Description *string  `json:"description"`
	Type        *string  `json:"type"`
	ImageURL    *string  `json:"image_url"`
	VideoURL    *string  `json:"video_url"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
}
