package model

import "time"

type Product struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Price       float64   `db:"price" json:"price"`
	Description *string   `db:"description" json:"description"` // Nullable
	Type        string    `db:"type" json:"type"`
	ImageURL    *string   `db:"image_url" json:"image_url"`
	VideoURL    *string   `db:"video_url" json:"video_url"`
	Stock       int       `db:"stock" json:"stock"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
