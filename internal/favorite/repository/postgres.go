package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/vitrine-app/storefront/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

// Add relies on the (user_id, product_id) primary key: ON CONFLICT DO
// NOTHING makes duplicate submission race-free, and the affected-row count
// tells whether this call created the favorite.
func (r *PGRepository) Add(ctx context.Context, userID, productID int64) (bool, error) {
	query := `
        INSERT INTO favorites (user_id, product_id, created_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (user_id, product_id) DO NOTHING
    `
	res, err := r.DB.ExecContext(ctx, query, userID, productID)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *PGRepository) Remove(ctx context.Context, userID, productID int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND product_id = $2`, userID, productID)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *PGRepository) ListProducts(ctx context.Context, userID int64) ([]model.Product, error) {
	products := []model.Product{}
	query := `
        SELECT p.*
        FROM favorites f
        JOIN products p ON p.id = f.product_id
        WHERE f.user_id = $1
        ORDER BY f.created_at DESC
    `
	if err := r.DB.SelectContext(ctx, &products, query, userID); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *PGRepository) ProductExists(ctx context.Context, productID int64) (bool, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT count(*) FROM products WHERE id = $1`, productID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
