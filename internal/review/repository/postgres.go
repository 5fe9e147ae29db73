package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/vitrine-app/storefront/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) CreateComment(ctx context.Context, rev *model.Review) error {
	query := `
        INSERT INTO reviews (product_id, user_id, comment, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	return r.DB.GetContext(ctx, &rev.ID, query,
		rev.ProductID, rev.UserID, rev.Comment, rev.CreatedAt)
}

func (r *PGRepository) ListComments(ctx context.Context, productID int64) ([]model.Review, error) {
	reviews := []model.Review{}
	query := `
        SELECT r.id, r.product_id, r.user_id, r.comment, r.rating, r.created_at,
               u.name AS author
        FROM reviews r
        JOIN users u ON u.id = r.user_id
        WHERE r.product_id = $1 AND r.comment IS NOT NULL
        ORDER BY r.created_at DESC
    `
	if err := r.DB.SelectContext(ctx, &reviews, query, productID); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *PGRepository) FindByID(ctx context.Context, productID, reviewID int64) (*model.Review, error) {
	var review model.Review
	query := `
        SELECT id, product_id, user_id, comment, rating, created_at, '' AS author
        FROM reviews
        WHERE id = $1 AND product_id = $2
        LIMIT 1
    `
	err := r.DB.GetContext(ctx, &review, query, reviewID, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *PGRepository) DeleteComment(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	return err
}

// UpsertRating is a single statement so two concurrent submissions cannot
// both insert. The user's earliest review row for the product absorbs the
// rating (keeping any comment on it); otherwise a rating-only row is born.
func (r *PGRepository) UpsertRating(ctx context.Context, productID, userID int64, rating int, at time.Time) error {
	query := `
        WITH target AS (
            SELECT id FROM reviews
            WHERE product_id = $1 AND user_id = $2
            ORDER BY id
            LIMIT 1
        ), updated AS (
            UPDATE reviews
            SET rating = $3, created_at = $4
            WHERE id = (SELECT id FROM target)
            RETURNING id
        )
        INSERT INTO reviews (product_id, user_id, rating, created_at)
        SELECT $1, $2, $3, $4
        WHERE NOT EXISTS (SELECT 1 FROM updated)
    `
	_, err := r.DB.ExecContext(ctx, query, productID, userID, rating, at)
	return err
}

func (r *PGRepository) RatingsForProduct(ctx context.Context, productID int64) ([]int, error) {
	ratings := []int{}
	query := `SELECT rating FROM reviews WHERE product_id = $1 AND rating IS NOT NULL`
	if err := r.DB.SelectContext(ctx, &ratings, query, productID); err != nil {
		return nil, err
	}
	return ratings, nil
}
