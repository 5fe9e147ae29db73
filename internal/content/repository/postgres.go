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

func (r *PGRepository) ListTips(ctx context.Context) ([]model.Tip, error) {
	tips := []model.Tip{}
	if err := r.DB.SelectContext(ctx, &tips, `SELECT * FROM tips ORDER BY id`); err != nil {
		return nil, err
	}
	return tips, nil
}

func (r *PGRepository) CreateTip(ctx context.Context, tip *model.Tip) error {
	query := `INSERT INTO tips (title, content, category) VALUES ($1, $2, $3) RETURNING id`
	return r.DB.GetContext(ctx, &tip.ID, query, tip.Title, tip.Content, tip.Category)
}

func (r *PGRepository) ListFAQs(ctx context.Context) ([]model.FAQ, error) {
	faqs := []model.FAQ{}
	if err := r.DB.SelectContext(ctx, &faqs, `SELECT * FROM faqs ORDER BY id`); err != nil {
		return nil, err
	}
	return faqs, nil
}

func (r *PGRepository) CreateFAQ(ctx context.Context, faq *model.FAQ) error {
	query := `INSERT INTO faqs (question, answer) VALUES ($1, $2) RETURNING id`
	return r.DB.GetContext(ctx, &faq.ID, query, faq.Question, faq.Answer)
}

func (r *PGRepository) DeleteFAQ(ctx context.Context, id int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM faqs WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *PGRepository) ListSocialMedia(ctx context.Context) ([]model.SocialMedia, error) {
	links := []model.SocialMedia{}
	if err := r.DB.SelectContext(ctx, &links, `SELECT * FROM social_media ORDER BY id`); err != nil {
		return nil, err
	}
	return links, nil
}

func (r *PGRepository) CreateSocialMedia(ctx context.Context, sm *model.SocialMedia) error {
	query := `INSERT INTO social_media (platform, url) VALUES ($1, $2) RETURNING id`
	return r.DB.GetContext(ctx, &sm.ID, query, sm.Platform, sm.URL)
}
