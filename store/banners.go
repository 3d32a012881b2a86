package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TcMarsh31/GrocXpressAdmin/models"
)

const bannerCols = `id, title, subtitle, description, image_url, link_url, is_active, position, start_date, end_date, created_at, updated_at`

type BannerStore struct {
	DB *pgxpool.Pool
}

func scanBanner(s scanner) (models.Banner, error) {
	var b models.Banner
	err := s.Scan(
		&b.ID, &b.Title, &b.Subtitle, &b.Description, &b.ImageURL, &b.LinkURL,
		&b.IsActive, &b.Position, &b.StartDate, &b.EndDate, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

// GetActive is the public storefront read.
func (st *BannerStore) GetActive(ctx context.Context) ([]models.Banner, error) {
	rows, err := st.DB.Query(ctx,
		`SELECT `+bannerCols+` FROM banners WHERE is_active = TRUE ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.Banner, 0)
	for rows.Next() {
		b, err := scanBanner(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

func (st *BannerStore) GetAll(ctx context.Context, page, limit int) ([]models.Banner, int, error) {
	var total int
	if err := st.DB.QueryRow(ctx, `SELECT COUNT(*) FROM banners`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := st.DB.Query(ctx,
		`SELECT `+bannerCols+` FROM banners ORDER BY created_at DESC OFFSET $1 LIMIT $2`,
		offset(page, limit), limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]models.Banner, 0, limit)
	for rows.Next() {
		b, err := scanBanner(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, b)
	}
	return items, total, rows.Err()
}

func (st *BannerStore) GetByID(ctx context.Context, id string) (models.Banner, error) {
	row := st.DB.QueryRow(ctx, `SELECT `+bannerCols+` FROM banners WHERE id = $1`, id)
	b, err := scanBanner(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return b, ErrNotFound
	}
	return b, err
}

func (st *BannerStore) Create(ctx context.Context, b models.Banner) (models.Banner, error) {
	row := st.DB.QueryRow(ctx, `
		INSERT INTO banners (title, subtitle, image_url, is_active, created_at, updated_at)
		VALUES ($1,$2,$3,$4, now(), now())
		RETURNING `+bannerCols,
		b.Title, b.Subtitle, b.ImageURL, b.IsActive,
	)
	return scanBanner(row)
}

func (st *BannerStore) Update(ctx context.Context, id string, fields map[string]interface{}) (models.Banner, error) {
	set, args := buildSet(fields, true)
	row := st.DB.QueryRow(ctx,
		`UPDATE banners SET `+set+` WHERE id = $`+itoa(len(args)+1)+` RETURNING `+bannerCols,
		append(args, id)...)
	b, err := scanBanner(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return b, ErrNotFound
	}
	return b, err
}

func (st *BannerStore) Delete(ctx context.Context, id string) error {
	tag, err := st.DB.Exec(ctx, `DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
