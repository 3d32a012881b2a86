package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TcMarsh31/GrocXpressAdmin/models"
)

const categoryCols = `id, name, description, icon, background_color, icon_color, created_at, updated_at`

type CategoryStore struct {
	DB *pgxpool.Pool
}

func scanCategory(s scanner) (models.Category, error) {
	var cat models.Category
	err := s.Scan(
		&cat.ID, &cat.Name, &cat.Description, &cat.Icon,
		&cat.BackgroundColor, &cat.IconColor, &cat.CreatedAt, &cat.UpdatedAt,
	)
	return cat, err
}

// GetAll is unpaginated; the category list is small by construction.
func (st *CategoryStore) GetAll(ctx context.Context) ([]models.Category, error) {
	rows, err := st.DB.Query(ctx, `SELECT `+categoryCols+` FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.Category, 0)
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, cat)
	}
	return items, rows.Err()
}

func (st *CategoryStore) GetByID(ctx context.Context, id string) (models.Category, error) {
	row := st.DB.QueryRow(ctx, `SELECT `+categoryCols+` FROM categories WHERE id = $1`, id)
	cat, err := scanCategory(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return cat, ErrNotFound
	}
	return cat, err
}

func (st *CategoryStore) Create(ctx context.Context, cat models.Category) (models.Category, error) {
	row := st.DB.QueryRow(ctx, `
		INSERT INTO categories (name, icon, background_color, icon_color, created_at, updated_at)
		VALUES ($1,$2,$3,$4, now(), now())
		RETURNING `+categoryCols,
		cat.Name, cat.Icon, cat.BackgroundColor, cat.IconColor,
	)
	return scanCategory(row)
}

func (st *CategoryStore) Update(ctx context.Context, id string, fields map[string]interface{}) (models.Category, error) {
	set, args := buildSet(fields, true)
	row := st.DB.QueryRow(ctx,
		`UPDATE categories SET `+set+` WHERE id = $`+itoa(len(args)+1)+` RETURNING `+categoryCols,
		append(args, id)...)
	cat, err := scanCategory(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return cat, ErrNotFound
	}
	return cat, err
}

func (st *CategoryStore) Delete(ctx context.Context, id string) error {
	tag, err := st.DB.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
