package store

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TcMarsh31/GrocXpressAdmin/models"
)

// Stock lives in the legacy "unit" column; the API reads and writes it as
// "stock".
const productCols = `id, product_name, description, price, unit, category_id, image_url, weight, badge, rating, review_count, background_color, is_featured, created_at, updated_at`

type ProductStore struct {
	DB *pgxpool.Pool
}

type ProductFilters struct {
	CategoryID string
	Search     string
	Featured   bool
}

func scanProduct(s scanner) (models.Product, error) {
	var p models.Product
	err := s.Scan(
		&p.ID, &p.ProductName, &p.Description, &p.Price, &p.Stock,
		&p.CategoryID, &p.ImageURL, &p.Weight, &p.Badge, &p.Rating,
		&p.ReviewCount, &p.BackgroundColor, &p.IsFeatured,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (st *ProductStore) GetAll(ctx context.Context, page, limit int, f ProductFilters) ([]models.Product, int, error) {
	where := []string{"1=1"}
	args := []interface{}{}
	ai := 1

	if f.CategoryID != "" {
		where = append(where, "category_id = $"+itoa(ai))
		args = append(args, f.CategoryID)
		ai++
	}
	if f.Search != "" {
		where = append(where, "product_name ILIKE $"+itoa(ai))
		args = append(args, "%"+f.Search+"%")
		ai++
	}
	if f.Featured {
		where = append(where, "is_featured = TRUE")
	}
	w := strings.Join(where, " AND ")

	var total int
	if err := st.DB.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE `+w, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sql := `SELECT ` + productCols + ` FROM products WHERE ` + w +
		` ORDER BY created_at DESC OFFSET $` + itoa(ai) + ` LIMIT $` + itoa(ai+1)
	rows, err := st.DB.Query(ctx, sql, append(args, offset(page, limit), limit)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]models.Product, 0, limit)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, rows.Err()
}

func (st *ProductStore) GetByID(ctx context.Context, id string) (models.Product, error) {
	row := st.DB.QueryRow(ctx, `SELECT `+productCols+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return p, ErrNotFound
	}
	return p, err
}

func (st *ProductStore) GetByCategory(ctx context.Context, categoryID string, page, limit int) ([]models.Product, int, error) {
	return st.GetAll(ctx, page, limit, ProductFilters{CategoryID: categoryID})
}

// GetFeatured returns the highest-rated products with a rating above 4.
func (st *ProductStore) GetFeatured(ctx context.Context, limit int) ([]models.Product, error) {
	rows, err := st.DB.Query(ctx,
		`SELECT `+productCols+` FROM products WHERE rating > 4 ORDER BY rating DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.Product, 0, limit)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (st *ProductStore) Create(ctx context.Context, p models.Product) (models.Product, error) {
	row := st.DB.QueryRow(ctx, `
		INSERT INTO products
			(product_name, description, price, unit, category_id, image_url, weight, badge, rating, review_count, background_color, is_featured, created_at, updated_at)
		VALUES
			($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12, now(), now())
		RETURNING `+productCols,
		p.ProductName, p.Description, p.Price, p.Stock, p.CategoryID, p.ImageURL,
		p.Weight, p.Badge, p.Rating, p.ReviewCount, p.BackgroundColor, p.IsFeatured,
	)
	return scanProduct(row)
}

func (st *ProductStore) Update(ctx context.Context, id string, fields map[string]interface{}) (models.Product, error) {
	if v, ok := fields["stock"]; ok {
		delete(fields, "stock")
		fields["unit"] = v
	}
	set, args := buildSet(fields, true)
	row := st.DB.QueryRow(ctx,
		`UPDATE products SET `+set+` WHERE id = $`+itoa(len(args)+1)+` RETURNING `+productCols,
		append(args, id)...)
	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return p, ErrNotFound
	}
	return p, err
}

func (st *ProductStore) Delete(ctx context.Context, id string) error {
	tag, err := st.DB.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
