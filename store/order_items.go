package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TcMarsh31/GrocXpressAdmin/models"
)

const orderItemCols = `id, order_id, product_id, quantity, price, created_at`

type OrderItemStore struct {
	DB *pgxpool.Pool
}

func scanOrderItem(s scanner) (models.OrderItem, error) {
	var it models.OrderItem
	err := s.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.Price, &it.CreatedAt)
	return it, err
}

// GetByOrderID joins the product columns the storefront renders next to
// each line. LEFT JOIN keeps items whose product has since been deleted.
func (st *OrderItemStore) GetByOrderID(ctx context.Context, orderID string) ([]models.OrderItemDetail, error) {
	rows, err := st.DB.Query(ctx, `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price, oi.created_at,
		       p.product_name, p.price, p.image_url, p.unit
		FROM order_items oi
		LEFT JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1
		ORDER BY oi.created_at ASC`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.OrderItemDetail, 0)
	for rows.Next() {
		var d models.OrderItemDetail
		if err := rows.Scan(
			&d.ID, &d.OrderID, &d.ProductID, &d.Quantity, &d.Price, &d.CreatedAt,
			&d.Product.ProductName, &d.Product.Price, &d.Product.ImageURL, &d.Product.Stock,
		); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

func (st *OrderItemStore) GetByID(ctx context.Context, id string) (models.OrderItem, error) {
	row := st.DB.QueryRow(ctx, `SELECT `+orderItemCols+` FROM order_items WHERE id = $1`, id)
	it, err := scanOrderItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return it, ErrNotFound
	}
	return it, err
}

func (st *OrderItemStore) Create(ctx context.Context, it models.OrderItem) (models.OrderItem, error) {
	row := st.DB.QueryRow(ctx, `
		INSERT INTO order_items (order_id, product_id, quantity, price, created_at)
		VALUES ($1,$2,$3,$4, now())
		RETURNING `+orderItemCols,
		it.OrderID, it.ProductID, it.Quantity, it.Price,
	)
	return scanOrderItem(row)
}

// CreateBatch inserts the items one by one with no surrounding transaction.
// A failure partway leaves the earlier rows in place; the caller decides
// whether that is fatal.
func (st *OrderItemStore) CreateBatch(ctx context.Context, items []models.OrderItem) error {
	for _, it := range items {
		_, err := st.DB.Exec(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, price, created_at)
			VALUES ($1,$2,$3,$4, now())`,
			it.OrderID, it.ProductID, it.Quantity, it.Price,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (st *OrderItemStore) Update(ctx context.Context, id string, fields map[string]interface{}) (models.OrderItem, error) {
	set, args := buildSet(fields, false)
	row := st.DB.QueryRow(ctx,
		`UPDATE order_items SET `+set+` WHERE id = $`+itoa(len(args)+1)+` RETURNING `+orderItemCols,
		append(args, id)...)
	it, err := scanOrderItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return it, ErrNotFound
	}
	return it, err
}

func (st *OrderItemStore) Delete(ctx context.Context, id string) error {
	tag, err := st.DB.Exec(ctx, `DELETE FROM order_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (st *OrderItemStore) DeleteByOrderID(ctx context.Context, orderID string) error {
	_, err := st.DB.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, orderID)
	return err
}
