package store

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TcMarsh31/GrocXpressAdmin/models"
)

const orderCols = `id, order_number, user_id, item_count, total_amount, order_placed_date, order_confirmed_date, order_shipped_date, out_for_delivery_date, order_delivered_date, created_at, updated_at`

type OrderStore struct {
	DB *pgxpool.Pool
}

func scanOrder(s scanner) (models.Order, error) {
	var o models.Order
	err := s.Scan(
		&o.ID, &o.OrderNumber, &o.UserID, &o.ItemCount, &o.TotalAmount,
		&o.OrderPlacedDate, &o.OrderConfirmedDate, &o.OrderShippedDate,
		&o.OutForDeliveryDate, &o.OrderDeliveredDate,
		&o.CreatedAt, &o.UpdatedAt,
	)
	return o, err
}

func (st *OrderStore) GetAll(ctx context.Context, page, limit int, userID string) ([]models.Order, int, error) {
	where := []string{"1=1"}
	args := []interface{}{}
	ai := 1

	if userID != "" {
		where = append(where, "user_id = $"+itoa(ai))
		args = append(args, userID)
		ai++
	}
	w := strings.Join(where, " AND ")

	var total int
	if err := st.DB.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE `+w, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sql := `SELECT ` + orderCols + ` FROM orders WHERE ` + w +
		` ORDER BY created_at DESC OFFSET $` + itoa(ai) + ` LIMIT $` + itoa(ai+1)
	rows, err := st.DB.Query(ctx, sql, append(args, offset(page, limit), limit)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]models.Order, 0, limit)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, o)
	}
	return items, total, rows.Err()
}

func (st *OrderStore) GetByID(ctx context.Context, id string) (models.Order, error) {
	row := st.DB.QueryRow(ctx, `SELECT `+orderCols+` FROM orders WHERE id = $1`, id)
	o, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return o, ErrNotFound
	}
	return o, err
}

// Create records the order with the placed milestone stamped; the other
// milestones start null and are only ever set by later updates.
func (st *OrderStore) Create(ctx context.Context, o models.Order) (models.Order, error) {
	row := st.DB.QueryRow(ctx, `
		INSERT INTO orders (order_number, user_id, item_count, total_amount, order_placed_date, created_at, updated_at)
		VALUES ($1,$2,$3,$4, now(), now(), now())
		RETURNING `+orderCols,
		o.OrderNumber, o.UserID, o.ItemCount, o.TotalAmount,
	)
	return scanOrder(row)
}

func (st *OrderStore) Update(ctx context.Context, id string, fields map[string]interface{}) (models.Order, error) {
	set, args := buildSet(fields, true)
	row := st.DB.QueryRow(ctx,
		`UPDATE orders SET `+set+` WHERE id = $`+itoa(len(args)+1)+` RETURNING `+orderCols,
		append(args, id)...)
	o, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return o, ErrNotFound
	}
	return o, err
}

func (st *OrderStore) Delete(ctx context.Context, id string) error {
	tag, err := st.DB.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetTracking reads just the identity and milestone columns.
func (st *OrderStore) GetTracking(ctx context.Context, id string) (models.Order, error) {
	var o models.Order
	err := st.DB.QueryRow(ctx, `
		SELECT id, order_number, order_placed_date, order_confirmed_date, order_shipped_date, out_for_delivery_date, order_delivered_date
		FROM orders WHERE id = $1`, id,
	).Scan(
		&o.ID, &o.OrderNumber, &o.OrderPlacedDate, &o.OrderConfirmedDate,
		&o.OrderShippedDate, &o.OutForDeliveryDate, &o.OrderDeliveredDate,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return o, ErrNotFound
	}
	return o, err
}
