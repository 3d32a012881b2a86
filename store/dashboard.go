package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/TcMarsh31/GrocXpressAdmin/models"
)

type DashboardStore struct {
	DB *pgxpool.Pool
}

type LowStockProduct struct {
	ID          string `json:"id"`
	ProductName string `json:"product_name"`
	Stock       int    `json:"stock"`
}

type RecentOrder struct {
	ID          string                `json:"id"`
	OrderNumber string                `json:"order_number"`
	TotalAmount float64               `json:"total_amount"`
	Status      models.DeliveryStatus `json:"status"`
	CreatedAt   time.Time             `json:"created_at"`
}

type Stats struct {
	OrdersCount  int               `json:"orders_count"`
	Revenue      float64           `json:"revenue"`
	LowStock     []LowStockProduct `json:"low_stock"`
	RecentOrders []RecentOrder     `json:"recent_orders"`
}

// Stats runs the four independent dashboard reads concurrently. Each
// goroutine writes a distinct field of s, so no locking is needed.
func (st *DashboardStore) Stats(ctx context.Context) (Stats, error) {
	var s Stats
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return st.DB.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&s.OrdersCount)
	})

	g.Go(func() error {
		return st.DB.QueryRow(ctx, `SELECT COALESCE(SUM(total_amount), 0) FROM orders`).Scan(&s.Revenue)
	})

	g.Go(func() error {
		rows, err := st.DB.Query(ctx,
			`SELECT id, product_name, unit FROM products WHERE unit < 5 ORDER BY unit ASC LIMIT 5`)
		if err != nil {
			return err
		}
		defer rows.Close()

		s.LowStock = make([]LowStockProduct, 0, 5)
		for rows.Next() {
			var p LowStockProduct
			if err := rows.Scan(&p.ID, &p.ProductName, &p.Stock); err != nil {
				return err
			}
			s.LowStock = append(s.LowStock, p)
		}
		return rows.Err()
	})

	g.Go(func() error {
		rows, err := st.DB.Query(ctx,
			`SELECT `+orderCols+` FROM orders ORDER BY created_at DESC LIMIT 6`)
		if err != nil {
			return err
		}
		defer rows.Close()

		s.RecentOrders = make([]RecentOrder, 0, 6)
		for rows.Next() {
			o, err := scanOrder(rows)
			if err != nil {
				return err
			}
			s.RecentOrders = append(s.RecentOrders, RecentOrder{
				ID:          o.ID,
				OrderNumber: o.OrderNumber,
				TotalAmount: o.TotalAmount,
				Status:      o.DeliveryStatus(),
				CreatedAt:   o.CreatedAt,
			})
		}
		return rows.Err()
	})

	if err := g.Wait(); err != nil {
		return Stats{}, err
	}
	return s, nil
}
