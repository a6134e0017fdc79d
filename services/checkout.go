package services

import (
	"context"
	"errors"
	"fmt"

	"cafe-admin/db"
	"cafe-admin/models"

	"github.com/jackc/pgx/v5"
)

const (
	StatusPending   = "در انتظار"
	StatusPreparing = "در حال آماده‌سازی"
	StatusServed    = "تحویل شد"
	StatusCanceled  = "لغو شد"
)

// Statuses in dashboard display order.
var Statuses = []string{StatusPending, StatusPreparing, StatusServed, StatusCanceled}

func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// LineTotal is the authoritative total for an order line. The dashboard
// shows a client-computed preview, but what gets written is always this.
func LineTotal(itemPrice int64, qty int) int64 {
	return itemPrice * int64(qty)
}

func ValidateCheckout(in models.CheckoutInput) error {
	if in.UserID <= 0 || in.ItemID <= 0 {
		return fmt.Errorf("customer and item are required")
	}
	if in.Quantity <= 0 {
		return fmt.Errorf("quantity must be > 0")
	}
	if in.Status != "" && !ValidStatus(in.Status) {
		return fmt.Errorf("invalid status: %s", in.Status)
	}
	return nil
}

func ListCheckouts(ctx context.Context) ([]models.CheckoutRow, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT
			c.id, c.user_id, c.item_id, c.quantity, c.item_price, c.total_price,
			c.status, c.notes, c.created_at,
			u.first_name, u.last_name, u.phone,
			m.name, m.category
		FROM checkout c
		JOIN users u ON u.id = c.user_id
		JOIN menu m ON m.id = c.item_id
		ORDER BY c.id DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.CheckoutRow
	for rows.Next() {
		var r models.CheckoutRow
		if err := rows.Scan(
			&r.ID, &r.UserID, &r.ItemID, &r.Quantity, &r.ItemPrice, &r.TotalPrice,
			&r.Status, &r.Notes, &r.CreatedAt,
			&r.FirstName, &r.LastName, &r.Phone,
			&r.ItemName, &r.Category,
		); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func GetCheckout(ctx context.Context, id int64) (*models.Checkout, error) {
	var c models.Checkout
	c.ID = id
	err := db.Pool.QueryRow(ctx, `
		SELECT user_id, item_id, quantity, item_price, total_price, status, notes, created_at
		FROM checkout WHERE id = $1`,
		id,
	).Scan(&c.UserID, &c.ItemID, &c.Quantity, &c.ItemPrice, &c.TotalPrice, &c.Status, &c.Notes, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCheckout snapshots the item's current price and computes the
// total server-side; the client preview is never trusted.
func CreateCheckout(ctx context.Context, in models.CheckoutInput) (int64, error) {
	if err := ValidateCheckout(in); err != nil {
		return 0, err
	}
	item, err := GetMenuItem(ctx, in.ItemID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return 0, fmt.Errorf("menu item %d does not exist", in.ItemID)
		}
		return 0, err
	}
	status := in.Status
	if status == "" {
		status = StatusPending
	}

	var id int64
	err = db.Pool.QueryRow(ctx, `
		INSERT INTO checkout (user_id, item_id, quantity, item_price, total_price, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		in.UserID, in.ItemID, in.Quantity, item.Price, LineTotal(item.Price, in.Quantity), status, in.Notes,
	).Scan(&id)
	return id, err
}

func UpdateCheckout(ctx context.Context, id int64, in models.CheckoutInput) error {
	if err := ValidateCheckout(in); err != nil {
		return err
	}
	item, err := GetMenuItem(ctx, in.ItemID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("menu item %d does not exist", in.ItemID)
		}
		return err
	}
	status := in.Status
	if status == "" {
		status = StatusPending
	}

	tag, err := db.Pool.Exec(ctx, `
		UPDATE checkout
		SET user_id = $1, item_id = $2, quantity = $3, item_price = $4,
			total_price = $5, status = $6, notes = $7
		WHERE id = $8`,
		in.UserID, in.ItemID, in.Quantity, item.Price, LineTotal(item.Price, in.Quantity), status, in.Notes, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteCheckout(ctx context.Context, id int64) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM checkout WHERE id = $1`, id)
	return err
}

func GetStats(ctx context.Context) (*models.Stats, error) {
	var s models.Stats
	err := db.Pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users)::int,
			(SELECT COUNT(*) FROM menu)::int,
			(SELECT COUNT(*) FROM checkout)::int,
			(SELECT COALESCE(SUM(total_price), 0) FROM checkout)::bigint`,
	).Scan(&s.Customers, &s.Items, &s.Orders, &s.Revenue)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
