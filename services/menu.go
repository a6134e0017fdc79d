package services

import (
	"context"
	"errors"
	"fmt"

	"cafe-admin/db"
	"cafe-admin/models"

	"github.com/jackc/pgx/v5"
)

var ErrNotFound = errors.New("not found")

func ValidateMenuItem(in models.MenuItemInput) error {
	if in.Name == "" {
		return fmt.Errorf("name is required")
	}
	if in.Price < 0 {
		return fmt.Errorf("price must be >= 0")
	}
	return nil
}

func ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, name, price, category, is_available FROM menu
		ORDER BY id DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var m models.MenuItem
		if err := rows.Scan(&m.ID, &m.Name, &m.Price, &m.Category, &m.IsAvailable); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func GetMenuItem(ctx context.Context, id int64) (*models.MenuItem, error) {
	var m models.MenuItem
	m.ID = id
	err := db.Pool.QueryRow(ctx, `
		SELECT name, price, category, is_available FROM menu WHERE id = $1`,
		id,
	).Scan(&m.Name, &m.Price, &m.Category, &m.IsAvailable)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func CreateMenuItem(ctx context.Context, in models.MenuItemInput) (int64, error) {
	if err := ValidateMenuItem(in); err != nil {
		return 0, err
	}
	var id int64
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO menu (name, price, category, is_available)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		in.Name, in.Price, in.Category, in.IsAvailable,
	).Scan(&id)
	return id, err
}

func UpdateMenuItem(ctx context.Context, id int64, in models.MenuItemInput) error {
	if err := ValidateMenuItem(in); err != nil {
		return err
	}
	tag, err := db.Pool.Exec(ctx, `
		UPDATE menu SET name = $1, price = $2, category = $3, is_available = $4
		WHERE id = $5`,
		in.Name, in.Price, in.Category, in.IsAvailable, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMenuItem removes the item and its order lines first so the
// foreign key never blocks the delete.
func DeleteMenuItem(ctx context.Context, id int64) error {
	if _, err := db.Pool.Exec(ctx, `DELETE FROM checkout WHERE item_id = $1`, id); err != nil {
		return err
	}
	_, err := db.Pool.Exec(ctx, `DELETE FROM menu WHERE id = $1`, id)
	return err
}
