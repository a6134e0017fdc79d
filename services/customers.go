package services

import (
	"context"
	"errors"
	"fmt"

	"cafe-admin/db"
	"cafe-admin/models"

	"github.com/jackc/pgx/v5"
)

func ValidateCustomer(in models.CustomerInput) error {
	if in.FirstName == "" || in.LastName == "" {
		return fmt.Errorf("first and last name are required")
	}
	if in.Phone <= 0 {
		return fmt.Errorf("phone must be a positive number")
	}
	return nil
}

func ListCustomers(ctx context.Context) ([]models.Customer, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, first_name, last_name, phone, created_at FROM users
		ORDER BY id DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Phone, &c.CreatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func GetCustomer(ctx context.Context, id int64) (*models.Customer, error) {
	var c models.Customer
	c.ID = id
	err := db.Pool.QueryRow(ctx, `
		SELECT first_name, last_name, phone, created_at FROM users WHERE id = $1`,
		id,
	).Scan(&c.FirstName, &c.LastName, &c.Phone, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func CreateCustomer(ctx context.Context, in models.CustomerInput) (int64, error) {
	if err := ValidateCustomer(in); err != nil {
		return 0, err
	}
	var id int64
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO users (first_name, last_name, phone)
		VALUES ($1, $2, $3)
		RETURNING id`,
		in.FirstName, in.LastName, in.Phone,
	).Scan(&id)
	return id, err
}

func UpdateCustomer(ctx context.Context, id int64, in models.CustomerInput) error {
	if err := ValidateCustomer(in); err != nil {
		return err
	}
	tag, err := db.Pool.Exec(ctx, `
		UPDATE users SET first_name = $1, last_name = $2, phone = $3
		WHERE id = $4`,
		in.FirstName, in.LastName, in.Phone, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteCustomer(ctx context.Context, id int64) error {
	if _, err := db.Pool.Exec(ctx, `DELETE FROM checkout WHERE user_id = $1`, id); err != nil {
		return err
	}
	_, err := db.Pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}
