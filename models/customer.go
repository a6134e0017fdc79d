package models

import "time"

type Customer struct {
	ID        int64
	FirstName string
	LastName  string
	Phone     int64
	CreatedAt time.Time
}

type CustomerInput struct {
	FirstName string
	LastName  string
	Phone     int64
}
