package models

import "time"

// Checkout is one order line: a customer buying one menu item at a
// given quantity. item_price snapshots the menu price at order time.
type Checkout struct {
	ID         int64
	UserID     int64
	ItemID     int64
	Quantity   int
	ItemPrice  int64
	TotalPrice int64
	Status     string
	Notes      *string
	CreatedAt  time.Time
}

type CheckoutInput struct {
	UserID   int64
	ItemID   int64
	Quantity int
	Status   string
	Notes    *string
}

// CheckoutRow is the dashboard's joined view of an order line.
type CheckoutRow struct {
	Checkout
	FirstName string
	LastName  string
	Phone     int64
	ItemName  string
	Category  string
}

type Stats struct {
	Customers int
	Items     int
	Orders    int
	Revenue   int64
}
