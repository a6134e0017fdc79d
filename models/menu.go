package models

type MenuItem struct {
	ID          int64
	Name        string
	Price       int64 // integer currency units
	Category    string
	IsAvailable bool
}

type MenuItemInput struct {
	Name        string
	Price       int64
	Category    string
	IsAvailable bool
}
