package services

import (
	"testing"

	"cafe-admin/models"
)

func TestValidateMenuItem(t *testing.T) {
	tests := []struct {
		name    string
		in      models.MenuItemInput
		wantErr bool
	}{
		{"valid", models.MenuItemInput{Name: "Espresso", Price: 25000}, false},
		{"free item", models.MenuItemInput{Name: "Water", Price: 0}, false},
		{"empty name", models.MenuItemInput{Price: 25000}, true},
		{"negative price", models.MenuItemInput{Name: "Espresso", Price: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMenuItem(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMenuItem() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCustomer(t *testing.T) {
	tests := []struct {
		name    string
		in      models.CustomerInput
		wantErr bool
	}{
		{"valid", models.CustomerInput{FirstName: "علی", LastName: "رضایی", Phone: 9121234567}, false},
		{"no first name", models.CustomerInput{LastName: "رضایی", Phone: 9121234567}, true},
		{"no last name", models.CustomerInput{FirstName: "علی", Phone: 9121234567}, true},
		{"zero phone", models.CustomerInput{FirstName: "علی", LastName: "رضایی"}, true},
		{"negative phone", models.CustomerInput{FirstName: "علی", LastName: "رضایی", Phone: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCustomer(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCustomer() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
