package ui

import "testing"

var testPaths = Paths{
	MenuUpdateBase:     "/menu",
	CustomerUpdateBase: "/customers",
	OrderUpdateBase:    "/orders",
	MenuDeleteBase:     "/menu",
	CustomerDeleteBase: "/customers",
	OrderDeleteBase:    "/orders",
}

func TestUpdateAction(t *testing.T) {
	tests := []struct {
		kind Kind
		id   int64
		want string
	}{
		{KindMenu, 7, "/menu/7/update"},
		{KindCustomer, 12, "/customers/12/update"},
		{KindOrder, 3, "/orders/3/update"},
	}
	for _, tt := range tests {
		got, err := testPaths.UpdateAction(tt.kind, tt.id)
		if err != nil {
			t.Fatalf("UpdateAction(%q, %d): %v", tt.kind, tt.id, err)
		}
		if got != tt.want {
			t.Errorf("UpdateAction(%q, %d) = %q, want %q", tt.kind, tt.id, got, tt.want)
		}
	}
}

func TestDeleteAction(t *testing.T) {
	got, err := testPaths.DeleteAction(KindMenu, 7)
	if err != nil {
		t.Fatal(err)
	}
	if got != "/menu/7/delete" {
		t.Errorf("DeleteAction(menu, 7) = %q, want %q", got, "/menu/7/delete")
	}
}

func TestUnknownKind(t *testing.T) {
	if _, err := testPaths.UpdateAction(Kind("drinks"), 1); err == nil {
		t.Error("UpdateAction with unknown kind should error")
	}
	if _, err := testPaths.DeleteAction(Kind(""), 1); err == nil {
		t.Error("DeleteAction with empty kind should error")
	}
}
