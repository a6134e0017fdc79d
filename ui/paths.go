package ui

import "fmt"

// Kind names an editable resource on the dashboard.
type Kind string

const (
	KindMenu     Kind = "menu"
	KindCustomer Kind = "customer"
	KindOrder    Kind = "order"
)

// Paths holds the base URL prefixes the dashboard builds form actions
// from. It is passed into each component at setup instead of living in
// a package global.
type Paths struct {
	MenuUpdateBase     string
	CustomerUpdateBase string
	OrderUpdateBase    string
	MenuDeleteBase     string
	CustomerDeleteBase string
	OrderDeleteBase    string
}

// UpdateAction returns the submission target for editing one entity,
// shaped {base}/{id}/update.
func (p Paths) UpdateAction(kind Kind, id int64) (string, error) {
	base, err := p.updateBase(kind)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%d/update", base, id), nil
}

// DeleteAction returns the submission target for deleting one entity,
// shaped {base}/{id}/delete.
func (p Paths) DeleteAction(kind Kind, id int64) (string, error) {
	base, err := p.deleteBase(kind)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%d/delete", base, id), nil
}

func (p Paths) updateBase(kind Kind) (string, error) {
	switch kind {
	case KindMenu:
		return p.MenuUpdateBase, nil
	case KindCustomer:
		return p.CustomerUpdateBase, nil
	case KindOrder:
		return p.OrderUpdateBase, nil
	}
	return "", fmt.Errorf("unknown resource kind: %q", kind)
}

func (p Paths) deleteBase(kind Kind) (string, error) {
	switch kind {
	case KindMenu:
		return p.MenuDeleteBase, nil
	case KindCustomer:
		return p.CustomerDeleteBase, nil
	case KindOrder:
		return p.OrderDeleteBase, nil
	}
	return "", fmt.Errorf("unknown resource kind: %q", kind)
}
