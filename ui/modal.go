package ui

import (
	"fmt"
	"strconv"
)

// ConfirmState is where the delete dialog is in its two-step flow.
type ConfirmState int

const (
	ConfirmIdle ConfirmState = iota
	ConfirmPending
)

// DeleteConfirm drives the shared delete-confirmation dialog. Open
// arms it for one entity; Confirm hands back the form action and
// resets; Dismiss resets without touching anything.
type DeleteConfirm struct {
	paths Paths
	state ConfirmState

	FormAction string
	Prompt     string
}

func NewDeleteConfirm(paths Paths) *DeleteConfirm {
	return &DeleteConfirm{paths: paths}
}

func (d *DeleteConfirm) Open(kind Kind, id int64, label string) error {
	action, err := d.paths.DeleteAction(kind, id)
	if err != nil {
		return err
	}
	d.FormAction = action
	d.Prompt = fmt.Sprintf("آیا از حذف «%s» مطمئن هستید؟", label)
	d.state = ConfirmPending
	return nil
}

func (d *DeleteConfirm) Confirm() (action string, ok bool) {
	if d.state != ConfirmPending {
		return "", false
	}
	action = d.FormAction
	d.reset()
	return action, true
}

func (d *DeleteConfirm) Dismiss() {
	d.reset()
}

func (d *DeleteConfirm) State() ConfirmState {
	return d.state
}

func (d *DeleteConfirm) reset() {
	d.state = ConfirmIdle
	d.FormAction = ""
	d.Prompt = ""
}

// MenuEditModal prefills the menu item edit form from the trigger
// button's data attributes.
type MenuEditModal struct {
	paths Paths

	FormAction string
	Fields     map[string]string
}

func NewMenuEditModal(paths Paths) *MenuEditModal {
	return &MenuEditModal{paths: paths}
}

func (m *MenuEditModal) Open(attrs Attrs) {
	id, ok := attrID(attrs)
	if !ok {
		return
	}
	action, err := m.paths.UpdateAction(KindMenu, id)
	if err != nil {
		return
	}
	m.FormAction = action
	m.Fields = map[string]string{
		"name":         attrs.Get("data-name"),
		"category":     attrs.Get("data-category"),
		"price":        attrs.Get("data-price"),
		"is_available": attrs.Get("data-available"),
	}
}

// CustomerEditModal prefills the customer edit form.
type CustomerEditModal struct {
	paths Paths

	FormAction string
	Fields     map[string]string
}

func NewCustomerEditModal(paths Paths) *CustomerEditModal {
	return &CustomerEditModal{paths: paths}
}

func (m *CustomerEditModal) Open(attrs Attrs) {
	id, ok := attrID(attrs)
	if !ok {
		return
	}
	action, err := m.paths.UpdateAction(KindCustomer, id)
	if err != nil {
		return
	}
	m.FormAction = action
	m.Fields = map[string]string{
		"first_name": attrs.Get("data-first"),
		"last_name":  attrs.Get("data-last"),
		"phone":      attrs.Get("data-phone"),
	}
}

// OrderEditModal prefills the order edit form and keeps the price
// preview current: it recomputes right after prefill and again on every
// item or quantity change while the modal is open.
type OrderEditModal struct {
	paths   Paths
	calc    PreviewCalculator
	options map[string]string // item id -> that option's data-price

	FormAction string
	Fields     map[string]string
	Preview    string

	item string
	qty  string
}

func NewOrderEditModal(paths Paths, calc PreviewCalculator, options map[string]string) *OrderEditModal {
	return &OrderEditModal{paths: paths, calc: calc, options: options}
}

func (m *OrderEditModal) Open(attrs Attrs) {
	id, ok := attrID(attrs)
	if !ok {
		return
	}
	action, err := m.paths.UpdateAction(KindOrder, id)
	if err != nil {
		return
	}
	m.FormAction = action
	m.item = attrs.Get("data-item")
	m.qty = attrs.Get("data-qty")
	m.Fields = map[string]string{
		"user_id":  attrs.Get("data-user"),
		"item_id":  m.item,
		"quantity": m.qty,
		"status":   attrs.Get("data-status"),
		"notes":    attrs.Get("data-notes"),
	}
	m.recompute()
}

func (m *OrderEditModal) SetItem(id string) {
	m.item = id
	if m.Fields != nil {
		m.Fields["item_id"] = id
	}
	m.recompute()
}

func (m *OrderEditModal) SetQuantity(q string) {
	m.qty = q
	if m.Fields != nil {
		m.Fields["quantity"] = q
	}
	m.recompute()
}

func (m *OrderEditModal) recompute() {
	m.Preview = m.calc.Render(m.options[m.item], m.qty)
}

// attrID pulls data-id off the trigger. A missing or mangled id makes
// the open a no-op rather than an error.
func attrID(attrs Attrs) (int64, bool) {
	id, err := strconv.ParseInt(attrs.Get("data-id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
