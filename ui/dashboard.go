package ui

// Dashboard owns the interaction layer for the admin page: one
// dispatcher, the three edit modals, and the shared delete dialog.
// All configuration comes in through the constructor; nothing here
// reads process-wide state.
type Dashboard struct {
	Events   *Dispatcher
	Delete   *DeleteConfirm
	Menu     *MenuEditModal
	Customer *CustomerEditModal
	Order    *OrderEditModal
}

// NewDashboard wires every binding once at setup. itemPrices maps menu
// item ids to the data-price carried by their select options.
func NewDashboard(paths Paths, calc PreviewCalculator, itemPrices map[string]string) *Dashboard {
	d := &Dashboard{
		Events:   NewDispatcher(),
		Delete:   NewDeleteConfirm(paths),
		Menu:     NewMenuEditModal(paths),
		Customer: NewCustomerEditModal(paths),
		Order:    NewOrderEditModal(paths, calc, itemPrices),
	}

	d.Events.On("menu-edit-modal", EventModalShow, d.Menu.Open)
	d.Events.On("customer-edit-modal", EventModalShow, d.Customer.Open)
	d.Events.On("order-edit-modal", EventModalShow, d.Order.Open)
	d.Events.On("order-edit-item", EventChange, func(a Attrs) {
		d.Order.SetItem(a.Get("value"))
	})
	d.Events.On("order-edit-qty", EventInput, func(a Attrs) {
		d.Order.SetQuantity(a.Get("value"))
	})
	d.Events.On("delete-modal", EventModalShow, func(a Attrs) {
		id, ok := attrID(a)
		if !ok {
			return
		}
		_ = d.Delete.Open(Kind(a.Get("data-kind")), id, a.Get("data-name"))
	})

	return d
}
