package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"cafe-admin/models"
	"cafe-admin/services"
	"cafe-admin/ui"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type dashboardData struct {
	Items     []models.MenuItem
	Customers []models.Customer
	Orders    []models.CheckoutRow
	Stats     *models.Stats
	Statuses  []string
	Flash     *Flash
	Query     string
}

func (s *Server) handleWelcome(w http.ResponseWriter, r *http.Request) {
	s.render(w, "welcome.html", nil)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, err := services.ListMenu(ctx)
	if err != nil {
		s.fail(w, "list menu", err)
		return
	}
	customers, err := services.ListCustomers(ctx)
	if err != nil {
		s.fail(w, "list customers", err)
		return
	}
	orders, err := services.ListCheckouts(ctx)
	if err != nil {
		s.fail(w, "list orders", err)
		return
	}
	stats, err := services.GetStats(ctx)
	if err != nil {
		s.fail(w, "stats", err)
		return
	}

	// Optional server-side filter; the browser does the same thing live.
	q := r.URL.Query().Get("q")
	if strings.TrimSpace(q) != "" {
		items = filterItems(items, q)
		customers = filterCustomers(customers, q)
		orders = filterOrders(orders, q)
	}

	s.render(w, "dashboard.html", dashboardData{
		Items:     items,
		Customers: customers,
		Orders:    orders,
		Stats:     stats,
		Statuses:  services.Statuses,
		Flash:     popFlash(w, r),
		Query:     q,
	})
}

func filterItems(in []models.MenuItem, q string) []models.MenuItem {
	var out []models.MenuItem
	for _, m := range in {
		text := fmt.Sprintf("%d %s %s %d", m.ID, m.Name, m.Category, m.Price)
		if ui.RowVisible(q, text) {
			out = append(out, m)
		}
	}
	return out
}

func filterCustomers(in []models.Customer, q string) []models.Customer {
	var out []models.Customer
	for _, c := range in {
		text := fmt.Sprintf("%d %s %s %d", c.ID, c.FirstName, c.LastName, c.Phone)
		if ui.RowVisible(q, text) {
			out = append(out, c)
		}
	}
	return out
}

func filterOrders(in []models.CheckoutRow, q string) []models.CheckoutRow {
	var out []models.CheckoutRow
	for _, o := range in {
		notes := ""
		if o.Notes != nil {
			notes = *o.Notes
		}
		text := fmt.Sprintf("%d %s %s %s %s %s", o.ID, o.FirstName, o.LastName, o.ItemName, o.Status, notes)
		if ui.RowVisible(q, text) {
			out = append(out, o)
		}
	}
	return out
}

// --- menu ---

func menuInputFromForm(r *http.Request) (models.MenuItemInput, string) {
	name := strings.TrimSpace(r.FormValue("name"))
	category := strings.TrimSpace(r.FormValue("category"))
	if category == "" {
		category = "عمومی"
	}
	if name == "" {
		return models.MenuItemInput{}, "نام آیتم نمی‌تواند خالی باشد."
	}
	price, err := strconv.ParseInt(strings.TrimSpace(r.FormValue("price")), 10, 64)
	if err != nil || price < 0 {
		return models.MenuItemInput{}, "قیمت نامعتبر است."
	}
	return models.MenuItemInput{
		Name:        name,
		Price:       price,
		Category:    category,
		IsAvailable: r.FormValue("is_available") == "on",
	}, ""
}

func (s *Server) handleMenuCreate(w http.ResponseWriter, r *http.Request) {
	in, msg := menuInputFromForm(r)
	if msg != "" {
		s.flashAndBack(w, r, flashDanger, msg)
		return
	}
	if _, err := services.CreateMenuItem(r.Context(), in); err != nil {
		s.fail(w, "create menu item", err)
		return
	}
	s.flashAndBack(w, r, flashSuccess, "آیتم منو با موفقیت اضافه شد.")
}

func (s *Server) handleMenuUpdate(w http.ResponseWriter, r *http.Request) {
	in, msg := menuInputFromForm(r)
	if msg != "" {
		s.flashAndBack(w, r, flashDanger, msg)
		return
	}
	err := services.UpdateMenuItem(r.Context(), pathID(r), in)
	if errors.Is(err, services.ErrNotFound) {
		s.renderError(w, http.StatusNotFound)
		return
	}
	if err != nil {
		s.fail(w, "update menu item", err)
		return
	}
	s.flashAndBack(w, r, flashSuccess, "آیتم منو بروزرسانی شد.")
}

func (s *Server) handleMenuDelete(w http.ResponseWriter, r *http.Request) {
	if err := services.DeleteMenuItem(r.Context(), pathID(r)); err != nil {
		s.fail(w, "delete menu item", err)
		return
	}
	s.flashAndBack(w, r, flashSuccess, "آیتم منو حذف شد.")
}

// --- customers ---

func customerInputFromForm(r *http.Request) (models.CustomerInput, string) {
	first := strings.TrimSpace(r.FormValue("first_name"))
	last := strings.TrimSpace(r.FormValue("last_name"))
	if first == "" || last == "" {
		return models.CustomerInput{}, "نام و نام خانوادگی الزامی است."
	}
	phone, err := strconv.ParseInt(strings.TrimSpace(r.FormValue("phone")), 10, 64)
	if err != nil || phone <= 0 {
		return models.CustomerInput{}, "شماره تماس نامعتبر است."
	}
	return models.CustomerInput{FirstName: first, LastName: last, Phone: phone}, ""
}

func (s *Server) handleCustomerCreate(w http.ResponseWriter, r *http.Request) {
	in, msg := customerInputFromForm(r)
	if msg != "" {
		s.flashAndBack(w, r, flashDanger, msg)
		return
	}
	if _, err := services.CreateCustomer(r.Context(), in); err != nil {
		s.fail(w, "create customer", err)
		return
	}
	s.flashAndBack(w, r, flashSuccess, "مشتری با موفقیت اضافه شد.")
}

func (s *Server) handleCustomerUpdate(w http.ResponseWriter, r *http.Request) {
	in, msg := customerInputFromForm(r)
	if msg != "" {
		s.flashAndBack(w, r, flashDanger, msg)
		return
	}
	err := services.UpdateCustomer(r.Context(), pathID(r), in)
	if errors.Is(err, services.ErrNotFound) {
		s.renderError(w, http.StatusNotFound)
		return
	}
	if err != nil {
		s.fail(w, "update customer", err)
		return
	}
	s.flashAndBack(w, r, flashSuccess, "اطلاعات مشتری بروزرسانی شد.")
}

func (s *Server) handleCustomerDelete(w http.ResponseWriter, r *http.Request) {
	if err := services.DeleteCustomer(r.Context(), pathID(r)); err != nil {
		s.fail(w, "delete customer", err)
		return
	}
	s.flashAndBack(w, r, flashSuccess, "مشتری حذف شد.")
}

// --- orders ---

func orderInputFromForm(r *http.Request) (models.CheckoutInput, string) {
	userID, err1 := strconv.ParseInt(strings.TrimSpace(r.FormValue("user_id")), 10, 64)
	itemID, err2 := strconv.ParseInt(strings.TrimSpace(r.FormValue("item_id")), 10, 64)
	qtyRaw := strings.TrimSpace(r.FormValue("quantity"))
	if qtyRaw == "" {
		qtyRaw = "1"
	}
	qty, err3 := strconv.Atoi(qtyRaw)
	if err1 != nil || err2 != nil || err3 != nil || qty <= 0 {
		return models.CheckoutInput{}, "اطلاعات سفارش نامعتبر است."
	}
	status := strings.TrimSpace(r.FormValue("status"))
	if status != "" && !services.ValidStatus(status) {
		return models.CheckoutInput{}, "اطلاعات سفارش نامعتبر است."
	}
	var notes *string
	if n := strings.TrimSpace(r.FormValue("notes")); n != "" {
		notes = &n
	}
	return models.CheckoutInput{
		UserID:   userID,
		ItemID:   itemID,
		Quantity: qty,
		Status:   status,
		Notes:    notes,
	}, ""
}

func (s *Server) handleOrderCreate(w http.ResponseWriter, r *http.Request) {
	in, msg := orderInputFromForm(r)
	if msg != "" {
		s.flashAndBack(w, r, flashDanger, msg)
		return
	}
	item, err := services.GetMenuItem(r.Context(), in.ItemID)
	if errors.Is(err, services.ErrNotFound) {
		s.flashAndBack(w, r, flashDanger, "آیتم انتخاب‌شده وجود ندارد.")
		return
	}
	if err != nil {
		s.fail(w, "load menu item", err)
		return
	}
	id, err := services.CreateCheckout(r.Context(), in)
	if err != nil {
		s.fail(w, "create order", err)
		return
	}
	if s.notifier != nil {
		customer := ""
		if c, err := services.GetCustomer(r.Context(), in.UserID); err == nil {
			customer = c.FirstName + " " + c.LastName
		}
		s.notifier.OrderCreated(id, customer, item.Name, in.Quantity, services.LineTotal(item.Price, in.Quantity))
	}
	s.flashAndBack(w, r, flashSuccess, "سفارش ثبت شد.")
}

func (s *Server) handleOrderUpdate(w http.ResponseWriter, r *http.Request) {
	in, msg := orderInputFromForm(r)
	if msg != "" {
		s.flashAndBack(w, r, flashDanger, msg)
		return
	}
	err := services.UpdateCheckout(r.Context(), pathID(r), in)
	if errors.Is(err, services.ErrNotFound) {
		s.renderError(w, http.StatusNotFound)
		return
	}
	if err != nil {
		s.fail(w, "update order", err)
		return
	}
	s.flashAndBack(w, r, flashSuccess, "سفارش بروزرسانی شد.")
}

func (s *Server) handleOrderDelete(w http.ResponseWriter, r *http.Request) {
	if err := services.DeleteCheckout(r.Context(), pathID(r)); err != nil {
		s.fail(w, "delete order", err)
		return
	}
	s.flashAndBack(w, r, flashSuccess, "سفارش حذف شد.")
}

// handleOrderPreview feeds the live total in the order modals. Always
// 200 with a display string; a missing item just yields the placeholder.
func (s *Server) handleOrderPreview(w http.ResponseWriter, r *http.Request) {
	priceAttr := ""
	if itemID, err := strconv.ParseInt(r.URL.Query().Get("item"), 10, 64); err == nil {
		if item, err := services.GetMenuItem(r.Context(), itemID); err == nil {
			priceAttr = strconv.FormatInt(item.Price, 10)
		}
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, s.calc.Render(priceAttr, r.URL.Query().Get("qty")))
}

// --- helpers ---

func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}

func (s *Server) flashAndBack(w http.ResponseWriter, r *http.Request, category, message string) {
	setFlash(w, category, message)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) fail(w http.ResponseWriter, what string, err error) {
	s.log.Error(what, zap.Error(err))
	s.renderError(w, http.StatusInternalServerError)
}
