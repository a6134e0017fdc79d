package web

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"cafe-admin/config"
	"cafe-admin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)
	s, err := New(cfg, zap.NewNop(), nil)
	require.NoError(t, err)
	return s
}

func TestWelcomePage(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "داشبورد")
}

func TestNotFoundPage(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/no-such-page", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "۴۰۴")
}

func TestMenuCreateRejectsEmptyName(t *testing.T) {
	s := newTestServer(t)
	form := url.Values{"name": {"  "}, "price": {"25000"}}
	req := httptest.NewRequest(http.MethodPost, "/menu", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

	flash := flashFromRecorder(t, rec)
	require.NotNil(t, flash)
	assert.Equal(t, flashDanger, flash.Category)
}

func TestMenuCreateRejectsBadPrice(t *testing.T) {
	s := newTestServer(t)
	form := url.Values{"name": {"Espresso"}, "price": {"-5"}}
	req := httptest.NewRequest(http.MethodPost, "/menu", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	flash := flashFromRecorder(t, rec)
	require.NotNil(t, flash)
	assert.Equal(t, flashDanger, flash.Category)
	assert.Contains(t, flash.Message, "قیمت")
}

func TestOrderPreviewPlaceholderWithoutItem(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/preview?item=abc&qty=3", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "—", rec.Body.String())
}

func TestFlashRoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	setFlash(rec, flashSuccess, "سفارش ثبت شد.")

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	rec2 := httptest.NewRecorder()
	flash := popFlash(rec2, req)

	require.NotNil(t, flash)
	assert.Equal(t, flashSuccess, flash.Category)
	assert.Equal(t, "سفارش ثبت شد.", flash.Message)
}

func TestPopFlashIgnoresGarbage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: flashCookie, Value: "not base64 at all!"})
	assert.Nil(t, popFlash(httptest.NewRecorder(), req))
}

func TestOrderInputFromForm(t *testing.T) {
	tests := []struct {
		name    string
		form    url.Values
		want    models.CheckoutInput
		wantMsg bool
	}{
		{
			name: "quantity defaults to 1",
			form: url.Values{"user_id": {"2"}, "item_id": {"3"}},
			want: models.CheckoutInput{UserID: 2, ItemID: 3, Quantity: 1},
		},
		{
			name: "explicit quantity",
			form: url.Values{"user_id": {"2"}, "item_id": {"3"}, "quantity": {"5"}},
			want: models.CheckoutInput{UserID: 2, ItemID: 3, Quantity: 5},
		},
		{
			name:    "missing user",
			form:    url.Values{"item_id": {"3"}},
			wantMsg: true,
		},
		{
			name:    "zero quantity",
			form:    url.Values{"user_id": {"2"}, "item_id": {"3"}, "quantity": {"0"}},
			wantMsg: true,
		},
		{
			name:    "unknown status",
			form:    url.Values{"user_id": {"2"}, "item_id": {"3"}, "status": {"shipped"}},
			wantMsg: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			got, msg := orderInputFromForm(req)
			if tt.wantMsg {
				assert.NotEmpty(t, msg)
				return
			}
			require.Empty(t, msg)
			assert.Equal(t, tt.want.UserID, got.UserID)
			assert.Equal(t, tt.want.ItemID, got.ItemID)
			assert.Equal(t, tt.want.Quantity, got.Quantity)
		})
	}
}

func flashFromRecorder(t *testing.T, rec *httptest.ResponseRecorder) *Flash {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == flashCookie && c.Value != "" {
			raw, err := base64.URLEncoding.DecodeString(c.Value)
			require.NoError(t, err)
			parts := strings.SplitN(string(raw), "|", 2)
			require.Len(t, parts, 2)
			return &Flash{Category: parts[0], Message: parts[1]}
		}
	}
	return nil
}
