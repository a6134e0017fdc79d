package web

import (
	"encoding/base64"
	"net/http"
	"strings"
)

// Flash categories match the bootstrap alert classes the templates use.
const (
	flashSuccess = "success"
	flashDanger  = "danger"
)

type Flash struct {
	Category string
	Message  string
}

const flashCookie = "flash"

// setFlash stores a one-shot message for the next page load. Values go
// through base64 so Persian text survives the cookie encoding.
func setFlash(w http.ResponseWriter, category, message string) {
	v := base64.URLEncoding.EncodeToString([]byte(category + "|" + message))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    v,
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
	})
}

// popFlash reads and clears the pending flash, if any. Anything
// malformed is dropped silently.
func popFlash(w http.ResponseWriter, r *http.Request) *Flash {
	c, err := r.Cookie(flashCookie)
	if err != nil || c.Value == "" {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	raw, err := base64.URLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}
	parts := strings.SplitN(string(raw), "|", 2)
	if len(parts) != 2 {
		return nil
	}
	return &Flash{Category: parts[0], Message: parts[1]}
}
