package web

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"cafe-admin/config"
	"cafe-admin/ui"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Notifier receives a ping for every created order. Wired to the
// telegram notifier when a token is configured, nil otherwise.
type Notifier interface {
	OrderCreated(orderID int64, customer, item string, qty int, total int64)
}

type Server struct {
	log      *zap.Logger
	tmpl     *template.Template
	paths    ui.Paths
	calc     ui.PreviewCalculator
	notifier Notifier
}

func New(cfg *config.Config, log *zap.Logger, notifier Notifier) (*Server, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"money": ui.FormatMoney,
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Server{
		log:  log,
		tmpl: tmpl,
		paths: ui.Paths{
			MenuUpdateBase:     cfg.Paths.MenuUpdateBase,
			CustomerUpdateBase: cfg.Paths.CustomerUpdateBase,
			OrderUpdateBase:    cfg.Paths.OrderUpdateBase,
			MenuDeleteBase:     cfg.Paths.MenuDeleteBase,
			CustomerDeleteBase: cfg.Paths.CustomerDeleteBase,
			OrderDeleteBase:    cfg.Paths.OrderDeleteBase,
		},
		calc:     ui.PreviewCalculator{Suffix: "تومان"},
		notifier: notifier,
	}, nil
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.requestLogger, s.recoverPanic)

	r.HandleFunc("/", s.handleWelcome).Methods(http.MethodGet)
	r.HandleFunc("/dashboard", s.handleDashboard).Methods(http.MethodGet)

	r.HandleFunc("/menu", s.handleMenuCreate).Methods(http.MethodPost)
	r.HandleFunc("/menu/{id:[0-9]+}/update", s.handleMenuUpdate).Methods(http.MethodPost)
	r.HandleFunc("/menu/{id:[0-9]+}/delete", s.handleMenuDelete).Methods(http.MethodPost)

	r.HandleFunc("/customers", s.handleCustomerCreate).Methods(http.MethodPost)
	r.HandleFunc("/customers/{id:[0-9]+}/update", s.handleCustomerUpdate).Methods(http.MethodPost)
	r.HandleFunc("/customers/{id:[0-9]+}/delete", s.handleCustomerDelete).Methods(http.MethodPost)

	r.HandleFunc("/orders", s.handleOrderCreate).Methods(http.MethodPost)
	r.HandleFunc("/orders/preview", s.handleOrderPreview).Methods(http.MethodGet)
	r.HandleFunc("/orders/{id:[0-9]+}/update", s.handleOrderUpdate).Methods(http.MethodPost)
	r.HandleFunc("/orders/{id:[0-9]+}/delete", s.handleOrderDelete).Methods(http.MethodPost)

	r.NotFoundHandler = s.recoverPanic(http.HandlerFunc(s.handleNotFound))
	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := uuid.NewString()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			zap.String("id", reqID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("took", time.Since(start)),
		)
	})
}

func (s *Server) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.log.Error("panic in handler",
					zap.String("path", r.URL.Path),
					zap.Any("panic", rec),
				)
				s.renderError(w, http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		s.log.Error("render template", zap.String("template", name), zap.Error(err))
	}
}

func (s *Server) renderError(w http.ResponseWriter, code int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	name := "500.html"
	if code == http.StatusNotFound {
		name = "404.html"
	}
	if err := s.tmpl.ExecuteTemplate(w, name, nil); err != nil {
		s.log.Error("render error page", zap.Error(err))
	}
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.renderError(w, http.StatusNotFound)
}
