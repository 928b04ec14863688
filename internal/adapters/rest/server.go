package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Tushar123097/Home-rent-app/internal/core/port"
	"github.com/Tushar123097/Home-rent-app/internal/core/port/usecases_port"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Handlers - все обработчики API.
type Handlers struct {
	Catalog  *CatalogHandlers
	Session  *SessionHandlers
	Wishlist *WishlistHandlers
	Booking  *BookingHandlers
}

// RouterConfig - настройки роутера.
type RouterConfig struct {
	AllowedOrigins []string
}

// NewRouter собирает роутер API. Вынесен отдельно от сервера для тестов.
func NewRouter(cfg RouterConfig, h Handlers, resolveUC usecases_port.ResolveSessionUseCasePort, baseLogger port.LoggerPort) http.Handler {
	r := chi.NewRouter()

	r.Use(LoggerMiddleware(baseLogger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
		ExposedHeaders:   []string{SessionTokenHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.SetHeader("Content-Type", "application/json"))

	r.Route("/api/v1", func(r chi.Router) {
		// Публичный каталог, сессия не нужна
		r.Route("/properties", func(r chi.Router) {
			r.Get("/", h.Catalog.FindProperties)
			r.Get("/featured", h.Catalog.GetFeatured)
			r.Get("/{propertyID}", h.Catalog.GetDetails)
		})
		r.Get("/bookings/quote", h.Booking.Quote)

		r.Group(func(r chi.Router) {
			r.Use(SessionMiddleware(resolveUC))

			r.Route("/session", func(r chi.Router) {
				r.Get("/", h.Session.Current)
				r.Post("/login", h.Session.Login)
				r.Post("/logout", h.Session.Logout)
				r.Post("/register", h.Session.Register)
			})

			r.Route("/wishlist", func(r chi.Router) {
				r.Get("/", h.Wishlist.Get)
				r.Post("/{propertyID}", h.Wishlist.Add)
				r.Delete("/{propertyID}", h.Wishlist.Remove)
			})

			r.Post("/bookings", h.Booking.Submit)
			r.Post("/bookings/{bookingID}/cancel", h.Booking.Cancel)
			r.Get("/dashboard", h.Booking.Dashboard)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteJSONError(w, http.StatusNotFound, "Route not found")
	})

	return r
}

// Server - REST API сервер.
type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

// NewServer создает новый экземпляр сервера.
func NewServer(listenPort string, handler http.Handler, baseLogger port.LoggerPort) *Server {
	srv := &http.Server{
		Addr:              ":" + listenPort,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &Server{
		httpServer: srv,
		logger:     baseLogger,
	}
}

// Start запускает HTTP-сервер.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop корректно останавливает сервер.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
