package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/GateFare/GateFare/internal/config"
	"github.com/GateFare/GateFare/internal/observability"
	"github.com/GateFare/GateFare/internal/rateLimit"
)

func SetupRouter(h *Handlers, cfg *config.Config, logger observability.Logger, rl *rateLimit.RateLimiter) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(RequestIDMiddleware)
	r.Use(LoggerMiddleware(logger))
	r.Use(TracingMiddleware)
	r.Use(MetricsMiddleware)
	r.Use(RateLimitMiddleware(rl, "general", cfg.GeneralRatePerMin))

	r.Get("/v1/healthz", h.Healthz)
	r.Get("/v1/readyz", h.Readyz)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Get("/v1/airports", h.SearchAirports)
	r.Get("/v1/flights/search", h.SearchFlights)

	r.Route("/v1/bookings", func(r chi.Router) {
		r.Post("/", h.StartBooking)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetBooking)
			r.Delete("/", h.AbandonBooking)
			r.Put("/passengers/{index}", h.UpdatePassenger)
			r.Put("/seats", h.UpdateSeats)
			r.Put("/addons", h.UpdateAddons)
			r.Put("/payment", h.UpdatePayment)
			r.Post("/next", h.Next)
			r.Post("/back", h.Back)
			r.Post("/coupon", h.ApplyCoupon)
			r.Delete("/coupon", h.RemoveCoupon)
			r.Put("/token", h.SetToken)
			r.With(RateLimitMiddleware(rl, "submit", cfg.SubmitRatePerMin)).Post("/submit", h.Submit)
		})
	})

	r.With(RateLimitMiddleware(rl, "enquiry", cfg.SubmitRatePerMin)).Post("/v1/enquiries", h.CreateEnquiry)

	return r
}
