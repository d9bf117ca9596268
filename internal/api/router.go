package api

import (
	_ "p2prates/docs"
	"p2prates/internal/rate/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(rateHandler *handler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/rates", rateHandler.GetRates)
		r.Post("/rates/refresh", rateHandler.RefreshRates)
		r.Get("/rates/stream", rateHandler.StreamRates)

		r.Post("/conversions", rateHandler.Convert)
		r.Post("/conversions/swap", rateHandler.Swap)

		r.Get("/advertisements", rateHandler.GetAdvertisements)

		r.Get("/ticker", rateHandler.GetTicker)
		r.Post("/ticker/refresh", rateHandler.RefreshTicker)
		r.Get("/ticker/stream", rateHandler.StreamTicker)
	})
	return router
}
