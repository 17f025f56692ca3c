package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"BOAT_CHECKOUT_BACK-END/internal/config"
	"BOAT_CHECKOUT_BACK-END/internal/handlers"
	"BOAT_CHECKOUT_BACK-END/internal/middleware"
)

// SetupRoutes configures all application routes
func SetupRoutes(
	mux *http.ServeMux,
	healthHandler *handlers.HealthHandler,
	pricingHandler *handlers.PricingHandler,
	checkoutHandler *handlers.CheckoutHandler,
	noticesHandler *handlers.NoticesHandler,
	jwtCfg *config.JWTConfig,
) {
	// Health check routes
	mux.HandleFunc("GET /healthz", healthHandler.HealthCheck)
	mux.HandleFunc("GET /livez", healthHandler.LivenessCheck)
	mux.HandleFunc("GET /readyz", healthHandler.ReadinessCheck)

	// Pricing routes
	mux.HandleFunc("GET /api/coupons", pricingHandler.ListCoupons)
	mux.HandleFunc("GET /api/pricing", pricingHandler.Quote)

	// Checkout routes, all but creation need the session token
	auth := func(h http.HandlerFunc) http.HandlerFunc { return middleware.SessionAuth(h, jwtCfg) }

	mux.HandleFunc("POST /api/checkout/sessions", checkoutHandler.CreateSession)
	mux.HandleFunc("GET /api/checkout/sessions/{id}", auth(checkoutHandler.GetSession))
	mux.HandleFunc("DELETE /api/checkout/sessions/{id}", auth(checkoutHandler.DeleteSession))
	mux.HandleFunc("POST /api/checkout/sessions/{id}/travellers", auth(checkoutHandler.AddTraveller))
	mux.HandleFunc("PATCH /api/checkout/sessions/{id}/travellers/{travellerID}", auth(checkoutHandler.UpdateTraveller))
	mux.HandleFunc("DELETE /api/checkout/sessions/{id}/travellers/{travellerID}", auth(checkoutHandler.RemoveTraveller))
	mux.HandleFunc("POST /api/checkout/sessions/{id}/travellers/{travellerID}/thumbprint", auth(checkoutHandler.CaptureThumbprint))
	mux.HandleFunc("PUT /api/checkout/sessions/{id}/travel-date", auth(checkoutHandler.SetTravelDate))
	mux.HandleFunc("POST /api/checkout/sessions/{id}/coupon", auth(checkoutHandler.ApplyCoupon))
	mux.HandleFunc("DELETE /api/checkout/sessions/{id}/coupon", auth(checkoutHandler.RemoveCoupon))
	mux.HandleFunc("POST /api/checkout/sessions/{id}/validate", auth(checkoutHandler.ValidateForm))
	mux.HandleFunc("POST /api/checkout/sessions/{id}/submit", auth(checkoutHandler.Submit))
	mux.HandleFunc("GET /api/checkout/sessions/{id}/notices", auth(noticesHandler.ListNotices))

	// API docs
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Root route
	mux.HandleFunc("GET /{$}", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Boat checkout backend is running."))
}
