package httpapi

import (
	"net/http"
	"time"
)

// NewRouter registers all routes and wraps them in the shared middleware.
func NewRouter(app *App, requestTimeout time.Duration) http.Handler {
	mux := http.NewServeMux()

	// Public storefront surface.
	mux.HandleFunc("GET /healthz", app.healthHandler)
	mux.HandleFunc("GET /api/v1/products", app.listProductsHandler)
	mux.HandleFunc("GET /api/v1/products/{id}", app.getProductHandler)
	mux.HandleFunc("POST /api/v1/checkout/click", app.checkoutClickHandler)

	// Auth.
	mux.HandleFunc("POST /api/v1/auth/login", app.loginHandler)
	mux.Handle("POST /api/v1/auth/logout", RequireSession(app.Auth, http.HandlerFunc(app.logoutHandler)))

	// Admin surface.
	admin := http.NewServeMux()
	admin.HandleFunc("POST /api/v1/admin/products", app.createProductHandler)
	admin.HandleFunc("PATCH /api/v1/admin/products/{id}", app.updateProductHandler)
	admin.HandleFunc("DELETE /api/v1/admin/products/{id}", app.deleteProductHandler)
	admin.HandleFunc("POST /api/v1/admin/products/{id}/stock", app.setStockHandler)
	admin.HandleFunc("POST /api/v1/admin/products/{id}/image", app.uploadImageHandler)
	admin.HandleFunc("POST /api/v1/admin/sales", app.recordSaleHandler)
	admin.HandleFunc("GET /api/v1/admin/sales", app.listSalesHandler)
	admin.HandleFunc("GET /api/v1/admin/dashboard", app.dashboardHandler)
	admin.HandleFunc("GET /api/v1/admin/analytics", app.analyticsHandler)
	mux.Handle("/api/v1/admin/", RequireSession(app.Auth, admin))

	return WithRequestID(WithLogging(WithTimeout(requestTimeout, mux)))
}
