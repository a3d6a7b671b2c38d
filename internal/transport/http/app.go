package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/light-bringer/lumina-store/internal/app/analytics/queries/report"
	"github.com/light-bringer/lumina-store/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/lumina-store/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/lumina-store/internal/app/catalog/queries/list_sales"
	"github.com/light-bringer/lumina-store/internal/app/catalog/usecases/create_product"
	"github.com/light-bringer/lumina-store/internal/app/catalog/usecases/delete_product"
	"github.com/light-bringer/lumina-store/internal/app/catalog/usecases/record_click"
	"github.com/light-bringer/lumina-store/internal/app/catalog/usecases/record_sale"
	"github.com/light-bringer/lumina-store/internal/app/catalog/usecases/update_product"
	"github.com/light-bringer/lumina-store/internal/auth"
	"github.com/light-bringer/lumina-store/internal/storage"
)

// Dashboard and analytics page sizes. The dashboard shows a short ranking,
// the analytics page a longer one plus recency lists.
const (
	dashboardTopN = 3
	analyticsTopN = 5
	recentN       = 10
)

// App wires the HTTP handlers to the application layer.
type App struct {
	WhatsAppNumber string

	Auth   *auth.Service
	Images storage.ImageStore

	CreateProduct *create_product.Interactor
	UpdateProduct *update_product.Interactor
	DeleteProduct *delete_product.Interactor
	RecordSale    *record_sale.Interactor
	RecordClick   *record_click.Interactor

	GetProduct   *get_product.Query
	ListProducts *list_products.Query
	ListSales    *list_sales.Query
	Report       *report.Query
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return false
	}
	return true
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
