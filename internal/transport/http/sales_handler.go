package httpapi

import (
	"net/http"

	"github.com/light-bringer/lumina-store/internal/app/catalog/contracts"
	"github.com/light-bringer/lumina-store/internal/app/catalog/usecases/record_sale"
)

type recordSaleRequest struct {
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone,omitempty"`
	CustomerAddress string `json:"customer_address,omitempty"`
	ProductID       string `json:"product_id"`
	Quantity        int64  `json:"quantity"`
}

type recordSaleResponse struct {
	SaleID         string `json:"sale_id"`
	UnitPrice      int64  `json:"unit_price"`
	TotalPrice     int64  `json:"total_price"`
	RemainingStock int64  `json:"remaining_stock"`
	InStock        bool   `json:"in_stock"`
}

func (a *App) recordSaleHandler(w http.ResponseWriter, r *http.Request) {
	var body recordSaleRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	result, err := a.RecordSale.Execute(r.Context(), &record_sale.Request{
		CustomerName:    body.CustomerName,
		CustomerPhone:   body.CustomerPhone,
		CustomerAddress: body.CustomerAddress,
		ProductID:       body.ProductID,
		Quantity:        body.Quantity,
	})
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, recordSaleResponse{
		SaleID:         result.SaleID,
		UnitPrice:      result.UnitPrice,
		TotalPrice:     result.TotalPrice,
		RemainingStock: result.RemainingStock,
		InStock:        result.InStock,
	})
}

type listSalesResponse struct {
	Sales []*contracts.SaleDTO `json:"sales"`
}

func (a *App) listSalesHandler(w http.ResponseWriter, r *http.Request) {
	sales, err := a.ListSales.Execute(r.Context())
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listSalesResponse{Sales: sales})
}
