package httpapi

import (
	"net/http"
	"strconv"

	"github.com/light-bringer/lumina-store/internal/app/catalog/contracts"
	"github.com/light-bringer/lumina-store/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/lumina-store/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/lumina-store/internal/app/catalog/usecases/create_product"
	"github.com/light-bringer/lumina-store/internal/app/catalog/usecases/delete_product"
	"github.com/light-bringer/lumina-store/internal/app/catalog/usecases/update_product"
)

type listProductsResponse struct {
	Products []*contracts.ProductDTO `json:"products"`
}

func (a *App) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &list_products.Request{
		Category: query.Get("category"),
	}
	if limitStr := query.Get("limit"); limitStr != "" {
		if limit, err := strconv.ParseInt(limitStr, 10, 64); err == nil && limit > 0 {
			req.Limit = limit
		}
	}

	products, err := a.ListProducts.Execute(r.Context(), req)
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listProductsResponse{Products: products})
}

func (a *App) getProductHandler(w http.ResponseWriter, r *http.Request) {
	product, err := a.GetProduct.Execute(r.Context(), &get_product.Request{ProductID: r.PathValue("id")})
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

type createProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"image,omitempty"`
	Price       int64  `json:"price"`
	StockCount  int64  `json:"stock_count"`
}

func (a *App) createProductHandler(w http.ResponseWriter, r *http.Request) {
	var body createProductRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	id, err := a.CreateProduct.Execute(r.Context(), &create_product.Request{
		Name:        body.Name,
		Description: body.Description,
		Category:    body.Category,
		ImageURL:    body.ImageURL,
		Price:       body.Price,
		StockCount:  body.StockCount,
	})
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

type updateProductRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	ImageURL    *string `json:"image,omitempty"`
	Price       *int64  `json:"price,omitempty"`
	StockCount  *int64  `json:"stock_count,omitempty"`
}

func (a *App) updateProductHandler(w http.ResponseWriter, r *http.Request) {
	var body updateProductRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	err := a.UpdateProduct.Execute(r.Context(), &update_product.Request{
		ProductID:   r.PathValue("id"),
		Name:        body.Name,
		Description: body.Description,
		Category:    body.Category,
		ImageURL:    body.ImageURL,
		Price:       body.Price,
		StockCount:  body.StockCount,
	})
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *App) deleteProductHandler(w http.ResponseWriter, r *http.Request) {
	err := a.DeleteProduct.Execute(r.Context(), &delete_product.Request{ProductID: r.PathValue("id")})
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type setStockRequest struct {
	StockCount int64 `json:"stock_count"`
}

// setStockHandler sets the absolute stock count. Setting it to zero is how
// the dashboard marks a product sold out; availability follows the count.
func (a *App) setStockHandler(w http.ResponseWriter, r *http.Request) {
	var body setStockRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	err := a.UpdateProduct.Execute(r.Context(), &update_product.Request{
		ProductID:  r.PathValue("id"),
		StockCount: &body.StockCount,
	})
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
