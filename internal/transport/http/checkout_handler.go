package httpapi

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/light-bringer/lumina-store/internal/app/catalog/domain"
	"github.com/light-bringer/lumina-store/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/lumina-store/internal/app/catalog/usecases/record_click"
	"github.com/light-bringer/lumina-store/internal/logx"
)

type checkoutClickRequest struct {
	ProductID string `json:"product_id"`
}

type checkoutClickResponse struct {
	WhatsAppURL string `json:"whatsapp_url"`
}

// checkoutClickHandler records the checkout click and hands the storefront
// the WhatsApp deep link for the product. The click write is best-effort:
// a lost click is an analytics gap, not a failed checkout.
func (a *App) checkoutClickHandler(w http.ResponseWriter, r *http.Request) {
	var body checkoutClickRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	if body.ProductID == "" {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", "product_id is required")
		return
	}

	product, err := a.GetProduct.Execute(r.Context(), &get_product.Request{ProductID: body.ProductID})
	if err != nil {
		WriteDomainError(w, r, err)
		return
	}

	price, err := domain.NewMoney(product.Price)
	if err != nil {
		logx.Error().
			Err(err).
			Str("product_id", product.ProductID).
			Str("request_id", RequestIDFromContext(r.Context())).
			Msg("stored product price is invalid")
		WriteJSONError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}

	if _, err := a.RecordClick.Execute(r.Context(), &record_click.Request{ProductID: product.ProductID}); err != nil {
		logx.Warn().
			Err(err).
			Str("product_id", product.ProductID).
			Str("request_id", RequestIDFromContext(r.Context())).
			Msg("failed to record checkout click")
	}

	writeJSON(w, http.StatusOK, checkoutClickResponse{
		WhatsAppURL: WhatsAppURL(a.WhatsAppNumber, product.Name, price),
	})
}

// WhatsAppURL builds the wa.me checkout link with a prefilled message.
func WhatsAppURL(number, productName string, price domain.Money) string {
	message := fmt.Sprintf("Halo, saya tertarik dengan kacamata %s seharga %s. Apakah stok masih ada?", productName, price.Format())
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message))
}
