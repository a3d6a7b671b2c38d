package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/light-bringer/lumina-store/internal/app/catalog/domain"
	"github.com/light-bringer/lumina-store/internal/auth"
	"github.com/light-bringer/lumina-store/internal/logx"
)

// jsonError represents a JSON error payload.
type jsonError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// WriteJSONError writes a JSON error payload with the given status code.
func WriteJSONError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(jsonError{Error: message, Details: details})
}

// WriteDomainError maps domain errors onto HTTP status codes and writes the
// payload. Unknown errors become an opaque 500; their detail goes to the log,
// not the client.
func WriteDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrEmptyDescription),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidStock),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrEmptyCustomerName),
		errors.Is(err, domain.ErrMissingProductRef):
		WriteJSONError(w, http.StatusBadRequest, "validation_error", err.Error())

	case errors.Is(err, domain.ErrProductNotFound):
		WriteJSONError(w, http.StatusNotFound, "product_not_found", "")

	case errors.Is(err, domain.ErrInsufficientStock):
		WriteJSONError(w, http.StatusConflict, "insufficient_stock", err.Error())

	case errors.Is(err, domain.ErrConcurrentUpdate):
		WriteJSONError(w, http.StatusConflict, "concurrent_update", "the product changed while processing, retry the request")

	case errors.Is(err, domain.ErrPartialSale):
		WriteJSONError(w, http.StatusInternalServerError, "sale_state_unknown", "the sale outcome could not be confirmed, verify before retrying")

	case errors.Is(err, domain.ErrBackendUnavailable):
		WriteJSONError(w, http.StatusServiceUnavailable, "backend_unavailable", "")

	case errors.Is(err, auth.ErrInvalidCredentials):
		WriteJSONError(w, http.StatusUnauthorized, "invalid_credentials", "")

	case errors.Is(err, auth.ErrSessionNotFound), errors.Is(err, auth.ErrSessionExpired):
		WriteJSONError(w, http.StatusUnauthorized, "unauthorized", "")

	default:
		logx.Error().
			Err(err).
			Str("path", r.URL.Path).
			Str("request_id", RequestIDFromContext(r.Context())).
			Msg("unhandled error")
		WriteJSONError(w, http.StatusInternalServerError, "internal_error", "")
	}
}
