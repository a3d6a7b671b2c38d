package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/light-bringer/lumina-store/internal/app/analytics/queries/report"
	"github.com/light-bringer/lumina-store/internal/app/catalog/contracts"
	"github.com/light-bringer/lumina-store/internal/app/catalog/domain"
	"github.com/light-bringer/lumina-store/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/lumina-store/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/lumina-store/internal/app/catalog/queries/list_sales"
	"github.com/light-bringer/lumina-store/internal/auth"
	"github.com/light-bringer/lumina-store/internal/pkg/clock"
)

type stubReadModel struct {
	products []*contracts.ProductDTO
	sales    []*contracts.SaleDTO
	clicks   []*contracts.ClickDTO
}

func (s *stubReadModel) GetProductByID(ctx context.Context, productID string) (*contracts.ProductDTO, error) {
	for _, p := range s.products {
		if p.ProductID == productID {
			return p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (s *stubReadModel) ListProducts(ctx context.Context, filter *contracts.ListFilter) ([]*contracts.ProductDTO, error) {
	if filter == nil || filter.Category == "" {
		return s.products, nil
	}
	var out []*contracts.ProductDTO
	for _, p := range s.products {
		if p.Category == filter.Category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubReadModel) ListSales(ctx context.Context) ([]*contracts.SaleDTO, error) {
	return s.sales, nil
}

func (s *stubReadModel) ListClicks(ctx context.Context) ([]*contracts.ClickDTO, error) {
	return s.clicks, nil
}

type memAuthStore struct {
	hashes   map[string]string
	sessions map[string]*auth.Session
}

func (m *memAuthStore) GetPasswordHash(ctx context.Context, email string) (string, error) {
	hash, ok := m.hashes[email]
	if !ok {
		return "", auth.ErrInvalidCredentials
	}
	return hash, nil
}

func (m *memAuthStore) InsertSession(ctx context.Context, session *auth.Session) error {
	m.sessions[session.Token] = session
	return nil
}

func (m *memAuthStore) GetSession(ctx context.Context, token string) (*auth.Session, error) {
	session, ok := m.sessions[token]
	if !ok {
		return nil, auth.ErrSessionNotFound
	}
	return session, nil
}

func (m *memAuthStore) DeleteSession(ctx context.Context, token string) error {
	delete(m.sessions, token)
	return nil
}

func (m *memAuthStore) UpsertAdmin(ctx context.Context, email, passwordHash string, now time.Time) error {
	m.hashes[email] = passwordHash
	return nil
}

func newTestApp(t *testing.T, rm contracts.ReadModel) (*App, http.Handler) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	store := &memAuthStore{
		hashes:   map[string]string{"admin@lumina.test": string(hash)},
		sessions: make(map[string]*auth.Session),
	}
	clk := clock.NewMockClock(time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC))

	app := &App{
		WhatsAppNumber: "6281234567890",
		Auth:           auth.NewService(store, clk, time.Hour),
		GetProduct:     get_product.NewQuery(rm),
		ListProducts:   list_products.NewQuery(rm),
		ListSales:      list_sales.NewQuery(rm),
		Report:         report.NewQuery(rm, clk, report.Config{MonthWindowDays: 30, LowStockThreshold: 3}),
	}

	return app, NewRouter(app, 5*time.Second)
}

func login(t *testing.T, handler http.Handler) string {
	t.Helper()

	body := bytes.NewBufferString(`{"email":"admin@lumina.test","password":"hunter22"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp loginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Token
}

func TestHealthz(t *testing.T) {
	_, handler := newTestApp(t, &stubReadModel{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestListProducts(t *testing.T) {
	rm := &stubReadModel{products: []*contracts.ProductDTO{
		{ProductID: "p1", Name: "Aviator", Category: "sunglasses"},
		{ProductID: "p2", Name: "Reader", Category: "optical"},
	}}
	_, handler := newTestApp(t, rm)

	t.Run("all products", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp listProductsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Products, 2)
	})

	t.Run("category filter", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products?category=optical", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp listProductsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Products, 1)
		assert.Equal(t, "p2", resp.Products[0].ProductID)
	})
}

func TestGetProduct(t *testing.T) {
	rm := &stubReadModel{products: []*contracts.ProductDTO{{ProductID: "p1", Name: "Aviator"}}}
	_, handler := newTestApp(t, rm)

	t.Run("found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products/p1", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products/missing", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCheckoutClickValidation(t *testing.T) {
	_, handler := newTestApp(t, &stubReadModel{})

	t.Run("missing product_id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout/click", bytes.NewBufferString(`{}`))
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown product", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout/click", bytes.NewBufferString(`{"product_id":"ghost"}`))
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCheckoutClickCorruptPrice(t *testing.T) {
	rm := &stubReadModel{products: []*contracts.ProductDTO{
		{ProductID: "p1", Name: "Aviator", Price: -1, InStock: true},
	}}
	_, handler := newTestApp(t, rm)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout/click", bytes.NewBufferString(`{"product_id":"p1"}`))
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal_error")
}

func TestWhatsAppURL(t *testing.T) {
	url := WhatsAppURL("6281234567890", "Aviator Classic", domain.MustMoney(1290000))

	assert.Contains(t, url, "https://wa.me/6281234567890?text=")
	assert.Contains(t, url, "Aviator+Classic")
	assert.Contains(t, url, "Rp+1.290.000")
}

func TestLoginFlow(t *testing.T) {
	_, handler := newTestApp(t, &stubReadModel{})

	t.Run("wrong password", func(t *testing.T) {
		body := bytes.NewBufferString(`{"email":"admin@lumina.test","password":"wrong"}`)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("login then logout", func(t *testing.T) {
		token := login(t, handler)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		// Token is gone now.
		req = httptest.NewRequest(http.MethodGet, "/api/v1/admin/sales", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireSession(t *testing.T) {
	rm := &stubReadModel{sales: []*contracts.SaleDTO{{SaleID: "s1"}}}
	_, handler := newTestApp(t, rm)

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/sales", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/sales", nil)
		req.Header.Set("Authorization", "Bearer nope")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid session", func(t *testing.T) {
		token := login(t, handler)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/sales", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp listSalesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Sales, 1)
	})
}

func TestDashboard(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	rm := &stubReadModel{
		products: []*contracts.ProductDTO{{ProductID: "p1", Name: "Aviator", StockCount: 2, InStock: true}},
		clicks:   []*contracts.ClickDTO{{ClickID: "c1", ProductID: "p1", CreatedAt: now.Add(-time.Hour)}},
	}
	_, handler := newTestApp(t, rm)
	token := login(t, handler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var rep report.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))
	assert.Equal(t, 1, rep.Clicks.Total)
	require.Len(t, rep.TopProducts, 1)
	assert.Equal(t, "p1", rep.TopProducts[0].Product.ProductID)
}

func TestWriteDomainError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", domain.ErrInvalidQuantity, http.StatusBadRequest},
		{"not found", domain.ErrProductNotFound, http.StatusNotFound},
		{"insufficient stock", domain.ErrInsufficientStock, http.StatusConflict},
		{"concurrent update", domain.ErrConcurrentUpdate, http.StatusConflict},
		{"partial sale", domain.ErrPartialSale, http.StatusInternalServerError},
		{"backend unavailable", domain.ErrBackendUnavailable, http.StatusServiceUnavailable},
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired session", auth.ErrSessionExpired, http.StatusUnauthorized},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteDomainError(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)
			assert.Equal(t, tt.status, rec.Code)

			var payload jsonError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
			assert.NotEmpty(t, payload.Error)
		})
	}
}
