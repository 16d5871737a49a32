package httpserver

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sheshape-storefront/internal/domain"
	"sheshape-storefront/internal/upstream"
)

func gatewayWithBackend(t *testing.T, backend http.Handler) http.Handler {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)
	return buildRouter(Deps{
		Checkout:  &stubCheckout{},
		Upstream:  upstream.New(srv.URL, 5*time.Second),
		JWTSecret: testSecret,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestPassthroughForwardsToken(t *testing.T) {
	var gotAuth, gotPath string
	h := gatewayWithBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Write([]byte(`{"id":7,"items":[{"productId":1,"quantity":2}]}`))
	}))

	token := signToken(t, 42, domain.RoleClient)
	w := doRequest(t, h, http.MethodGet, "/api/cart", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if gotAuth != "Bearer "+token {
		t.Errorf("backend saw Authorization %q", gotAuth)
	}
	if gotPath != "/api/cart" {
		t.Errorf("backend path = %q", gotPath)
	}
}

func TestPassthroughPublicRouteNoAuth(t *testing.T) {
	h := gatewayWithBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":[],"totalPages":0}`))
	}))

	w := doRequest(t, h, http.MethodGet, "/api/products?page=0&size=12", "", "")
	if w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
}

func TestPassthroughMissingCartIsEmpty(t *testing.T) {
	h := gatewayWithBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	w := doRequest(t, h, http.MethodGet, "/api/cart", signToken(t, 42, domain.RoleClient), "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeBody(t, w)
	if items, ok := body["items"].([]interface{}); !ok || len(items) != 0 {
		t.Errorf("items = %v, want empty list", body["items"])
	}
}

func TestPassthroughUpstreamErrorMapping(t *testing.T) {
	cases := []struct {
		name         string
		backendCode  int
		backendBody  string
		wantStatus   int
	}{
		{"unauthorized", http.StatusUnauthorized, `{}`, http.StatusUnauthorized},
		{"not found", http.StatusNotFound, `{}`, http.StatusNotFound},
		{"bad request", http.StatusBadRequest, `{"message":"nope"}`, http.StatusBadRequest},
		{"server error", http.StatusInternalServerError, `{}`, http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := gatewayWithBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.backendCode)
				w.Write([]byte(tc.backendBody))
			}))

			w := doRequest(t, h, http.MethodGet, "/api/orders/my-orders", signToken(t, 42, domain.RoleClient), "")
			if w.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tc.wantStatus)
			}
		})
	}
}

func TestAdminPassthroughWithAdminToken(t *testing.T) {
	var gotPath string
	h := gatewayWithBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[]`))
	}))

	w := doRequest(t, h, http.MethodGet, "/api/admin/users", signToken(t, 1, domain.RoleAdmin), "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if gotPath != "/api/users" {
		t.Errorf("backend path = %q", gotPath)
	}
}
