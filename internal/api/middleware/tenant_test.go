package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/buildrite/buildrite/internal/auth"
)

func resolveTenantFor(t *testing.T, req *http.Request) (int64, bool) {
	t.Helper()
	var (
		got int64
		ok  bool
	)
	h := ResolveTenant(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = TenantIDFromContext(r.Context())
	}))
	h.ServeHTTP(httptest.NewRecorder(), req)
	return got, ok
}

func withClaims(req *http.Request, tenantID *int64) *http.Request {
	claims := &auth.Claims{TenantID: tenantID}
	ctx := context.WithValue(req.Context(), claimsContextKey, claims)
	return req.WithContext(ctx)
}

func TestResolveTenant_HeaderWins(t *testing.T) {
	claimTenant := int64(7)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TenantHeader, "42")
	req = withClaims(req, &claimTenant)

	id, ok := resolveTenantFor(t, req)
	if !ok || id != 42 {
		t.Fatalf("expected tenant 42 from header, got %d ok=%v", id, ok)
	}
}

func TestResolveTenant_ClaimFallback(t *testing.T) {
	claimTenant := int64(7)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = withClaims(req, &claimTenant)

	id, ok := resolveTenantFor(t, req)
	if !ok || id != 7 {
		t.Fatalf("expected tenant 7 from claim, got %d ok=%v", id, ok)
	}
}

func TestResolveTenant_MalformedHeaderFallsThrough(t *testing.T) {
	claimTenant := int64(7)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TenantHeader, "not-a-number")
	req = withClaims(req, &claimTenant)

	id, ok := resolveTenantFor(t, req)
	if !ok || id != 7 {
		t.Fatalf("expected claim tenant 7, got %d ok=%v", id, ok)
	}
}

func TestResolveTenant_Absent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = withClaims(req, nil)

	if _, ok := resolveTenantFor(t, req); ok {
		t.Fatal("expected no tenant to be resolved")
	}

	// No claims at all behaves the same.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := resolveTenantFor(t, req); ok {
		t.Fatal("expected no tenant to be resolved")
	}
}
