package middleware

import (
	"context"
	"net/http"
	"strconv"
)

// TenantHeader is the explicit tenant override header. A well-formed
// header value wins over the token claim.
const TenantHeader = "X-Tenant-Id"

const tenantContextKey contextKey = "tenant_id"

// TenantIDFromContext returns the tenant resolved for this request.
// The second return is false when no tenant could be resolved; callers
// must treat that as an authorization failure, never substitute a
// default tenant.
func TenantIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(tenantContextKey).(int64)
	return id, ok
}

// WithTenantID returns a context carrying the given tenant id. Exported
// for tests. Also fills the request-log record when one is present so
// the summary line reports which tenant the request ran as.
func WithTenantID(ctx context.Context, tenantID int64) context.Context {
	if rec, ok := ctx.Value(tenantLogKey).(*tenantRecord); ok {
		rec.id = tenantID
		rec.set = true
	}
	return context.WithValue(ctx, tenantContextKey, tenantID)
}

// ResolveTenant derives the active tenant for the request: the
// X-Tenant-Id header if present and well-formed, else the tenant_id
// claim of the authenticated token, else absent. Absence is not an
// error here; tenant-requiring handlers reject it themselves.
func ResolveTenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if raw := r.Header.Get(TenantHeader); raw != "" {
			if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
				next.ServeHTTP(w, r.WithContext(WithTenantID(ctx, id)))
				return
			}
		}

		if claims := ClaimsFromContext(ctx); claims != nil && claims.TenantID != nil {
			next.ServeHTTP(w, r.WithContext(WithTenantID(ctx, *claims.TenantID)))
			return
		}

		next.ServeHTTP(w, r)
	})
}
