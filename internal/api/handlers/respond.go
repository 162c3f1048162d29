package handlers

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/buildrite/buildrite/internal/api/middleware"
	"github.com/buildrite/buildrite/internal/api/respond"
)

var validate = newValidator()

// newValidator teaches the validator to treat decimal fields as their
// float value so gte/lte tags apply to money and rate inputs.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	respond.JSON(w, status, v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	respond.Error(w, status, msg)
}

// tenantID pulls the resolved tenant from context. Requests that reach
// a tenant-owned resource without one are rejected outright; there is
// no fallback tenant.
func tenantID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := middleware.TenantIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "no tenant resolved for request")
		return 0, false
	}
	return id, true
}

// pathID parses the named chi URL parameter as an integer id.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

// decodeBody decodes and validates a JSON request body.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func locationHeader(w http.ResponseWriter, r *http.Request, id int64) {
	w.Header().Set("Location", r.URL.Path+"/"+strconv.FormatInt(id, 10))
}
