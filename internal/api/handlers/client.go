package handlers

import (
	"errors"
	"net/http"

	"github.com/buildrite/buildrite/internal/domain"
	"github.com/buildrite/buildrite/internal/service"
)

type ClientHandler struct {
	svc *service.ClientService
}

func NewClientHandler(svc *service.ClientService) *ClientHandler {
	return &ClientHandler{svc: svc}
}

type clientRequest struct {
	Name          string            `json:"name" validate:"required,max=100"`
	ContactPerson string            `json:"contact_person" validate:"max=100"`
	Email         string            `json:"email" validate:"required,email,max=100"`
	PhoneNumber   string            `json:"phone_number" validate:"max=20"`
	Address       string            `json:"address" validate:"max=500"`
	City          string            `json:"city" validate:"max=50"`
	State         string            `json:"state" validate:"max=50"`
	ZipCode       string            `json:"zip_code" validate:"max=20"`
	Country       string            `json:"country" validate:"max=50"`
	Type          domain.ClientType `json:"type" validate:"omitempty,oneof=individual business government nonprofit"`
	Notes         string            `json:"notes" validate:"max=1000"`
	IsActive      *bool             `json:"is_active"`
}

func (req *clientRequest) toDomain() *domain.Client {
	return &domain.Client{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		ZipCode:       req.ZipCode,
		Country:       req.Country,
		Type:          req.Type,
		Notes:         req.Notes,
		IsActive:      req.IsActive == nil || *req.IsActive,
	}
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}

	var req clientRequest
	if !decodeBody(w, r, &req) {
		return
	}

	client := req.toDomain()
	if err := h.svc.Create(r.Context(), tid, client); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create client")
		return
	}

	locationHeader(w, r, client.ID)
	writeJSON(w, http.StatusCreated, client)
}

func (h *ClientHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	client, err := h.svc.GetByID(r.Context(), id, tid)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get client")
		return
	}

	writeJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}

	list := h.svc.List
	if r.URL.Query().Get("active") == "true" {
		list = h.svc.ListActive
	}
	clients, err := list(r.Context(), tid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list clients")
		return
	}
	writeJSON(w, http.StatusOK, clients)
}

func (h *ClientHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}

	clients, err := h.svc.ListActive(r.Context(), tid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list clients")
		return
	}
	writeJSON(w, http.StatusOK, clients)
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req clientRequest
	if !decodeBody(w, r, &req) {
		return
	}

	updated, err := h.svc.Update(r.Context(), id, tid, req.toDomain())
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update client")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id, tid); err != nil {
		switch {
		case errors.Is(err, service.ErrClientNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrClientInUse):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to delete client")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
