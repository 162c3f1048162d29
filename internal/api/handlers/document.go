package handlers

import (
	"errors"
	"net/http"

	"github.com/buildrite/buildrite/internal/domain"
	"github.com/buildrite/buildrite/internal/service"
)

type DocumentHandler struct {
	svc *service.DocumentService
}

func NewDocumentHandler(svc *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

type documentRequest struct {
	FileName         string                  `json:"file_name" validate:"required,max=200"`
	OriginalFileName string                  `json:"original_file_name" validate:"max=200"`
	FilePath         string                  `json:"file_path" validate:"required,max=500"`
	ContentType      string                  `json:"content_type" validate:"max=100"`
	FileSize         int64                   `json:"file_size" validate:"gte=0"`
	ProjectID        *int64                  `json:"project_id"`
	Category         domain.DocumentCategory `json:"category" validate:"omitempty,oneof=general contract blueprint permit invoice receipt photo report specification other"`
	Description      string                  `json:"description" validate:"max=1000"`
	UploadedBy       string                  `json:"uploaded_by" validate:"max=100"`
	IsActive         *bool                   `json:"is_active"`
}

func (req *documentRequest) toDomain() *domain.Document {
	return &domain.Document{
		FileName:         req.FileName,
		OriginalFileName: req.OriginalFileName,
		FilePath:         req.FilePath,
		ContentType:      req.ContentType,
		FileSize:         req.FileSize,
		ProjectID:        req.ProjectID,
		Category:         req.Category,
		Description:      req.Description,
		UploadedBy:       req.UploadedBy,
		IsActive:         req.IsActive == nil || *req.IsActive,
	}
}

func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}

	var req documentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	document := req.toDomain()
	if err := h.svc.Create(r.Context(), tid, document); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create document")
		return
	}

	locationHeader(w, r, document.ID)
	writeJSON(w, http.StatusCreated, document)
}

func (h *DocumentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	document, err := h.svc.GetByID(r.Context(), id, tid)
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get document")
		return
	}

	writeJSON(w, http.StatusOK, document)
}

func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}

	documents, err := h.svc.List(r.Context(), tid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list documents")
		return
	}
	writeJSON(w, http.StatusOK, documents)
}

func (h *DocumentHandler) ListByProject(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}
	projectID, ok := pathID(w, r, "projectId")
	if !ok {
		return
	}

	documents, err := h.svc.ListByProject(r.Context(), projectID, tid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list documents")
		return
	}
	writeJSON(w, http.StatusOK, documents)
}

func (h *DocumentHandler) Update(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req documentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	updated, err := h.svc.Update(r.Context(), id, tid, req.toDomain())
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update document")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id, tid); err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete document")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
