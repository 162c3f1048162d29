package domain

import "time"

type DocumentCategory string

const (
	DocGeneral       DocumentCategory = "general"
	DocContract      DocumentCategory = "contract"
	DocBlueprint     DocumentCategory = "blueprint"
	DocPermit        DocumentCategory = "permit"
	DocInvoice       DocumentCategory = "invoice"
	DocReceipt       DocumentCategory = "receipt"
	DocPhoto         DocumentCategory = "photo"
	DocReport        DocumentCategory = "report"
	DocSpecification DocumentCategory = "specification"
	DocOther         DocumentCategory = "other"
)

type Document struct {
	ID               int64            `json:"id"`
	TenantID         int64            `json:"tenant_id"`
	FileName         string           `json:"file_name"`
	OriginalFileName string           `json:"original_file_name"`
	FilePath         string           `json:"file_path"`
	ContentType      string           `json:"content_type"`
	FileSize         int64            `json:"file_size"`
	ProjectID        *int64           `json:"project_id,omitempty"`
	Category         DocumentCategory `json:"category"`
	Description      string           `json:"description,omitempty"`
	UploadedBy       string           `json:"uploaded_by,omitempty"`
	IsActive         bool             `json:"is_active"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}
