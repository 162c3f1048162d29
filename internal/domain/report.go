package domain

import (
	"encoding/json"
	"time"
)

type ReportType string

const (
	ReportProjectSummary   ReportType = "project_summary"
	ReportFinancialSummary ReportType = "financial_summary"
	ReportEmployeeHours    ReportType = "employee_hours"
	ReportEquipmentUsage   ReportType = "equipment_usage"
	ReportClientActivity   ReportType = "client_activity"
	ReportInvoiceStatus    ReportType = "invoice_status"
	ReportScheduleOverview ReportType = "schedule_overview"
	ReportCustom           ReportType = "custom"
)

type Report struct {
	ID          int64           `json:"id"`
	TenantID    int64           `json:"tenant_id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Type        ReportType      `json:"type"`
	ProjectID   *int64          `json:"project_id,omitempty"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	Data        json.RawMessage `json:"data"`
	GeneratedBy string          `json:"generated_by,omitempty"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
