package domain

import "time"

type ScheduleType string

const (
	ScheduleTask        ScheduleType = "task"
	ScheduleMeeting     ScheduleType = "meeting"
	ScheduleMaintenance ScheduleType = "maintenance"
	ScheduleInspection  ScheduleType = "inspection"
	ScheduleDelivery    ScheduleType = "delivery"
	ScheduleOther       ScheduleType = "other"
)

type ScheduleStatus string

const (
	ScheduleScheduled  ScheduleStatus = "scheduled"
	ScheduleInProgress ScheduleStatus = "in_progress"
	ScheduleCompleted  ScheduleStatus = "completed"
	ScheduleCancelled  ScheduleStatus = "cancelled"
	SchedulePostponed  ScheduleStatus = "postponed"
)

// Schedule references project, employee and equipment by nullable
// foreign keys; deleting any of those nulls the reference rather than
// removing the schedule entry.
type Schedule struct {
	ID          int64          `json:"id"`
	TenantID    int64          `json:"tenant_id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	StartAt     time.Time      `json:"start_at"`
	EndAt       time.Time      `json:"end_at"`
	IsAllDay    bool           `json:"is_all_day"`
	ProjectID   *int64         `json:"project_id,omitempty"`
	EmployeeID  *int64         `json:"employee_id,omitempty"`
	EquipmentID *int64         `json:"equipment_id,omitempty"`
	Type        ScheduleType   `json:"type"`
	Status      ScheduleStatus `json:"status"`
	Location    string         `json:"location,omitempty"`
	Notes       string         `json:"notes,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
