package model

import "time"

// Document tracking statuses.
const (
	DocStatusNotStarted = "not_started"
	DocStatusViewed     = "viewed"
	DocStatusStarted    = "started"
	DocStatusCompleted  = "completed"
	DocStatusDeclined   = "declined"
	DocStatusExpired    = "expired"
)

// UserDocument is the tracking row joining a User (or a NewHire before
// reconciliation) to a DocumentTemplate. Exactly one of UserId/NewHireId
// is set.
type UserDocument struct {
	BaseModel
	RowId      string `gorm:"column:row_id" json:"rowId"`
	UserId     string `gorm:"column:user_id" json:"userId,omitempty"`
	NewHireId  string `gorm:"column:new_hire_id" json:"newHireId,omitempty"`
	TemplateId string `gorm:"column:template_id" json:"templateId"`
	Status     string `gorm:"column:status;default:not_started" json:"status"`

	// per-transition timestamps
	ViewedAt    *time.Time `gorm:"column:viewed_at" json:"viewedAt,omitempty"`
	StartedAt   *time.Time `gorm:"column:started_at" json:"startedAt,omitempty"`
	CompletedAt *time.Time `gorm:"column:completed_at" json:"completedAt,omitempty"`
	DeclinedAt  *time.Time `gorm:"column:declined_at" json:"declinedAt,omitempty"`

	// DueAt is set on creation when the template carries an expiry window.
	DueAt *time.Time `gorm:"column:due_at" json:"dueAt,omitempty"`

	// correlation with the signing provider
	SubmissionId string `gorm:"column:submission_id" json:"submissionId,omitempty"`
	DocumentUrl  string `gorm:"column:document_url" json:"documentUrl,omitempty"`
	AuditLogUrl  string `gorm:"column:audit_log_url" json:"auditLogUrl,omitempty"`

	// manual completion override
	IsManuallyCompleted bool   `gorm:"column:is_manually_completed" json:"isManuallyCompleted"`
	ManuallyCompletedBy string `gorm:"column:manually_completed_by" json:"manuallyCompletedBy,omitempty"`
	// LastProviderStatus remembers the last provider-confirmed status so an
	// undone manual completion can fall back to it.
	LastProviderStatus string `gorm:"column:last_provider_status" json:"lastProviderStatus,omitempty"`
}

func (UserDocument) TableName() string {
	return "t_user_document"
}

// IsOverdue reports whether the row is past due and not completed.
func (d *UserDocument) IsOverdue(now time.Time) bool {
	return d.Status != DocStatusCompleted && d.DueAt != nil && d.DueAt.Before(now)
}

// CompletionStats summarizes tracking progress for a user or the whole fleet.
type CompletionStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Overdue   int `json:"overdue"`
	// Rate is completed/total as a percentage rounded to nearest integer,
	// 0 when Total is 0.
	Rate int `json:"rate"`
}
