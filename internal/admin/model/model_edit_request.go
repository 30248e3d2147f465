package model

import "time"

// Edit request statuses.
const (
	EditRequestPending  = "pending"
	EditRequestApproved = "approved"
	EditRequestRejected = "rejected"
)

// Fields a user may request to change through the review flow.
const (
	EditFieldDisplayName = "displayName"
	EditFieldOccupation  = "occupation"
	EditFieldZip         = "zip"
	EditFieldBirthday    = "birthday"
)

// EditRequest is a user-submitted profile change awaiting admin review.
type EditRequest struct {
	BaseModel
	RequestId string `gorm:"column:request_id" json:"requestId"`
	UserId    string `gorm:"column:user_id" json:"userId"`
	Field     string `gorm:"column:field" json:"field"`
	OldValue  string `gorm:"column:old_value" json:"oldValue"`
	NewValue  string `gorm:"column:new_value" json:"newValue"`
	Reason    string `gorm:"column:reason" json:"reason,omitempty"`
	Status    string `gorm:"column:status;default:pending" json:"status"`

	ReviewedBy string     `gorm:"column:reviewed_by" json:"reviewedBy,omitempty"`
	ReviewedAt *time.Time `gorm:"column:reviewed_at" json:"reviewedAt,omitempty"`
	ReviewNote string     `gorm:"column:review_note" json:"reviewNote,omitempty"`
}

func (EditRequest) TableName() string {
	return "t_edit_request"
}

type AddEditRequestReq struct {
	Field    string `json:"field" validate:"required"`
	NewValue string `json:"newValue" validate:"required"`
	Reason   string `json:"reason"`
}

type ReviewEditRequestReq struct {
	Approve bool   `json:"approve"`
	Note    string `json:"note"`
}
