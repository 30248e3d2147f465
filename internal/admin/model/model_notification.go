package model

// Notification kinds.
const (
	NotifyKindApproval   = "approval"
	NotifyKindDocument   = "document"
	NotifyKindReminder   = "reminder"
	NotifyKindAnswer     = "answer"
	NotifyKindEditResult = "edit_result"
	NotifyKindSystem     = "system"
)

// Notification is an in-app message for a single user.
type Notification struct {
	BaseModel
	NotificationId string `gorm:"column:notification_id" json:"notificationId"`
	UserId         string `gorm:"column:user_id" json:"userId"`
	Kind           string `gorm:"column:kind;default:system" json:"kind"`
	Title          string `gorm:"column:title" json:"title"`
	Body           string `gorm:"column:body" json:"body,omitempty"`
	// Link is an in-app route the client navigates to on tap.
	Link   string `gorm:"column:link" json:"link,omitempty"`
	IsRead bool   `gorm:"column:is_read" json:"isRead"`
}

func (Notification) TableName() string {
	return "t_notification"
}
