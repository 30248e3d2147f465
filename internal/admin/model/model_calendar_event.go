package model

import "time"

// Calendar event types.
const (
	EventTypeGeneral  = "general"
	EventTypeBirthday = "birthday"
	EventTypeTraining = "training"
	EventTypeHoliday  = "holiday"
)

// Recurrence frequencies for event series.
const (
	RecurNone    = ""
	RecurDaily   = "daily"
	RecurWeekly  = "weekly"
	RecurMonthly = "monthly"
	RecurYearly  = "yearly"
)

// CalendarEvent is a single calendar occurrence. Events created from a
// recurring request share a SeriesId, one row per occurrence.
type CalendarEvent struct {
	BaseModel
	EventId     string    `gorm:"column:event_id" json:"eventId"`
	SeriesId    string    `gorm:"column:series_id" json:"seriesId,omitempty"`
	Title       string    `gorm:"column:title" json:"title"`
	Description string    `gorm:"column:description" json:"description,omitempty"`
	EventType   string    `gorm:"column:event_type;default:general" json:"eventType"`
	StartAt     time.Time `gorm:"column:start_at" json:"startAt"`
	EndAt       time.Time `gorm:"column:end_at" json:"endAt"`
	AllDay      bool      `gorm:"column:all_day" json:"allDay"`
	Location    string    `gorm:"column:location" json:"location,omitempty"`
	// RelatedUserId links auto-generated events (birthdays) to their subject.
	RelatedUserId string `gorm:"column:related_user_id" json:"relatedUserId,omitempty"`
	CreatedBy     string `gorm:"column:created_by" json:"createdBy"`
}

func (CalendarEvent) TableName() string {
	return "t_calendar_event"
}

type AddEventReq struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	EventType   string    `json:"eventType"`
	StartAt     time.Time `json:"startAt" validate:"required"`
	EndAt       time.Time `json:"endAt" validate:"required"`
	AllDay      bool      `json:"allDay"`
	Location    string    `json:"location"`
	// Recurrence spawns one event per occurrence up to RecurUntil.
	Recurrence string     `json:"recurrence"`
	RecurUntil *time.Time `json:"recurUntil"`
}

type UpdateEventReq struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	EventType   string     `json:"eventType"`
	StartAt     *time.Time `json:"startAt"`
	EndAt       *time.Time `json:"endAt"`
	AllDay      *bool      `json:"allDay"`
	Location    string     `json:"location"`
	// ApplyToSeries edits every future occurrence in the series, keeping
	// each occurrence's own date.
	ApplyToSeries bool `json:"applyToSeries"`
}
