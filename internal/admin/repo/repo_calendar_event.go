package repo

import (
	"time"

	"github.com/careconnect-hq/careconnect/internal/admin/model"
	"github.com/careconnect-hq/careconnect/pkg/ctx"
)

type ICalendarRepository interface {
	AddEvent(e *model.CalendarEvent) error
	AddEvents(events []model.CalendarEvent) error
	GetEvent(eventId string) (*model.CalendarEvent, error)
	ListBetween(from, to time.Time) ([]model.CalendarEvent, error)
	ListSeriesFrom(seriesId string, from time.Time) ([]model.CalendarEvent, error)
	HasBirthdayEvent(relatedUserId string, year int) (bool, error)
	UpdateEvent(eventId string, fields map[string]interface{}) error
	DeleteEvent(eventId string) error
	DeleteSeriesFrom(seriesId string, from time.Time) error
}

type CalendarRepo struct {
	Ctx        *ctx.Context
	eventModel model.CalendarEvent
}

func NewCalendarRepo(appCtx *ctx.Context) ICalendarRepository {
	return &CalendarRepo{
		Ctx:        appCtx,
		eventModel: model.CalendarEvent{},
	}
}

func (cr *CalendarRepo) AddEvent(e *model.CalendarEvent) error {
	return cr.Ctx.GetDB().Table(cr.eventModel.TableName()).Create(e).Error
}

func (cr *CalendarRepo) AddEvents(events []model.CalendarEvent) error {
	if len(events) == 0 {
		return nil
	}
	return cr.Ctx.GetDB().Table(cr.eventModel.TableName()).CreateInBatches(events, 100).Error
}

func (cr *CalendarRepo) GetEvent(eventId string) (*model.CalendarEvent, error) {
	var e = &model.CalendarEvent{}
	err := cr.Ctx.GetDB().Table(cr.eventModel.TableName()).
		Where("event_id = ?", eventId).
		First(e).Error
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (cr *CalendarRepo) ListBetween(from, to time.Time) ([]model.CalendarEvent, error) {
	var events []model.CalendarEvent
	err := cr.Ctx.GetDB().Table(cr.eventModel.TableName()).
		Where("start_at < ? AND end_at >= ?", to, from).
		Order("start_at ASC").
		Find(&events).Error
	return events, err
}

func (cr *CalendarRepo) ListSeriesFrom(seriesId string, from time.Time) ([]model.CalendarEvent, error) {
	var events []model.CalendarEvent
	err := cr.Ctx.GetDB().Table(cr.eventModel.TableName()).
		Where("series_id = ? AND start_at >= ?", seriesId, from).
		Order("start_at ASC").
		Find(&events).Error
	return events, err
}

// HasBirthdayEvent reports whether a birthday event already exists for the
// user in the given year, keeping the approval hook idempotent.
func (cr *CalendarRepo) HasBirthdayEvent(relatedUserId string, year int) (bool, error) {
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0)

	var count int64
	err := cr.Ctx.GetDB().Table(cr.eventModel.TableName()).
		Where("related_user_id = ? AND event_type = ? AND start_at >= ? AND start_at < ?",
			relatedUserId, model.EventTypeBirthday, yearStart, yearEnd).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (cr *CalendarRepo) UpdateEvent(eventId string, fields map[string]interface{}) error {
	return cr.Ctx.GetDB().Table(cr.eventModel.TableName()).
		Where("event_id = ?", eventId).
		Updates(fields).Error
}

func (cr *CalendarRepo) DeleteEvent(eventId string) error {
	return cr.Ctx.GetDB().Table(cr.eventModel.TableName()).
		Where("event_id = ?", eventId).
		Delete(&model.CalendarEvent{}).Error
}

func (cr *CalendarRepo) DeleteSeriesFrom(seriesId string, from time.Time) error {
	return cr.Ctx.GetDB().Table(cr.eventModel.TableName()).
		Where("series_id = ? AND start_at >= ?", seriesId, from).
		Delete(&model.CalendarEvent{}).Error
}
