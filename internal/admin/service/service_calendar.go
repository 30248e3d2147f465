// Copyright 2026 CareConnect Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"errors"
	"time"

	"github.com/careconnect-hq/careconnect/internal/admin/consts"
	"github.com/careconnect-hq/careconnect/internal/admin/model"
	"github.com/careconnect-hq/careconnect/internal/admin/realtime"
	"github.com/careconnect-hq/careconnect/internal/admin/repo"
	"github.com/careconnect-hq/careconnect/pkg/ctx"
	"github.com/careconnect-hq/careconnect/pkg/http"
	"github.com/careconnect-hq/careconnect/pkg/id"
	"github.com/careconnect-hq/careconnect/pkg/log"
)

// maxOccurrences bounds series expansion so a far-future RecurUntil cannot
// flood the table.
const maxOccurrences = 366

type CalendarService struct {
	ctx      *ctx.Context
	repos    *repo.Repositories
	notifier realtime.Notifier
}

func NewCalendarService(appCtx *ctx.Context, repos *repo.Repositories, notifier realtime.Notifier) *CalendarService {
	return &CalendarService{
		ctx:      appCtx,
		repos:    repos,
		notifier: notifier,
	}
}

// AddEvent creates a single event, or one row per occurrence when the
// request carries a recurrence. All occurrences share a SeriesId.
func (cs *CalendarService) AddEvent(req *model.AddEventReq, createdBy string) ([]model.CalendarEvent, error) {
	if req.Title == "" || req.StartAt.IsZero() || req.EndAt.IsZero() {
		return nil, errors.New(http.BadRequest.Msg)
	}
	if req.EndAt.Before(req.StartAt) {
		return nil, errors.New("event ends before it starts")
	}

	eventType := req.EventType
	if eventType == "" {
		eventType = model.EventTypeGeneral
	}

	base := model.CalendarEvent{
		Title:       req.Title,
		Description: req.Description,
		EventType:   eventType,
		StartAt:     req.StartAt,
		EndAt:       req.EndAt,
		AllDay:      req.AllDay,
		Location:    req.Location,
		CreatedBy:   createdBy,
	}

	if req.Recurrence == model.RecurNone || req.RecurUntil == nil {
		base.EventId = id.GetUUIDWithoutDashes()
		if err := cs.repos.Calendar.AddEvent(&base); err != nil {
			return nil, err
		}
		cs.notifier.Publish(consts.CollectionCalendarEvents)
		return []model.CalendarEvent{base}, nil
	}

	events, err := expandSeries(base, req.Recurrence, *req.RecurUntil)
	if err != nil {
		return nil, err
	}
	if err := cs.repos.Calendar.AddEvents(events); err != nil {
		return nil, err
	}
	log.Infow("created event series", "seriesId", events[0].SeriesId, "occurrences", len(events))
	cs.notifier.Publish(consts.CollectionCalendarEvents)
	return events, nil
}

// expandSeries materializes one event per occurrence between the base start
// and until, inclusive.
func expandSeries(base model.CalendarEvent, recurrence string, until time.Time) ([]model.CalendarEvent, error) {
	step := func(t time.Time) time.Time {
		switch recurrence {
		case model.RecurDaily:
			return t.AddDate(0, 0, 1)
		case model.RecurWeekly:
			return t.AddDate(0, 0, 7)
		case model.RecurMonthly:
			return t.AddDate(0, 1, 0)
		case model.RecurYearly:
			return t.AddDate(1, 0, 0)
		}
		return t
	}
	if step(base.StartAt).Equal(base.StartAt) {
		return nil, errors.New("unknown recurrence frequency")
	}

	duration := base.EndAt.Sub(base.StartAt)
	seriesId := id.GetUUIDWithoutDashes()

	var events []model.CalendarEvent
	for start := base.StartAt; !start.After(until) && len(events) < maxOccurrences; start = step(start) {
		e := base
		e.EventId = id.GetUUIDWithoutDashes()
		e.SeriesId = seriesId
		e.StartAt = start
		e.EndAt = start.Add(duration)
		events = append(events, e)
	}
	if len(events) == 0 {
		return nil, errors.New("recurrence window contains no occurrences")
	}
	return events, nil
}

func (cs *CalendarService) GetEvent(eventId string) (*model.CalendarEvent, error) {
	e, err := cs.repos.Calendar.GetEvent(eventId)
	if err != nil {
		return nil, errors.New(http.EventNotExist.Msg)
	}
	return e, nil
}

func (cs *CalendarService) ListEvents(from, to time.Time) ([]model.CalendarEvent, error) {
	return cs.repos.Calendar.ListBetween(from, to)
}

// UpdateEvent edits one event. With ApplyToSeries set, every occurrence of
// the series from this event forward takes the change, keeping each
// occurrence's own date.
func (cs *CalendarService) UpdateEvent(eventId string, req *model.UpdateEventReq) error {
	e, err := cs.repos.Calendar.GetEvent(eventId)
	if err != nil {
		return errors.New(http.EventNotExist.Msg)
	}

	fields := map[string]interface{}{}
	if req.Title != "" {
		fields["title"] = req.Title
	}
	if req.Description != "" {
		fields["description"] = req.Description
	}
	if req.EventType != "" {
		fields["event_type"] = req.EventType
	}
	if req.Location != "" {
		fields["location"] = req.Location
	}
	if req.AllDay != nil {
		fields["all_day"] = *req.AllDay
	}

	if req.ApplyToSeries && e.SeriesId != "" {
		series, err := cs.repos.Calendar.ListSeriesFrom(e.SeriesId, e.StartAt)
		if err != nil {
			return err
		}
		if len(series) == 0 {
			return errors.New(http.SeriesNotExist.Msg)
		}
		for i := range series {
			if len(fields) == 0 {
				break
			}
			if err := cs.repos.Calendar.UpdateEvent(series[i].EventId, fields); err != nil {
				return err
			}
		}
		cs.notifier.Publish(consts.CollectionCalendarEvents)
		return nil
	}

	// date edits only ever apply to the single occurrence
	if req.StartAt != nil {
		fields["start_at"] = *req.StartAt
	}
	if req.EndAt != nil {
		fields["end_at"] = *req.EndAt
	}
	if len(fields) == 0 {
		return nil
	}
	if err := cs.repos.Calendar.UpdateEvent(eventId, fields); err != nil {
		return err
	}
	cs.notifier.Publish(consts.CollectionCalendarEvents)
	return nil
}

func (cs *CalendarService) DeleteEvent(eventId string) error {
	if _, err := cs.repos.Calendar.GetEvent(eventId); err != nil {
		return errors.New(http.EventNotExist.Msg)
	}
	if err := cs.repos.Calendar.DeleteEvent(eventId); err != nil {
		return err
	}
	cs.notifier.Publish(consts.CollectionCalendarEvents)
	return nil
}

// DeleteSeries removes this occurrence and every later one in its series.
func (cs *CalendarService) DeleteSeries(eventId string) error {
	e, err := cs.repos.Calendar.GetEvent(eventId)
	if err != nil {
		return errors.New(http.EventNotExist.Msg)
	}
	if e.SeriesId == "" {
		return cs.DeleteEvent(eventId)
	}
	if err := cs.repos.Calendar.DeleteSeriesFrom(e.SeriesId, e.StartAt); err != nil {
		return err
	}
	cs.notifier.Publish(consts.CollectionCalendarEvents)
	return nil
}
