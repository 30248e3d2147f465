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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careconnect-hq/careconnect/internal/admin/model"
)

func baseEvent(start time.Time, d time.Duration) model.CalendarEvent {
	return model.CalendarEvent{
		Title:   "Orientation",
		StartAt: start,
		EndAt:   start.Add(d),
	}
}

func TestExpandSeriesDaily(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	until := start.AddDate(0, 0, 6)

	events, err := expandSeries(baseEvent(start, time.Hour), model.RecurDaily, until)

	require.NoError(t, err)
	require.Len(t, events, 7)
	for i, e := range events {
		assert.Equal(t, start.AddDate(0, 0, i), e.StartAt)
		assert.Equal(t, time.Hour, e.EndAt.Sub(e.StartAt))
		assert.Equal(t, events[0].SeriesId, e.SeriesId)
		assert.NotEmpty(t, e.EventId)
	}
	assert.NotEqual(t, events[0].EventId, events[1].EventId)
}

func TestExpandSeriesWeeklyInclusiveUntil(t *testing.T) {
	start := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)
	until := start.AddDate(0, 0, 21)

	events, err := expandSeries(baseEvent(start, 30*time.Minute), model.RecurWeekly, until)

	require.NoError(t, err)
	// until lands exactly on the fourth occurrence, which is included
	require.Len(t, events, 4)
	assert.Equal(t, until, events[3].StartAt)
}

func TestExpandSeriesMonthly(t *testing.T) {
	start := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	until := start.AddDate(0, 5, 0)

	events, err := expandSeries(baseEvent(start, time.Hour), model.RecurMonthly, until)

	require.NoError(t, err)
	require.Len(t, events, 6)
	assert.Equal(t, time.June, events[5].StartAt.Month())
}

func TestExpandSeriesUnknownRecurrence(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	_, err := expandSeries(baseEvent(start, time.Hour), "fortnightly", start.AddDate(0, 1, 0))

	assert.Error(t, err)
}

func TestExpandSeriesEmptyWindow(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	_, err := expandSeries(baseEvent(start, time.Hour), model.RecurDaily, start.AddDate(0, 0, -1))

	assert.Error(t, err)
}

func TestExpandSeriesCapsOccurrences(t *testing.T) {
	start := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	until := start.AddDate(10, 0, 0)

	events, err := expandSeries(baseEvent(start, time.Hour), model.RecurDaily, until)

	require.NoError(t, err)
	assert.Len(t, events, maxOccurrences)
}
