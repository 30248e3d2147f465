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

	"github.com/careconnect-hq/careconnect/internal/admin/model"
)

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil, time.Now())

	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0, stats.Completed)
	assert.Equal(t, 0, stats.Overdue)
	assert.Equal(t, 0, stats.Rate)
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)

	rows := []model.UserDocument{
		{Status: model.DocStatusCompleted},
		{Status: model.DocStatusCompleted, DueAt: &past},
		{Status: model.DocStatusNotStarted, DueAt: &past},
	}

	stats := ComputeStats(rows, now)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Completed)
	assert.Equal(t, 1, stats.Overdue)
	assert.Equal(t, 67, stats.Rate)
}

func TestComputeStatsAllCompleted(t *testing.T) {
	rows := []model.UserDocument{
		{Status: model.DocStatusCompleted},
		{Status: model.DocStatusCompleted},
	}

	stats := ComputeStats(rows, time.Now())

	assert.Equal(t, 100, stats.Rate)
	assert.Equal(t, 0, stats.Overdue)
}

func TestNewTrackingRowDueDate(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	tpl := &model.DocumentTemplate{TemplateId: "tpl-1", ExpiryDays: 14}

	row := newTrackingRow(tpl, "u-1", "", now)

	assert.Equal(t, "u-1", row.UserId)
	assert.Equal(t, "tpl-1", row.TemplateId)
	assert.Equal(t, model.DocStatusNotStarted, row.Status)
	assert.NotEmpty(t, row.RowId)
	if assert.NotNil(t, row.DueAt) {
		assert.Equal(t, now.AddDate(0, 0, 14), *row.DueAt)
	}
}

func TestNewTrackingRowNoExpiry(t *testing.T) {
	tpl := &model.DocumentTemplate{TemplateId: "tpl-1"}

	row := newTrackingRow(tpl, "", "nh-1", time.Now())

	assert.Equal(t, "nh-1", row.NewHireId)
	assert.Nil(t, row.DueAt)
}
