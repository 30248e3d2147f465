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

	"github.com/stretchr/testify/assert"

	"github.com/careconnect-hq/careconnect/internal/admin/model"
)

func TestMapEventStatus(t *testing.T) {
	tests := []struct {
		eventType string
		status    string
		known     bool
	}{
		{model.WebhookEventViewed, model.DocStatusViewed, true},
		{model.WebhookEventStarted, model.DocStatusStarted, true},
		{model.WebhookEventCompleted, model.DocStatusCompleted, true},
		{model.WebhookEventFormCompleted, model.DocStatusCompleted, true},
		{model.WebhookEventDeclined, model.DocStatusDeclined, true},
		{"form.reopened", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.eventType, func(t *testing.T) {
			status, known := mapEventStatus(tt.eventType)
			assert.Equal(t, tt.known, known)
			assert.Equal(t, tt.status, status)
		})
	}
}
