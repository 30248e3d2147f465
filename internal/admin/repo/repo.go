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

package repo

import (
	"gorm.io/gorm"

	"github.com/careconnect-hq/careconnect/pkg/ctx"
)

// Repositories aggregates every repository behind one handle.
type Repositories struct {
	User         IUserRepository
	NewHire      INewHireRepository
	Document     IDocumentRepository
	UserDocument IUserDocumentRepository
	Calendar     ICalendarRepository
	Resource     IResourceRepository
	QA           IQARepository
	Notification INotificationRepository
	EditRequest  IEditRequestRepository
	WebhookEvent IWebhookEventRepository
}

func NewRepositories(appCtx *ctx.Context) *Repositories {
	return &Repositories{
		User:         NewUserRepo(appCtx),
		NewHire:      NewNewHireRepo(appCtx),
		Document:     NewDocumentRepo(appCtx),
		UserDocument: NewUserDocumentRepo(appCtx),
		Calendar:     NewCalendarRepo(appCtx),
		Resource:     NewResourceRepo(appCtx),
		QA:           NewQARepo(appCtx),
		Notification: NewNotificationRepo(appCtx),
		EditRequest:  NewEditRequestRepo(appCtx),
		WebhookEvent: NewWebhookEventRepo(appCtx),
	}
}

func Count(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func Exist(tx *gorm.DB, where interface{}) bool {
	var one interface{}
	if err := tx.Where(where).First(&one).Error; err != nil {
		return false
	}
	return true
}
