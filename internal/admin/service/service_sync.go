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
	"math"
	"time"

	"github.com/careconnect-hq/careconnect/internal/admin/consts"
	"github.com/careconnect-hq/careconnect/internal/admin/model"
	"github.com/careconnect-hq/careconnect/internal/admin/realtime"
	"github.com/careconnect-hq/careconnect/internal/admin/repo"
	"github.com/careconnect-hq/careconnect/pkg/ctx"
	"github.com/careconnect-hq/careconnect/pkg/id"
	"github.com/careconnect-hq/careconnect/pkg/log"
)

// SyncReport summarizes one synchronization run.
type SyncReport struct {
	UsersScanned   int `json:"usersScanned"`
	HiresScanned   int `json:"hiresScanned"`
	RowsCreated    int `json:"rowsCreated"`
	RowsExpired    int `json:"rowsExpired"`
	RemindersSent  int `json:"remindersSent"`
}

type SyncService struct {
	ctx       *ctx.Context
	userRepo  repo.IUserRepository
	hireRepo  repo.INewHireRepository
	docRepo   repo.IDocumentRepository
	rowRepo   repo.IUserDocumentRepository
	notifRepo repo.INotificationRepository
	notifier  realtime.Notifier
}

func NewSyncService(
	appCtx *ctx.Context,
	userRepo repo.IUserRepository,
	hireRepo repo.INewHireRepository,
	docRepo repo.IDocumentRepository,
	rowRepo repo.IUserDocumentRepository,
	notifRepo repo.INotificationRepository,
	notifier realtime.Notifier,
) *SyncService {
	return &SyncService{
		ctx:       appCtx,
		userRepo:  userRepo,
		hireRepo:  hireRepo,
		docRepo:   docRepo,
		rowRepo:   rowRepo,
		notifRepo: notifRepo,
		notifier:  notifier,
	}
}

// Sync guarantees one tracking row per (approved user, template) and
// (active new hire, template) pair. Missing rows are materialized as
// not_started with no timestamps. Existing rows are never touched.
func (ss *SyncService) Sync() (*SyncReport, error) {
	report := &SyncReport{}

	templates, err := ss.docRepo.ListTemplates()
	if err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		return report, nil
	}

	users, err := ss.userRepo.ListApproved()
	if err != nil {
		return nil, err
	}
	hires, err := ss.hireRepo.ListActive()
	if err != nil {
		return nil, err
	}
	report.UsersScanned = len(users)
	report.HiresScanned = len(hires)

	existing, err := ss.rowRepo.ListAll()
	if err != nil {
		return nil, err
	}

	type pair struct{ owner, template string }
	seen := make(map[pair]struct{}, len(existing))
	for i := range existing {
		owner := existing[i].UserId
		if owner == "" {
			owner = existing[i].NewHireId
		}
		seen[pair{owner, existing[i].TemplateId}] = struct{}{}
	}

	now := time.Now()
	var missing []model.UserDocument
	for i := range templates {
		t := &templates[i]
		for j := range users {
			if _, ok := seen[pair{users[j].UserId, t.TemplateId}]; ok {
				continue
			}
			missing = append(missing, newTrackingRow(t, users[j].UserId, "", now))
		}
		for j := range hires {
			if _, ok := seen[pair{hires[j].NewHireId, t.TemplateId}]; ok {
				continue
			}
			missing = append(missing, newTrackingRow(t, "", hires[j].NewHireId, now))
		}
	}

	if err := ss.rowRepo.AddRows(missing); err != nil {
		return nil, err
	}
	report.RowsCreated = len(missing)

	if report.RowsCreated > 0 {
		ss.notifier.Publish(consts.CollectionUserDocuments)
	}

	log.Infow("tracking rows synchronized",
		"users", report.UsersScanned, "hires", report.HiresScanned, "created", report.RowsCreated)
	return report, nil
}

// Scan marks past-due rows expired and sends reminder notifications for
// rows inside their template's reminder window.
func (ss *SyncService) Scan() (*SyncReport, error) {
	report := &SyncReport{}

	templates, err := ss.docRepo.ListTemplates()
	if err != nil {
		return nil, err
	}
	templateById := make(map[string]*model.DocumentTemplate, len(templates))
	for i := range templates {
		templateById[templates[i].TemplateId] = &templates[i]
	}

	rows, err := ss.rowRepo.ListIncomplete()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var reminders []model.Notification
	for i := range rows {
		row := &rows[i]
		if row.DueAt == nil {
			continue
		}

		if row.DueAt.Before(now) {
			if row.Status == model.DocStatusExpired {
				continue
			}
			if err := ss.rowRepo.UpdateFields(row.RowId, map[string]interface{}{
				"status": model.DocStatusExpired,
			}); err != nil {
				log.Errorw("failed to expire tracking row", "rowId", row.RowId, "error", err)
				continue
			}
			report.RowsExpired++
			continue
		}

		// reminder window only applies to rows owned by a real account
		t := templateById[row.TemplateId]
		if t == nil || t.ReminderDays <= 0 || row.UserId == "" {
			continue
		}
		if row.DueAt.Sub(now) <= time.Duration(t.ReminderDays)*24*time.Hour {
			reminders = append(reminders, model.Notification{
				NotificationId: id.GetUUIDWithoutDashes(),
				UserId:         row.UserId,
				Kind:           model.NotifyKindReminder,
				Title:          "Document due soon",
				Body:           t.Title + " is due on " + row.DueAt.Format("Jan 2, 2006"),
				Link:           "/documents",
			})
		}
	}

	if err := ss.notifRepo.AddNotifications(reminders); err != nil {
		log.Errorw("failed to store reminder notifications", "count", len(reminders), "error", err)
	} else {
		report.RemindersSent = len(reminders)
	}

	if report.RowsExpired > 0 || report.RemindersSent > 0 {
		ss.notifier.Publish(consts.CollectionUserDocuments, consts.CollectionNotifications)
	}

	log.Infow("tracking rows scanned", "expired", report.RowsExpired, "reminders", report.RemindersSent)
	return report, nil
}

// UserStats computes completion statistics for one user's rows.
func (ss *SyncService) UserStats(userId string) (*model.CompletionStats, error) {
	rows, err := ss.rowRepo.ListByUser(userId)
	if err != nil {
		return nil, err
	}
	return ComputeStats(rows, time.Now()), nil
}

// ComputeStats derives completion statistics from a row set. Rate is
// completed/total as a percentage rounded to nearest integer, 0 when the
// set is empty.
func ComputeStats(rows []model.UserDocument, now time.Time) *model.CompletionStats {
	stats := &model.CompletionStats{Total: len(rows)}
	for i := range rows {
		if rows[i].Status == model.DocStatusCompleted {
			stats.Completed++
		}
		if rows[i].IsOverdue(now) {
			stats.Overdue++
		}
	}
	if stats.Total > 0 {
		stats.Rate = int(math.Round(float64(stats.Completed) / float64(stats.Total) * 100))
	}
	return stats
}

// newTrackingRow materializes a not_started row for one owner/template
// pair. DueAt derives from the template's expiry window.
func newTrackingRow(t *model.DocumentTemplate, userId, newHireId string, now time.Time) model.UserDocument {
	row := model.UserDocument{
		RowId:      id.GetUUIDWithoutDashes(),
		UserId:     userId,
		NewHireId:  newHireId,
		TemplateId: t.TemplateId,
		Status:     model.DocStatusNotStarted,
	}
	if t.ExpiryDays > 0 {
		due := now.AddDate(0, 0, t.ExpiryDays)
		row.DueAt = &due
	}
	return row
}
