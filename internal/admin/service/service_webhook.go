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
	"fmt"
	"time"

	"github.com/bytedance/sonic"

	"github.com/careconnect-hq/careconnect/internal/admin/consts"
	"github.com/careconnect-hq/careconnect/internal/admin/esign"
	"github.com/careconnect-hq/careconnect/internal/admin/model"
	"github.com/careconnect-hq/careconnect/internal/admin/realtime"
	"github.com/careconnect-hq/careconnect/internal/admin/repo"
	"github.com/careconnect-hq/careconnect/pkg/ctx"
	"github.com/careconnect-hq/careconnect/pkg/id"
	"github.com/careconnect-hq/careconnect/pkg/log"
	"github.com/careconnect-hq/careconnect/pkg/metrics"
)

var ErrBadSignature = errors.New("webhook signature verification failed")

type WebhookService struct {
	ctx       *ctx.Context
	repos     *repo.Repositories
	provider  esign.ISignProvider
	reconcile *ReconcileService
	notifier  realtime.Notifier
}

func NewWebhookService(
	appCtx *ctx.Context,
	repos *repo.Repositories,
	provider esign.ISignProvider,
	reconcile *ReconcileService,
	notifier realtime.Notifier,
) *WebhookService {
	return &WebhookService{
		ctx:       appCtx,
		repos:     repos,
		provider:  provider,
		reconcile: reconcile,
		notifier:  notifier,
	}
}

// HandleEvent processes one raw provider callback. Every payload is
// archived regardless of whether it correlates to a tracking row.
func (ws *WebhookService) HandleEvent(body []byte, signature string) error {
	if !ws.provider.VerifyWebhookSignature(body, signature) {
		return ErrBadSignature
	}

	var event model.WebhookEvent
	if err := sonic.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("failed to parse webhook payload: %w", err)
	}

	var payload map[string]any
	if err := sonic.Unmarshal(body, &payload); err != nil {
		payload = map[string]any{"raw": string(body)}
	}

	archive := &model.WebhookArchive{
		EventId:    id.GetULID(),
		EventType:  event.EventType,
		ReceivedAt: time.Now(),
		Payload:    payload,
	}

	status, known := mapEventStatus(event.EventType)
	if !known {
		log.Warnw("unknown webhook event type, archiving only", "eventType", event.EventType)
		metrics.WebhookEventsTotal.WithLabelValues(event.EventType, "unknown").Inc()
		ws.archiveEvent(archive)
		return nil
	}

	row := ws.correlate(&event)
	if row == nil {
		log.Warnw("webhook event did not correlate to any tracking row",
			"eventType", event.EventType, "submissionId", event.Data.SubmissionId, "signer", event.Data.SignerEmail)
		metrics.WebhookEventsTotal.WithLabelValues(event.EventType, "unmatched").Inc()
		ws.archiveEvent(archive)
		return nil
	}

	if err := ws.applyStatus(row, status, &event); err != nil {
		log.Errorw("failed to apply webhook status", "rowId", row.RowId, "status", status, "error", err)
		metrics.WebhookEventsTotal.WithLabelValues(event.EventType, "error").Inc()
		ws.archiveEvent(archive)
		return err
	}
	metrics.WebhookEventsTotal.WithLabelValues(event.EventType, "applied").Inc()

	archive.Matched = true
	archive.RowId = row.RowId
	ws.archiveEvent(archive)

	ws.notifier.Publish(consts.CollectionUserDocuments)
	log.Infow("webhook event applied", "eventId", archive.EventId, "rowId", row.RowId, "status", status)
	return nil
}

func (ws *WebhookService) archiveEvent(archive *model.WebhookArchive) {
	if err := ws.repos.WebhookEvent.Archive(archive); err != nil {
		log.Errorw("failed to archive webhook event", "eventId", archive.EventId, "error", err)
	}
}

// correlate finds the tracking row for an event: by submission ID first,
// then by running the reconciliation matcher against staged new hires.
func (ws *WebhookService) correlate(event *model.WebhookEvent) *model.UserDocument {
	if event.Data.SubmissionId != "" {
		if row, err := ws.repos.UserDocument.GetBySubmissionId(event.Data.SubmissionId); err == nil {
			return row
		}
	}

	// signer email may belong to a registered user
	if event.Data.SignerEmail != "" {
		if u, err := ws.repos.User.GetUserByEmail(event.Data.SignerEmail); err == nil {
			if row := ws.rowForTemplate(ws.userRows(u.UserId), event.Data.TemplateId); row != nil {
				return row
			}
		}
	}

	// fall back to the matching heuristic against staged new hires
	candidates, err := ws.repos.NewHire.ListActive()
	if err != nil {
		log.Errorw("failed to list new hires for webhook correlation", "error", err)
		return nil
	}
	result := ws.reconcile.Match(event.Data.SignerEmail, event.Data.SignerName, candidates)
	if result.Confidence != MatchConfident {
		return nil
	}

	rows, err := ws.repos.UserDocument.ListByNewHire(result.NewHire.NewHireId)
	if err != nil {
		log.Errorw("failed to list new hire rows for webhook correlation",
			"newHireId", result.NewHire.NewHireId, "error", err)
		return nil
	}
	if row := ws.rowForTemplate(rows, event.Data.TemplateId); row != nil {
		return row
	}

	// no row yet for this template, materialize one for the new hire
	t, err := ws.repos.Document.GetTemplateByProviderId(event.Data.TemplateId)
	if err != nil {
		return nil
	}
	row := &model.UserDocument{
		RowId:      id.GetUUIDWithoutDashes(),
		NewHireId:  result.NewHire.NewHireId,
		TemplateId: t.TemplateId,
		Status:     model.DocStatusNotStarted,
	}
	if err := ws.repos.UserDocument.AddRow(row); err != nil {
		log.Errorw("failed to materialize tracking row for webhook event",
			"newHireId", result.NewHire.NewHireId, "templateId", t.TemplateId, "error", err)
		return nil
	}
	return row
}

func (ws *WebhookService) userRows(userId string) []model.UserDocument {
	rows, err := ws.repos.UserDocument.ListByUser(userId)
	if err != nil {
		log.Errorw("failed to list user rows for webhook correlation", "userId", userId, "error", err)
		return nil
	}
	return rows
}

// rowForTemplate matches by internal template id or the provider's.
func (ws *WebhookService) rowForTemplate(rows []model.UserDocument, providerTemplateId string) *model.UserDocument {
	if providerTemplateId == "" {
		return nil
	}
	t, err := ws.repos.Document.GetTemplateByProviderId(providerTemplateId)
	if err != nil {
		return nil
	}
	for i := range rows {
		if rows[i].TemplateId == t.TemplateId {
			return &rows[i]
		}
	}
	return nil
}

func (ws *WebhookService) applyStatus(row *model.UserDocument, status string, event *model.WebhookEvent) error {
	at := event.Timestamp
	if at.IsZero() {
		at = time.Now()
	}

	fields := map[string]interface{}{
		"status": status,
	}
	if event.Data.SubmissionId != "" && row.SubmissionId == "" {
		fields["submission_id"] = event.Data.SubmissionId
	}

	switch status {
	case model.DocStatusViewed:
		fields["viewed_at"] = at
	case model.DocStatusStarted:
		fields["started_at"] = at
	case model.DocStatusCompleted:
		fields["completed_at"] = at
		if event.Data.DocumentUrl != "" {
			fields["document_url"] = event.Data.DocumentUrl
		}
		if event.Data.AuditLogUrl != "" {
			fields["audit_log_url"] = event.Data.AuditLogUrl
		}
	case model.DocStatusDeclined:
		fields["declined_at"] = at
	}

	return ws.repos.UserDocument.UpdateFields(row.RowId, fields)
}

// mapEventStatus maps provider event types 1:1 onto tracking statuses.
func mapEventStatus(eventType string) (string, bool) {
	switch eventType {
	case model.WebhookEventViewed:
		return model.DocStatusViewed, true
	case model.WebhookEventStarted:
		return model.DocStatusStarted, true
	case model.WebhookEventCompleted, model.WebhookEventFormCompleted:
		return model.DocStatusCompleted, true
	case model.WebhookEventDeclined:
		return model.DocStatusDeclined, true
	}
	return "", false
}
