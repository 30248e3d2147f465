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
	"github.com/careconnect-hq/careconnect/internal/admin/esign"
	"github.com/careconnect-hq/careconnect/internal/admin/model"
	"github.com/careconnect-hq/careconnect/internal/admin/realtime"
	"github.com/careconnect-hq/careconnect/internal/admin/repo"
	"github.com/careconnect-hq/careconnect/pkg/ctx"
	"github.com/careconnect-hq/careconnect/pkg/http"
	"github.com/careconnect-hq/careconnect/pkg/id"
	"github.com/careconnect-hq/careconnect/pkg/log"
)

type DocumentService struct {
	ctx      *ctx.Context
	repos    *repo.Repositories
	provider esign.ISignProvider
	notifier realtime.Notifier
}

func NewDocumentService(
	appCtx *ctx.Context,
	repos *repo.Repositories,
	provider esign.ISignProvider,
	notifier realtime.Notifier,
) *DocumentService {
	return &DocumentService{
		ctx:      appCtx,
		repos:    repos,
		provider: provider,
		notifier: notifier,
	}
}

func (ds *DocumentService) AddCategory(name string, sortOrder int) (*model.DocumentCategory, error) {
	category := &model.DocumentCategory{
		CategoryId: id.GetUUIDWithoutDashes(),
		Name:       name,
		SortOrder:  sortOrder,
	}
	if err := ds.repos.Document.AddCategory(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (ds *DocumentService) ListCategories() ([]model.DocumentCategory, error) {
	return ds.repos.Document.ListCategories()
}

func (ds *DocumentService) UpdateCategory(categoryId string, c *model.DocumentCategory) error {
	return ds.repos.Document.UpdateCategory(categoryId, c)
}

func (ds *DocumentService) DeleteCategory(categoryId string) error {
	return ds.repos.Document.DeleteCategory(categoryId)
}

func (ds *DocumentService) AddTemplate(req *model.AddTemplateReq) (*model.DocumentTemplate, error) {
	if req.Title == "" {
		return nil, errors.New(http.BadRequest.Msg)
	}

	t := &model.DocumentTemplate{
		TemplateId:         id.GetUUIDWithoutDashes(),
		CategoryId:         req.CategoryId,
		Title:              req.Title,
		IsRequired:         req.IsRequired,
		ReminderDays:       req.ReminderDays,
		ExpiryDays:         req.ExpiryDays,
		ProviderTemplateId: req.ProviderTemplateId,
	}
	if err := ds.repos.Document.AddTemplate(t); err != nil {
		return nil, err
	}

	ds.notifier.Publish(consts.CollectionTemplates)
	return t, nil
}

func (ds *DocumentService) ListTemplates() ([]model.DocumentTemplate, error) {
	return ds.repos.Document.ListTemplates()
}

func (ds *DocumentService) UpdateTemplate(templateId string, t *model.DocumentTemplate) error {
	if _, err := ds.repos.Document.GetTemplate(templateId); err != nil {
		return errors.New(http.TemplateNotExist.Msg)
	}
	if err := ds.repos.Document.UpdateTemplate(templateId, t); err != nil {
		return err
	}
	ds.notifier.Publish(consts.CollectionTemplates)
	return nil
}

// DeleteTemplate removes the template and every tracking row that
// references it.
func (ds *DocumentService) DeleteTemplate(templateId string) error {
	if _, err := ds.repos.Document.GetTemplate(templateId); err != nil {
		return errors.New(http.TemplateNotExist.Msg)
	}
	if err := ds.repos.UserDocument.DeleteByTemplate(templateId); err != nil {
		return err
	}
	if err := ds.repos.Document.DeleteTemplate(templateId); err != nil {
		return err
	}
	ds.notifier.Publish(consts.CollectionTemplates, consts.CollectionUserDocuments)
	return nil
}

func (ds *DocumentService) ListUserDocuments(userId string) ([]model.UserDocument, error) {
	return ds.repos.UserDocument.ListByUser(userId)
}

func (ds *DocumentService) ListNewHireDocuments(newHireId string) ([]model.UserDocument, error) {
	return ds.repos.UserDocument.ListByNewHire(newHireId)
}

// StartSigning creates a provider submission for a tracking row and
// links it via the submission ID.
func (ds *DocumentService) StartSigning(rowId string) (*model.UserDocument, error) {
	row, err := ds.repos.UserDocument.GetRow(rowId)
	if err != nil {
		return nil, errors.New(http.TrackingRowNotExist.Msg)
	}
	if row.UserId == "" {
		return nil, errors.New("tracking row is not linked to a user account")
	}
	if row.SubmissionId != "" {
		return row, nil
	}

	t, err := ds.repos.Document.GetTemplate(row.TemplateId)
	if err != nil {
		return nil, errors.New(http.TemplateNotExist.Msg)
	}
	if t.ProviderTemplateId == "" {
		return nil, errors.New("template has no signing provider binding")
	}

	u, err := ds.repos.User.GetUserById(row.UserId)
	if err != nil {
		return nil, errors.New(http.UserNotExist.Msg)
	}

	sub, err := ds.provider.CreateSubmission(ds.ctx.GetCtx(), &esign.CreateSubmissionReq{
		TemplateId:  t.ProviderTemplateId,
		SignerEmail: u.Email,
		SignerName:  u.DisplayName,
		SendEmail:   true,
	})
	if err != nil {
		log.Errorw("failed to create provider submission", "rowId", rowId, "error", err)
		return nil, err
	}

	if err := ds.repos.UserDocument.UpdateFields(rowId, map[string]interface{}{
		"submission_id": sub.Id,
	}); err != nil {
		return nil, err
	}
	row.SubmissionId = sub.Id

	ds.notifier.Publish(consts.CollectionUserDocuments)
	return row, nil
}

// ManualComplete forces a row to completed independent of the signing
// provider, recording the acting admin. The prior status is kept so the
// override can be undone.
func (ds *DocumentService) ManualComplete(rowId, adminId string) error {
	row, err := ds.repos.UserDocument.GetRow(rowId)
	if err != nil {
		return errors.New(http.TrackingRowNotExist.Msg)
	}
	if row.IsManuallyCompleted {
		return nil
	}

	now := time.Now()
	if err := ds.repos.UserDocument.UpdateFields(rowId, map[string]interface{}{
		"status":                model.DocStatusCompleted,
		"completed_at":          now,
		"is_manually_completed": true,
		"manually_completed_by": adminId,
		"last_provider_status":  row.Status,
	}); err != nil {
		return err
	}

	ds.notifier.Publish(consts.CollectionUserDocuments)
	log.Infow("tracking row manually completed", "rowId", rowId, "adminId", adminId)
	return nil
}

// UndoManualComplete reverts an override to the last provider-confirmed
// status, or not_started when none was recorded.
func (ds *DocumentService) UndoManualComplete(rowId string) error {
	row, err := ds.repos.UserDocument.GetRow(rowId)
	if err != nil {
		return errors.New(http.TrackingRowNotExist.Msg)
	}
	if !row.IsManuallyCompleted {
		return errors.New(http.NotManuallyCompleted.Msg)
	}

	revertTo := row.LastProviderStatus
	if revertTo == "" {
		revertTo = model.DocStatusNotStarted
	}

	fields := map[string]interface{}{
		"status":                revertTo,
		"is_manually_completed": false,
		"manually_completed_by": "",
		"last_provider_status":  "",
	}
	if revertTo != model.DocStatusCompleted {
		fields["completed_at"] = nil
	}

	if err := ds.repos.UserDocument.UpdateFields(rowId, fields); err != nil {
		return err
	}

	ds.notifier.Publish(consts.CollectionUserDocuments)
	log.Infow("manual completion undone", "rowId", rowId, "revertedTo", revertTo)
	return nil
}
