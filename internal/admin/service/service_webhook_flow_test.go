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
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careconnect-hq/careconnect/internal/admin/esign"
	"github.com/careconnect-hq/careconnect/internal/admin/model"
	"github.com/careconnect-hq/careconnect/internal/admin/realtime"
	"github.com/careconnect-hq/careconnect/internal/admin/repo"
)

type fakeProvider struct {
	valid bool
}

func (f *fakeProvider) CreateSubmission(context.Context, *esign.CreateSubmissionReq) (*esign.Submission, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeProvider) GetSubmission(context.Context, string) (*esign.Submission, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeProvider) VoidSubmission(context.Context, string) error {
	return errors.New("not implemented")
}

func (f *fakeProvider) VerifyWebhookSignature([]byte, string) bool {
	return f.valid
}

type fakeUserDocRepo struct {
	repo.IUserDocumentRepository
	rows    map[string]*model.UserDocument
	updates map[string]map[string]interface{}
}

func (f *fakeUserDocRepo) GetBySubmissionId(submissionId string) (*model.UserDocument, error) {
	for _, r := range f.rows {
		if r.SubmissionId == submissionId {
			return r, nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeUserDocRepo) ListByUser(userId string) ([]model.UserDocument, error) {
	var out []model.UserDocument
	for _, r := range f.rows {
		if r.UserId == userId {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeUserDocRepo) ListByNewHire(newHireId string) ([]model.UserDocument, error) {
	var out []model.UserDocument
	for _, r := range f.rows {
		if r.NewHireId == newHireId {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeUserDocRepo) AddRow(row *model.UserDocument) error {
	f.rows[row.RowId] = row
	return nil
}

func (f *fakeUserDocRepo) UpdateFields(rowId string, fields map[string]interface{}) error {
	if _, ok := f.rows[rowId]; !ok {
		return errors.New("record not found")
	}
	f.updates[rowId] = fields
	return nil
}

type fakeNewHireRepo struct {
	repo.INewHireRepository
	active []model.NewHire
}

func (f *fakeNewHireRepo) ListActive() ([]model.NewHire, error) {
	return f.active, nil
}

type fakeDocumentRepo struct {
	repo.IDocumentRepository
	byProviderId map[string]*model.DocumentTemplate
}

func (f *fakeDocumentRepo) GetTemplateByProviderId(providerTemplateId string) (*model.DocumentTemplate, error) {
	t, ok := f.byProviderId[providerTemplateId]
	if !ok {
		return nil, errors.New("record not found")
	}
	return t, nil
}

type fakeWebhookEventRepo struct {
	repo.IWebhookEventRepository
	archived []*model.WebhookArchive
}

func (f *fakeWebhookEventRepo) Archive(event *model.WebhookArchive) error {
	f.archived = append(f.archived, event)
	return nil
}

type webhookFixture struct {
	svc      *WebhookService
	userDocs *fakeUserDocRepo
	hires    *fakeNewHireRepo
	docs     *fakeDocumentRepo
	archive  *fakeWebhookEventRepo
	users    *fakeUserRepo
}

func newWebhookFixture() *webhookFixture {
	f := &webhookFixture{
		userDocs: &fakeUserDocRepo{rows: map[string]*model.UserDocument{}, updates: map[string]map[string]interface{}{}},
		hires:    &fakeNewHireRepo{},
		docs:     &fakeDocumentRepo{byProviderId: map[string]*model.DocumentTemplate{}},
		archive:  &fakeWebhookEventRepo{},
		users:    &fakeUserRepo{users: map[string]*model.User{}},
	}
	repos := &repo.Repositories{
		User:         f.users,
		NewHire:      f.hires,
		Document:     f.docs,
		UserDocument: f.userDocs,
		WebhookEvent: f.archive,
	}
	reconcile := NewReconcileService(nil, f.users, f.hires, f.userDocs)
	f.svc = NewWebhookService(nil, repos, &fakeProvider{valid: true}, reconcile, realtime.NopNotifier{})
	return f
}

func TestHandleEventBadSignature(t *testing.T) {
	f := newWebhookFixture()
	f.svc.provider = &fakeProvider{valid: false}

	err := f.svc.HandleEvent([]byte(`{}`), "bogus")

	assert.ErrorIs(t, err, ErrBadSignature)
	assert.Empty(t, f.archive.archived)
}

func TestHandleEventBySubmissionId(t *testing.T) {
	f := newWebhookFixture()
	f.userDocs.rows["row-1"] = &model.UserDocument{
		RowId:        "row-1",
		SubmissionId: "sub-1",
		Status:       model.DocStatusViewed,
	}

	body := []byte(`{"event_type":"submission.completed","data":{"submission_id":"sub-1","document_url":"https://esign.example/doc.pdf"}}`)
	err := f.svc.HandleEvent(body, "sig")

	require.NoError(t, err)
	fields := f.userDocs.updates["row-1"]
	require.NotNil(t, fields)
	assert.Equal(t, model.DocStatusCompleted, fields["status"])
	assert.Contains(t, fields, "completed_at")
	assert.Equal(t, "https://esign.example/doc.pdf", fields["document_url"])

	require.Len(t, f.archive.archived, 1)
	assert.True(t, f.archive.archived[0].Matched)
	assert.Equal(t, "row-1", f.archive.archived[0].RowId)
	assert.NotEmpty(t, f.archive.archived[0].EventId)
}

func TestHandleEventUnknownTypeArchivesOnly(t *testing.T) {
	f := newWebhookFixture()

	err := f.svc.HandleEvent([]byte(`{"event_type":"form.reopened","data":{}}`), "sig")

	require.NoError(t, err)
	require.Len(t, f.archive.archived, 1)
	assert.False(t, f.archive.archived[0].Matched)
	assert.Equal(t, "form.reopened", f.archive.archived[0].EventType)
	assert.Empty(t, f.userDocs.updates)
}

func TestHandleEventUnmatchedArchivesOnly(t *testing.T) {
	f := newWebhookFixture()

	body := []byte(`{"event_type":"form.viewed","data":{"submission_id":"sub-x","signer_email":"nobody@example.com"}}`)
	err := f.svc.HandleEvent(body, "sig")

	require.NoError(t, err)
	require.Len(t, f.archive.archived, 1)
	assert.False(t, f.archive.archived[0].Matched)
}

func TestHandleEventBySignerEmail(t *testing.T) {
	f := newWebhookFixture()
	f.users.users["u-1"] = &model.User{UserId: "u-1", Email: "jane.doe@example.com"}
	f.docs.byProviderId["ptpl-1"] = &model.DocumentTemplate{TemplateId: "tpl-1", ProviderTemplateId: "ptpl-1"}
	f.userDocs.rows["row-1"] = &model.UserDocument{
		RowId:      "row-1",
		UserId:     "u-1",
		TemplateId: "tpl-1",
		Status:     model.DocStatusNotStarted,
	}

	body := []byte(`{"event_type":"form.viewed","data":{"template_id":"ptpl-1","signer_email":"jane.doe@example.com"}}`)
	err := f.svc.HandleEvent(body, "sig")

	require.NoError(t, err)
	fields := f.userDocs.updates["row-1"]
	require.NotNil(t, fields)
	assert.Equal(t, model.DocStatusViewed, fields["status"])
	assert.Contains(t, fields, "viewed_at")
}

func TestHandleEventMaterializesNewHireRow(t *testing.T) {
	f := newWebhookFixture()
	f.hires.active = []model.NewHire{{NewHireId: "nh-1", FirstName: "Jane", LastName: "Doe"}}
	f.docs.byProviderId["ptpl-1"] = &model.DocumentTemplate{TemplateId: "tpl-1", ProviderTemplateId: "ptpl-1"}

	body := []byte(`{"event_type":"form.started","data":{"template_id":"ptpl-1","signer_email":"jane.doe@agency.example","signer_name":"Jane Doe"}}`)
	err := f.svc.HandleEvent(body, "sig")

	require.NoError(t, err)
	require.Len(t, f.userDocs.rows, 1)
	for _, row := range f.userDocs.rows {
		assert.Equal(t, "nh-1", row.NewHireId)
		assert.Equal(t, "tpl-1", row.TemplateId)
		fields := f.userDocs.updates[row.RowId]
		require.NotNil(t, fields)
		assert.Equal(t, model.DocStatusStarted, fields["status"])
	}
	require.Len(t, f.archive.archived, 1)
	assert.True(t, f.archive.archived[0].Matched)
}

// GetUserByEmail is needed by webhook correlation on top of the base fake.
func (f *fakeUserRepo) GetUserByEmail(email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.New("record not found")
}
