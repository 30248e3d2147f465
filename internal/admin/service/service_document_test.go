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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careconnect-hq/careconnect/internal/admin/model"
	"github.com/careconnect-hq/careconnect/internal/admin/realtime"
	"github.com/careconnect-hq/careconnect/internal/admin/repo"
)

// GetRow lets the manual-override tests see writes from prior updates.
func (f *fakeUserDocRepo) GetRow(rowId string) (*model.UserDocument, error) {
	r, ok := f.rows[rowId]
	if !ok {
		return nil, errors.New("record not found")
	}
	return r, nil
}

func newDocumentFixture() (*DocumentService, *fakeUserDocRepo) {
	userDocs := &fakeUserDocRepo{rows: map[string]*model.UserDocument{}, updates: map[string]map[string]interface{}{}}
	svc := NewDocumentService(nil, &repo.Repositories{UserDocument: userDocs}, &fakeProvider{valid: true}, realtime.NopNotifier{})
	return svc, userDocs
}

func TestManualComplete(t *testing.T) {
	svc, userDocs := newDocumentFixture()
	userDocs.rows["row-1"] = &model.UserDocument{RowId: "row-1", Status: model.DocStatusStarted}

	err := svc.ManualComplete("row-1", "admin-1")

	require.NoError(t, err)
	fields := userDocs.updates["row-1"]
	require.NotNil(t, fields)
	assert.Equal(t, model.DocStatusCompleted, fields["status"])
	assert.Equal(t, true, fields["is_manually_completed"])
	assert.Equal(t, "admin-1", fields["manually_completed_by"])
	assert.Equal(t, model.DocStatusStarted, fields["last_provider_status"])
}

func TestManualCompleteIdempotent(t *testing.T) {
	svc, userDocs := newDocumentFixture()
	userDocs.rows["row-1"] = &model.UserDocument{RowId: "row-1", Status: model.DocStatusCompleted, IsManuallyCompleted: true}

	err := svc.ManualComplete("row-1", "admin-1")

	require.NoError(t, err)
	assert.Empty(t, userDocs.updates)
}

func TestManualCompleteMissingRow(t *testing.T) {
	svc, _ := newDocumentFixture()

	assert.Error(t, svc.ManualComplete("nope", "admin-1"))
}

func TestUndoManualComplete(t *testing.T) {
	svc, userDocs := newDocumentFixture()
	userDocs.rows["row-1"] = &model.UserDocument{
		RowId:               "row-1",
		Status:              model.DocStatusCompleted,
		IsManuallyCompleted: true,
		LastProviderStatus:  model.DocStatusViewed,
	}

	err := svc.UndoManualComplete("row-1")

	require.NoError(t, err)
	fields := userDocs.updates["row-1"]
	require.NotNil(t, fields)
	assert.Equal(t, model.DocStatusViewed, fields["status"])
	assert.Equal(t, false, fields["is_manually_completed"])
	assert.Nil(t, fields["completed_at"])
}

func TestUndoManualCompleteNoProviderStatus(t *testing.T) {
	svc, userDocs := newDocumentFixture()
	userDocs.rows["row-1"] = &model.UserDocument{
		RowId:               "row-1",
		Status:              model.DocStatusCompleted,
		IsManuallyCompleted: true,
	}

	err := svc.UndoManualComplete("row-1")

	require.NoError(t, err)
	assert.Equal(t, model.DocStatusNotStarted, userDocs.updates["row-1"]["status"])
}

func TestUndoManualCompleteNotOverridden(t *testing.T) {
	svc, userDocs := newDocumentFixture()
	userDocs.rows["row-1"] = &model.UserDocument{RowId: "row-1", Status: model.DocStatusCompleted}

	assert.Error(t, svc.UndoManualComplete("row-1"))
}
