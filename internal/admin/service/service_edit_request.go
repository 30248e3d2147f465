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

	"github.com/careconnect-hq/careconnect/internal/admin/consts"
	"github.com/careconnect-hq/careconnect/internal/admin/model"
	"github.com/careconnect-hq/careconnect/internal/admin/realtime"
	"github.com/careconnect-hq/careconnect/internal/admin/repo"
	"github.com/careconnect-hq/careconnect/pkg/ctx"
	"github.com/careconnect-hq/careconnect/pkg/http"
	"github.com/careconnect-hq/careconnect/pkg/id"
	"github.com/careconnect-hq/careconnect/pkg/log"
	"github.com/careconnect-hq/careconnect/pkg/safe"
)

var editableFields = map[string]struct{}{
	model.EditFieldDisplayName: {},
	model.EditFieldOccupation:  {},
	model.EditFieldZip:         {},
	model.EditFieldBirthday:    {},
}

type EditRequestService struct {
	ctx      *ctx.Context
	repos    *repo.Repositories
	notifier realtime.Notifier
}

func NewEditRequestService(appCtx *ctx.Context, repos *repo.Repositories, notifier realtime.Notifier) *EditRequestService {
	return &EditRequestService{
		ctx:      appCtx,
		repos:    repos,
		notifier: notifier,
	}
}

// FileRequest submits a profile change for admin review. One pending
// request per field per user.
func (es *EditRequestService) FileRequest(userId string, req *model.AddEditRequestReq) (*model.EditRequest, error) {
	if _, ok := editableFields[req.Field]; !ok {
		return nil, errors.New("field is not editable through review")
	}
	if req.NewValue == "" {
		return nil, errors.New(http.BadRequest.Msg)
	}

	u, err := es.repos.User.GetUserById(userId)
	if err != nil {
		return nil, errors.New(http.UserNotExist.Msg)
	}

	pending, err := es.repos.EditRequest.HasPending(userId, req.Field)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, errors.New("a pending request for this field already exists")
	}

	if req.Field == model.EditFieldBirthday {
		if _, err := time.Parse("2006-01-02", req.NewValue); err != nil {
			return nil, errors.New("birthday must be formatted as YYYY-MM-DD")
		}
	}

	r := &model.EditRequest{
		RequestId: id.GetUUIDWithoutDashes(),
		UserId:    userId,
		Field:     req.Field,
		OldValue:  currentFieldValue(u, req.Field),
		NewValue:  req.NewValue,
		Reason:    req.Reason,
		Status:    model.EditRequestPending,
	}
	if err := es.repos.EditRequest.AddRequest(r); err != nil {
		return nil, err
	}

	es.notifier.Publish(consts.CollectionEditRequests)
	return r, nil
}

func (es *EditRequestService) GetRequest(requestId string) (*model.EditRequest, error) {
	return es.repos.EditRequest.GetRequest(requestId)
}

func (es *EditRequestService) ListRequests(status string, offset, pageSize int) ([]model.EditRequest, int64, error) {
	return es.repos.EditRequest.ListRequests(status, offset, pageSize)
}

func (es *EditRequestService) ListUserRequests(userId string) ([]model.EditRequest, error) {
	return es.repos.EditRequest.ListByUser(userId)
}

// Review approves or rejects a pending request. Approval applies the
// change to the user profile, and either way the user is notified.
func (es *EditRequestService) Review(requestId, reviewedBy string, req *model.ReviewEditRequestReq) error {
	r, err := es.repos.EditRequest.GetRequest(requestId)
	if err != nil {
		return errors.New(http.NotFound.Msg)
	}
	if r.Status != model.EditRequestPending {
		return errors.New("request has already been reviewed")
	}

	status := model.EditRequestRejected
	if req.Approve {
		if err := es.applyChange(r); err != nil {
			return err
		}
		status = model.EditRequestApproved
	}
	if err := es.repos.EditRequest.Review(requestId, status, reviewedBy, req.Note); err != nil {
		return err
	}

	safe.Go(func() {
		es.notifyRequester(r, status, req.Note)
	})

	es.notifier.Publish(consts.CollectionEditRequests, consts.CollectionUsers)
	return nil
}

func (es *EditRequestService) applyChange(r *model.EditRequest) error {
	patch := &model.User{}
	switch r.Field {
	case model.EditFieldDisplayName:
		patch.DisplayName = r.NewValue
	case model.EditFieldOccupation:
		patch.Occupation = r.NewValue
	case model.EditFieldZip:
		patch.Zip = r.NewValue
	case model.EditFieldBirthday:
		birthday, err := time.Parse("2006-01-02", r.NewValue)
		if err != nil {
			return errors.New("birthday must be formatted as YYYY-MM-DD")
		}
		patch.Birthday = &birthday
	default:
		return errors.New("field is not editable through review")
	}
	if err := es.repos.User.UpdateUser(r.UserId, patch); err != nil {
		return err
	}
	es.repos.User.InvalidateUserInfo(r.UserId)
	return nil
}

func (es *EditRequestService) notifyRequester(r *model.EditRequest, status, note string) {
	title := "Profile change approved"
	body := fmt.Sprintf("Your %s change was approved", r.Field)
	if status == model.EditRequestRejected {
		title = "Profile change rejected"
		body = fmt.Sprintf("Your %s change was rejected", r.Field)
		if note != "" {
			body += ": " + note
		}
	}
	n := &model.Notification{
		NotificationId: id.GetUUIDWithoutDashes(),
		UserId:         r.UserId,
		Kind:           model.NotifyKindEditResult,
		Title:          title,
		Body:           body,
		Link:           "/profile",
	}
	if err := es.repos.Notification.AddNotification(n); err != nil {
		log.Errorw("failed to create review notification", "requestId", r.RequestId, "error", err)
		return
	}
	es.notifier.Publish(consts.CollectionNotifications)
}

func currentFieldValue(u *model.User, field string) string {
	switch field {
	case model.EditFieldDisplayName:
		return u.DisplayName
	case model.EditFieldOccupation:
		return u.Occupation
	case model.EditFieldZip:
		return u.Zip
	case model.EditFieldBirthday:
		if u.Birthday != nil {
			return u.Birthday.Format("2006-01-02")
		}
	}
	return ""
}
