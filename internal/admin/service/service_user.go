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
	"github.com/careconnect-hq/careconnect/internal/admin/model"
	"github.com/careconnect-hq/careconnect/internal/admin/realtime"
	"github.com/careconnect-hq/careconnect/internal/admin/repo"
	"github.com/careconnect-hq/careconnect/pkg/ctx"
	"github.com/careconnect-hq/careconnect/pkg/http"
	"github.com/careconnect-hq/careconnect/pkg/id"
	"github.com/careconnect-hq/careconnect/pkg/log"
	"github.com/careconnect-hq/careconnect/pkg/safe"
)

type UserService struct {
	ctx       *ctx.Context
	repos     *repo.Repositories
	reconcile *ReconcileService
	sync      *SyncService
	notifier  realtime.Notifier
}

func NewUserService(
	appCtx *ctx.Context,
	repos *repo.Repositories,
	reconcile *ReconcileService,
	sync *SyncService,
	notifier realtime.Notifier,
) *UserService {
	return &UserService{
		ctx:       appCtx,
		repos:     repos,
		reconcile: reconcile,
		sync:      sync,
		notifier:  notifier,
	}
}

func (us *UserService) FetchUserInfo(userId string) (*model.UserInfo, error) {
	return us.repos.User.FetchUserInfo(userId)
}

func (us *UserService) GetUser(userId string) (*model.User, error) {
	return us.repos.User.GetUserById(userId)
}

func (us *UserService) ListUsers(status string, pageNum, pageSize int) ([]model.User, int64, error) {
	if pageNum <= 0 {
		pageNum = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	offset := (pageNum - 1) * pageSize
	return us.repos.User.ListUsers(status, offset, pageSize)
}

// Approve activates a pending account and kicks off the best-effort
// secondary steps: tracking-row initialization, identity reconciliation,
// birthday calendar event, approval notification. Their failure never
// fails nor rolls back the approval itself.
func (us *UserService) Approve(userId, approvedBy string) error {
	u, err := us.repos.User.GetUserById(userId)
	if err != nil {
		return errors.New(http.UserNotExist.Msg)
	}

	if err := us.repos.User.UpdateStatus(userId, model.UserStatusApproved, approvedBy); err != nil {
		return err
	}

	safe.Go(func() {
		us.postApproval(u)
	})

	us.notifier.Publish(consts.CollectionUsers)
	log.Infow("user approved", "userId", userId, "approvedBy", approvedBy)
	return nil
}

func (us *UserService) postApproval(u *model.User) {
	// one tracking row per template for the new account
	if _, err := us.sync.Sync(); err != nil {
		log.Errorw("post-approval sync failed", "userId", u.UserId, "error", err)
	}

	if _, err := us.reconcile.Reconcile(u); err != nil {
		log.Errorw("post-approval reconciliation failed", "userId", u.UserId, "error", err)
	}

	us.createBirthdayEvent(u)

	notification := &model.Notification{
		NotificationId: id.GetUUIDWithoutDashes(),
		UserId:         u.UserId,
		Kind:           model.NotifyKindApproval,
		Title:          "Your account has been approved",
		Body:           "Welcome to CareConnect. Your required documents are ready to sign.",
		Link:           "/documents",
	}
	if err := us.repos.Notification.AddNotification(notification); err != nil {
		log.Errorw("failed to store approval notification", "userId", u.UserId, "error", err)
	}

	us.notifier.Publish(consts.CollectionUserDocuments, consts.CollectionNotifications, consts.CollectionNewHires)
}

func (us *UserService) createBirthdayEvent(u *model.User) {
	if u.Birthday == nil {
		return
	}

	now := time.Now()
	exists, err := us.repos.Calendar.HasBirthdayEvent(u.UserId, now.Year())
	if err != nil || exists {
		return
	}

	// next occurrence of the birthday
	birthday := time.Date(now.Year(), u.Birthday.Month(), u.Birthday.Day(), 0, 0, 0, 0, time.UTC)
	if birthday.Before(now.Truncate(24 * time.Hour)) {
		birthday = birthday.AddDate(1, 0, 0)
	}

	event := &model.CalendarEvent{
		EventId:       id.GetUUIDWithoutDashes(),
		Title:         u.DisplayName + "'s birthday",
		EventType:     model.EventTypeBirthday,
		StartAt:       birthday,
		EndAt:         birthday.AddDate(0, 0, 1),
		AllDay:        true,
		RelatedUserId: u.UserId,
		CreatedBy:     "system",
	}
	if err := us.repos.Calendar.AddEvent(event); err != nil {
		log.Errorw("failed to create birthday event", "userId", u.UserId, "error", err)
		return
	}
	us.notifier.Publish(consts.CollectionCalendarEvents)
}

// Disable blocks an account and revokes its session.
func (us *UserService) Disable(userId, actingUserId string) error {
	if userId == actingUserId {
		return errors.New(http.SelfActionDenied.Msg)
	}

	if err := us.repos.User.UpdateStatus(userId, model.UserStatusDisabled, ""); err != nil {
		return err
	}

	if err := us.repos.User.DelToken(consts.UserTokenKey + userId); err != nil {
		log.Warnw("failed to revoke session of disabled user", "userId", userId, "error", err)
	}

	us.notifier.Publish(consts.CollectionUsers)
	log.Infow("user disabled", "userId", userId, "by", actingUserId)
	return nil
}

// Enable restores a disabled account to approved.
func (us *UserService) Enable(userId string) error {
	if err := us.repos.User.UpdateStatus(userId, model.UserStatusApproved, ""); err != nil {
		return err
	}
	us.notifier.Publish(consts.CollectionUsers)
	return nil
}

// SetRole promotes or demotes an account. Only the master admin may
// change roles, enforced at the router.
func (us *UserService) SetRole(userId, role string) error {
	if role != model.RoleUser && role != model.RoleAdmin {
		return errors.New(http.BadRequest.Msg)
	}
	if err := us.repos.User.UpdateUser(userId, &model.User{Role: role}); err != nil {
		return err
	}
	us.repos.User.InvalidateUserInfo(userId)
	us.notifier.Publish(consts.CollectionUsers)
	return nil
}

func (us *UserService) UpdateProfile(userId string, u *model.User) error {
	if err := us.repos.User.UpdateUser(userId, u); err != nil {
		return err
	}
	us.repos.User.InvalidateUserInfo(userId)
	us.notifier.Publish(consts.CollectionUsers)
	return nil
}

func (us *UserService) UpdateAvatar(userId, avatarUrl string) error {
	if err := us.repos.User.UpdateAvatar(userId, avatarUrl); err != nil {
		log.Errorw("failed to update user avatar", "userId", userId, "error", err)
		return errors.New("failed to update user avatar")
	}
	us.notifier.Publish(consts.CollectionUsers)
	return nil
}
