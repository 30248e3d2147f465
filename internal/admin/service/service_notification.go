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
	"github.com/careconnect-hq/careconnect/internal/admin/consts"
	"github.com/careconnect-hq/careconnect/internal/admin/model"
	"github.com/careconnect-hq/careconnect/internal/admin/realtime"
	"github.com/careconnect-hq/careconnect/internal/admin/repo"
	"github.com/careconnect-hq/careconnect/pkg/ctx"
	"github.com/careconnect-hq/careconnect/pkg/id"
)

type NotificationService struct {
	ctx      *ctx.Context
	repos    *repo.Repositories
	notifier realtime.Notifier
}

func NewNotificationService(appCtx *ctx.Context, repos *repo.Repositories, notifier realtime.Notifier) *NotificationService {
	return &NotificationService{
		ctx:      appCtx,
		repos:    repos,
		notifier: notifier,
	}
}

// Notify creates an in-app notification for one user.
func (ns *NotificationService) Notify(userId, kind, title, body, link string) error {
	n := &model.Notification{
		NotificationId: id.GetUUIDWithoutDashes(),
		UserId:         userId,
		Kind:           kind,
		Title:          title,
		Body:           body,
		Link:           link,
	}
	if err := ns.repos.Notification.AddNotification(n); err != nil {
		return err
	}
	ns.notifier.Publish(consts.CollectionNotifications)
	return nil
}

func (ns *NotificationService) ListNotifications(userId string, unreadOnly bool, offset, pageSize int) ([]model.Notification, int64, error) {
	return ns.repos.Notification.ListByUser(userId, unreadOnly, offset, pageSize)
}

func (ns *NotificationService) CountUnread(userId string) (int64, error) {
	return ns.repos.Notification.CountUnread(userId)
}

func (ns *NotificationService) MarkRead(notificationId, userId string) error {
	if err := ns.repos.Notification.MarkRead(notificationId, userId); err != nil {
		return err
	}
	ns.notifier.Publish(consts.CollectionNotifications)
	return nil
}

func (ns *NotificationService) MarkAllRead(userId string) error {
	if err := ns.repos.Notification.MarkAllRead(userId); err != nil {
		return err
	}
	ns.notifier.Publish(consts.CollectionNotifications)
	return nil
}

func (ns *NotificationService) DeleteNotification(notificationId, userId string) error {
	if err := ns.repos.Notification.DeleteNotification(notificationId, userId); err != nil {
		return err
	}
	ns.notifier.Publish(consts.CollectionNotifications)
	return nil
}
