package repo

import (
	"github.com/careconnect-hq/careconnect/internal/admin/model"
	"github.com/careconnect-hq/careconnect/pkg/ctx"
)

type INotificationRepository interface {
	AddNotification(n *model.Notification) error
	AddNotifications(notifications []model.Notification) error
	ListByUser(userId string, unreadOnly bool, offset, pageSize int) ([]model.Notification, int64, error)
	ListRecent(limit int) ([]model.Notification, error)
	CountUnread(userId string) (int64, error)
	MarkRead(notificationId, userId string) error
	MarkAllRead(userId string) error
	DeleteNotification(notificationId, userId string) error
}

type NotificationRepo struct {
	Ctx        *ctx.Context
	notifModel model.Notification
}

func NewNotificationRepo(appCtx *ctx.Context) INotificationRepository {
	return &NotificationRepo{
		Ctx:        appCtx,
		notifModel: model.Notification{},
	}
}

func (nr *NotificationRepo) AddNotification(n *model.Notification) error {
	return nr.Ctx.GetDB().Table(nr.notifModel.TableName()).Create(n).Error
}

func (nr *NotificationRepo) AddNotifications(notifications []model.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	return nr.Ctx.GetDB().Table(nr.notifModel.TableName()).CreateInBatches(notifications, 100).Error
}

func (nr *NotificationRepo) ListByUser(userId string, unreadOnly bool, offset, pageSize int) ([]model.Notification, int64, error) {
	var notifications []model.Notification

	countTx := nr.Ctx.GetDB().Table(nr.notifModel.TableName()).Where("user_id = ?", userId)
	tx := nr.Ctx.GetDB().Table(nr.notifModel.TableName()).Where("user_id = ?", userId)
	if unreadOnly {
		countTx = countTx.Where("is_read = ?", false)
		tx = tx.Where("is_read = ?", false)
	}

	count, err := Count(countTx)
	if err != nil {
		return nil, 0, err
	}

	err = tx.Offset(offset).
		Limit(pageSize).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, 0, err
	}
	return notifications, count, nil
}

func (nr *NotificationRepo) ListRecent(limit int) ([]model.Notification, error) {
	var notifications []model.Notification
	err := nr.Ctx.GetDB().Table(nr.notifModel.TableName()).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

func (nr *NotificationRepo) CountUnread(userId string) (int64, error) {
	return Count(nr.Ctx.GetDB().Table(nr.notifModel.TableName()).
		Where("user_id = ? AND is_read = ?", userId, false))
}

func (nr *NotificationRepo) MarkRead(notificationId, userId string) error {
	return nr.Ctx.GetDB().Table(nr.notifModel.TableName()).
		Where("notification_id = ? AND user_id = ?", notificationId, userId).
		Update("is_read", true).Error
}

func (nr *NotificationRepo) MarkAllRead(userId string) error {
	return nr.Ctx.GetDB().Table(nr.notifModel.TableName()).
		Where("user_id = ? AND is_read = ?", userId, false).
		Update("is_read", true).Error
}

func (nr *NotificationRepo) DeleteNotification(notificationId, userId string) error {
	return nr.Ctx.GetDB().Table(nr.notifModel.TableName()).
		Where("notification_id = ? AND user_id = ?", notificationId, userId).
		Delete(&model.Notification{}).Error
}
