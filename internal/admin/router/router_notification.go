package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careconnect-hq/careconnect/pkg/http"
	"github.com/careconnect-hq/careconnect/pkg/http/middleware"
)

func (rt *Router) notificationRouter(r fiber.Router, auth fiber.Handler) {
	notifGroup := r.Group("/notification", auth)
	{
		notifGroup.Get("/list", rt.listNotifications)
		notifGroup.Get("/unreadCount", rt.countUnread)
		notifGroup.Post("/readAll", rt.markAllRead)
		notifGroup.Post("/:notificationId/read", rt.markRead)
		notifGroup.Delete("/:notificationId", rt.deleteNotification)
	}
}

func (rt *Router) listNotifications(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)
	unreadOnly := c.QueryBool("unreadOnly", false)
	pageNum := c.QueryInt("pageNum", 1)
	pageSize := c.QueryInt("pageSize", 20)

	notifications, count, err := rt.notification.ListNotifications(claims.UserId, unreadOnly, (pageNum-1)*pageSize, pageSize)
	if err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepJSON(c, fiber.Map{"list": notifications, "count": count})
}

func (rt *Router) countUnread(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)
	count, err := rt.notification.CountUnread(claims.UserId)
	if err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepJSON(c, fiber.Map{"count": count})
}

func (rt *Router) markRead(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)
	if err := rt.notification.MarkRead(c.Params("notificationId"), claims.UserId); err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepNotDetail(c)
}

func (rt *Router) markAllRead(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)
	if err := rt.notification.MarkAllRead(claims.UserId); err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepNotDetail(c)
}

func (rt *Router) deleteNotification(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)
	if err := rt.notification.DeleteNotification(c.Params("notificationId"), claims.UserId); err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepNotDetail(c)
}
