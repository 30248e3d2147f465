package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/careconnect-hq/careconnect/internal/admin/model"
	"github.com/careconnect-hq/careconnect/pkg/http"
	"github.com/careconnect-hq/careconnect/pkg/http/middleware"
)

func (rt *Router) calendarRouter(r fiber.Router, auth, admin fiber.Handler) {
	calGroup := r.Group("/calendar", auth)
	{
		calGroup.Get("/list", rt.listEvents)
		calGroup.Get("/:eventId", rt.getEvent)

		calGroup.Post("/add", admin, rt.addEvent)
		calGroup.Post("/:eventId", admin, rt.updateEvent)
		calGroup.Delete("/:eventId", admin, rt.deleteEvent)
		calGroup.Delete("/:eventId/series", admin, rt.deleteSeries)
	}
}

func (rt *Router) listEvents(c *fiber.Ctx) error {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		return http.WithRepErrMsg(c, http.BadRequest.Code, "from must be RFC3339", c.Path())
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		return http.WithRepErrMsg(c, http.BadRequest.Code, "to must be RFC3339", c.Path())
	}

	events, err := rt.calendar.ListEvents(from, to)
	if err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepJSON(c, events)
}

func (rt *Router) getEvent(c *fiber.Ctx) error {
	e, err := rt.calendar.GetEvent(c.Params("eventId"))
	if err != nil {
		return http.WithRepErrMsg(c, http.EventNotExist.Code, http.EventNotExist.Msg, c.Path())
	}
	return http.WithRepJSON(c, e)
}

func (rt *Router) addEvent(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	var req *model.AddEventReq
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepErrMsg(c, http.RequestParameterParsingFailed.Code, http.RequestParameterParsingFailed.Msg, c.Path())
	}

	events, err := rt.calendar.AddEvent(req, claims.UserId)
	if err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepJSON(c, events)
}

func (rt *Router) updateEvent(c *fiber.Ctx) error {
	var req *model.UpdateEventReq
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepErrMsg(c, http.RequestParameterParsingFailed.Code, http.RequestParameterParsingFailed.Msg, c.Path())
	}

	if err := rt.calendar.UpdateEvent(c.Params("eventId"), req); err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepNotDetail(c)
}

func (rt *Router) deleteEvent(c *fiber.Ctx) error {
	if err := rt.calendar.DeleteEvent(c.Params("eventId")); err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepNotDetail(c)
}

func (rt *Router) deleteSeries(c *fiber.Ctx) error {
	if err := rt.calendar.DeleteSeries(c.Params("eventId")); err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepNotDetail(c)
}
