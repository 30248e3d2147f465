package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careconnect-hq/careconnect/internal/admin/model"
	"github.com/careconnect-hq/careconnect/pkg/http"
)

func (rt *Router) newHireRouter(r fiber.Router, auth, admin fiber.Handler) {
	hireGroup := r.Group("/newHire", auth, admin)
	{
		hireGroup.Post("/add", rt.addNewHire)
		hireGroup.Get("/list", rt.listNewHires)
		hireGroup.Get("/:newHireId", rt.getNewHire)
		hireGroup.Post("/:newHireId", rt.updateNewHire)
		hireGroup.Post("/:newHireId/deactivate", rt.deactivateNewHire)
		hireGroup.Get("/:newHireId/documents", rt.listNewHireDocuments)
	}
}

func (rt *Router) addNewHire(c *fiber.Ctx) error {
	var req *model.AddNewHireReq
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepErrMsg(c, http.RequestParameterParsingFailed.Code, http.RequestParameterParsingFailed.Msg, c.Path())
	}

	hire, err := rt.newHire.AddNewHire(req)
	if err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepJSON(c, hire)
}

func (rt *Router) listNewHires(c *fiber.Ctx) error {
	pageNum := c.QueryInt("pageNum", 1)
	pageSize := c.QueryInt("pageSize", 20)
	includeInactive := c.QueryBool("includeInactive", false)

	hires, count, err := rt.newHire.ListNewHires(pageNum, pageSize, includeInactive)
	if err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepJSON(c, fiber.Map{"list": hires, "count": count})
}

func (rt *Router) getNewHire(c *fiber.Ctx) error {
	hire, err := rt.newHire.GetNewHire(c.Params("newHireId"))
	if err != nil {
		return http.WithRepErrMsg(c, http.NewHireNotExist.Code, http.NewHireNotExist.Msg, c.Path())
	}
	return http.WithRepJSON(c, hire)
}

func (rt *Router) updateNewHire(c *fiber.Ctx) error {
	var hire *model.NewHire
	if err := c.BodyParser(&hire); err != nil {
		return http.WithRepErrMsg(c, http.RequestParameterParsingFailed.Code, http.RequestParameterParsingFailed.Msg, c.Path())
	}

	if err := rt.newHire.UpdateNewHire(c.Params("newHireId"), hire); err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepNotDetail(c)
}

func (rt *Router) deactivateNewHire(c *fiber.Ctx) error {
	if err := rt.newHire.Deactivate(c.Params("newHireId")); err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepNotDetail(c)
}

func (rt *Router) listNewHireDocuments(c *fiber.Ctx) error {
	rows, err := rt.document.ListNewHireDocuments(c.Params("newHireId"))
	if err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepJSON(c, rows)
}
