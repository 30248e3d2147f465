package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careconnect-hq/careconnect/internal/admin/model"
	"github.com/careconnect-hq/careconnect/pkg/http"
	"github.com/careconnect-hq/careconnect/pkg/http/middleware"
)

func (rt *Router) documentRouter(r fiber.Router, auth, admin fiber.Handler) {
	docGroup := r.Group("/document")
	{
		docGroup.Get("/category/list", auth, rt.listCategories)
		docGroup.Post("/category/add", auth, admin, rt.addCategory)
		docGroup.Post("/category/:categoryId", auth, admin, rt.updateCategory)
		docGroup.Delete("/category/:categoryId", auth, admin, rt.deleteCategory)

		docGroup.Get("/template/list", auth, rt.listTemplates)
		docGroup.Post("/template/add", auth, admin, rt.addTemplate)
		docGroup.Post("/template/:templateId", auth, admin, rt.updateTemplate)
		docGroup.Delete("/template/:templateId", auth, admin, rt.deleteTemplate)

		docGroup.Get("/tracking/mine", auth, rt.listMyDocuments)
		docGroup.Get("/tracking/user/:userId", auth, admin, rt.listUserDocuments)
		docGroup.Post("/tracking/:rowId/sign", auth, rt.startSigning)
		docGroup.Post("/tracking/:rowId/complete", auth, admin, rt.manualComplete)
		docGroup.Post("/tracking/:rowId/undoComplete", auth, admin, rt.undoManualComplete)
	}
}

func (rt *Router) listCategories(c *fiber.Ctx) error {
	categories, err := rt.document.ListCategories()
	if err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepJSON(c, categories)
}

func (rt *Router) addCategory(c *fiber.Ctx) error {
	var body struct {
		Name      string `json:"name"`
		SortOrder int    `json:"sortOrder"`
	}
	if err := c.BodyParser(&body); err != nil {
		return http.WithRepErrMsg(c, http.RequestParameterParsingFailed.Code, http.RequestParameterParsingFailed.Msg, c.Path())
	}

	category, err := rt.document.AddCategory(body.Name, body.SortOrder)
	if err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepJSON(c, category)
}

func (rt *Router) updateCategory(c *fiber.Ctx) error {
	var category *model.DocumentCategory
	if err := c.BodyParser(&category); err != nil {
		return http.WithRepErrMsg(c, http.RequestParameterParsingFailed.Code, http.RequestParameterParsingFailed.Msg, c.Path())
	}

	if err := rt.document.UpdateCategory(c.Params("categoryId"), category); err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepNotDetail(c)
}

func (rt *Router) deleteCategory(c *fiber.Ctx) error {
	if err := rt.document.DeleteCategory(c.Params("categoryId")); err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepNotDetail(c)
}

func (rt *Router) listTemplates(c *fiber.Ctx) error {
	templates, err := rt.document.ListTemplates()
	if err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepJSON(c, templates)
}

func (rt *Router) addTemplate(c *fiber.Ctx) error {
	var req *model.AddTemplateReq
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepErrMsg(c, http.RequestParameterParsingFailed.Code, http.RequestParameterParsingFailed.Msg, c.Path())
	}

	t, err := rt.document.AddTemplate(req)
	if err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepJSON(c, t)
}

func (rt *Router) updateTemplate(c *fiber.Ctx) error {
	var t *model.DocumentTemplate
	if err := c.BodyParser(&t); err != nil {
		return http.WithRepErrMsg(c, http.RequestParameterParsingFailed.Code, http.RequestParameterParsingFailed.Msg, c.Path())
	}

	if err := rt.document.UpdateTemplate(c.Params("templateId"), t); err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepNotDetail(c)
}

func (rt *Router) deleteTemplate(c *fiber.Ctx) error {
	if err := rt.document.DeleteTemplate(c.Params("templateId")); err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepNotDetail(c)
}

func (rt *Router) listMyDocuments(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)
	rows, err := rt.document.ListUserDocuments(claims.UserId)
	if err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepJSON(c, rows)
}

func (rt *Router) listUserDocuments(c *fiber.Ctx) error {
	rows, err := rt.document.ListUserDocuments(c.Params("userId"))
	if err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepJSON(c, rows)
}

func (rt *Router) startSigning(c *fiber.Ctx) error {
	row, err := rt.document.StartSigning(c.Params("rowId"))
	if err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepJSON(c, row)
}

func (rt *Router) manualComplete(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)
	if err := rt.document.ManualComplete(c.Params("rowId"), claims.UserId); err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepNotDetail(c)
}

func (rt *Router) undoManualComplete(c *fiber.Ctx) error {
	if err := rt.document.UndoManualComplete(c.Params("rowId")); err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepNotDetail(c)
}
