package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careconnect-hq/careconnect/internal/admin/model"
	"github.com/careconnect-hq/careconnect/pkg/http"
	"github.com/careconnect-hq/careconnect/pkg/http/middleware"
)

func (rt *Router) resourceRouter(r fiber.Router, auth, admin fiber.Handler) {
	resGroup := r.Group("/resource", auth)
	{
		resGroup.Get("/list", rt.listResources)
		resGroup.Get("/:resourceId", rt.getResource)
		resGroup.Get("/:resourceId/download", rt.downloadResource)

		resGroup.Post("/upload", admin, rt.uploadResource)
		resGroup.Post("/link", admin, rt.addLinkResource)
		resGroup.Post("/:resourceId", admin, rt.updateResource)
		resGroup.Delete("/:resourceId", admin, rt.deleteResource)
	}
}

func (rt *Router) listResources(c *fiber.Ctx) error {
	category := c.Query("category")
	pageNum := c.QueryInt("pageNum", 1)
	pageSize := c.QueryInt("pageSize", 20)

	resources, count, err := rt.resource.ListResources(category, (pageNum-1)*pageSize, pageSize)
	if err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepJSON(c, fiber.Map{"list": resources, "count": count})
}

func (rt *Router) getResource(c *fiber.Ctx) error {
	resource, err := rt.resource.GetResource(c.Params("resourceId"))
	if err != nil {
		return http.WithRepErrMsg(c, http.ResourceNotExist.Code, http.ResourceNotExist.Msg, c.Path())
	}
	return http.WithRepJSON(c, resource)
}

// downloadResource resolves the target URL and counts the download. The
// client follows the returned URL itself.
func (rt *Router) downloadResource(c *fiber.Ctx) error {
	url, err := rt.resource.Download(c.Params("resourceId"))
	if err != nil {
		return http.WithRepErrMsg(c, http.ResourceNotExist.Code, http.ResourceNotExist.Msg, c.Path())
	}
	return http.WithRepJSON(c, fiber.Map{"url": url})
}

func (rt *Router) uploadResource(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	file, err := c.FormFile("file")
	if err != nil {
		return http.WithRepErrMsg(c, http.BadRequest.Code, "file is required", c.Path())
	}

	resource, err := rt.resource.UploadFile(
		file,
		c.FormValue("title"),
		c.FormValue("description"),
		c.FormValue("category"),
		c.FormValue("tags"),
		claims.UserId,
	)
	if err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepJSON(c, resource)
}

func (rt *Router) addLinkResource(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	var req *model.AddLinkResourceReq
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepErrMsg(c, http.RequestParameterParsingFailed.Code, http.RequestParameterParsingFailed.Msg, c.Path())
	}

	resource, err := rt.resource.AddLink(req, claims.UserId)
	if err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepJSON(c, resource)
}

func (rt *Router) updateResource(c *fiber.Ctx) error {
	var resource *model.Resource
	if err := c.BodyParser(&resource); err != nil {
		return http.WithRepErrMsg(c, http.RequestParameterParsingFailed.Code, http.RequestParameterParsingFailed.Msg, c.Path())
	}

	if err := rt.resource.UpdateResource(c.Params("resourceId"), resource); err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepNotDetail(c)
}

func (rt *Router) deleteResource(c *fiber.Ctx) error {
	if err := rt.resource.DeleteResource(c.Params("resourceId")); err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepNotDetail(c)
}
