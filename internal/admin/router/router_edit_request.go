package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careconnect-hq/careconnect/internal/admin/model"
	"github.com/careconnect-hq/careconnect/pkg/http"
	"github.com/careconnect-hq/careconnect/pkg/http/middleware"
)

func (rt *Router) editRequestRouter(r fiber.Router, auth, admin fiber.Handler) {
	editGroup := r.Group("/editRequest", auth)
	{
		editGroup.Post("/file", rt.fileEditRequest)
		editGroup.Get("/mine", rt.listMyEditRequests)

		editGroup.Get("/list", admin, rt.listEditRequests)
		editGroup.Post("/:requestId/review", admin, rt.reviewEditRequest)
	}
}

func (rt *Router) fileEditRequest(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	var req *model.AddEditRequestReq
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepErrMsg(c, http.RequestParameterParsingFailed.Code, http.RequestParameterParsingFailed.Msg, c.Path())
	}

	r, err := rt.editRequest.FileRequest(claims.UserId, req)
	if err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepJSON(c, r)
}

func (rt *Router) listMyEditRequests(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)
	requests, err := rt.editRequest.ListUserRequests(claims.UserId)
	if err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepJSON(c, requests)
}

func (rt *Router) listEditRequests(c *fiber.Ctx) error {
	status := c.Query("status")
	pageNum := c.QueryInt("pageNum", 1)
	pageSize := c.QueryInt("pageSize", 20)

	requests, count, err := rt.editRequest.ListRequests(status, (pageNum-1)*pageSize, pageSize)
	if err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepJSON(c, fiber.Map{"list": requests, "count": count})
}

func (rt *Router) reviewEditRequest(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	var req *model.ReviewEditRequestReq
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepErrMsg(c, http.RequestParameterParsingFailed.Code, http.RequestParameterParsingFailed.Msg, c.Path())
	}

	if err := rt.editRequest.Review(c.Params("requestId"), claims.UserId, req); err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepNotDetail(c)
}
