package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careconnect-hq/careconnect/internal/admin/model"
	"github.com/careconnect-hq/careconnect/pkg/http"
	"github.com/careconnect-hq/careconnect/pkg/http/middleware"
)

func (rt *Router) userRouter(r fiber.Router, auth, admin fiber.Handler) {
	userGroup := r.Group("/user")
	{
		userGroup.Get("/info", auth, rt.getUserInfo)
		userGroup.Get("/stats", auth, rt.getUserStats)
		userGroup.Post("/profile", auth, rt.updateProfile)
		userGroup.Post("/avatar", auth, rt.updateAvatar)

		userGroup.Get("/list", auth, admin, rt.listUsers)
		userGroup.Post("/approve/:userId", auth, admin, rt.approveUser)
		userGroup.Post("/disable/:userId", auth, admin, rt.disableUser)
		userGroup.Post("/enable/:userId", auth, admin, rt.enableUser)
		userGroup.Post("/role/:userId", auth, admin, rt.masterOnly, rt.setRole)
	}
}

// masterOnly restricts the route to the configured master administrator.
func (rt *Router) masterOnly(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return http.WithRepErrMsg(c, http.Unauthorized.Code, http.Unauthorized.Msg, c.Path())
	}
	u, err := rt.repos.User.GetUserById(claims.UserId)
	if err != nil {
		return http.WithRepErrMsg(c, http.UserNotExist.Code, http.UserNotExist.Msg, c.Path())
	}
	if !u.IsMasterAdmin(rt.Http.Auth.MasterEmail) {
		return http.WithRepErrMsg(c, http.MasterAdminOnly.Code, http.MasterAdminOnly.Msg, c.Path())
	}
	return c.Next()
}

func (rt *Router) getUserInfo(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)
	userId := c.Query("userId", claims.UserId)

	info, err := rt.user.FetchUserInfo(userId)
	if err != nil {
		return http.WithRepErrMsg(c, http.UserNotExist.Code, http.UserNotExist.Msg, c.Path())
	}
	return http.WithRepJSON(c, info)
}

func (rt *Router) getUserStats(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)
	userId := c.Query("userId", claims.UserId)

	stats, err := rt.sync.UserStats(userId)
	if err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepJSON(c, stats)
}

func (rt *Router) listUsers(c *fiber.Ctx) error {
	status := c.Query("status")
	pageNum := c.QueryInt("pageNum", 1)
	pageSize := c.QueryInt("pageSize", 20)

	users, count, err := rt.user.ListUsers(status, pageNum, pageSize)
	if err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepJSON(c, fiber.Map{"list": users, "count": count})
}

func (rt *Router) approveUser(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)
	userId := c.Params("userId")

	if err := rt.user.Approve(userId, claims.UserId); err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepNotDetail(c)
}

func (rt *Router) disableUser(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)
	userId := c.Params("userId")

	if err := rt.user.Disable(userId, claims.UserId); err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepNotDetail(c)
}

func (rt *Router) enableUser(c *fiber.Ctx) error {
	if err := rt.user.Enable(c.Params("userId")); err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepNotDetail(c)
}

func (rt *Router) setRole(c *fiber.Ctx) error {
	var body struct {
		Role string `json:"role"`
	}
	if err := c.BodyParser(&body); err != nil {
		return http.WithRepErrMsg(c, http.RequestParameterParsingFailed.Code, http.RequestParameterParsingFailed.Msg, c.Path())
	}

	if err := rt.user.SetRole(c.Params("userId"), body.Role); err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepNotDetail(c)
}

func (rt *Router) updateProfile(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	var u *model.User
	if err := c.BodyParser(&u); err != nil {
		return http.WithRepErrMsg(c, http.RequestParameterParsingFailed.Code, http.RequestParameterParsingFailed.Msg, c.Path())
	}

	if err := rt.user.UpdateProfile(claims.UserId, u); err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepNotDetail(c)
}

func (rt *Router) updateAvatar(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	var body struct {
		AvatarUrl string `json:"avatarUrl"`
	}
	if err := c.BodyParser(&body); err != nil {
		return http.WithRepErrMsg(c, http.RequestParameterParsingFailed.Code, http.RequestParameterParsingFailed.Msg, c.Path())
	}

	if err := rt.user.UpdateAvatar(claims.UserId, body.AvatarUrl); err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepNotDetail(c)
}
