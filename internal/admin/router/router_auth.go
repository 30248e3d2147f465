package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careconnect-hq/careconnect/internal/admin/model"
	"github.com/careconnect-hq/careconnect/pkg/http"
	"github.com/careconnect-hq/careconnect/pkg/http/middleware"
)

func (rt *Router) authRouter(r fiber.Router, auth fiber.Handler) {
	authGroup := r.Group("/auth")
	{
		authGroup.Post("/register", rt.register)
		authGroup.Post("/login", rt.login)

		authGroup.Post("/logout", auth, rt.logout)
		authGroup.Get("/refresh", auth, rt.refresh)
		authGroup.Post("/resetPassword", auth, rt.resetPassword)
	}
}

func (rt *Router) register(c *fiber.Ctx) error {
	var register *model.Register
	if err := c.BodyParser(&register); err != nil {
		return http.WithRepErrMsg(c, http.RequestParameterParsingFailed.Code, http.RequestParameterParsingFailed.Msg, c.Path())
	}

	if err := rt.auth.Register(register, rt.Http.Auth); err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepNotDetail(c)
}

func (rt *Router) login(c *fiber.Ctx) error {
	var login *model.Login
	if err := c.BodyParser(&login); err != nil {
		return http.WithRepErrMsg(c, http.RequestParameterParsingFailed.Code, http.RequestParameterParsingFailed.Msg, c.Path())
	}

	resp, err := rt.auth.Login(login, rt.Http.Auth)
	if err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepJSON(c, resp)
}

func (rt *Router) logout(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return http.WithRepErrMsg(c, http.Unauthorized.Code, http.Unauthorized.Msg, c.Path())
	}
	if err := rt.auth.Logout(claims.UserId); err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepNotDetail(c)
}

func (rt *Router) refresh(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return http.WithRepErrMsg(c, http.Unauthorized.Code, http.Unauthorized.Msg, c.Path())
	}
	rToken := c.Query("refreshToken")
	if rToken == "" {
		return http.WithRepErrMsg(c, http.TokenBeEmpty.Code, http.TokenBeEmpty.Msg, c.Path())
	}

	token, err := rt.auth.Refresh(claims.UserId, rToken, &rt.Http.Auth)
	if err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepJSON(c, token)
}

func (rt *Router) resetPassword(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return http.WithRepErrMsg(c, http.Unauthorized.Code, http.Unauthorized.Msg, c.Path())
	}

	var body struct {
		NewPassword string `json:"newPassword"`
	}
	if err := c.BodyParser(&body); err != nil {
		return http.WithRepErrMsg(c, http.RequestParameterParsingFailed.Code, http.RequestParameterParsingFailed.Msg, c.Path())
	}

	if err := rt.auth.ResetPassword(claims.UserId, body.NewPassword); err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepNotDetail(c)
}
