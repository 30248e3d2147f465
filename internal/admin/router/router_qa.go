package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careconnect-hq/careconnect/internal/admin/model"
	"github.com/careconnect-hq/careconnect/pkg/http"
	"github.com/careconnect-hq/careconnect/pkg/http/middleware"
)

func (rt *Router) qaRouter(r fiber.Router, auth, admin fiber.Handler) {
	qaGroup := r.Group("/qa", auth)
	{
		qaGroup.Get("/question/list", rt.listQuestions)
		qaGroup.Post("/question/add", rt.addQuestion)
		qaGroup.Get("/question/:questionId", rt.getQuestion)
		qaGroup.Post("/question/:questionId/upvote", rt.upvoteQuestion)
		qaGroup.Delete("/question/:questionId", admin, rt.deleteQuestion)

		qaGroup.Post("/question/:questionId/answer", rt.addAnswer)
		qaGroup.Post("/answer/:answerId/upvote", rt.upvoteAnswer)
		qaGroup.Post("/answer/:answerId/accept", rt.acceptAnswer)
	}
}

func (rt *Router) listQuestions(c *fiber.Ctx) error {
	category := c.Query("category")
	pageNum := c.QueryInt("pageNum", 1)
	pageSize := c.QueryInt("pageSize", 20)

	questions, count, err := rt.qa.ListQuestions(category, (pageNum-1)*pageSize, pageSize)
	if err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepJSON(c, fiber.Map{"list": questions, "count": count})
}

func (rt *Router) addQuestion(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	var req *model.AddQuestionReq
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepErrMsg(c, http.RequestParameterParsingFailed.Code, http.RequestParameterParsingFailed.Msg, c.Path())
	}

	q, err := rt.qa.AddQuestion(claims.UserId, req)
	if err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepJSON(c, q)
}

func (rt *Router) getQuestion(c *fiber.Ctx) error {
	detail, err := rt.qa.GetQuestion(c.Params("questionId"))
	if err != nil {
		return http.WithRepErrMsg(c, http.QuestionNotExist.Code, http.QuestionNotExist.Msg, c.Path())
	}
	return http.WithRepJSON(c, detail)
}

func (rt *Router) upvoteQuestion(c *fiber.Ctx) error {
	if err := rt.qa.UpvoteQuestion(c.Params("questionId")); err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepNotDetail(c)
}

func (rt *Router) deleteQuestion(c *fiber.Ctx) error {
	if err := rt.qa.DeleteQuestion(c.Params("questionId")); err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepNotDetail(c)
}

func (rt *Router) addAnswer(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	var req *model.AddAnswerReq
	if err := c.BodyParser(&req); err != nil {
		return http.WithRepErrMsg(c, http.RequestParameterParsingFailed.Code, http.RequestParameterParsingFailed.Msg, c.Path())
	}

	a, err := rt.qa.AddAnswer(c.Params("questionId"), claims.UserId, req)
	if err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepJSON(c, a)
}

func (rt *Router) upvoteAnswer(c *fiber.Ctx) error {
	if err := rt.qa.UpvoteAnswer(c.Params("answerId")); err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepNotDetail(c)
}

func (rt *Router) acceptAnswer(c *fiber.Ctx) error {
	claims := middleware.GetClaims(c)

	actor, err := rt.user.FetchUserInfo(claims.UserId)
	if err != nil {
		return http.WithRepErrMsg(c, http.UserNotExist.Code, http.UserNotExist.Msg, c.Path())
	}

	if err := rt.qa.AcceptAnswer(c.Params("answerId"), actor); err != nil {
		return http.WithRepErrMsg(c, http.Failed.Code, err.Error(), c.Path())
	}
	return http.WithRepNotDetail(c)
}
