// Copyright 2026 CareConnect Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/careconnect-hq/careconnect/internal/admin/consts"
	"github.com/careconnect-hq/careconnect/internal/admin/model"
	"github.com/careconnect-hq/careconnect/internal/admin/realtime"
	"github.com/careconnect-hq/careconnect/internal/admin/repo"
	"github.com/careconnect-hq/careconnect/pkg/ctx"
	"github.com/careconnect-hq/careconnect/pkg/http"
	"github.com/careconnect-hq/careconnect/pkg/id"
	"github.com/careconnect-hq/careconnect/pkg/log"
	"github.com/careconnect-hq/careconnect/pkg/safe"
)

type QAService struct {
	ctx      *ctx.Context
	repos    *repo.Repositories
	notifier realtime.Notifier
}

func NewQAService(appCtx *ctx.Context, repos *repo.Repositories, notifier realtime.Notifier) *QAService {
	return &QAService{
		ctx:      appCtx,
		repos:    repos,
		notifier: notifier,
	}
}

// AddQuestion posts a question. Each user may post at most one question
// per calendar day, tracked on the user record.
func (qs *QAService) AddQuestion(authorId string, req *model.AddQuestionReq) (*model.Question, error) {
	if req.Title == "" || req.Body == "" {
		return nil, errors.New(http.BadRequest.Msg)
	}

	author, err := qs.repos.User.GetUserById(authorId)
	if err != nil {
		return nil, errors.New(http.UserNotExist.Msg)
	}

	now := time.Now()
	if author.LastQuestionAt != nil && model.SameCalendarDay(*author.LastQuestionAt, now, time.Local) {
		return nil, errors.New(http.QuestionDailyLimit.Msg)
	}

	q := &model.Question{
		QuestionId: id.GetUUIDWithoutDashes(),
		AuthorId:   authorId,
		Title:      req.Title,
		Body:       req.Body,
		Category:   req.Category,
	}
	if err := qs.repos.QA.AddQuestion(q); err != nil {
		return nil, err
	}
	if err := qs.repos.User.SetLastQuestionAt(authorId, now); err != nil {
		log.Errorw("failed to record question timestamp", "userId", authorId, "error", err)
	}

	qs.notifier.Publish(consts.CollectionQuestions)
	return q, nil
}

func (qs *QAService) GetQuestion(questionId string) (*model.QuestionDetail, error) {
	q, err := qs.repos.QA.GetQuestion(questionId)
	if err != nil {
		return nil, errors.New(http.QuestionNotExist.Msg)
	}
	answers, err := qs.repos.QA.ListAnswers(questionId)
	if err != nil {
		return nil, err
	}
	return &model.QuestionDetail{Question: *q, Answers: answers}, nil
}

func (qs *QAService) ListQuestions(category string, offset, pageSize int) ([]model.Question, int64, error) {
	return qs.repos.QA.ListQuestions(category, offset, pageSize)
}

func (qs *QAService) UpvoteQuestion(questionId string) error {
	if _, err := qs.repos.QA.GetQuestion(questionId); err != nil {
		return errors.New(http.QuestionNotExist.Msg)
	}
	if err := qs.repos.QA.UpvoteQuestion(questionId); err != nil {
		return err
	}
	qs.notifier.Publish(consts.CollectionQuestions)
	return nil
}

func (qs *QAService) DeleteQuestion(questionId string) error {
	if _, err := qs.repos.QA.GetQuestion(questionId); err != nil {
		return errors.New(http.QuestionNotExist.Msg)
	}
	if err := qs.repos.QA.DeleteAnswersByQuestion(questionId); err != nil {
		return err
	}
	if err := qs.repos.QA.DeleteQuestion(questionId); err != nil {
		return err
	}
	qs.notifier.Publish(consts.CollectionQuestions, consts.CollectionAnswers)
	return nil
}

// AddAnswer replies to a question and notifies its author.
func (qs *QAService) AddAnswer(questionId, authorId string, req *model.AddAnswerReq) (*model.Answer, error) {
	if req.Body == "" {
		return nil, errors.New(http.BadRequest.Msg)
	}
	q, err := qs.repos.QA.GetQuestion(questionId)
	if err != nil {
		return nil, errors.New(http.QuestionNotExist.Msg)
	}

	a := &model.Answer{
		AnswerId:   id.GetUUIDWithoutDashes(),
		QuestionId: questionId,
		AuthorId:   authorId,
		Body:       req.Body,
	}
	if err := qs.repos.QA.AddAnswer(a); err != nil {
		return nil, err
	}

	if q.AuthorId != authorId {
		safe.Go(func() {
			qs.notifyQuestionAuthor(q)
		})
	}

	qs.notifier.Publish(consts.CollectionAnswers)
	return a, nil
}

func (qs *QAService) notifyQuestionAuthor(q *model.Question) {
	n := &model.Notification{
		NotificationId: id.GetUUIDWithoutDashes(),
		UserId:         q.AuthorId,
		Kind:           model.NotifyKindAnswer,
		Title:          "Your question has a new answer",
		Body:           fmt.Sprintf("Someone answered %q", q.Title),
		Link:           "/questions/" + q.QuestionId,
	}
	if err := qs.repos.Notification.AddNotification(n); err != nil {
		log.Errorw("failed to create answer notification", "questionId", q.QuestionId, "error", err)
		return
	}
	qs.notifier.Publish(consts.CollectionNotifications)
}

func (qs *QAService) UpvoteAnswer(answerId string) error {
	if _, err := qs.repos.QA.GetAnswer(answerId); err != nil {
		return errors.New(http.AnswerNotExist.Msg)
	}
	if err := qs.repos.QA.UpvoteAnswer(answerId); err != nil {
		return err
	}
	qs.notifier.Publish(consts.CollectionAnswers)
	return nil
}

// AcceptAnswer marks an answer accepted. Only the question author or an
// admin may accept, and accepting a new answer clears the previous one.
func (qs *QAService) AcceptAnswer(answerId string, actor *model.UserInfo) error {
	a, err := qs.repos.QA.GetAnswer(answerId)
	if err != nil {
		return errors.New(http.AnswerNotExist.Msg)
	}
	q, err := qs.repos.QA.GetQuestion(a.QuestionId)
	if err != nil {
		return errors.New(http.QuestionNotExist.Msg)
	}
	if actor.UserId != q.AuthorId && actor.Role != model.RoleAdmin {
		return errors.New(http.AcceptNotAllowed.Msg)
	}

	if q.AcceptedAnswerId != "" && q.AcceptedAnswerId != answerId {
		if err := qs.repos.QA.MarkAccepted(q.AcceptedAnswerId, false); err != nil {
			return err
		}
	}
	if err := qs.repos.QA.MarkAccepted(answerId, true); err != nil {
		return err
	}
	if err := qs.repos.QA.SetAcceptedAnswer(q.QuestionId, answerId); err != nil {
		return err
	}

	qs.notifier.Publish(consts.CollectionQuestions, consts.CollectionAnswers)
	return nil
}
