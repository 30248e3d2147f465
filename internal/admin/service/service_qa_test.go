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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careconnect-hq/careconnect/internal/admin/model"
	"github.com/careconnect-hq/careconnect/internal/admin/realtime"
	"github.com/careconnect-hq/careconnect/internal/admin/repo"
	"github.com/careconnect-hq/careconnect/pkg/http"
)

type fakeUserRepo struct {
	repo.IUserRepository
	users map[string]*model.User
}

func (f *fakeUserRepo) GetUserById(userId string) (*model.User, error) {
	u, ok := f.users[userId]
	if !ok {
		return nil, errors.New("record not found")
	}
	return u, nil
}

func (f *fakeUserRepo) SetLastQuestionAt(userId string, at time.Time) error {
	if u, ok := f.users[userId]; ok {
		u.LastQuestionAt = &at
	}
	return nil
}

type fakeQARepo struct {
	repo.IQARepository
	questions map[string]*model.Question
	answers   map[string]*model.Answer
}

func (f *fakeQARepo) AddQuestion(q *model.Question) error {
	f.questions[q.QuestionId] = q
	return nil
}

func (f *fakeQARepo) GetQuestion(questionId string) (*model.Question, error) {
	q, ok := f.questions[questionId]
	if !ok {
		return nil, errors.New("record not found")
	}
	return q, nil
}

func (f *fakeQARepo) GetAnswer(answerId string) (*model.Answer, error) {
	a, ok := f.answers[answerId]
	if !ok {
		return nil, errors.New("record not found")
	}
	return a, nil
}

func (f *fakeQARepo) MarkAccepted(answerId string, accepted bool) error {
	a, ok := f.answers[answerId]
	if !ok {
		return errors.New("record not found")
	}
	a.IsAccepted = accepted
	return nil
}

func (f *fakeQARepo) SetAcceptedAnswer(questionId, answerId string) error {
	q, ok := f.questions[questionId]
	if !ok {
		return errors.New("record not found")
	}
	q.AcceptedAnswerId = answerId
	return nil
}

func newQAFixture() (*QAService, *fakeUserRepo, *fakeQARepo) {
	users := &fakeUserRepo{users: map[string]*model.User{}}
	qa := &fakeQARepo{questions: map[string]*model.Question{}, answers: map[string]*model.Answer{}}
	svc := NewQAService(nil, &repo.Repositories{User: users, QA: qa}, realtime.NopNotifier{})
	return svc, users, qa
}

func TestAddQuestionDailyLimit(t *testing.T) {
	svc, users, _ := newQAFixture()
	users.users["u-1"] = &model.User{UserId: "u-1"}

	q, err := svc.AddQuestion("u-1", &model.AddQuestionReq{Title: "PPE policy?", Body: "Where is it documented?"})
	require.NoError(t, err)
	assert.NotEmpty(t, q.QuestionId)

	_, err = svc.AddQuestion("u-1", &model.AddQuestionReq{Title: "Second one", Body: "Same day"})
	require.Error(t, err)
	assert.Equal(t, http.QuestionDailyLimit.Msg, err.Error())
}

func TestAddQuestionAfterMidnight(t *testing.T) {
	svc, users, _ := newQAFixture()
	yesterday := time.Now().AddDate(0, 0, -1)
	users.users["u-1"] = &model.User{UserId: "u-1", LastQuestionAt: &yesterday}

	_, err := svc.AddQuestion("u-1", &model.AddQuestionReq{Title: "New day", Body: "New question"})

	assert.NoError(t, err)
}

func TestAddQuestionValidation(t *testing.T) {
	svc, users, _ := newQAFixture()
	users.users["u-1"] = &model.User{UserId: "u-1"}

	_, err := svc.AddQuestion("u-1", &model.AddQuestionReq{Title: "", Body: "no title"})

	assert.Error(t, err)
}

func TestAcceptAnswerByAuthor(t *testing.T) {
	svc, _, qa := newQAFixture()
	qa.questions["q-1"] = &model.Question{QuestionId: "q-1", AuthorId: "u-1"}
	qa.answers["a-1"] = &model.Answer{AnswerId: "a-1", QuestionId: "q-1"}

	err := svc.AcceptAnswer("a-1", &model.UserInfo{UserId: "u-1", Role: model.RoleUser})

	require.NoError(t, err)
	assert.True(t, qa.answers["a-1"].IsAccepted)
	assert.Equal(t, "a-1", qa.questions["q-1"].AcceptedAnswerId)
}

func TestAcceptAnswerReplacesPrevious(t *testing.T) {
	svc, _, qa := newQAFixture()
	qa.questions["q-1"] = &model.Question{QuestionId: "q-1", AuthorId: "u-1", AcceptedAnswerId: "a-1"}
	qa.answers["a-1"] = &model.Answer{AnswerId: "a-1", QuestionId: "q-1", IsAccepted: true}
	qa.answers["a-2"] = &model.Answer{AnswerId: "a-2", QuestionId: "q-1"}

	err := svc.AcceptAnswer("a-2", &model.UserInfo{UserId: "u-1", Role: model.RoleUser})

	require.NoError(t, err)
	assert.False(t, qa.answers["a-1"].IsAccepted)
	assert.True(t, qa.answers["a-2"].IsAccepted)
	assert.Equal(t, "a-2", qa.questions["q-1"].AcceptedAnswerId)
}

func TestAcceptAnswerForbidden(t *testing.T) {
	svc, _, qa := newQAFixture()
	qa.questions["q-1"] = &model.Question{QuestionId: "q-1", AuthorId: "u-1"}
	qa.answers["a-1"] = &model.Answer{AnswerId: "a-1", QuestionId: "q-1"}

	err := svc.AcceptAnswer("a-1", &model.UserInfo{UserId: "u-2", Role: model.RoleUser})

	require.Error(t, err)
	assert.Equal(t, http.AcceptNotAllowed.Msg, err.Error())
	assert.False(t, qa.answers["a-1"].IsAccepted)
}

func TestAcceptAnswerByAdmin(t *testing.T) {
	svc, _, qa := newQAFixture()
	qa.questions["q-1"] = &model.Question{QuestionId: "q-1", AuthorId: "u-1"}
	qa.answers["a-1"] = &model.Answer{AnswerId: "a-1", QuestionId: "q-1"}

	err := svc.AcceptAnswer("a-1", &model.UserInfo{UserId: "admin-1", Role: model.RoleAdmin})

	assert.NoError(t, err)
}
