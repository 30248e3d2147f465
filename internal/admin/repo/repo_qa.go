package repo

import (
	"gorm.io/gorm"

	"github.com/careconnect-hq/careconnect/internal/admin/model"
	"github.com/careconnect-hq/careconnect/pkg/ctx"
)

type IQARepository interface {
	AddQuestion(q *model.Question) error
	GetQuestion(questionId string) (*model.Question, error)
	ListQuestions(category string, offset, pageSize int) ([]model.Question, int64, error)
	UpvoteQuestion(questionId string) error
	SetAcceptedAnswer(questionId, answerId string) error
	DeleteQuestion(questionId string) error

	AddAnswer(a *model.Answer) error
	GetAnswer(answerId string) (*model.Answer, error)
	ListAnswers(questionId string) ([]model.Answer, error)
	ListRecentAnswers(limit int) ([]model.Answer, error)
	UpvoteAnswer(answerId string) error
	MarkAccepted(answerId string, accepted bool) error
	DeleteAnswersByQuestion(questionId string) error
}

type QARepo struct {
	Ctx           *ctx.Context
	questionModel model.Question
	answerModel   model.Answer
}

func NewQARepo(appCtx *ctx.Context) IQARepository {
	return &QARepo{
		Ctx:           appCtx,
		questionModel: model.Question{},
		answerModel:   model.Answer{},
	}
}

func (qr *QARepo) AddQuestion(q *model.Question) error {
	return qr.Ctx.GetDB().Table(qr.questionModel.TableName()).Create(q).Error
}

func (qr *QARepo) GetQuestion(questionId string) (*model.Question, error) {
	var q = &model.Question{}
	err := qr.Ctx.GetDB().Table(qr.questionModel.TableName()).
		Where("question_id = ?", questionId).
		First(q).Error
	if err != nil {
		return nil, err
	}
	return q, nil
}

func (qr *QARepo) ListQuestions(category string, offset, pageSize int) ([]model.Question, int64, error) {
	var questions []model.Question

	countTx := qr.Ctx.GetDB().Table(qr.questionModel.TableName())
	tx := qr.Ctx.GetDB().Table(qr.questionModel.TableName())
	if category != "" {
		countTx = countTx.Where("category = ?", category)
		tx = tx.Where("category = ?", category)
	}

	count, err := Count(countTx)
	if err != nil {
		return nil, 0, err
	}

	err = tx.Offset(offset).
		Limit(pageSize).
		Order("created_at DESC").
		Find(&questions).Error
	if err != nil {
		return nil, 0, err
	}
	return questions, count, nil
}

func (qr *QARepo) UpvoteQuestion(questionId string) error {
	return qr.Ctx.GetDB().Table(qr.questionModel.TableName()).
		Where("question_id = ?", questionId).
		UpdateColumn("upvotes", gorm.Expr("upvotes + 1")).Error
}

func (qr *QARepo) SetAcceptedAnswer(questionId, answerId string) error {
	return qr.Ctx.GetDB().Table(qr.questionModel.TableName()).
		Where("question_id = ?", questionId).
		Update("accepted_answer_id", answerId).Error
}

func (qr *QARepo) DeleteQuestion(questionId string) error {
	return qr.Ctx.GetDB().Table(qr.questionModel.TableName()).
		Where("question_id = ?", questionId).
		Delete(&model.Question{}).Error
}

func (qr *QARepo) AddAnswer(a *model.Answer) error {
	return qr.Ctx.GetDB().Table(qr.answerModel.TableName()).Create(a).Error
}

func (qr *QARepo) GetAnswer(answerId string) (*model.Answer, error) {
	var a = &model.Answer{}
	err := qr.Ctx.GetDB().Table(qr.answerModel.TableName()).
		Where("answer_id = ?", answerId).
		First(a).Error
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (qr *QARepo) ListAnswers(questionId string) ([]model.Answer, error) {
	var answers []model.Answer
	err := qr.Ctx.GetDB().Table(qr.answerModel.TableName()).
		Where("question_id = ?", questionId).
		Order("is_accepted DESC, upvotes DESC, created_at ASC").
		Find(&answers).Error
	return answers, err
}

func (qr *QARepo) ListRecentAnswers(limit int) ([]model.Answer, error) {
	var answers []model.Answer
	err := qr.Ctx.GetDB().Table(qr.answerModel.TableName()).
		Order("created_at DESC").
		Limit(limit).
		Find(&answers).Error
	return answers, err
}

func (qr *QARepo) UpvoteAnswer(answerId string) error {
	return qr.Ctx.GetDB().Table(qr.answerModel.TableName()).
		Where("answer_id = ?", answerId).
		UpdateColumn("upvotes", gorm.Expr("upvotes + 1")).Error
}

func (qr *QARepo) MarkAccepted(answerId string, accepted bool) error {
	return qr.Ctx.GetDB().Table(qr.answerModel.TableName()).
		Where("answer_id = ?", answerId).
		Update("is_accepted", accepted).Error
}

func (qr *QARepo) DeleteAnswersByQuestion(questionId string) error {
	return qr.Ctx.GetDB().Table(qr.answerModel.TableName()).
		Where("question_id = ?", questionId).
		Delete(&model.Answer{}).Error
}
