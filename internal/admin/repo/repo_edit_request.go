package repo

import (
	"time"

	"github.com/careconnect-hq/careconnect/internal/admin/model"
	"github.com/careconnect-hq/careconnect/pkg/ctx"
)

type IEditRequestRepository interface {
	AddRequest(r *model.EditRequest) error
	GetRequest(requestId string) (*model.EditRequest, error)
	ListRequests(status string, offset, pageSize int) ([]model.EditRequest, int64, error)
	ListByUser(userId string) ([]model.EditRequest, error)
	HasPending(userId, field string) (bool, error)
	Review(requestId, status, reviewedBy, note string) error
}

type EditRequestRepo struct {
	Ctx          *ctx.Context
	requestModel model.EditRequest
}

func NewEditRequestRepo(appCtx *ctx.Context) IEditRequestRepository {
	return &EditRequestRepo{
		Ctx:          appCtx,
		requestModel: model.EditRequest{},
	}
}

func (er *EditRequestRepo) AddRequest(r *model.EditRequest) error {
	return er.Ctx.GetDB().Table(er.requestModel.TableName()).Create(r).Error
}

func (er *EditRequestRepo) GetRequest(requestId string) (*model.EditRequest, error) {
	var r = &model.EditRequest{}
	err := er.Ctx.GetDB().Table(er.requestModel.TableName()).
		Where("request_id = ?", requestId).
		First(r).Error
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (er *EditRequestRepo) ListRequests(status string, offset, pageSize int) ([]model.EditRequest, int64, error) {
	var requests []model.EditRequest

	countTx := er.Ctx.GetDB().Table(er.requestModel.TableName())
	tx := er.Ctx.GetDB().Table(er.requestModel.TableName())
	if status != "" {
		countTx = countTx.Where("status = ?", status)
		tx = tx.Where("status = ?", status)
	}

	count, err := Count(countTx)
	if err != nil {
		return nil, 0, err
	}

	err = tx.Offset(offset).
		Limit(pageSize).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, 0, err
	}
	return requests, count, nil
}

func (er *EditRequestRepo) ListByUser(userId string) ([]model.EditRequest, error) {
	var requests []model.EditRequest
	err := er.Ctx.GetDB().Table(er.requestModel.TableName()).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// HasPending reports whether the user already has an open request for the
// same field, one pending change per field at a time.
func (er *EditRequestRepo) HasPending(userId, field string) (bool, error) {
	count, err := Count(er.Ctx.GetDB().Table(er.requestModel.TableName()).
		Where("user_id = ? AND field = ? AND status = ?", userId, field, model.EditRequestPending))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (er *EditRequestRepo) Review(requestId, status, reviewedBy, note string) error {
	return er.Ctx.GetDB().Table(er.requestModel.TableName()).
		Where("request_id = ?", requestId).
		Updates(map[string]interface{}{
			"status":      status,
			"reviewed_by": reviewedBy,
			"reviewed_at": time.Now(),
			"review_note": note,
		}).Error
}
