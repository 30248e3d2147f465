package repo

import (
	"time"

	"github.com/careconnect-hq/careconnect/internal/admin/model"
	"github.com/careconnect-hq/careconnect/pkg/ctx"
)

type IUserDocumentRepository interface {
	AddRow(row *model.UserDocument) error
	AddRows(rows []model.UserDocument) error
	GetRow(rowId string) (*model.UserDocument, error)
	GetBySubmissionId(submissionId string) (*model.UserDocument, error)
	ListByUser(userId string) ([]model.UserDocument, error)
	ListByNewHire(newHireId string) ([]model.UserDocument, error)
	ListByTemplate(templateId string) ([]model.UserDocument, error)
	ListAll() ([]model.UserDocument, error)
	ListIncomplete() ([]model.UserDocument, error)
	UpdateFields(rowId string, fields map[string]interface{}) error
	ReassignToUser(rowId, userId string) error
	DeleteRow(rowId string) error
	DeleteByTemplate(templateId string) error
}

type UserDocumentRepo struct {
	Ctx      *ctx.Context
	rowModel model.UserDocument
}

func NewUserDocumentRepo(appCtx *ctx.Context) IUserDocumentRepository {
	return &UserDocumentRepo{
		Ctx:      appCtx,
		rowModel: model.UserDocument{},
	}
}

func (udr *UserDocumentRepo) AddRow(row *model.UserDocument) error {
	return udr.Ctx.GetDB().Table(udr.rowModel.TableName()).Create(row).Error
}

func (udr *UserDocumentRepo) AddRows(rows []model.UserDocument) error {
	if len(rows) == 0 {
		return nil
	}
	return udr.Ctx.GetDB().Table(udr.rowModel.TableName()).CreateInBatches(rows, 100).Error
}

func (udr *UserDocumentRepo) GetRow(rowId string) (*model.UserDocument, error) {
	var row = &model.UserDocument{}
	err := udr.Ctx.GetDB().Table(udr.rowModel.TableName()).
		Where("row_id = ?", rowId).
		First(row).Error
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (udr *UserDocumentRepo) GetBySubmissionId(submissionId string) (*model.UserDocument, error) {
	var row = &model.UserDocument{}
	err := udr.Ctx.GetDB().Table(udr.rowModel.TableName()).
		Where("submission_id = ?", submissionId).
		First(row).Error
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (udr *UserDocumentRepo) ListByUser(userId string) ([]model.UserDocument, error) {
	var rows []model.UserDocument
	err := udr.Ctx.GetDB().Table(udr.rowModel.TableName()).
		Where("user_id = ?", userId).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (udr *UserDocumentRepo) ListByNewHire(newHireId string) ([]model.UserDocument, error) {
	var rows []model.UserDocument
	err := udr.Ctx.GetDB().Table(udr.rowModel.TableName()).
		Where("new_hire_id = ?", newHireId).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (udr *UserDocumentRepo) ListByTemplate(templateId string) ([]model.UserDocument, error) {
	var rows []model.UserDocument
	err := udr.Ctx.GetDB().Table(udr.rowModel.TableName()).
		Where("template_id = ?", templateId).
		Find(&rows).Error
	return rows, err
}

func (udr *UserDocumentRepo) ListAll() ([]model.UserDocument, error) {
	var rows []model.UserDocument
	err := udr.Ctx.GetDB().Table(udr.rowModel.TableName()).Find(&rows).Error
	return rows, err
}

func (udr *UserDocumentRepo) ListIncomplete() ([]model.UserDocument, error) {
	var rows []model.UserDocument
	err := udr.Ctx.GetDB().Table(udr.rowModel.TableName()).
		Where("status NOT IN ?", []string{model.DocStatusCompleted, model.DocStatusDeclined}).
		Find(&rows).Error
	return rows, err
}

func (udr *UserDocumentRepo) UpdateFields(rowId string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	return udr.Ctx.GetDB().Table(udr.rowModel.TableName()).
		Where("row_id = ?", rowId).
		Updates(fields).Error
}

// ReassignToUser moves a new-hire row to a reconciled user account.
func (udr *UserDocumentRepo) ReassignToUser(rowId, userId string) error {
	return udr.Ctx.GetDB().Table(udr.rowModel.TableName()).
		Where("row_id = ?", rowId).
		Updates(map[string]interface{}{
			"user_id":     userId,
			"new_hire_id": "",
		}).Error
}

func (udr *UserDocumentRepo) DeleteRow(rowId string) error {
	return udr.Ctx.GetDB().Table(udr.rowModel.TableName()).
		Where("row_id = ?", rowId).
		Delete(&model.UserDocument{}).Error
}

func (udr *UserDocumentRepo) DeleteByTemplate(templateId string) error {
	return udr.Ctx.GetDB().Table(udr.rowModel.TableName()).
		Where("template_id = ?", templateId).
		Delete(&model.UserDocument{}).Error
}
