package repo

import (
	"github.com/careconnect-hq/careconnect/internal/admin/model"
	"github.com/careconnect-hq/careconnect/pkg/ctx"
)

type INewHireRepository interface {
	AddNewHire(n *model.NewHire) error
	GetNewHire(newHireId string) (*model.NewHire, error)
	ListActive() ([]model.NewHire, error)
	ListNewHires(offset, pageSize int, includeInactive bool) ([]model.NewHire, int64, error)
	UpdateNewHire(newHireId string, n *model.NewHire) error
	Deactivate(newHireId string) error
}

type NewHireRepo struct {
	Ctx          *ctx.Context
	newHireModel model.NewHire
}

func NewNewHireRepo(appCtx *ctx.Context) INewHireRepository {
	return &NewHireRepo{
		Ctx:          appCtx,
		newHireModel: model.NewHire{},
	}
}

func (nr *NewHireRepo) AddNewHire(n *model.NewHire) error {
	return nr.Ctx.GetDB().Table(nr.newHireModel.TableName()).Create(n).Error
}

func (nr *NewHireRepo) GetNewHire(newHireId string) (*model.NewHire, error) {
	var n = &model.NewHire{}
	err := nr.Ctx.GetDB().Table(nr.newHireModel.TableName()).
		Where("new_hire_id = ?", newHireId).
		First(n).Error
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (nr *NewHireRepo) ListActive() ([]model.NewHire, error) {
	var hires []model.NewHire
	err := nr.Ctx.GetDB().Table(nr.newHireModel.TableName()).
		Where("is_active = ?", true).
		Find(&hires).Error
	return hires, err
}

func (nr *NewHireRepo) ListNewHires(offset, pageSize int, includeInactive bool) ([]model.NewHire, int64, error) {
	var hires []model.NewHire

	countTx := nr.Ctx.GetDB().Table(nr.newHireModel.TableName())
	tx := nr.Ctx.GetDB().Table(nr.newHireModel.TableName())
	if !includeInactive {
		countTx = countTx.Where("is_active = ?", true)
		tx = tx.Where("is_active = ?", true)
	}

	count, err := Count(countTx)
	if err != nil {
		return nil, 0, err
	}

	err = tx.Offset(offset).
		Limit(pageSize).
		Order("created_at DESC").
		Find(&hires).Error
	if err != nil {
		return nil, 0, err
	}
	return hires, count, nil
}

func (nr *NewHireRepo) UpdateNewHire(newHireId string, n *model.NewHire) error {
	return nr.Ctx.GetDB().Table(nr.newHireModel.TableName()).
		Where("new_hire_id = ?", newHireId).
		Omit("new_hire_id", "created_at").
		Updates(n).Error
}

func (nr *NewHireRepo) Deactivate(newHireId string) error {
	return nr.Ctx.GetDB().Table(nr.newHireModel.TableName()).
		Where("new_hire_id = ?", newHireId).
		Update("is_active", false).Error
}
