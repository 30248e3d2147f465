package repo

import (
	"gorm.io/gorm"

	"github.com/careconnect-hq/careconnect/internal/admin/model"
	"github.com/careconnect-hq/careconnect/pkg/ctx"
)

type IResourceRepository interface {
	AddResource(r *model.Resource) error
	GetResource(resourceId string) (*model.Resource, error)
	ListResources(category string, offset, pageSize int) ([]model.Resource, int64, error)
	UpdateResource(resourceId string, r *model.Resource) error
	IncrementDownloadCount(resourceId string) error
	DeleteResource(resourceId string) error
}

type ResourceRepo struct {
	Ctx           *ctx.Context
	resourceModel model.Resource
}

func NewResourceRepo(appCtx *ctx.Context) IResourceRepository {
	return &ResourceRepo{
		Ctx:           appCtx,
		resourceModel: model.Resource{},
	}
}

func (rr *ResourceRepo) AddResource(r *model.Resource) error {
	return rr.Ctx.GetDB().Table(rr.resourceModel.TableName()).Create(r).Error
}

func (rr *ResourceRepo) GetResource(resourceId string) (*model.Resource, error) {
	var r = &model.Resource{}
	err := rr.Ctx.GetDB().Table(rr.resourceModel.TableName()).
		Where("resource_id = ?", resourceId).
		First(r).Error
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (rr *ResourceRepo) ListResources(category string, offset, pageSize int) ([]model.Resource, int64, error) {
	var resources []model.Resource

	countTx := rr.Ctx.GetDB().Table(rr.resourceModel.TableName())
	tx := rr.Ctx.GetDB().Table(rr.resourceModel.TableName())
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
		Find(&resources).Error
	if err != nil {
		return nil, 0, err
	}
	return resources, count, nil
}

func (rr *ResourceRepo) UpdateResource(resourceId string, r *model.Resource) error {
	return rr.Ctx.GetDB().Table(rr.resourceModel.TableName()).
		Where("resource_id = ?", resourceId).
		Omit("resource_id", "download_count", "created_at").
		Updates(r).Error
}

func (rr *ResourceRepo) IncrementDownloadCount(resourceId string) error {
	return rr.Ctx.GetDB().Table(rr.resourceModel.TableName()).
		Where("resource_id = ?", resourceId).
		UpdateColumn("download_count", gorm.Expr("download_count + 1")).Error
}

func (rr *ResourceRepo) DeleteResource(resourceId string) error {
	return rr.Ctx.GetDB().Table(rr.resourceModel.TableName()).
		Where("resource_id = ?", resourceId).
		Delete(&model.Resource{}).Error
}
