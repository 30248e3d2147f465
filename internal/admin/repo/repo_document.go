package repo

import (
	"github.com/careconnect-hq/careconnect/internal/admin/model"
	"github.com/careconnect-hq/careconnect/pkg/ctx"
)

type IDocumentRepository interface {
	AddCategory(c *model.DocumentCategory) error
	ListCategories() ([]model.DocumentCategory, error)
	UpdateCategory(categoryId string, c *model.DocumentCategory) error
	DeleteCategory(categoryId string) error

	AddTemplate(t *model.DocumentTemplate) error
	GetTemplate(templateId string) (*model.DocumentTemplate, error)
	GetTemplateByProviderId(providerTemplateId string) (*model.DocumentTemplate, error)
	ListTemplates() ([]model.DocumentTemplate, error)
	ListRequiredTemplates() ([]model.DocumentTemplate, error)
	UpdateTemplate(templateId string, t *model.DocumentTemplate) error
	DeleteTemplate(templateId string) error
}

type DocumentRepo struct {
	Ctx           *ctx.Context
	categoryModel model.DocumentCategory
	templateModel model.DocumentTemplate
}

func NewDocumentRepo(appCtx *ctx.Context) IDocumentRepository {
	return &DocumentRepo{
		Ctx:           appCtx,
		categoryModel: model.DocumentCategory{},
		templateModel: model.DocumentTemplate{},
	}
}

func (dr *DocumentRepo) AddCategory(c *model.DocumentCategory) error {
	return dr.Ctx.GetDB().Table(dr.categoryModel.TableName()).Create(c).Error
}

func (dr *DocumentRepo) ListCategories() ([]model.DocumentCategory, error) {
	var categories []model.DocumentCategory
	err := dr.Ctx.GetDB().Table(dr.categoryModel.TableName()).
		Order("sort_order ASC, created_at ASC").
		Find(&categories).Error
	return categories, err
}

func (dr *DocumentRepo) UpdateCategory(categoryId string, c *model.DocumentCategory) error {
	return dr.Ctx.GetDB().Table(dr.categoryModel.TableName()).
		Where("category_id = ?", categoryId).
		Omit("category_id", "created_at").
		Updates(c).Error
}

func (dr *DocumentRepo) DeleteCategory(categoryId string) error {
	return dr.Ctx.GetDB().Table(dr.categoryModel.TableName()).
		Where("category_id = ?", categoryId).
		Delete(&model.DocumentCategory{}).Error
}

func (dr *DocumentRepo) AddTemplate(t *model.DocumentTemplate) error {
	return dr.Ctx.GetDB().Table(dr.templateModel.TableName()).Create(t).Error
}

func (dr *DocumentRepo) GetTemplate(templateId string) (*model.DocumentTemplate, error) {
	var t = &model.DocumentTemplate{}
	err := dr.Ctx.GetDB().Table(dr.templateModel.TableName()).
		Where("template_id = ?", templateId).
		First(t).Error
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (dr *DocumentRepo) GetTemplateByProviderId(providerTemplateId string) (*model.DocumentTemplate, error) {
	var t = &model.DocumentTemplate{}
	err := dr.Ctx.GetDB().Table(dr.templateModel.TableName()).
		Where("provider_template_id = ?", providerTemplateId).
		First(t).Error
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (dr *DocumentRepo) ListTemplates() ([]model.DocumentTemplate, error) {
	var templates []model.DocumentTemplate
	err := dr.Ctx.GetDB().Table(dr.templateModel.TableName()).
		Order("created_at ASC").
		Find(&templates).Error
	return templates, err
}

func (dr *DocumentRepo) ListRequiredTemplates() ([]model.DocumentTemplate, error) {
	var templates []model.DocumentTemplate
	err := dr.Ctx.GetDB().Table(dr.templateModel.TableName()).
		Where("is_required = ?", true).
		Find(&templates).Error
	return templates, err
}

func (dr *DocumentRepo) UpdateTemplate(templateId string, t *model.DocumentTemplate) error {
	return dr.Ctx.GetDB().Table(dr.templateModel.TableName()).
		Where("template_id = ?", templateId).
		Omit("template_id", "created_at").
		Updates(t).Error
}

func (dr *DocumentRepo) DeleteTemplate(templateId string) error {
	return dr.Ctx.GetDB().Table(dr.templateModel.TableName()).
		Where("template_id = ?", templateId).
		Delete(&model.DocumentTemplate{}).Error
}
