package model

type DocumentCategory struct {
	BaseModel
	CategoryId string `gorm:"column:category_id" json:"categoryId"`
	Name       string `gorm:"column:name" json:"name"`
	SortOrder  int    `gorm:"column:sort_order" json:"sortOrder"`
}

func (DocumentCategory) TableName() string {
	return "t_document_category"
}

// DocumentTemplate is a signable document definition linked to a template
// on the external e-signature provider.
type DocumentTemplate struct {
	BaseModel
	TemplateId string `gorm:"column:template_id" json:"templateId"`
	CategoryId string `gorm:"column:category_id" json:"categoryId"`
	Title      string `gorm:"column:title" json:"title"`
	IsRequired bool   `gorm:"column:is_required" json:"isRequired"`
	// Days before the due date at which reminders start.
	ReminderDays int `gorm:"column:reminder_days" json:"reminderDays"`
	// Days after row creation until the document expires. 0 means never.
	ExpiryDays int `gorm:"column:expiry_days" json:"expiryDays"`
	// Identifier of the template on the signing provider.
	ProviderTemplateId string `gorm:"column:provider_template_id" json:"providerTemplateId"`
}

func (DocumentTemplate) TableName() string {
	return "t_document_template"
}

type AddTemplateReq struct {
	CategoryId         string `json:"categoryId"`
	Title              string `json:"title"`
	IsRequired         bool   `json:"isRequired"`
	ReminderDays       int    `json:"reminderDays"`
	ExpiryDays         int    `json:"expiryDays"`
	ProviderTemplateId string `json:"providerTemplateId"`
}
