package model

// Resource kinds.
const (
	ResourceKindFile = "file"
	ResourceKindLink = "link"
)

// Resource is a shared document or external link in the resource library.
type Resource struct {
	BaseModel
	ResourceId  string `gorm:"column:resource_id" json:"resourceId"`
	Title       string `gorm:"column:title" json:"title"`
	Description string `gorm:"column:description" json:"description,omitempty"`
	Category    string `gorm:"column:category" json:"category,omitempty"`
	Tags        string `gorm:"column:tags" json:"tags,omitempty"`
	Kind        string `gorm:"column:kind;default:file" json:"kind"`

	// file resources
	FileUrl     string `gorm:"column:file_url" json:"fileUrl,omitempty"`
	FileName    string `gorm:"column:file_name" json:"fileName,omitempty"`
	ContentType string `gorm:"column:content_type" json:"contentType,omitempty"`
	FileSize    int64  `gorm:"column:file_size" json:"fileSize,omitempty"`

	// link resources
	LinkUrl string `gorm:"column:link_url" json:"linkUrl,omitempty"`

	DownloadCount int64  `gorm:"column:download_count" json:"downloadCount"`
	UploadedBy    string `gorm:"column:uploaded_by" json:"uploadedBy"`
}

func (Resource) TableName() string {
	return "t_resource"
}

type AddLinkResourceReq struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Tags        string `json:"tags"`
	LinkUrl     string `json:"linkUrl" validate:"required"`
}
