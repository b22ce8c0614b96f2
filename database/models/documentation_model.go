package models

import "github.com/google/uuid"

type DocumentationType string

const (
	DocumentationTypeReadme    DocumentationType = "readme"
	DocumentationTypeChangelog DocumentationType = "changelog"
	DocumentationTypeCustom    DocumentationType = "custom"
)

// Documentation is a markdown page attached to an app. The slug is unique
// within its app, not globally.
type Documentation struct {
	Model
	AppID   uuid.UUID         `json:"appId" gorm:"type:uuid;uniqueIndex:idx_doc_app_slug;not null;"`
	App     App               `json:"-" gorm:"foreignKey:AppID;references:ID;constraint:OnDelete:CASCADE;"`
	Title   string            `json:"title" gorm:"type:text;not null;"`
	Slug    string            `json:"slug" gorm:"type:text;uniqueIndex:idx_doc_app_slug;not null;"`
	Content string            `json:"content" gorm:"type:text;not null;"`
	Order   int               `json:"order" gorm:"column:order;type:integer;not null;default:0;"`
	Type    DocumentationType `json:"type" gorm:"type:text;not null;default:'custom';"`

	CreatedByID uuid.UUID `json:"createdById" gorm:"type:uuid;not null;"`
	CreatedBy   User      `json:"createdBy" gorm:"foreignKey:CreatedByID;references:ID;"`
}

func (m Documentation) TableName() string {
	return "documentations"
}
