package models

import (
	"time"

	"github.com/google/uuid"
)

// Attachment is the database record of an uploaded file. Deleting the record
// does not remove the underlying stored object.
type Attachment struct {
	ID         uuid.UUID `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid()"`
	AppID      uuid.UUID `json:"appId" gorm:"type:uuid;not null;index;"`
	App        App       `json:"-" gorm:"foreignKey:AppID;references:ID;constraint:OnDelete:CASCADE;"`
	Filename   string    `json:"filename" gorm:"type:text;not null;"`
	FileURL    string    `json:"fileUrl" gorm:"type:text;not null;"`
	FileType   string    `json:"fileType" gorm:"type:text;not null;"`
	FileSize   int64     `json:"fileSize" gorm:"type:bigint;not null;"`
	UploadedAt time.Time `json:"uploadedAt" gorm:"autoCreateTime;"`

	UploadedByID uuid.UUID `json:"uploadedById" gorm:"type:uuid;not null;"`
	UploadedBy   User      `json:"uploadedBy" gorm:"foreignKey:UploadedByID;references:ID;"`
}

func (m Attachment) GetID() uuid.UUID {
	return m.ID
}

func (m Attachment) TableName() string {
	return "attachments"
}
