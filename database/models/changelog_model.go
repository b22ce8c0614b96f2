package models

import (
	"time"

	"github.com/google/uuid"
)

// Changelog is one released version of an app with its markdown release notes.
type Changelog struct {
	Model
	AppID       uuid.UUID `json:"appId" gorm:"type:uuid;not null;index:idx_changelog_app_release;"`
	App         App       `json:"-" gorm:"foreignKey:AppID;references:ID;constraint:OnDelete:CASCADE;"`
	Version     string    `json:"version" gorm:"type:text;not null;"`
	Changes     string    `json:"changes" gorm:"type:text;not null;"`
	ReleaseDate time.Time `json:"releaseDate" gorm:"type:timestamp with time zone;not null;index:idx_changelog_app_release,sort:desc;"`

	CreatedByID uuid.UUID `json:"createdById" gorm:"type:uuid;not null;"`
	CreatedBy   User      `json:"createdBy" gorm:"foreignKey:CreatedByID;references:ID;"`
}

func (m Changelog) TableName() string {
	return "changelogs"
}
