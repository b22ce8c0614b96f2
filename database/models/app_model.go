package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type AppStatus string

const (
	AppStatusActive     AppStatus = "Active"
	AppStatusDeprecated AppStatus = "Deprecated"
	AppStatusInternal   AppStatus = "Internal"
)

// App is the root catalog entity: one custom application built for a client.
type App struct {
	Model
	Name           string         `json:"name" gorm:"type:text;not null;"`
	ClientName     string         `json:"clientName" gorm:"type:text;not null;"`
	Description    string         `json:"description" gorm:"type:text;not null;"`
	GithubRepoURL  *string        `json:"githubRepoUrl" gorm:"type:text;"`
	FrappeCloudURL *string        `json:"frappeCloudUrl" gorm:"type:text;"`
	Version        string         `json:"version" gorm:"type:text;not null;default:'1.0.0';"`
	Tags           pq.StringArray `json:"tags" gorm:"type:text[];"`
	Status         AppStatus      `json:"status" gorm:"type:text;not null;default:'Active';"`

	// metadata mirrored from the linked github repository
	RepoName   *string        `json:"repoName" gorm:"type:text;"`
	RepoOwner  *string        `json:"repoOwner" gorm:"type:text;"`
	Stars      *int           `json:"stars" gorm:"type:integer;"`
	LastCommit *time.Time     `json:"lastCommit" gorm:"type:timestamp with time zone;"`
	Branches   pq.StringArray `json:"branches" gorm:"type:text[];"`
	Readme     *string        `json:"readme" gorm:"type:text;"`

	CreatedByID uuid.UUID `json:"createdById" gorm:"type:uuid;not null;"`
	CreatedBy   User      `json:"createdBy" gorm:"foreignKey:CreatedByID;references:ID;"`
}

func (m App) TableName() string {
	return "apps"
}
