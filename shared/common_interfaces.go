// Copyright (C) 2025 Craftbase GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package shared

import (
	"context"
	"io"

	"github.com/craftbase/appcatalog/database/models"
	"github.com/craftbase/appcatalog/dtos"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppRepository interface {
	Read(id uuid.UUID) (models.App, error)
	ReadWithCreator(id uuid.UUID) (models.App, error)
	ListFiltered(filter dtos.AppFilter) ([]models.App, error)
	Search(search string) ([]models.App, error)
	Create(tx *gorm.DB, app *models.App) error
	Save(tx *gorm.DB, app *models.App) error
	Delete(tx *gorm.DB, id uuid.UUID) error
}

type DocumentationRepository interface {
	ListByApp(appID uuid.UUID) ([]models.Documentation, error)
	ReadForApp(appID, docID uuid.UUID) (models.Documentation, error)
	Search(search string) ([]models.Documentation, error)
	Create(tx *gorm.DB, doc *models.Documentation) error
	Save(tx *gorm.DB, doc *models.Documentation) error
	Delete(tx *gorm.DB, id uuid.UUID) error
}

type ChangelogRepository interface {
	ListByApp(appID uuid.UUID) ([]models.Changelog, error)
	ReadForApp(appID, changelogID uuid.UUID) (models.Changelog, error)
	Create(tx *gorm.DB, entry *models.Changelog) error
	Save(tx *gorm.DB, entry *models.Changelog) error
	Delete(tx *gorm.DB, id uuid.UUID) error
}

type AttachmentRepository interface {
	ListByApp(appID uuid.UUID) ([]models.Attachment, error)
	ReadForApp(appID, attachmentID uuid.UUID) (models.Attachment, error)
	Create(tx *gorm.DB, attachment *models.Attachment) error
	Delete(tx *gorm.DB, id uuid.UUID) error
}

type UserRepository interface {
	Read(id uuid.UUID) (models.User, error)
	FindByEmail(email string) (models.User, error)
	ExistsByEmail(email string) (bool, error)
	Create(tx *gorm.DB, user *models.User) error
}

// FileStorage is the capability the upload path depends on: given bytes and
// a name, produce a durable url. Backends do not clean up partial writes.
type FileStorage interface {
	Store(ctx context.Context, name string, contentType string, content io.Reader) (string, error)
}

// RepoMetadataFetcher resolves a repository url to its flattened metadata.
type RepoMetadataFetcher interface {
	FetchRepoMetadata(ctx context.Context, repoURL string) (dtos.RepoMetadata, error)
}
