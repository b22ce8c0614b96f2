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
package testutils

import (
	"sort"
	"strings"

	"github.com/craftbase/appcatalog/database/models"
	"github.com/craftbase/appcatalog/dtos"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InMemAppRepository implements shared.AppRepository on a slice.
type InMemAppRepository struct {
	Apps []models.App
}

func NewInMemAppRepository() *InMemAppRepository {
	return &InMemAppRepository{}
}

func (r *InMemAppRepository) Read(id uuid.UUID) (models.App, error) {
	for _, app := range r.Apps {
		if app.ID == id {
			return app, nil
		}
	}
	return models.App{}, gorm.ErrRecordNotFound
}

func (r *InMemAppRepository) ReadWithCreator(id uuid.UUID) (models.App, error) {
	return r.Read(id)
}

func (r *InMemAppRepository) ListFiltered(filter dtos.AppFilter) ([]models.App, error) {
	result := make([]models.App, 0)
	for _, app := range r.Apps {
		if filter.Status != "" && string(app.Status) != filter.Status {
			continue
		}
		if filter.ClientName != "" && !strings.Contains(strings.ToLower(app.ClientName), strings.ToLower(filter.ClientName)) {
			continue
		}
		if len(filter.Tags) > 0 && !overlaps(app.Tags, filter.Tags) {
			continue
		}
		result = append(result, app)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})
	return result, nil
}

// overlaps mirrors the postgres && array operator: any shared element counts.
func overlaps(have []string, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}

func (r *InMemAppRepository) Search(search string) ([]models.App, error) {
	result := make([]models.App, 0)
	needle := strings.ToLower(search)
	for _, app := range r.Apps {
		if strings.Contains(strings.ToLower(app.Name), needle) ||
			strings.Contains(strings.ToLower(app.Description), needle) ||
			strings.Contains(strings.ToLower(app.ClientName), needle) {
			result = append(result, app)
		}
	}
	return result, nil
}

func (r *InMemAppRepository) Create(tx *gorm.DB, app *models.App) error {
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	r.Apps = append(r.Apps, *app)
	return nil
}

func (r *InMemAppRepository) Save(tx *gorm.DB, app *models.App) error {
	for i, existing := range r.Apps {
		if existing.ID == app.ID {
			r.Apps[i] = *app
			return nil
		}
	}
	r.Apps = append(r.Apps, *app)
	return nil
}

func (r *InMemAppRepository) Delete(tx *gorm.DB, id uuid.UUID) error {
	for i, existing := range r.Apps {
		if existing.ID == id {
			r.Apps = append(r.Apps[:i], r.Apps[i+1:]...)
			return nil
		}
	}
	return nil
}

// InMemDocRepository implements shared.DocumentationRepository on a slice.
type InMemDocRepository struct {
	Docs []models.Documentation
}

func NewInMemDocRepository() *InMemDocRepository {
	return &InMemDocRepository{}
}

func (r *InMemDocRepository) ListByApp(appID uuid.UUID) ([]models.Documentation, error) {
	result := make([]models.Documentation, 0)
	for _, doc := range r.Docs {
		if doc.AppID == appID {
			result = append(result, doc)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Order < result[j].Order
	})
	return result, nil
}

func (r *InMemDocRepository) ReadForApp(appID, docID uuid.UUID) (models.Documentation, error) {
	for _, doc := range r.Docs {
		if doc.AppID == appID && doc.ID == docID {
			return doc, nil
		}
	}
	return models.Documentation{}, gorm.ErrRecordNotFound
}

func (r *InMemDocRepository) Search(search string) ([]models.Documentation, error) {
	result := make([]models.Documentation, 0)
	needle := strings.ToLower(search)
	for _, doc := range r.Docs {
		if strings.Contains(strings.ToLower(doc.Title), needle) ||
			strings.Contains(strings.ToLower(doc.Content), needle) {
			result = append(result, doc)
		}
	}
	return result, nil
}

func (r *InMemDocRepository) Create(tx *gorm.DB, doc *models.Documentation) error {
	for _, existing := range r.Docs {
		if existing.AppID == doc.AppID && existing.Slug == doc.Slug {
			return gorm.ErrDuplicatedKey
		}
	}
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	r.Docs = append(r.Docs, *doc)
	return nil
}

func (r *InMemDocRepository) Save(tx *gorm.DB, doc *models.Documentation) error {
	for i, existing := range r.Docs {
		if existing.ID == doc.ID {
			r.Docs[i] = *doc
			return nil
		}
	}
	r.Docs = append(r.Docs, *doc)
	return nil
}

func (r *InMemDocRepository) Delete(tx *gorm.DB, id uuid.UUID) error {
	for i, existing := range r.Docs {
		if existing.ID == id {
			r.Docs = append(r.Docs[:i], r.Docs[i+1:]...)
			return nil
		}
	}
	return nil
}

// InMemChangelogRepository implements shared.ChangelogRepository on a slice.
type InMemChangelogRepository struct {
	Entries []models.Changelog
}

func NewInMemChangelogRepository() *InMemChangelogRepository {
	return &InMemChangelogRepository{}
}

func (r *InMemChangelogRepository) ListByApp(appID uuid.UUID) ([]models.Changelog, error) {
	result := make([]models.Changelog, 0)
	for _, entry := range r.Entries {
		if entry.AppID == appID {
			result = append(result, entry)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].ReleaseDate.After(result[j].ReleaseDate)
	})
	return result, nil
}

func (r *InMemChangelogRepository) ReadForApp(appID, changelogID uuid.UUID) (models.Changelog, error) {
	for _, entry := range r.Entries {
		if entry.AppID == appID && entry.ID == changelogID {
			return entry, nil
		}
	}
	return models.Changelog{}, gorm.ErrRecordNotFound
}

func (r *InMemChangelogRepository) Create(tx *gorm.DB, entry *models.Changelog) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	r.Entries = append(r.Entries, *entry)
	return nil
}

func (r *InMemChangelogRepository) Save(tx *gorm.DB, entry *models.Changelog) error {
	for i, existing := range r.Entries {
		if existing.ID == entry.ID {
			r.Entries[i] = *entry
			return nil
		}
	}
	r.Entries = append(r.Entries, *entry)
	return nil
}

func (r *InMemChangelogRepository) Delete(tx *gorm.DB, id uuid.UUID) error {
	for i, existing := range r.Entries {
		if existing.ID == id {
			r.Entries = append(r.Entries[:i], r.Entries[i+1:]...)
			return nil
		}
	}
	return nil
}

// InMemAttachmentRepository implements shared.AttachmentRepository on a slice.
type InMemAttachmentRepository struct {
	Attachments []models.Attachment
}

func NewInMemAttachmentRepository() *InMemAttachmentRepository {
	return &InMemAttachmentRepository{}
}

func (r *InMemAttachmentRepository) ListByApp(appID uuid.UUID) ([]models.Attachment, error) {
	result := make([]models.Attachment, 0)
	for _, attachment := range r.Attachments {
		if attachment.AppID == appID {
			result = append(result, attachment)
		}
	}
	return result, nil
}

func (r *InMemAttachmentRepository) ReadForApp(appID, attachmentID uuid.UUID) (models.Attachment, error) {
	for _, attachment := range r.Attachments {
		if attachment.AppID == appID && attachment.ID == attachmentID {
			return attachment, nil
		}
	}
	return models.Attachment{}, gorm.ErrRecordNotFound
}

func (r *InMemAttachmentRepository) Create(tx *gorm.DB, attachment *models.Attachment) error {
	if attachment.ID == uuid.Nil {
		attachment.ID = uuid.New()
	}
	r.Attachments = append(r.Attachments, *attachment)
	return nil
}

func (r *InMemAttachmentRepository) Delete(tx *gorm.DB, id uuid.UUID) error {
	for i, existing := range r.Attachments {
		if existing.ID == id {
			r.Attachments = append(r.Attachments[:i], r.Attachments[i+1:]...)
			return nil
		}
	}
	return nil
}

// InMemUserRepository implements shared.UserRepository on a slice.
type InMemUserRepository struct {
	Users []models.User
}

func NewInMemUserRepository() *InMemUserRepository {
	return &InMemUserRepository{}
}

func (r *InMemUserRepository) Read(id uuid.UUID) (models.User, error) {
	for _, user := range r.Users {
		if user.ID == id {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (r *InMemUserRepository) FindByEmail(email string) (models.User, error) {
	for _, user := range r.Users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (r *InMemUserRepository) ExistsByEmail(email string) (bool, error) {
	_, err := r.FindByEmail(email)
	return err == nil, nil
}

func (r *InMemUserRepository) Create(tx *gorm.DB, user *models.User) error {
	if exists, _ := r.ExistsByEmail(user.Email); exists {
		return gorm.ErrDuplicatedKey
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.Users = append(r.Users, *user)
	return nil
}
