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

package repositories

import (
	"github.com/craftbase/appcatalog/database/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentationRepository struct {
	*GormRepository[uuid.UUID, models.Documentation]
	db *gorm.DB
}

func NewDocumentationRepository(db *gorm.DB) *DocumentationRepository {
	return &DocumentationRepository{
		GormRepository: newGormRepository[uuid.UUID, models.Documentation](db),
		db:             db,
	}
}

// ListByApp returns all pages of an app in display order: explicit order
// first, creation time as tie breaker.
func (r *DocumentationRepository) ListByApp(appID uuid.UUID) ([]models.Documentation, error) {
	var docs []models.Documentation
	err := r.db.Preload("CreatedBy").
		Where("app_id = ?", appID).
		Order(`"order" ASC, created_at ASC`).
		Find(&docs).Error
	return docs, err
}

// ReadForApp loads a single page, scoped to its app so a doc id from another
// app resolves to not found.
func (r *DocumentationRepository) ReadForApp(appID, docID uuid.UUID) (models.Documentation, error) {
	var doc models.Documentation
	err := r.db.Preload("CreatedBy").
		First(&doc, "id = ? AND app_id = ?", docID, appID).Error
	return doc, err
}

// Search spans title and content with OR semantics, joined with the owning
// app for display. Capped at 20 results.
func (r *DocumentationRepository) Search(search string) ([]models.Documentation, error) {
	like := "%" + search + "%"

	var docs []models.Documentation
	err := r.db.Preload("App").Preload("CreatedBy").
		Where("(title ILIKE ? OR content ILIKE ?)", like, like).
		Order("updated_at DESC").
		Limit(20).
		Find(&docs).Error
	return docs, err
}
