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

type ChangelogRepository struct {
	*GormRepository[uuid.UUID, models.Changelog]
	db *gorm.DB
}

func NewChangelogRepository(db *gorm.DB) *ChangelogRepository {
	return &ChangelogRepository{
		GormRepository: newGormRepository[uuid.UUID, models.Changelog](db),
		db:             db,
	}
}

// ListByApp returns all changelog entries of an app, latest release first.
func (r *ChangelogRepository) ListByApp(appID uuid.UUID) ([]models.Changelog, error) {
	var entries []models.Changelog
	err := r.db.Preload("CreatedBy").
		Where("app_id = ?", appID).
		Order("release_date DESC").
		Find(&entries).Error
	return entries, err
}

func (r *ChangelogRepository) ReadForApp(appID, changelogID uuid.UUID) (models.Changelog, error) {
	var entry models.Changelog
	err := r.db.Preload("CreatedBy").
		First(&entry, "id = ? AND app_id = ?", changelogID, appID).Error
	return entry, err
}
