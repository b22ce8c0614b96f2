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
	"github.com/craftbase/appcatalog/dtos"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type AppRepository struct {
	*GormRepository[uuid.UUID, models.App]
	db *gorm.DB
}

func NewAppRepository(db *gorm.DB) *AppRepository {
	return &AppRepository{
		GormRepository: newGormRepository[uuid.UUID, models.App](db),
		db:             db,
	}
}

// ReadWithCreator loads an app joined with its creator for display.
func (r *AppRepository) ReadWithCreator(id uuid.UUID) (models.App, error) {
	var app models.App
	err := r.db.Preload("CreatedBy").First(&app, "id = ?", id).Error
	return app, err
}

// ListFiltered returns apps matching the filter, most recently updated first.
func (r *AppRepository) ListFiltered(filter dtos.AppFilter) ([]models.App, error) {
	query := r.db.Preload("CreatedBy").Order("updated_at DESC")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if filter.ClientName != "" {
		query = query.Where("client_name ILIKE ?", "%"+filter.ClientName+"%")
	}

	if len(filter.Tags) > 0 {
		query = query.Where("tags && ?", pq.Array(filter.Tags))
	}

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("(name ILIKE ? OR description ILIKE ? OR client_name ILIKE ?)", like, like, like)
	}

	var apps []models.App
	err := query.Find(&apps).Error
	return apps, err
}

// Search spans name, description, client name and tags with OR semantics.
// Capped at 20 results, most recently updated first.
func (r *AppRepository) Search(search string) ([]models.App, error) {
	like := "%" + search + "%"

	var apps []models.App
	err := r.db.Preload("CreatedBy").
		Where("(name ILIKE ? OR description ILIKE ? OR client_name ILIKE ? OR EXISTS (SELECT 1 FROM unnest(tags) AS tag WHERE tag ILIKE ?))", like, like, like, like).
		Order("updated_at DESC").
		Limit(20).
		Find(&apps).Error
	return apps, err
}
