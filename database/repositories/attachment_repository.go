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

type AttachmentRepository struct {
	*GormRepository[uuid.UUID, models.Attachment]
	db *gorm.DB
}

func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{
		GormRepository: newGormRepository[uuid.UUID, models.Attachment](db),
		db:             db,
	}
}

// ListByApp returns all attachments of an app, newest upload first.
func (r *AttachmentRepository) ListByApp(appID uuid.UUID) ([]models.Attachment, error) {
	var attachments []models.Attachment
	err := r.db.Preload("UploadedBy").
		Where("app_id = ?", appID).
		Order("uploaded_at DESC").
		Find(&attachments).Error
	return attachments, err
}

func (r *AttachmentRepository) ReadForApp(appID, attachmentID uuid.UUID) (models.Attachment, error) {
	var attachment models.Attachment
	err := r.db.Preload("UploadedBy").
		First(&attachment, "id = ? AND app_id = ?", attachmentID, appID).Error
	return attachment, err
}
