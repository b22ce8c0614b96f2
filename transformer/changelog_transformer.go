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

package transformer

import (
	"time"

	"github.com/craftbase/appcatalog/database/models"
	"github.com/craftbase/appcatalog/dtos"
	"github.com/craftbase/appcatalog/utils"
	"github.com/google/uuid"
)

func ChangelogCreateRequestToModel(req dtos.ChangelogCreateRequest, appID, creatorID uuid.UUID) models.Changelog {
	return models.Changelog{
		AppID:       appID,
		Version:     req.Version,
		Changes:     req.Changes,
		ReleaseDate: utils.OrDefault(req.ReleaseDate, time.Now()),
		CreatedByID: creatorID,
	}
}

func ApplyChangelogPatchRequestToModel(patch dtos.ChangelogPatchRequest, entry *models.Changelog) bool {
	updated := false

	if patch.Version != nil {
		entry.Version = *patch.Version
		updated = true
	}
	if patch.Changes != nil {
		entry.Changes = *patch.Changes
		updated = true
	}
	if patch.ReleaseDate != nil {
		entry.ReleaseDate = *patch.ReleaseDate
		updated = true
	}

	return updated
}
