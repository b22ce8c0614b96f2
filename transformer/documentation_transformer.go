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
	"errors"
	"strings"

	"github.com/craftbase/appcatalog/database/models"
	"github.com/craftbase/appcatalog/dtos"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// ErrNotSluggable is returned when a title yields no usable page slug.
var ErrNotSluggable = errors.New("title does not reduce to a slug")

func DocCreateRequestToModel(req dtos.DocCreateRequest, appID, creatorID uuid.UUID) (models.Documentation, error) {
	pageSlug := req.Slug
	if pageSlug == "" {
		// slug.Make keeps underscores, page slugs allow hyphens only
		pageSlug = strings.ReplaceAll(slug.Make(req.Title), "_", "-")
		if pageSlug == "" {
			return models.Documentation{}, ErrNotSluggable
		}
	}

	docType := models.DocumentationType(req.Type)
	if docType == "" {
		docType = models.DocumentationTypeCustom
	}

	return models.Documentation{
		AppID:       appID,
		Title:       req.Title,
		Slug:        pageSlug,
		Content:     req.Content,
		Order:       req.Order,
		Type:        docType,
		CreatedByID: creatorID,
	}, nil
}

func ApplyDocPatchRequestToModel(patch dtos.DocPatchRequest, doc *models.Documentation) bool {
	updated := false

	if patch.Title != nil {
		doc.Title = *patch.Title
		updated = true
	}
	if patch.Slug != nil {
		doc.Slug = *patch.Slug
		updated = true
	}
	if patch.Content != nil {
		doc.Content = *patch.Content
		updated = true
	}
	if patch.Order != nil {
		doc.Order = *patch.Order
		updated = true
	}
	if patch.Type != nil {
		doc.Type = models.DocumentationType(*patch.Type)
		updated = true
	}

	return updated
}
