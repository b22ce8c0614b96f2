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
	"github.com/craftbase/appcatalog/database/models"
	"github.com/craftbase/appcatalog/dtos"
	"github.com/craftbase/appcatalog/utils"
	"github.com/google/uuid"
)

func AppCreateRequestToModel(req dtos.AppCreateRequest, creatorID uuid.UUID) models.App {
	status := models.AppStatus(req.Status)
	if status == "" {
		status = models.AppStatusActive
	}

	version := req.Version
	if version == "" {
		version = "1.0.0"
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	return models.App{
		Name:           req.Name,
		ClientName:     req.ClientName,
		Description:    req.Description,
		GithubRepoURL:  utils.EmptyThenNil(req.GithubRepoURL),
		FrappeCloudURL: utils.EmptyThenNil(req.FrappeCloudURL),
		Version:        version,
		Tags:           tags,
		Status:         status,

		RepoName:   utils.EmptyThenNil(req.RepoName),
		RepoOwner:  utils.EmptyThenNil(req.RepoOwner),
		Stars:      req.Stars,
		LastCommit: req.LastCommit,
		Branches:   req.Branches,
		Readme:     utils.EmptyThenNil(req.Readme),

		CreatedByID: creatorID,
	}
}

// ApplyAppPatchRequestToModel overwrites exactly the fields present in the
// patch and reports whether anything changed.
func ApplyAppPatchRequestToModel(patch dtos.AppPatchRequest, app *models.App) bool {
	updated := false

	if patch.Name != nil {
		app.Name = *patch.Name
		updated = true
	}
	if patch.ClientName != nil {
		app.ClientName = *patch.ClientName
		updated = true
	}
	if patch.Description != nil {
		app.Description = *patch.Description
		updated = true
	}
	if patch.GithubRepoURL != nil {
		app.GithubRepoURL = utils.EmptyThenNil(*patch.GithubRepoURL)
		updated = true
	}
	if patch.FrappeCloudURL != nil {
		app.FrappeCloudURL = utils.EmptyThenNil(*patch.FrappeCloudURL)
		updated = true
	}
	if patch.Version != nil {
		app.Version = *patch.Version
		updated = true
	}
	if patch.Tags != nil {
		app.Tags = *patch.Tags
		updated = true
	}
	if patch.Status != nil {
		app.Status = models.AppStatus(*patch.Status)
		updated = true
	}
	if patch.RepoName != nil {
		app.RepoName = utils.EmptyThenNil(*patch.RepoName)
		updated = true
	}
	if patch.RepoOwner != nil {
		app.RepoOwner = utils.EmptyThenNil(*patch.RepoOwner)
		updated = true
	}
	if patch.Stars != nil {
		app.Stars = patch.Stars
		updated = true
	}
	if patch.LastCommit != nil {
		app.LastCommit = patch.LastCommit
		updated = true
	}
	if patch.Branches != nil {
		app.Branches = *patch.Branches
		updated = true
	}
	if patch.Readme != nil {
		app.Readme = utils.EmptyThenNil(*patch.Readme)
		updated = true
	}

	return updated
}
