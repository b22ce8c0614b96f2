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

package controllers

import (
	"errors"
	"net/http"

	"github.com/craftbase/appcatalog/dtos"
	"github.com/craftbase/appcatalog/githubint"
	"github.com/craftbase/appcatalog/shared"
	"github.com/labstack/echo/v4"
)

type GithubController struct {
	fetcher shared.RepoMetadataFetcher
}

func NewGithubController(fetcher shared.RepoMetadataFetcher) *GithubController {
	return &GithubController{
		fetcher: fetcher,
	}
}

func (c *GithubController) Fetch(ctx shared.Context) error {
	var req dtos.GithubFetchRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to process request").WithInternal(err)
	}

	if err := shared.ValidateStruct(req); err != nil {
		return err
	}

	metadata, err := c.fetcher.FetchRepoMetadata(ctx.Request().Context(), req.RepoURL)
	if err != nil {
		if errors.Is(err, githubint.ErrInvalidRepoURL) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid github repository url").WithInternal(err)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not fetch repository metadata").WithInternal(err)
	}

	return ctx.JSON(http.StatusOK, metadata)
}
