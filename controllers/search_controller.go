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
	"net/http"

	"github.com/craftbase/appcatalog/shared"
	"github.com/labstack/echo/v4"
)

type SearchController struct {
	appRepository shared.AppRepository
	docRepository shared.DocumentationRepository
}

func NewSearchController(appRepository shared.AppRepository, docRepository shared.DocumentationRepository) *SearchController {
	return &SearchController{
		appRepository: appRepository,
		docRepository: docRepository,
	}
}

func (c *SearchController) Search(ctx shared.Context) error {
	query := ctx.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query parameter q is required")
	}

	searchType := ctx.QueryParam("type")
	switch searchType {
	case "", "apps":
		apps, err := c.appRepository.Search(query)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "could not search apps").WithInternal(err)
		}
		return ctx.JSON(http.StatusOK, echo.Map{"type": "apps", "query": query, "results": apps})
	case "docs":
		docs, err := c.docRepository.Search(query)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "could not search documentation").WithInternal(err)
		}
		return ctx.JSON(http.StatusOK, echo.Map{"type": "docs", "query": query, "results": docs})
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "type must be apps or docs")
	}
}
