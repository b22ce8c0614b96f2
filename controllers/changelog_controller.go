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
	"github.com/craftbase/appcatalog/shared"
	"github.com/craftbase/appcatalog/transformer"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type ChangelogController struct {
	changelogRepository shared.ChangelogRepository
}

func NewChangelogController(changelogRepository shared.ChangelogRepository) *ChangelogController {
	return &ChangelogController{
		changelogRepository: changelogRepository,
	}
}

func (c *ChangelogController) List(ctx shared.Context) error {
	app := shared.GetApp(ctx)

	entries, err := c.changelogRepository.ListByApp(app.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list changelog entries").WithInternal(err)
	}

	return ctx.JSON(http.StatusOK, entries)
}

func (c *ChangelogController) Create(ctx shared.Context) error {
	app := shared.GetApp(ctx)

	var req dtos.ChangelogCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to process request").WithInternal(err)
	}

	if err := shared.ValidateStruct(req); err != nil {
		return err
	}

	entry := transformer.ChangelogCreateRequestToModel(req, app.ID, shared.GetSession(ctx).GetUserID())
	if err := c.changelogRepository.Create(nil, &entry); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not create changelog entry").WithInternal(err)
	}

	return ctx.JSON(http.StatusCreated, entry)
}

func (c *ChangelogController) Update(ctx shared.Context) error {
	app := shared.GetApp(ctx)

	entryID, err := shared.GetParamUUID(ctx, "entryID")
	if err != nil {
		return err
	}

	entry, err := c.changelogRepository.ReadForApp(app.ID, entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "changelog entry not found").WithInternal(err)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not read changelog entry").WithInternal(err)
	}

	var req dtos.ChangelogPatchRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to process request").WithInternal(err)
	}

	if err := shared.ValidateStruct(req); err != nil {
		return err
	}

	if transformer.ApplyChangelogPatchRequestToModel(req, &entry) {
		if err := c.changelogRepository.Save(nil, &entry); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "could not update changelog entry").WithInternal(err)
		}
	}

	return ctx.JSON(http.StatusOK, entry)
}

func (c *ChangelogController) Delete(ctx shared.Context) error {
	app := shared.GetApp(ctx)

	entryID, err := shared.GetParamUUID(ctx, "entryID")
	if err != nil {
		return err
	}

	entry, err := c.changelogRepository.ReadForApp(app.ID, entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "changelog entry not found").WithInternal(err)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not read changelog entry").WithInternal(err)
	}

	if err := c.changelogRepository.Delete(nil, entry.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not delete changelog entry").WithInternal(err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"message": "changelog entry deleted"})
}
