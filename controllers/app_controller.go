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
	"strings"

	"github.com/craftbase/appcatalog/dtos"
	"github.com/craftbase/appcatalog/shared"
	"github.com/craftbase/appcatalog/transformer"
	"github.com/craftbase/appcatalog/utils"
	"github.com/labstack/echo/v4"
)

type AppController struct {
	appRepository shared.AppRepository
}

func NewAppController(appRepository shared.AppRepository) *AppController {
	return &AppController{
		appRepository: appRepository,
	}
}

func (c *AppController) List(ctx shared.Context) error {
	filter := dtos.AppFilter{
		Status:     ctx.QueryParam("status"),
		ClientName: ctx.QueryParam("clientName"),
		Search:     ctx.QueryParam("search"),
	}
	if tags := ctx.QueryParam("tags"); tags != "" {
		// stray commas must not turn into empty tag filters
		filter.Tags = utils.Filter(strings.Split(tags, ","), func(tag string) bool {
			return tag != ""
		})
	}

	apps, err := c.appRepository.ListFiltered(filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list apps").WithInternal(err)
	}

	return ctx.JSON(http.StatusOK, apps)
}

func (c *AppController) Create(ctx shared.Context) error {
	var req dtos.AppCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to process request").WithInternal(err)
	}

	if err := shared.ValidateStruct(req); err != nil {
		return err
	}

	app := transformer.AppCreateRequestToModel(req, shared.GetSession(ctx).GetUserID())
	if err := c.appRepository.Create(nil, &app); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not create app").WithInternal(err)
	}

	created, err := c.appRepository.ReadWithCreator(app.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not read created app").WithInternal(err)
	}

	return ctx.JSON(http.StatusCreated, created)
}

func (c *AppController) Read(ctx shared.Context) error {
	return ctx.JSON(http.StatusOK, shared.GetApp(ctx))
}

func (c *AppController) Update(ctx shared.Context) error {
	app := shared.GetApp(ctx)

	var req dtos.AppPatchRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to process request").WithInternal(err)
	}

	if err := shared.ValidateStruct(req); err != nil {
		return err
	}

	if transformer.ApplyAppPatchRequestToModel(req, &app) {
		if err := c.appRepository.Save(nil, &app); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "could not update app").WithInternal(err)
		}
	}

	updated, err := c.appRepository.ReadWithCreator(app.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not read updated app").WithInternal(err)
	}

	return ctx.JSON(http.StatusOK, updated)
}

func (c *AppController) Delete(ctx shared.Context) error {
	app := shared.GetApp(ctx)

	if err := c.appRepository.Delete(nil, app.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not delete app").WithInternal(err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"message": "app deleted"})
}
