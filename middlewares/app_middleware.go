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

package middlewares

import (
	"errors"
	"net/http"

	"github.com/craftbase/appcatalog/shared"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// AppMiddleware resolves the :appID path parameter and attaches the app to
// the context. Everything below /apps/:appID lives behind it.
func AppMiddleware(appRepository shared.AppRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			appID, err := shared.GetParamUUID(ctx, "appID")
			if err != nil {
				return err
			}

			app, err := appRepository.ReadWithCreator(appID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return echo.NewHTTPError(http.StatusNotFound, "app not found").WithInternal(err)
				}
				return echo.NewHTTPError(http.StatusInternalServerError, "could not read app").WithInternal(err)
			}

			shared.SetApp(ctx, app)
			return next(ctx)
		}
	}
}
