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
	"log/slog"
	"net/http"

	"github.com/craftbase/appcatalog/accesscontrol"
	"github.com/craftbase/appcatalog/shared"
	"github.com/labstack/echo/v4"
)

// RequireRole gates a route on the caller's role. Unauthenticated requests
// get a 401, authenticated ones with the wrong role a 403.
func RequireRole(roles ...accesscontrol.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			session := shared.GetSession(ctx)
			if !session.IsAuthenticated() {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			if !accesscontrol.Allows(session.GetRole(), roles) {
				slog.Info("access denied", "user", session.GetUserID(), "role", session.GetRole(), "method", ctx.Request().Method, "path", ctx.Request().URL.Path)
				return echo.NewHTTPError(http.StatusForbidden, "insufficient permissions")
			}

			return next(ctx)
		}
	}
}
