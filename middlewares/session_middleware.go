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
	"strings"

	"github.com/craftbase/appcatalog/accesscontrol"
	"github.com/craftbase/appcatalog/auth"
	"github.com/craftbase/appcatalog/shared"
	"github.com/labstack/echo/v4"
)

const sessionCookieName = "catalog_session"

func tokenFromRequest(ctx echo.Context) string {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := ctx.Cookie(sessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// SessionMiddleware resolves the bearer token (or session cookie) to a
// session and attaches it to the request context. An absent or invalid token
// just yields NoSession - route level access control decides whether that is
// acceptable.
func SessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token := tokenFromRequest(ctx)
			if token == "" {
				shared.SetSession(ctx, accesscontrol.NoSession)
				return next(ctx)
			}

			userID, role, err := auth.ParseToken(token)
			if err != nil {
				slog.Warn("could not verify session token", "err", err)
				shared.SetSession(ctx, accesscontrol.NoSession)
				return next(ctx)
			}

			shared.SetSession(ctx, accesscontrol.NewSession(userID, role))
			return next(ctx)
		}
	}
}

// RequireAuthenticated rejects requests without a valid session.
func RequireAuthenticated() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if !shared.GetSession(ctx).IsAuthenticated() {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(ctx)
		}
	}
}
