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
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/craftbase/appcatalog/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	return &buf
}

func newLoggedEcho() *echo.Echo {
	e := echo.New()
	e.Use(logger(shared.HealthRoute, shared.MetricsRoute))
	ok := func(ctx echo.Context) error { return ctx.NoContent(http.StatusOK) }
	e.GET(shared.HealthRoute, ok)
	e.GET("/api/v1/apps/", ok)
	return e
}

func TestLogger(t *testing.T) {
	t.Run("should log a handled request", func(t *testing.T) {
		buf := captureLog(t)
		e := newLoggedEcho()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/apps/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, buf.String(), "handled request")
	})

	t.Run("should stay silent for probe routes", func(t *testing.T) {
		buf := captureLog(t)
		e := newLoggedEcho()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, shared.HealthRoute, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, buf.String(), "handled request")
	})
}
