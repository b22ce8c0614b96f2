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

package router

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/craftbase/appcatalog/accesscontrol"
	"github.com/craftbase/appcatalog/config"
	"github.com/craftbase/appcatalog/controllers"
	"github.com/craftbase/appcatalog/database"
	"github.com/craftbase/appcatalog/middlewares"
	"github.com/craftbase/appcatalog/shared"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var startedAt = time.Now()

type APIV1Router struct {
	*echo.Group
}

func NewAPIV1Router(
	e *echo.Echo,
	db shared.DB,
	pool *pgxpool.Pool,
	authController *controllers.AuthController,
	githubController *controllers.GithubController,
	searchController *controllers.SearchController,
) APIV1Router {
	apiV1Router := e.Group(shared.APIV1Prefix)
	apiV1Router.Use(middlewares.SessionMiddleware())

	apiV1Router.GET("/info/", func(c echo.Context) error {
		var mem runtime.MemStats
		runtime.ReadMemStats(&mem)

		resp := InfoResponse{
			Build: BuildInfo{
				Version:   config.Version,
				Commit:    config.Commit,
				Branch:    config.Branch,
				BuildDate: config.BuildDate,
			},
			Runtime: RuntimeInfo{
				GoVersion:     runtime.Version(),
				NumGoroutines: runtime.NumGoroutine(),
				Mem: MemStats{
					Alloc:      mem.Alloc,
					TotalAlloc: mem.TotalAlloc,
					Sys:        mem.Sys,
					HeapAlloc:  mem.HeapAlloc,
				},
			},
			Process: ProcessInfo{
				PID:           os.Getpid(),
				UptimeSeconds: int(time.Since(startedAt).Seconds()),
			},
		}

		host, _ := os.Hostname()
		if host != "" {
			resp.Process.Hostname = host
		}

		poolCfg := database.GetPoolConfigFromEnv()
		poolInfo := PoolInfo{
			DBName:          poolCfg.DBName,
			MaxOpenConns:    poolCfg.MaxOpenConns,
			ConnMaxLifetime: poolCfg.ConnMaxLifetime.String(),
			ConnMaxIdleTime: poolCfg.ConnMaxIdleTime.String(),
		}
		if pool != nil {
			stat := pool.Stat()
			poolInfo.TotalConns = int(stat.TotalConns())
			poolInfo.IdleConns = int(stat.IdleConns())
			poolInfo.AcquiredConns = int(stat.AcquiredConns())
			poolInfo.MaxConns = int(stat.MaxConns())
		}

		dbInfo := DatabaseInfo{Status: "unknown"}
		sqlDB, err := db.DB()
		if err != nil {
			errMsg := "failed to get database instance"
			dbInfo.Status = "unhealthy"
			dbInfo.Error = &errMsg
		} else {
			dbInfo.DBStats = sqlDB.Stats()
			if err := sqlDB.Ping(); err != nil {
				errMsg := "database ping failed"
				dbInfo.Status = "unhealthy"
				dbInfo.Error = &errMsg
			} else {
				dbInfo.Status = "healthy"
			}
		}
		dbInfo.Pool = &poolInfo
		resp.Database = dbInfo

		return c.JSON(http.StatusOK, resp)
	})

	// probe routes sit outside the session group, the request logger skips
	// them by the same shared path constants
	e.GET(shared.MetricsRoute, echo.WrapHandler(promhttp.Handler()))
	e.GET(shared.HealthRoute, func(ctx echo.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return ctx.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  "failed to get database instance",
			})
		}

		if err := sqlDB.Ping(); err != nil {
			return ctx.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  "database ping failed",
			})
		}

		return ctx.JSON(http.StatusOK, map[string]string{
			"status": "healthy",
		})
	})

	apiV1Router.POST("/auth/register/", authController.Register)
	apiV1Router.POST("/auth/login/", authController.Login)

	apiV1Router.POST("/github/fetch/", githubController.Fetch, middlewares.RequireRole(accesscontrol.ContentEditors...))
	apiV1Router.GET("/search/", searchController.Search, middlewares.RequireAuthenticated())

	return APIV1Router{Group: apiV1Router}
}
