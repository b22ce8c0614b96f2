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

package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/craftbase/appcatalog/config"
	"github.com/craftbase/appcatalog/controllers"
	"github.com/craftbase/appcatalog/database"
	"github.com/craftbase/appcatalog/database/repositories"
	"github.com/craftbase/appcatalog/githubint"
	"github.com/craftbase/appcatalog/middlewares"
	"github.com/craftbase/appcatalog/router"
	"github.com/craftbase/appcatalog/shared"
	"github.com/craftbase/appcatalog/storage"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	_ "github.com/lib/pq"
)

func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	pool, err := database.NewPgxConnPool(database.GetPoolConfigFromEnv())
	if err != nil {
		slog.Error(err.Error())
		panic(errors.New("failed to setup database connection"))
	}

	db, err := database.NewGormDB(pool)
	if err != nil {
		slog.Error(err.Error())
		panic(errors.New("failed to setup database connection"))
	}

	if os.Getenv("DISABLE_AUTOMIGRATE") != "true" {
		slog.Info("running database migrations...")
		if err := database.AutoMigrate(db); err != nil {
			slog.Error("failed to run database migrations", "error", err)
			panic(errors.New("failed to run database migrations"))
		}

		if err := database.SeedAdminUser(db); err != nil {
			slog.Error("failed to seed admin user", "error", err)
			panic(errors.New("failed to seed admin user"))
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	fx.New(
		fx.Supply(db),
		fx.Supply(pool),
		fx.Provide(middlewares.Server),
		repositories.Module,
		controllers.ControllerModule,
		router.RouterModule,
		storage.Module,
		githubint.Module,

		// we need to invoke all routers to register their routes
		fx.Invoke(func(apiV1Router router.APIV1Router) {}),
		fx.Invoke(func(appRouter router.AppRouter) {}),
		fx.Invoke(registerServerLifecycle),
	).Run()
}

func registerServerLifecycle(lc fx.Lifecycle, e *echo.Echo, shutdowner fx.Shutdowner) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(config.ListenAddress()); err != nil {
					slog.Error("server stopped", "err", err)
					shutdowner.Shutdown() // nolint: errcheck
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}
