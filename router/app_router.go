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
	"github.com/craftbase/appcatalog/accesscontrol"
	"github.com/craftbase/appcatalog/controllers"
	"github.com/craftbase/appcatalog/middlewares"
	"github.com/craftbase/appcatalog/shared"
	"github.com/labstack/echo/v4"
)

type AppRouter struct {
	*echo.Group
}

// NewAppRouter wires everything below /apps. Reads are open to every
// authenticated role, writes are limited per resource.
func NewAppRouter(
	apiV1Group APIV1Router,
	appController *controllers.AppController,
	docController *controllers.DocumentationController,
	changelogController *controllers.ChangelogController,
	attachmentController *controllers.AttachmentController,
	appRepository shared.AppRepository,
) AppRouter {
	appsRouter := apiV1Group.Group.Group("/apps", middlewares.RequireAuthenticated())
	appsRouter.GET("/", appController.List)
	appsRouter.POST("/", appController.Create, middlewares.RequireRole(accesscontrol.ContentEditors...))

	/**
	App scoped router
	All routes below this line are scoped to a specific app.
	*/
	appRouter := appsRouter.Group("/:appID", middlewares.AppMiddleware(appRepository))
	appRouter.GET("/", appController.Read)
	appRouter.PATCH("/", appController.Update, middlewares.RequireRole(accesscontrol.ContentEditors...))
	appRouter.DELETE("/", appController.Delete, middlewares.RequireRole(accesscontrol.AdminOnly...))

	docsRouter := appRouter.Group("/docs")
	docsRouter.GET("/", docController.List)
	docsRouter.POST("/", docController.Create, middlewares.RequireRole(accesscontrol.ContentEditors...))
	docsRouter.GET("/:docID/", docController.Read)
	docsRouter.PATCH("/:docID/", docController.Update, middlewares.RequireRole(accesscontrol.ContentEditors...))
	docsRouter.DELETE("/:docID/", docController.Delete, middlewares.RequireRole(accesscontrol.ContentEditors...))

	changelogRouter := appRouter.Group("/changelog")
	changelogRouter.GET("/", changelogController.List)
	changelogRouter.POST("/", changelogController.Create, middlewares.RequireRole(accesscontrol.ContentEditors...))
	changelogRouter.PATCH("/:entryID/", changelogController.Update, middlewares.RequireRole(accesscontrol.ContentEditors...))
	changelogRouter.DELETE("/:entryID/", changelogController.Delete, middlewares.RequireRole(accesscontrol.AdminOnly...))

	attachmentsRouter := appRouter.Group("/attachments")
	attachmentsRouter.GET("/", attachmentController.List)
	attachmentsRouter.POST("/", attachmentController.Create, middlewares.RequireRole(accesscontrol.ContentEditors...))
	attachmentsRouter.DELETE("/:attachmentID/", attachmentController.Delete, middlewares.RequireRole(accesscontrol.ContentEditors...))

	return AppRouter{Group: appsRouter}
}
