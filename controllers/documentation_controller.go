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

	"github.com/craftbase/appcatalog/database"
	"github.com/craftbase/appcatalog/dtos"
	"github.com/craftbase/appcatalog/shared"
	"github.com/craftbase/appcatalog/transformer"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type DocumentationController struct {
	docRepository shared.DocumentationRepository
}

func NewDocumentationController(docRepository shared.DocumentationRepository) *DocumentationController {
	return &DocumentationController{
		docRepository: docRepository,
	}
}

func (c *DocumentationController) List(ctx shared.Context) error {
	app := shared.GetApp(ctx)

	docs, err := c.docRepository.ListByApp(app.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list documentation").WithInternal(err)
	}

	return ctx.JSON(http.StatusOK, docs)
}

func (c *DocumentationController) Create(ctx shared.Context) error {
	app := shared.GetApp(ctx)

	var req dtos.DocCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to process request").WithInternal(err)
	}

	if err := shared.ValidateStruct(req); err != nil {
		return err
	}

	doc, err := transformer.DocCreateRequestToModel(req, app.ID, shared.GetSession(ctx).GetUserID())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not derive a slug from the title, provide one explicitly").WithInternal(err)
	}

	if err := c.docRepository.Create(nil, &doc); err != nil {
		if database.IsDuplicateKeyError(err) {
			return echo.NewHTTPError(http.StatusConflict, "a document with this slug already exists for this app").WithInternal(err)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not create document").WithInternal(err)
	}

	return ctx.JSON(http.StatusCreated, doc)
}

func (c *DocumentationController) Read(ctx shared.Context) error {
	app := shared.GetApp(ctx)

	docID, err := shared.GetParamUUID(ctx, "docID")
	if err != nil {
		return err
	}

	doc, err := c.docRepository.ReadForApp(app.ID, docID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "document not found").WithInternal(err)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not read document").WithInternal(err)
	}

	return ctx.JSON(http.StatusOK, doc)
}

func (c *DocumentationController) Update(ctx shared.Context) error {
	app := shared.GetApp(ctx)

	docID, err := shared.GetParamUUID(ctx, "docID")
	if err != nil {
		return err
	}

	doc, err := c.docRepository.ReadForApp(app.ID, docID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "document not found").WithInternal(err)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not read document").WithInternal(err)
	}

	var req dtos.DocPatchRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to process request").WithInternal(err)
	}

	if err := shared.ValidateStruct(req); err != nil {
		return err
	}

	if transformer.ApplyDocPatchRequestToModel(req, &doc) {
		if err := c.docRepository.Save(nil, &doc); err != nil {
			if database.IsDuplicateKeyError(err) {
				return echo.NewHTTPError(http.StatusConflict, "a document with this slug already exists for this app").WithInternal(err)
			}
			return echo.NewHTTPError(http.StatusInternalServerError, "could not update document").WithInternal(err)
		}
	}

	return ctx.JSON(http.StatusOK, doc)
}

func (c *DocumentationController) Delete(ctx shared.Context) error {
	app := shared.GetApp(ctx)

	docID, err := shared.GetParamUUID(ctx, "docID")
	if err != nil {
		return err
	}

	doc, err := c.docRepository.ReadForApp(app.ID, docID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "document not found").WithInternal(err)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not read document").WithInternal(err)
	}

	if err := c.docRepository.Delete(nil, doc.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not delete document").WithInternal(err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"message": "document deleted"})
}
