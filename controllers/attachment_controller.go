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

	"github.com/craftbase/appcatalog/database/models"
	"github.com/craftbase/appcatalog/shared"
	"github.com/craftbase/appcatalog/storage"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type AttachmentController struct {
	attachmentRepository shared.AttachmentRepository
	uploadService        *storage.UploadService
}

func NewAttachmentController(attachmentRepository shared.AttachmentRepository, uploadService *storage.UploadService) *AttachmentController {
	return &AttachmentController{
		attachmentRepository: attachmentRepository,
		uploadService:        uploadService,
	}
}

func (c *AttachmentController) List(ctx shared.Context) error {
	app := shared.GetApp(ctx)

	attachments, err := c.attachmentRepository.ListByApp(app.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list attachments").WithInternal(err)
	}

	return ctx.JSON(http.StatusOK, attachments)
}

func (c *AttachmentController) Create(ctx shared.Context) error {
	app := shared.GetApp(ctx)

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "no file provided").WithInternal(err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not open uploaded file").WithInternal(err)
	}
	defer file.Close()

	result, err := c.uploadService.Upload(ctx.Request().Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), fileHeader.Size, file)
	if err != nil {
		if errors.Is(err, storage.ErrFileTooLarge) || errors.Is(err, storage.ErrFileTypeNotAllowed) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error()).WithInternal(err)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not store file").WithInternal(err)
	}

	attachment := models.Attachment{
		AppID:        app.ID,
		Filename:     result.Filename,
		FileURL:      result.URL,
		FileType:     fileHeader.Header.Get("Content-Type"),
		FileSize:     result.FileSize,
		UploadedByID: shared.GetSession(ctx).GetUserID(),
	}
	if err := c.attachmentRepository.Create(nil, &attachment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not create attachment").WithInternal(err)
	}

	return ctx.JSON(http.StatusCreated, attachment)
}

func (c *AttachmentController) Delete(ctx shared.Context) error {
	app := shared.GetApp(ctx)

	attachmentID, err := shared.GetParamUUID(ctx, "attachmentID")
	if err != nil {
		return err
	}

	attachment, err := c.attachmentRepository.ReadForApp(app.ID, attachmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "attachment not found").WithInternal(err)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not read attachment").WithInternal(err)
	}

	// only the record is removed, the stored file stays behind
	if err := c.attachmentRepository.Delete(nil, attachment.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not delete attachment").WithInternal(err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"message": "attachment deleted"})
}
