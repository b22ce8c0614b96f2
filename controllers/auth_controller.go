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

	"github.com/craftbase/appcatalog/accesscontrol"
	"github.com/craftbase/appcatalog/auth"
	"github.com/craftbase/appcatalog/database"
	"github.com/craftbase/appcatalog/database/models"
	"github.com/craftbase/appcatalog/dtos"
	"github.com/craftbase/appcatalog/shared"
	"github.com/craftbase/appcatalog/transformer"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type AuthController struct {
	userRepository shared.UserRepository
}

func NewAuthController(userRepository shared.UserRepository) *AuthController {
	return &AuthController{
		userRepository: userRepository,
	}
}

// Register creates a new account. The role is always Viewer, regardless of
// what the request carries. Only admins promote users afterwards.
func (c *AuthController) Register(ctx shared.Context) error {
	var req dtos.RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to process request").WithInternal(err)
	}

	if err := shared.ValidateStruct(req); err != nil {
		return err
	}

	exists, err := c.userRepository.ExistsByEmail(req.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not check email").WithInternal(err)
	}
	if exists {
		return echo.NewHTTPError(http.StatusConflict, "user with this email already exists")
	}

	user := models.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  accesscontrol.RoleViewer,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not hash password").WithInternal(err)
	}

	if err := c.userRepository.Create(nil, &user); err != nil {
		if database.IsDuplicateKeyError(err) {
			return echo.NewHTTPError(http.StatusConflict, "user with this email already exists").WithInternal(err)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not create user").WithInternal(err)
	}

	return ctx.JSON(http.StatusCreated, transformer.UserModelToDTO(user))
}

func (c *AuthController) Login(ctx shared.Context) error {
	var req dtos.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to process request").WithInternal(err)
	}

	if err := shared.ValidateStruct(req); err != nil {
		return err
	}

	user, err := c.userRepository.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not read user").WithInternal(err)
	}

	if !user.CheckPassword(req.Password) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not issue token").WithInternal(err)
	}

	return ctx.JSON(http.StatusOK, dtos.LoginResponse{
		Token: token,
		User:  transformer.UserModelToDTO(user),
	})
}
