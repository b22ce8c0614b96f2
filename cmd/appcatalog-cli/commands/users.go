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

package commands

import (
	"log/slog"

	"github.com/craftbase/appcatalog/accesscontrol"
	"github.com/craftbase/appcatalog/database/models"
	"github.com/craftbase/appcatalog/database/repositories"
	"github.com/craftbase/appcatalog/shared"
	"github.com/spf13/cobra"
)

func NewUsersCommand() *cobra.Command {
	users := cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
	}

	users.AddCommand(newCreateAdminCommand())
	users.AddCommand(newSetRoleCommand())
	return &users
}

func newCreateAdminCommand() *cobra.Command {
	createAdmin := cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			shared.LoadConfig() // nolint
			db, err := shared.DatabaseFactory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return
			}

			name, _ := cmd.Flags().GetString("name")
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")

			user := models.User{
				Name:  name,
				Email: email,
				Role:  accesscontrol.RoleAdmin,
			}
			if err := user.SetPassword(password); err != nil {
				slog.Error("could not hash password", "err", err)
				return
			}

			userRepository := repositories.NewUserRepository(db)
			if err := userRepository.Create(nil, &user); err != nil {
				slog.Error("could not create admin user", "err", err)
				return
			}

			slog.Info("created admin user", "email", email)
		},
	}

	createAdmin.Flags().String("name", "Admin", "display name of the account")
	createAdmin.Flags().String("email", "", "email address of the account")
	createAdmin.Flags().String("password", "", "password of the account")
	createAdmin.MarkFlagRequired("email")    // nolint
	createAdmin.MarkFlagRequired("password") // nolint

	return &createAdmin
}

func newSetRoleCommand() *cobra.Command {
	setRole := cobra.Command{
		Use:   "set-role <email> <role>",
		Short: "Change the role of an existing account",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			email := args[0]
			role := accesscontrol.Role(args[1])
			if !accesscontrol.ValidRole(role) {
				slog.Error("invalid role", "role", args[1])
				return
			}

			shared.LoadConfig() // nolint
			db, err := shared.DatabaseFactory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return
			}

			userRepository := repositories.NewUserRepository(db)
			user, err := userRepository.FindByEmail(email)
			if err != nil {
				slog.Error("could not find user", "email", email, "err", err)
				return
			}

			user.Role = role
			if err := userRepository.Save(nil, &user); err != nil {
				slog.Error("could not update user", "err", err)
				return
			}

			slog.Info("updated user role", "email", email, "role", role)
		},
	}

	return &setRole
}
