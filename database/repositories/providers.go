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

package repositories

import (
	"github.com/craftbase/appcatalog/shared"
	"go.uber.org/fx"
)

// Module provides all repository constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewAppRepository, fx.As(new(shared.AppRepository)))),
	fx.Provide(fx.Annotate(NewDocumentationRepository, fx.As(new(shared.DocumentationRepository)))),
	fx.Provide(fx.Annotate(NewChangelogRepository, fx.As(new(shared.ChangelogRepository)))),
	fx.Provide(fx.Annotate(NewAttachmentRepository, fx.As(new(shared.AttachmentRepository)))),
	fx.Provide(fx.Annotate(NewUserRepository, fx.As(new(shared.UserRepository)))),
)
