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

package accesscontrol

// Role is the coarse-grained permission level attached to a session.
// There are exactly three roles and no inheritance between them.
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleDev    Role = "Dev"
	RoleViewer Role = "Viewer"
)

// ContentEditors may create and update catalog content. Destructive
// operations on apps and changelog entries remain admin only.
var ContentEditors = []Role{RoleAdmin, RoleDev}

// AdminOnly guards destructive deletes and account provisioning.
var AdminOnly = []Role{RoleAdmin}

// ValidRole reports whether r is one of the three known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleDev, RoleViewer:
		return true
	}
	return false
}

// Allows is the single authorization decision point of the service. It is a
// pure set-membership check: no hierarchy, no dynamic permission composition.
// An empty required list permits every authenticated caller.
func Allows(role Role, required []Role) bool {
	if len(required) == 0 {
		return true
	}
	for _, r := range required {
		if r == role {
			return true
		}
	}
	return false
}
