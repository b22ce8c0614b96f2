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

import "github.com/google/uuid"

// Session is the identity attached to a single request. It only carries
// what the handlers need: who is calling and with which role.
type Session struct {
	userID uuid.UUID
	role   Role
}

// NoSession marks an unauthenticated request. Handlers behind the session
// middleware never see it - the middleware rejects with 401 first.
var NoSession = Session{}

func NewSession(userID uuid.UUID, role Role) Session {
	return Session{userID: userID, role: role}
}

func (s Session) GetUserID() uuid.UUID {
	return s.userID
}

func (s Session) GetRole() Role {
	return s.role
}

func (s Session) IsAuthenticated() bool {
	return s.userID != uuid.Nil
}
