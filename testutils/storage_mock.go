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
package testutils

import (
	"context"
	"io"
)

// CountingStorage records every store call instead of writing anywhere.
type CountingStorage struct {
	StoredNames []string
	Err         error
}

func (s *CountingStorage) Store(ctx context.Context, name string, contentType string, content io.Reader) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	s.StoredNames = append(s.StoredNames, name)
	return "/uploads/" + name, nil
}

func (s *CountingStorage) Calls() int {
	return len(s.StoredNames)
}
