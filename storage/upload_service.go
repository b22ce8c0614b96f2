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

package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"time"

	"github.com/craftbase/appcatalog/shared"
	"github.com/craftbase/appcatalog/utils"
)

const MaxFileSize = 10 << 20 // 10 MiB

var AllowedFileTypes = []string{
	"application/pdf",
	"text/markdown",
	"image/png",
	"image/jpeg",
	"image/jpg",
	"image/webp",
}

var (
	ErrFileTooLarge       = errors.New("file size exceeds 10MB limit")
	ErrFileTypeNotAllowed = errors.New("invalid file type, allowed types: PDF, Markdown, PNG, JPEG, WEBP")
)

var whitespace = regexp.MustCompile(`\s+`)

type UploadResult struct {
	URL      string
	Filename string
	FileSize int64
}

// UploadService validates a file and hands it to the configured backend.
// Both checks fail closed and fail fast: nothing is written on violation.
type UploadService struct {
	storage shared.FileStorage
	now     func() time.Time
}

func NewUploadService(storage shared.FileStorage) *UploadService {
	return &UploadService{storage: storage, now: time.Now}
}

func (s *UploadService) Upload(ctx context.Context, filename string, contentType string, size int64, content io.Reader) (UploadResult, error) {
	if size > MaxFileSize {
		return UploadResult{}, ErrFileTooLarge
	}

	if !utils.Contains(AllowedFileTypes, contentType) {
		return UploadResult{}, ErrFileTypeNotAllowed
	}

	// time prefixed, whitespace stripped object name - the original display
	// name stays on the attachment record
	storedName := fmt.Sprintf("%d-%s", s.now().UnixMilli(), whitespace.ReplaceAllString(filename, "-"))

	url, err := s.storage.Store(ctx, storedName, contentType, content)
	if err != nil {
		return UploadResult{}, fmt.Errorf("could not store file: %w", err)
	}

	return UploadResult{
		URL:      url,
		Filename: filename,
		FileSize: size,
	}, nil
}
