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
	"log/slog"

	"github.com/craftbase/appcatalog/config"
	"github.com/craftbase/appcatalog/shared"
)

// NewFromEnv selects the storage backend once at process start: a configured
// bucket selects the blob store, otherwise files land in a local directory.
func NewFromEnv(ctx context.Context) (shared.FileStorage, error) {
	if bucket := config.S3Bucket(); bucket != "" {
		slog.Info("using s3 file storage", "bucket", bucket)
		return NewS3Storage(ctx, bucket, config.S3Region(), config.S3PublicURL())
	}

	slog.Info("using local file storage", "dir", config.UploadDir())
	return NewLocalStorage(config.UploadDir()), nil
}
