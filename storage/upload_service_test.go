package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/craftbase/appcatalog/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadService(t *testing.T) {
	t.Run("should reject an oversized file before touching the backend", func(t *testing.T) {
		blobStore := &testutils.CountingStorage{}
		service := NewUploadService(blobStore)

		_, err := service.Upload(context.Background(), "big.pdf", "application/pdf", MaxFileSize+1, strings.NewReader(""))
		assert.ErrorIs(t, err, ErrFileTooLarge)
		assert.Zero(t, blobStore.Calls())
	})

	t.Run("should accept a file of exactly the limit", func(t *testing.T) {
		blobStore := &testutils.CountingStorage{}
		service := NewUploadService(blobStore)

		_, err := service.Upload(context.Background(), "exact.pdf", "application/pdf", MaxFileSize, strings.NewReader("%PDF"))
		require.NoError(t, err)
		assert.Equal(t, 1, blobStore.Calls())
	})

	t.Run("should reject a disallowed content type before touching the backend", func(t *testing.T) {
		blobStore := &testutils.CountingStorage{}
		service := NewUploadService(blobStore)

		_, err := service.Upload(context.Background(), "video.mp4", "video/mp4", 100, strings.NewReader("data"))
		assert.ErrorIs(t, err, ErrFileTypeNotAllowed)
		assert.Zero(t, blobStore.Calls())
	})

	t.Run("should prefix the stored name with unix millis and strip whitespace", func(t *testing.T) {
		blobStore := &testutils.CountingStorage{}
		service := NewUploadService(blobStore)
		service.now = func() time.Time { return time.UnixMilli(1700000000000) }

		result, err := service.Upload(context.Background(), "my design  brief.pdf", "application/pdf", 100, strings.NewReader("%PDF"))
		require.NoError(t, err)

		require.Len(t, blobStore.StoredNames, 1)
		assert.Equal(t, "1700000000000-my-design-brief.pdf", blobStore.StoredNames[0])

		// the record keeps the original display name
		assert.Equal(t, "my design  brief.pdf", result.Filename)
		assert.Equal(t, int64(100), result.FileSize)
	})
}
