package controllers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/craftbase/appcatalog/accesscontrol"
	"github.com/craftbase/appcatalog/shared"
	"github.com/craftbase/appcatalog/storage"
	"github.com/craftbase/appcatalog/testutils"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMultipartContext(t *testing.T, filename string, contentType string, content []byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestAttachmentControllerCreate(t *testing.T) {
	t.Run("should store the file and create a record", func(t *testing.T) {
		repo := testutils.NewInMemAttachmentRepository()
		blobStore := &testutils.CountingStorage{}

		ctx, rec := newMultipartContext(t, "design brief.pdf", "application/pdf", []byte("%PDF-1.4"))
		shared.SetSession(ctx, accesscontrol.NewSession(uuid.New(), accesscontrol.RoleDev))
		shared.SetApp(ctx, testApp())

		h := NewAttachmentController(repo, storage.NewUploadService(blobStore))

		err := h.Create(ctx)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		require.Len(t, repo.Attachments, 1)
		assert.Equal(t, "design brief.pdf", repo.Attachments[0].Filename)
		assert.Equal(t, "application/pdf", repo.Attachments[0].FileType)
		assert.Equal(t, 1, blobStore.Calls())
	})

	t.Run("should reject a disallowed content type without storing anything", func(t *testing.T) {
		repo := testutils.NewInMemAttachmentRepository()
		blobStore := &testutils.CountingStorage{}

		ctx, _ := newMultipartContext(t, "malware.exe", "application/octet-stream", []byte{0x4d, 0x5a})
		shared.SetApp(ctx, testApp())

		h := NewAttachmentController(repo, storage.NewUploadService(blobStore))

		err := h.Create(ctx)
		require.Error(t, err)

		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		assert.Zero(t, blobStore.Calls())
		assert.Empty(t, repo.Attachments)
	})

	t.Run("should fail without a file part", func(t *testing.T) {
		ctx, _ := newJSONContext(t, http.MethodPost, "{}")
		shared.SetApp(ctx, testApp())

		h := NewAttachmentController(testutils.NewInMemAttachmentRepository(), storage.NewUploadService(&testutils.CountingStorage{}))

		err := h.Create(ctx)
		require.Error(t, err)

		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}

func TestAttachmentControllerDelete(t *testing.T) {
	t.Run("should delete only the record", func(t *testing.T) {
		app := testApp()
		repo := testutils.NewInMemAttachmentRepository()

		ctx, _ := newMultipartContext(t, "notes.md", "text/markdown", []byte("# notes"))
		shared.SetSession(ctx, accesscontrol.NewSession(uuid.New(), accesscontrol.RoleDev))
		shared.SetApp(ctx, app)

		h := NewAttachmentController(repo, storage.NewUploadService(&testutils.CountingStorage{}))
		require.NoError(t, h.Create(ctx))
		require.Len(t, repo.Attachments, 1)

		delCtx, delRec := newJSONContext(t, http.MethodDelete, "")
		delCtx.SetParamNames("attachmentID")
		delCtx.SetParamValues(repo.Attachments[0].ID.String())
		shared.SetApp(delCtx, app)

		err := h.Delete(delCtx)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, delRec.Code)
		assert.Empty(t, repo.Attachments)
	})
}
