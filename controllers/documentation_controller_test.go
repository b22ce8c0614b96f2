package controllers

import (
	"net/http"
	"testing"

	"github.com/craftbase/appcatalog/accesscontrol"
	"github.com/craftbase/appcatalog/database/models"
	"github.com/craftbase/appcatalog/shared"
	"github.com/craftbase/appcatalog/testutils"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp() models.App {
	app := models.App{Name: "Portal", ClientName: "Acme", Description: "customer facing portal"}
	app.ID = uuid.New()
	return app
}

func TestDocumentationControllerCreate(t *testing.T) {
	t.Run("should derive the slug from the title when omitted", func(t *testing.T) {
		app := testApp()
		repo := testutils.NewInMemDocRepository()

		ctx, rec := newJSONContext(t, http.MethodPost, `{"title":"Getting Started","content":"# Intro"}`)
		shared.SetSession(ctx, accesscontrol.NewSession(uuid.New(), accesscontrol.RoleDev))
		shared.SetApp(ctx, app)

		h := NewDocumentationController(repo)

		err := h.Create(ctx)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		require.Len(t, repo.Docs, 1)
		assert.Equal(t, "getting-started", repo.Docs[0].Slug)
		assert.Equal(t, models.DocumentationTypeCustom, repo.Docs[0].Type)
	})

	t.Run("should hyphenate underscores in a derived slug", func(t *testing.T) {
		app := testApp()
		repo := testutils.NewInMemDocRepository()

		ctx, rec := newJSONContext(t, http.MethodPost, `{"title":"api_reference v2","content":"# API"}`)
		shared.SetSession(ctx, accesscontrol.NewSession(uuid.New(), accesscontrol.RoleDev))
		shared.SetApp(ctx, app)

		h := NewDocumentationController(repo)

		err := h.Create(ctx)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		require.Len(t, repo.Docs, 1)
		assert.Equal(t, "api-reference-v2", repo.Docs[0].Slug)
	})

	t.Run("should reject a title that yields no slug", func(t *testing.T) {
		repo := testutils.NewInMemDocRepository()

		ctx, _ := newJSONContext(t, http.MethodPost, `{"title":"###","content":"# Intro"}`)
		shared.SetSession(ctx, accesscontrol.NewSession(uuid.New(), accesscontrol.RoleDev))
		shared.SetApp(ctx, testApp())

		h := NewDocumentationController(repo)

		err := h.Create(ctx)
		require.Error(t, err)

		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		assert.Empty(t, repo.Docs)
	})

	t.Run("should reject a slug with uppercase or spaces", func(t *testing.T) {
		ctx, _ := newJSONContext(t, http.MethodPost, `{"title":"Getting Started","slug":"Getting Started","content":"# Intro"}`)
		shared.SetApp(ctx, testApp())

		h := NewDocumentationController(testutils.NewInMemDocRepository())

		err := h.Create(ctx)
		require.Error(t, err)

		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("should conflict on a duplicate slug within the same app", func(t *testing.T) {
		app := testApp()
		repo := testutils.NewInMemDocRepository()
		require.NoError(t, repo.Create(nil, &models.Documentation{
			AppID:   app.ID,
			Title:   "Getting Started",
			Slug:    "getting-started",
			Content: "# Intro",
		}))

		ctx, _ := newJSONContext(t, http.MethodPost, `{"title":"Getting Started Again","slug":"getting-started","content":"# Intro"}`)
		shared.SetSession(ctx, accesscontrol.NewSession(uuid.New(), accesscontrol.RoleDev))
		shared.SetApp(ctx, app)

		h := NewDocumentationController(repo)

		err := h.Create(ctx)
		require.Error(t, err)

		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusConflict, httpErr.Code)
	})

	t.Run("should allow the same slug under a different app", func(t *testing.T) {
		repo := testutils.NewInMemDocRepository()
		require.NoError(t, repo.Create(nil, &models.Documentation{
			AppID:   uuid.New(),
			Title:   "Getting Started",
			Slug:    "getting-started",
			Content: "# Intro",
		}))

		ctx, rec := newJSONContext(t, http.MethodPost, `{"title":"Getting Started","slug":"getting-started","content":"# Intro"}`)
		shared.SetSession(ctx, accesscontrol.NewSession(uuid.New(), accesscontrol.RoleDev))
		shared.SetApp(ctx, testApp())

		h := NewDocumentationController(repo)

		err := h.Create(ctx)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestDocumentationControllerUpdate(t *testing.T) {
	t.Run("should reject an explicit empty slug", func(t *testing.T) {
		app := testApp()
		repo := testutils.NewInMemDocRepository()
		doc := models.Documentation{
			AppID:   app.ID,
			Title:   "Getting Started",
			Slug:    "getting-started",
			Content: "# Intro",
		}
		require.NoError(t, repo.Create(nil, &doc))

		ctx, _ := newJSONContext(t, http.MethodPatch, `{"slug":""}`)
		ctx.SetParamNames("docID")
		ctx.SetParamValues(doc.ID.String())
		shared.SetApp(ctx, app)

		h := NewDocumentationController(repo)

		err := h.Update(ctx)
		require.Error(t, err)

		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		assert.Equal(t, "getting-started", repo.Docs[0].Slug)
	})
}

func TestDocumentationControllerRead(t *testing.T) {
	t.Run("should return 404 for an unknown document", func(t *testing.T) {
		ctx, _ := newJSONContext(t, http.MethodGet, "")
		ctx.SetParamNames("docID")
		ctx.SetParamValues(uuid.NewString())
		shared.SetApp(ctx, testApp())

		h := NewDocumentationController(testutils.NewInMemDocRepository())

		err := h.Read(ctx)
		require.Error(t, err)

		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	})

	t.Run("should return 404 for an unparseable id", func(t *testing.T) {
		ctx, _ := newJSONContext(t, http.MethodGet, "")
		ctx.SetParamNames("docID")
		ctx.SetParamValues("not-a-uuid")
		shared.SetApp(ctx, testApp())

		h := NewDocumentationController(testutils.NewInMemDocRepository())

		err := h.Read(ctx)
		require.Error(t, err)

		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	})

	t.Run("should not return a document of another app", func(t *testing.T) {
		repo := testutils.NewInMemDocRepository()
		doc := models.Documentation{
			AppID:   uuid.New(),
			Title:   "Getting Started",
			Slug:    "getting-started",
			Content: "# Intro",
		}
		require.NoError(t, repo.Create(nil, &doc))

		ctx, _ := newJSONContext(t, http.MethodGet, "")
		ctx.SetParamNames("docID")
		ctx.SetParamValues(doc.ID.String())
		shared.SetApp(ctx, testApp())

		h := NewDocumentationController(repo)

		err := h.Read(ctx)
		require.Error(t, err)

		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	})
}
