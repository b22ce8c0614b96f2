package controllers

import (
	"encoding/json"
	"net/http"
	"os"
	"testing"

	"github.com/craftbase/appcatalog/accesscontrol"
	"github.com/craftbase/appcatalog/auth"
	"github.com/craftbase/appcatalog/database/models"
	"github.com/craftbase/appcatalog/testutils"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	os.Exit(m.Run())
}

func TestAuthControllerRegister(t *testing.T) {
	t.Run("should always create the account as viewer", func(t *testing.T) {
		repo := testutils.NewInMemUserRepository()

		// the role field in the payload must be ignored
		ctx, rec := newJSONContext(t, http.MethodPost, `{"name":"Jane","email":"jane@acme.example","password":"super-secret","role":"Admin"}`)

		h := NewAuthController(repo)

		err := h.Register(ctx)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		require.Len(t, repo.Users, 1)
		assert.Equal(t, accesscontrol.RoleViewer, repo.Users[0].Role)
		assert.NotEmpty(t, repo.Users[0].PasswordHash)
		assert.NotContains(t, rec.Body.String(), "super-secret")
	})

	t.Run("should conflict on a duplicate email", func(t *testing.T) {
		repo := testutils.NewInMemUserRepository()
		require.NoError(t, repo.Create(nil, &models.User{Name: "Jane", Email: "jane@acme.example"}))

		ctx, _ := newJSONContext(t, http.MethodPost, `{"name":"Jane Again","email":"jane@acme.example","password":"super-secret"}`)

		h := NewAuthController(repo)

		err := h.Register(ctx)
		require.Error(t, err)

		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusConflict, httpErr.Code)
	})

	t.Run("should reject a short password", func(t *testing.T) {
		ctx, _ := newJSONContext(t, http.MethodPost, `{"name":"Jane","email":"jane@acme.example","password":"short"}`)

		h := NewAuthController(testutils.NewInMemUserRepository())

		err := h.Register(ctx)
		require.Error(t, err)

		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}

func TestAuthControllerLogin(t *testing.T) {
	newUserRepo := func(t *testing.T) *testutils.InMemUserRepository {
		t.Helper()
		repo := testutils.NewInMemUserRepository()
		user := models.User{Name: "Jane", Email: "jane@acme.example", Role: accesscontrol.RoleDev}
		require.NoError(t, user.SetPassword("super-secret"))
		require.NoError(t, repo.Create(nil, &user))
		return repo
	}

	t.Run("should return a token the session middleware accepts", func(t *testing.T) {
		ctx, rec := newJSONContext(t, http.MethodPost, `{"email":"jane@acme.example","password":"super-secret"}`)

		repo := newUserRepo(t)
		h := NewAuthController(repo)

		err := h.Login(ctx)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Token)

		userID, role, err := auth.ParseToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, repo.Users[0].ID, userID)
		assert.Equal(t, accesscontrol.RoleDev, role)
	})

	t.Run("should reject a wrong password", func(t *testing.T) {
		ctx, _ := newJSONContext(t, http.MethodPost, `{"email":"jane@acme.example","password":"wrong-password"}`)

		h := NewAuthController(newUserRepo(t))

		err := h.Login(ctx)
		require.Error(t, err)

		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("should reject an unknown email the same way as a wrong password", func(t *testing.T) {
		ctx, _ := newJSONContext(t, http.MethodPost, `{"email":"nobody@acme.example","password":"super-secret"}`)

		h := NewAuthController(newUserRepo(t))

		err := h.Login(ctx)
		require.Error(t, err)

		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})
}
