package middlewares

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/craftbase/appcatalog/accesscontrol"
	"github.com/craftbase/appcatalog/auth"
	"github.com/craftbase/appcatalog/database/models"
	"github.com/craftbase/appcatalog/shared"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	os.Exit(m.Run())
}

func runSessionMiddleware(t *testing.T, configure func(req *http.Request)) accesscontrol.Session {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	configure(req)
	ctx := echo.New().NewContext(req, httptest.NewRecorder())

	var captured accesscontrol.Session
	handler := SessionMiddleware()(func(c echo.Context) error {
		captured = shared.GetSession(c)
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(ctx))
	return captured
}

func TestSessionMiddleware(t *testing.T) {
	user := models.User{Role: accesscontrol.RoleDev}
	user.ID = uuid.New()

	t.Run("should resolve a bearer token to a session", func(t *testing.T) {
		token, err := auth.GenerateToken(user)
		require.NoError(t, err)

		session := runSessionMiddleware(t, func(req *http.Request) {
			req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		})

		assert.True(t, session.IsAuthenticated())
		assert.Equal(t, user.ID, session.GetUserID())
		assert.Equal(t, accesscontrol.RoleDev, session.GetRole())
	})

	t.Run("should resolve the session cookie", func(t *testing.T) {
		token, err := auth.GenerateToken(user)
		require.NoError(t, err)

		session := runSessionMiddleware(t, func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
		})

		assert.True(t, session.IsAuthenticated())
		assert.Equal(t, user.ID, session.GetUserID())
	})

	t.Run("should yield NoSession without a token", func(t *testing.T) {
		session := runSessionMiddleware(t, func(req *http.Request) {})

		assert.False(t, session.IsAuthenticated())
	})

	t.Run("should yield NoSession on a garbage token", func(t *testing.T) {
		session := runSessionMiddleware(t, func(req *http.Request) {
			req.Header.Set(echo.HeaderAuthorization, "Bearer not.a.token")
		})

		assert.False(t, session.IsAuthenticated())
	})
}
