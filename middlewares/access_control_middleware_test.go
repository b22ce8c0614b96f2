package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/craftbase/appcatalog/accesscontrol"
	"github.com/craftbase/appcatalog/shared"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runWithRole(t *testing.T, role accesscontrol.Role, authenticated bool, required []accesscontrol.Role) error {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	ctx := echo.New().NewContext(req, httptest.NewRecorder())

	if authenticated {
		shared.SetSession(ctx, accesscontrol.NewSession(uuid.New(), role))
	}

	handler := RequireRole(required...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return handler(ctx)
}

func TestRequireRole(t *testing.T) {
	t.Run("should reject unauthenticated requests with 401", func(t *testing.T) {
		err := runWithRole(t, "", false, accesscontrol.ContentEditors)
		require.Error(t, err)

		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("should reject a viewer on an editor route with 403", func(t *testing.T) {
		err := runWithRole(t, accesscontrol.RoleViewer, true, accesscontrol.ContentEditors)
		require.Error(t, err)

		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusForbidden, httpErr.Code)
	})

	t.Run("should reject a dev on an admin only route with 403", func(t *testing.T) {
		err := runWithRole(t, accesscontrol.RoleDev, true, accesscontrol.AdminOnly)
		require.Error(t, err)

		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusForbidden, httpErr.Code)
	})

	t.Run("should pass an admin everywhere", func(t *testing.T) {
		assert.NoError(t, runWithRole(t, accesscontrol.RoleAdmin, true, accesscontrol.AdminOnly))
		assert.NoError(t, runWithRole(t, accesscontrol.RoleAdmin, true, accesscontrol.ContentEditors))
	})

	t.Run("should pass a dev on editor routes", func(t *testing.T) {
		assert.NoError(t, runWithRole(t, accesscontrol.RoleDev, true, accesscontrol.ContentEditors))
	})
}
