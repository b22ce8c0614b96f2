package shared

import (
	"github.com/craftbase/appcatalog/accesscontrol"
	"github.com/craftbase/appcatalog/database/models"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func SetSession(ctx Context, session accesscontrol.Session) {
	ctx.Set("session", session)
}

// GetSession returns the session attached by the session middleware.
// NoSession marks an unauthenticated request.
func GetSession(ctx Context) accesscontrol.Session {
	session, ok := ctx.Get("session").(accesscontrol.Session)
	if !ok {
		return accesscontrol.NoSession
	}
	return session
}

func SetApp(ctx Context, app models.App) {
	ctx.Set("app", app)
}

// GetApp returns the app resolved by the app scoping middleware.
func GetApp(ctx Context) models.App {
	app, ok := ctx.Get("app").(models.App)
	if !ok {
		return models.App{}
	}
	return app
}

// GetParamUUID parses a path parameter as uuid; an unparseable value maps to
// a 404 since no resource can ever live under it.
func GetParamUUID(ctx Context, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Param(param))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(404, "resource not found").WithInternal(err)
	}
	return id, nil
}
