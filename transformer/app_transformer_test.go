package transformer

import (
	"testing"
	"time"

	"github.com/craftbase/appcatalog/database/models"
	"github.com/craftbase/appcatalog/dtos"
	"github.com/craftbase/appcatalog/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAppCreateRequestToModel(t *testing.T) {
	t.Run("should apply the documented defaults", func(t *testing.T) {
		creator := uuid.New()
		app := AppCreateRequestToModel(dtos.AppCreateRequest{
			Name:        "Portal",
			ClientName:  "Acme",
			Description: "customer facing portal",
		}, creator)

		assert.Equal(t, models.AppStatusActive, app.Status)
		assert.Equal(t, "1.0.0", app.Version)
		assert.NotNil(t, app.Tags)
		assert.Empty(t, app.Tags)
		assert.Nil(t, app.GithubRepoURL)
		assert.Equal(t, creator, app.CreatedByID)
	})

	t.Run("should keep explicit values", func(t *testing.T) {
		app := AppCreateRequestToModel(dtos.AppCreateRequest{
			Name:          "Portal",
			ClientName:    "Acme",
			Description:   "customer facing portal",
			Version:       "3.1.0",
			Status:        "Internal",
			Tags:          []string{"erp"},
			GithubRepoURL: "https://github.com/acme/portal",
		}, uuid.New())

		assert.Equal(t, models.AppStatusInternal, app.Status)
		assert.Equal(t, "3.1.0", app.Version)
		assert.Equal(t, []string{"erp"}, []string(app.Tags))
		assert.Equal(t, "https://github.com/acme/portal", *app.GithubRepoURL)
	})
}

func TestApplyAppPatchRequestToModel(t *testing.T) {
	base := func() models.App {
		return models.App{
			Name:        "Portal",
			ClientName:  "Acme",
			Description: "customer facing portal",
			Version:     "2.0.0",
			Status:      models.AppStatusActive,
		}
	}

	t.Run("should report false for an empty patch", func(t *testing.T) {
		app := base()
		assert.False(t, ApplyAppPatchRequestToModel(dtos.AppPatchRequest{}, &app))
		assert.Equal(t, base(), app)
	})

	t.Run("should only overwrite present fields", func(t *testing.T) {
		app := base()
		updated := ApplyAppPatchRequestToModel(dtos.AppPatchRequest{
			Status: utils.Ptr("Deprecated"),
		}, &app)

		assert.True(t, updated)
		assert.Equal(t, models.AppStatusDeprecated, app.Status)
		assert.Equal(t, "Portal", app.Name)
		assert.Equal(t, "2.0.0", app.Version)
	})

	t.Run("should clear an optional field patched to empty", func(t *testing.T) {
		app := base()
		app.GithubRepoURL = utils.Ptr("https://github.com/acme/portal")

		updated := ApplyAppPatchRequestToModel(dtos.AppPatchRequest{
			GithubRepoURL: utils.Ptr(""),
		}, &app)

		assert.True(t, updated)
		assert.Nil(t, app.GithubRepoURL)
	})

	t.Run("should touch github metadata fields", func(t *testing.T) {
		now := time.Now()
		app := base()

		updated := ApplyAppPatchRequestToModel(dtos.AppPatchRequest{
			Stars:      utils.Ptr(7),
			LastCommit: &now,
		}, &app)

		assert.True(t, updated)
		assert.Equal(t, 7, *app.Stars)
		assert.Equal(t, now, *app.LastCommit)
	})
}
