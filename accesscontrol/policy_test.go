package accesscontrol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllows(t *testing.T) {
	t.Run("content mutation is allowed for admins and devs only", func(t *testing.T) {
		assert.True(t, Allows(RoleAdmin, ContentEditors))
		assert.True(t, Allows(RoleDev, ContentEditors))
		assert.False(t, Allows(RoleViewer, ContentEditors))
	})

	t.Run("destructive deletes are admin only", func(t *testing.T) {
		assert.True(t, Allows(RoleAdmin, AdminOnly))
		assert.False(t, Allows(RoleDev, AdminOnly))
		assert.False(t, Allows(RoleViewer, AdminOnly))
	})

	t.Run("empty required list permits every role", func(t *testing.T) {
		for _, role := range []Role{RoleAdmin, RoleDev, RoleViewer} {
			assert.True(t, Allows(role, nil))
		}
	})

	t.Run("unknown role is never allowed", func(t *testing.T) {
		assert.False(t, Allows(Role("SuperUser"), ContentEditors))
		assert.False(t, Allows(Role(""), AdminOnly))
	})
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleAdmin))
	assert.True(t, ValidRole(RoleDev))
	assert.True(t, ValidRole(RoleViewer))
	assert.False(t, ValidRole(Role("root")))
	assert.False(t, ValidRole(Role("admin"))) // roles are case sensitive
}
