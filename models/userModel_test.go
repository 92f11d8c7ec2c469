package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleValid(t *testing.T) {
	for _, role := range []Role{RoleGuest, RoleSeller, RoleAdmin} {
		assert.True(t, role.Valid(), "role %q", role)
	}
	for _, role := range []Role{"", "Admin", "superuser", "SELLER"} {
		assert.False(t, role.Valid(), "role %q", role)
	}
}
