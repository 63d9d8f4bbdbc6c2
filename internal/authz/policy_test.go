package authz_test

import (
	"testing"

	"go-jobboard-backend/internal/authz"
	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestHasRole(t *testing.T) {
	seeker := authz.Identity{ID: "alice", Role: domain.RoleSeeker}
	admin := authz.Identity{ID: "root", Role: domain.RoleAdmin}

	assert.True(t, authz.HasRole(seeker, domain.RoleSeeker))
	assert.False(t, authz.HasRole(seeker, domain.RoleCompany))
	assert.True(t, authz.HasRole(seeker, domain.RoleCompany, domain.RoleSeeker))

	t.Run("Admin passes every role gate", func(t *testing.T) {
		assert.True(t, authz.HasRole(admin, domain.RoleSeeker))
		assert.True(t, authz.HasRole(admin, domain.RoleCompany))
	})

	t.Run("Empty role matches nothing", func(t *testing.T) {
		assert.False(t, authz.HasRole(authz.Identity{ID: "x"}, domain.RoleSeeker))
	})
}

func TestOwns(t *testing.T) {
	alice := authz.Identity{ID: "alice", Role: domain.RoleSeeker}
	admin := authz.Identity{ID: "root", Role: domain.RoleAdmin}

	assert.True(t, authz.Owns(alice, "alice"))
	assert.False(t, authz.Owns(alice, "bob"))

	t.Run("Admin overrides ownership", func(t *testing.T) {
		assert.True(t, authz.Owns(admin, "bob"))
	})

	t.Run("Anonymous identity never owns anything", func(t *testing.T) {
		assert.False(t, authz.Owns(authz.Identity{}, ""))
		assert.False(t, authz.Owns(authz.Identity{}, "alice"))
	})
}
