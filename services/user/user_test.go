package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omnispa/models"
)

func TestLogoutRevokesUnderSessionRole(t *testing.T) {
	var gotRole, gotSubject string
	svc := &DefaultUserService{
		revoke: func(role, subject string) error {
			gotRole, gotSubject = role, subject
			return nil
		},
	}

	// A customer session is revoked under the customer key.
	require.NoError(t, svc.Logout(models.Actor{Role: models.ActorCustomer, ID: "user-1"}))
	assert.Equal(t, "user", gotRole)
	assert.Equal(t, "user-1", gotSubject)

	// An admin logged in under the admin role; the revocation must hit the
	// same key or the token survives until TTL expiry.
	require.NoError(t, svc.Logout(models.Actor{Role: models.ActorAdmin, ID: "user-2"}))
	assert.Equal(t, "admin", gotRole)
	assert.Equal(t, "user-2", gotSubject)
}

func TestLogoutDefaultsToCustomerRole(t *testing.T) {
	var gotRole string
	svc := &DefaultUserService{
		revoke: func(role, subject string) error {
			gotRole = role
			return nil
		},
	}
	require.NoError(t, svc.Logout(models.Actor{ID: "user-3"}))
	assert.Equal(t, "user", gotRole)
}
