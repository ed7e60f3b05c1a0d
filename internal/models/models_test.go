package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusApproved, StatusRejected} {
		assert.True(t, ValidStatus(s), s)
	}
	for _, s := range []string{"", "Approved", "archived", "banned"} {
		assert.False(t, ValidStatus(s), s)
	}
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleAdmin))
	assert.True(t, ValidRole(RoleDeveloper))
	assert.False(t, ValidRole("user"))
	assert.False(t, ValidRole(""))
}

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory(CategoryWebsite))
	assert.True(t, ValidCategory(CategoryWebApp))
	assert.False(t, ValidCategory("website"))
	assert.False(t, ValidCategory("MobileApp"))
}
