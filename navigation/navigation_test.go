package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warroom-backend/models"
)

func TestTabsOrderAndPaths(t *testing.T) {
	all := Tabs()
	require.Len(t, all, 7)
	assert.Equal(t, "dashboard", all[0].Key)
	assert.Equal(t, "/", all[0].Path)
	assert.Equal(t, "admin", all[6].Key)
}

func TestTabsForRole(t *testing.T) {
	member := TabsForRole(models.RoleMember)
	for _, tab := range member {
		assert.NotEqual(t, "admin", tab.Key)
	}
	assert.Len(t, member, 6)

	admin := TabsForRole(models.RoleAdmin)
	assert.Len(t, admin, 7)
}

func TestLookup(t *testing.T) {
	tab, ok := Lookup("newsroom")
	require.True(t, ok)
	assert.Equal(t, []string{"links"}, tab.Collections)

	_, ok = Lookup("inexistente")
	assert.False(t, ok)
}
