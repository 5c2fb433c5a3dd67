package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubscribable(t *testing.T) {
	assert.True(t, Subscribable("tasks"))
	assert.True(t, Subscribable("links"))
	assert.True(t, Subscribable("media_contacts"))

	// Perfis e log de atividades não são expostos por assinatura.
	assert.False(t, Subscribable("profiles"))
	assert.False(t, Subscribable("activity_logs"))
	assert.False(t, Subscribable(""))
}

func TestHubTracksSubscribers(t *testing.T) {
	hub := NewHub()
	assert.Equal(t, 0, hub.Count())

	a := hub.add("tasks")
	b := hub.add("links")
	assert.Equal(t, 2, hub.Count())
	assert.NotEqual(t, a, b)

	hub.remove(a)
	assert.Equal(t, 1, hub.Count())

	// Remoção repetida é inofensiva.
	hub.remove(a)
	assert.Equal(t, 1, hub.Count())

	hub.remove(b)
	assert.Equal(t, 0, hub.Count())
}
