package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warroom-backend/models"
)

func TestSignInActiveProfile(t *testing.T) {
	c := NewController()
	assert.Equal(t, StateUnauthenticated, c.State())

	require.NoError(t, c.StartSignIn())
	assert.Equal(t, StateAuthenticating, c.State())

	require.NoError(t, c.ResolveIdentity("uid-1", models.ProfileStatusActive))
	assert.Equal(t, StateActive, c.State())
	assert.Equal(t, "uid-1", c.UID())
}

func TestFirstSignInGoesToPendingApproval(t *testing.T) {
	c := NewController()
	require.NoError(t, c.StartSignIn())

	// Primeiro acesso: perfil criado com status Pending.
	require.NoError(t, c.ResolveIdentity("uid-2", models.ProfileStatusPending))
	assert.Equal(t, StatePendingApproval, c.State())
}

func TestSignInFailureReturnsToUnauthenticated(t *testing.T) {
	c := NewController()
	require.NoError(t, c.StartSignIn())

	c.Fail(errors.New("token inválido"))
	assert.Equal(t, StateUnauthenticated, c.State())
	assert.Equal(t, "token inválido", c.LastError())
	assert.Empty(t, c.UID())

	// Uma nova tentativa limpa a mensagem anterior.
	require.NoError(t, c.StartSignIn())
	assert.Empty(t, c.LastError())
}

func TestIllegalTransitions(t *testing.T) {
	c := NewController()

	// Resolver identidade sem sign-in iniciado.
	assert.Error(t, c.ResolveIdentity("uid", models.ProfileStatusActive))

	require.NoError(t, c.StartSignIn())
	// Sign-in duplicado enquanto autentica.
	assert.Error(t, c.StartSignIn())

	require.NoError(t, c.ResolveIdentity("uid", models.ProfileStatusActive))
	// Sign-in com sessão ativa.
	assert.Error(t, c.StartSignIn())
}

func TestSignOutFromAnyAuthenticatedState(t *testing.T) {
	c := NewController()
	require.NoError(t, c.StartSignIn())
	require.NoError(t, c.ResolveIdentity("uid", models.ProfileStatusPending))

	c.SignOut()
	assert.Equal(t, StateUnauthenticated, c.State())
	assert.Empty(t, c.UID())

	// O ciclo pode recomeçar normalmente.
	require.NoError(t, c.StartSignIn())
}
