// Package session modela o ciclo de vida de autenticação de um usuário
// do dashboard como uma máquina de estados dirigida pelas notificações
// do serviço de identidade e pelo status do perfil armazenado.
package session

import (
	"fmt"
	"sync"

	"warroom-backend/models"
)

// Estados possíveis de uma sessão.
type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticating  State = "authenticating"
	StatePendingApproval State = "pending_approval"
	StateActive          State = "active"
)

// Controller acompanha o estado de uma sessão. Seguro para uso
// concorrente: o hub de tempo real e os handlers compartilham a mesma
// instância por conexão.
type Controller struct {
	mu      sync.Mutex
	state   State
	uid     string
	lastErr string
}

// NewController cria uma sessão no estado inicial, sem identidade.
func NewController() *Controller {
	return &Controller{state: StateUnauthenticated}
}

// State devolve o estado corrente.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// UID devolve a identidade resolvida, vazia fora de Active/PendingApproval.
func (c *Controller) UID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.uid
}

// LastError devolve a mensagem da última falha de sign-in, se houver.
func (c *Controller) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// StartSignIn inicia o fluxo de autenticação. Só é legal a partir de
// Unauthenticated.
func (c *Controller) StartSignIn() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateUnauthenticated {
		return fmt.Errorf("transição inválida: sign-in a partir de %s", c.state)
	}
	c.state = StateAuthenticating
	c.lastErr = ""
	return nil
}

// ResolveIdentity conclui a autenticação: o serviço externo resolveu a
// identidade e o perfil foi buscado ou criado (com status Pending no
// primeiro acesso). O status do perfil decide o estado final.
func (c *Controller) ResolveIdentity(uid, profileStatus string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateAuthenticating {
		return fmt.Errorf("transição inválida: resolução de identidade a partir de %s", c.state)
	}
	c.uid = uid
	if profileStatus == models.ProfileStatusActive {
		c.state = StateActive
	} else {
		c.state = StatePendingApproval
	}
	return nil
}

// Fail registra uma falha de sign-in e volta para Unauthenticated.
// Não existe retry/backoff local: a mensagem fica visível e o usuário
// decide tentar de novo.
func (c *Controller) Fail(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateUnauthenticated
	c.uid = ""
	if err != nil {
		c.lastErr = err.Error()
	}
}

// SignOut encerra a sessão explicitamente, de qualquer estado autenticado.
func (c *Controller) SignOut() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateUnauthenticated
	c.uid = ""
	c.lastErr = ""
}
