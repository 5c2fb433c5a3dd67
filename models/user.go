package models

import "time"

// Papéis e status de aprovação de um perfil. Contas Pending podem
// autenticar mas só enxergam a tela de espera; apenas Admin lista outros
// usuários e consulta o log de atividades.
const (
	RoleAdmin  = "Admin"
	RoleMember = "Member"

	ProfileStatusActive  = "Active"
	ProfileStatusPending = "Pending"
)

// UserProfile é o perfil de um usuário autenticado, armazenado no
// Firestore e chaveado pelo UID do Firebase.
type UserProfile struct {
	UID         string    `json:"uid" firestore:"-"`
	DisplayName string    `json:"displayName,omitempty" firestore:"displayName,omitempty"`
	Email       string    `json:"email,omitempty" firestore:"email,omitempty"`
	Role        string    `json:"role" firestore:"role"`
	Status      string    `json:"status" firestore:"status"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
}

// IsAdmin informa se o perfil pode acessar o painel administrativo.
func (p UserProfile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// IsActive informa se o perfil já foi aprovado por um administrador.
func (p UserProfile) IsActive() bool {
	return p.Status == ProfileStatusActive
}
