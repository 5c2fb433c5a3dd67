package models

import "time"

// PublishedLink representa um link publicado exibido na sala de imprensa.
// CreatedAt precisa ser um instante válido para o link entrar nas visões
// agrupadas por semana/dia; registros sem timestamp são excluídos do
// agrupamento (nunca causam erro).
type PublishedLink struct {
	ID        string     `json:"id" firestore:"-"`
	Title     string     `json:"title" firestore:"title"`
	URL       string     `json:"url" firestore:"url"`
	ImageURL  string     `json:"imageUrl,omitempty" firestore:"imageUrl,omitempty"`
	Platform  string     `json:"platform" firestore:"platform"`
	CreatedAt *time.Time `json:"createdAt,omitempty" firestore:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" firestore:"updatedAt,omitempty"`
}

// HasTimestamp indica se o link pode participar do agrupamento por data.
func (l PublishedLink) HasTimestamp() bool {
	return l.CreatedAt != nil && !l.CreatedAt.IsZero()
}
