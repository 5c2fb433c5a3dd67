package models

import "time"

// ActivityLog é um registro do log de atividades lido pelo painel
// administrativo. Persiste no PostgreSQL; a escrita é best-effort e nunca
// bloqueia a ação que a originou.
type ActivityLog struct {
	ID        int64     `json:"id"`
	UserUID   string    `json:"user_uid"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  string    `json:"entity_id,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
