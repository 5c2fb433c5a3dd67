package database

import (
	"database/sql"
	"fmt"

	"warroom-backend/models"
)

// EnsureActivityLogTable cria a tabela do log de atividades se ainda não
// existir. O log alimenta a aba de logs do painel administrativo.
func EnsureActivityLogTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS activity_logs (
			id SERIAL PRIMARY KEY,
			user_uid TEXT NOT NULL,
			action TEXT NOT NULL,
			entity TEXT NOT NULL,
			entity_id TEXT DEFAULT '',
			detail TEXT DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("erro ao criar tabela activity_logs: %w", err)
	}
	return nil
}

// AppendActivity insere um registro no log de atividades.
func AppendActivity(db *sql.DB, userUID, action, entity, entityID, detail string) error {
	query := `
		INSERT INTO activity_logs (user_uid, action, entity, entity_id, detail)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := db.Exec(query, userUID, action, entity, entityID, detail); err != nil {
		return fmt.Errorf("erro ao inserir registro no log de atividades: %w", err)
	}
	return nil
}

// ListActivities devolve os registros mais recentes do log, limitados.
func ListActivities(db *sql.DB, limit int) ([]models.ActivityLog, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `
		SELECT id, user_uid, action, entity, entity_id, detail, created_at
		FROM activity_logs
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar log de atividades: %w", err)
	}
	defer rows.Close()

	logs := []models.ActivityLog{}
	for rows.Next() {
		var entry models.ActivityLog
		err := rows.Scan(&entry.ID, &entry.UserUID, &entry.Action, &entry.Entity,
			&entry.EntityID, &entry.Detail, &entry.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler registro do log: %w", err)
		}
		logs = append(logs, entry)
	}
	return logs, rows.Err()
}
