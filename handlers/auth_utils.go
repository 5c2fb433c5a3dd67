package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"warroom-backend/database"
	"warroom-backend/firebase"
	"warroom-backend/models"
	"warroom-backend/utilities"
)

var db *sql.DB

// InitDB inicializa a conexão com o banco de dados usada pelo log de
// atividades. O banco é opcional: sem ele as ações seguem funcionando,
// apenas sem log.
func InitDB(conn *sql.DB) {
	utilities.LogInfo("Inicializando conexão com o banco de dados")
	db = conn
}

// AuthMiddleware verifica o ID Token do Firebase e carrega o perfil do
// usuário, colocando UID e perfil no contexto da requisição.
func AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Pega o token do header Authorization
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			utilities.LogError(fmt.Errorf("header de autorização ausente"), "Autenticação falhou")
			http.Error(w, "Authorization header missing", http.StatusUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// Verifica o token com Firebase
		verifiedToken, err := firebase.VerifyUserToken(r.Context(), tokenString)
		if err != nil {
			utilities.LogError(err, "Token inválido")
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		profile, err := firebase.GetProfile(r.Context(), verifiedToken.UID)
		if err != nil {
			utilities.LogError(err, "Erro ao carregar perfil")
			http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
			return
		}
		if profile == nil {
			// Token válido mas sem perfil: o login não foi finalizado.
			http.Error(w, "Perfil não encontrado; finalize o login", http.StatusForbidden)
			return
		}

		// Coloca o UID e o perfil no contexto da requisição
		ctx := context.WithValue(r.Context(), "userUID", verifiedToken.UID)
		ctx = context.WithValue(ctx, "userProfile", *profile)

		// Segue para o próximo handler
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// RequireActive bloqueia contas pendentes: elas autenticam, mas só veem a
// tela de espera. A regra vale no backend, não apenas na UI.
func RequireActive(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile := profileFromContext(r)
		if !profile.IsActive() {
			http.Error(w, "Conta aguardando aprovação", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	}
}

// RequireAdmin restringe a rota ao papel Admin.
func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile := profileFromContext(r)
		if !profile.IsAdmin() {
			http.Error(w, "Acesso negado", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	}
}

// uidFromContext extrai o UID colocado pelo AuthMiddleware.
func uidFromContext(r *http.Request) string {
	uid, _ := r.Context().Value("userUID").(string)
	return uid
}

// profileFromContext extrai o perfil colocado pelo AuthMiddleware.
func profileFromContext(r *http.Request) models.UserProfile {
	profile, _ := r.Context().Value("userProfile").(models.UserProfile)
	return profile
}

// writeJSON serializa a resposta com o content-type correto.
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		utilities.LogError(err, "Erro ao serializar resposta JSON")
	}
}

// logActivity registra a ação no log de atividades em melhor esforço:
// falhas geram apenas um aviso e nunca abortam a ação que as originou.
func logActivity(uid, action, entity, entityID, detail string) {
	if db == nil {
		return
	}
	if err := database.AppendActivity(db, uid, action, entity, entityID, detail); err != nil {
		utilities.LogWarn("Registro no log de atividades falhou: %v", err)
	}
}
