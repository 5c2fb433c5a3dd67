package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"warroom-backend/database"
	"warroom-backend/firebase"
	"warroom-backend/models"
	"warroom-backend/session"
	"warroom-backend/utilities"
)

type FinalizeLoginInput struct {
	IDToken string `json:"idToken"`
}

// FinalizeLoginResponse devolve o estado da sessão resultante. Contas
// recém-criadas caem em pending_approval; administradores precisam
// aprová-las antes do primeiro acesso às visões.
type FinalizeLoginResponse struct {
	State   string              `json:"state"`
	Profile *models.UserProfile `json:"profile,omitempty"`
	Message string              `json:"message,omitempty"`
}

// FinalizeLoginHandler processa um ID Token do Firebase: verifica a
// identidade, busca/cria o perfil e responde com o estado da sessão.
func FinalizeLoginHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogInfo("Recebida requisição para finalizar login com ID Token do Firebase.")

	var input FinalizeLoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utilities.LogError(err, "Erro ao decodificar corpo da requisição de login")
		http.Error(w, "Corpo da requisição inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if strings.TrimSpace(input.IDToken) == "" {
		utilities.LogError(nil, "ID Token não fornecido no corpo da requisição")
		http.Error(w, "ID Token é obrigatório", http.StatusBadRequest)
		return
	}

	ctrl := session.NewController()
	if err := ctrl.StartSignIn(); err != nil {
		utilities.LogError(err, "Estado de sessão inconsistente")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	verifiedToken, err := firebase.VerifyUserToken(r.Context(), input.IDToken)
	if err != nil {
		utilities.LogError(err, "Falha ao verificar ID Token do Firebase")
		ctrl.Fail(err)
		// Não exponha detalhes do erro ao cliente
		writeJSON(w, http.StatusUnauthorized, FinalizeLoginResponse{
			State:   string(ctrl.State()),
			Message: "Token inválido ou falha na verificação",
		})
		return
	}
	utilities.LogInfo("ID Token verificado com sucesso para Firebase UID: %s", verifiedToken.UID)

	profile, err := firebase.CheckOrCreateProfile(r.Context(), verifiedToken)
	if err != nil {
		utilities.LogError(err, "Erro ao sincronizar perfil do usuário")
		ctrl.Fail(err)
		writeJSON(w, http.StatusInternalServerError, FinalizeLoginResponse{
			State:   string(ctrl.State()),
			Message: "Erro interno do servidor ao processar usuário",
		})
		return
	}

	if err := ctrl.ResolveIdentity(profile.UID, profile.Status); err != nil {
		utilities.LogError(err, "Estado de sessão inconsistente ao resolver identidade")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	logActivity(profile.UID, "login", "session", "", "")
	writeJSON(w, http.StatusOK, FinalizeLoginResponse{
		State:   string(ctrl.State()),
		Profile: profile,
	})
}

// LogoutHandler registra o sign-out explícito. A revogação do token fica
// a cargo do SDK do cliente; aqui só registramos a atividade.
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	uid := uidFromContext(r)
	utilities.LogInfo("Logout do usuário %s", uid)
	logActivity(uid, "logout", "session", "", "")
	w.WriteHeader(http.StatusNoContent)
}

// ProfileHandler retorna o perfil do usuário atual. É a única rota de
// dados acessível a contas pendentes.
func ProfileHandler(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r)
	writeJSON(w, http.StatusOK, profile)
}

// GetAllUsersHandler lista os perfis para o painel administrativo.
func GetAllUsersHandler(w http.ResponseWriter, r *http.Request) {
	profiles, err := firebase.ListProfiles(r.Context())
	if err != nil {
		utilities.LogError(err, "Erro ao listar perfis")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}

// ApproveUserHandler aprova uma conta pendente (status -> Active).
func ApproveUserHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	uid := vars["uid"]

	if err := firebase.ApproveProfile(r.Context(), uid); err != nil {
		utilities.LogError(err, "Erro ao aprovar perfil")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	utilities.LogInfo("Perfil %s aprovado por %s", uid, uidFromContext(r))
	logActivity(uidFromContext(r), "approve_user", "profile", uid, "")
	w.WriteHeader(http.StatusNoContent)
}

// GetActivityLogsHandler devolve os registros recentes do log de
// atividades (painel administrativo).
func GetActivityLogsHandler(w http.ResponseWriter, r *http.Request) {
	if db == nil {
		http.Error(w, "Log de atividades indisponível", http.StatusServiceUnavailable)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	logs, err := database.ListActivities(db, limit)
	if err != nil {
		utilities.LogError(err, "Erro ao buscar log de atividades")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}
