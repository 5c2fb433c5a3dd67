package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"warroom-backend/firebase"
	"warroom-backend/realtime"
	"warroom-backend/session"
	"warroom-backend/utilities"
)

var hub = realtime.NewHub()

// SubscribeCollectionHandler abre uma assinatura WebSocket sobre uma
// coleção. O navegador não envia headers no upgrade, então o ID Token vem
// como query param. O ciclo de vida da conexão segue a máquina de sessão:
// a identidade é resolvida no handshake e o teardown acontece na
// desconexão (os callbacks param; escritas em voo não são abortadas).
func SubscribeCollectionHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	collection := vars["collection"]

	ctrl := session.NewController()
	if err := ctrl.StartSignIn(); err != nil {
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	token := r.URL.Query().Get("token")
	if token == "" {
		ctrl.Fail(nil)
		http.Error(w, "Token é obrigatório", http.StatusUnauthorized)
		return
	}

	verifiedToken, err := firebase.VerifyUserToken(r.Context(), token)
	if err != nil {
		utilities.LogError(err, "Token inválido na assinatura de coleção")
		ctrl.Fail(err)
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	profile, err := firebase.GetProfile(r.Context(), verifiedToken.UID)
	if err != nil || profile == nil {
		utilities.LogError(err, "Perfil indisponível na assinatura de coleção")
		ctrl.Fail(err)
		http.Error(w, "Perfil não encontrado; finalize o login", http.StatusForbidden)
		return
	}

	if err := ctrl.ResolveIdentity(profile.UID, profile.Status); err != nil {
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}
	defer ctrl.SignOut()

	// Contas pendentes autenticam mas não assinam coleções de dados.
	if ctrl.State() != session.StateActive {
		http.Error(w, "Conta aguardando aprovação", http.StatusForbidden)
		return
	}

	hub.ServeWS(w, r, collection)
}
