package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"warroom-backend/navigation"
)

// GetTabsHandler devolve as abas visíveis para o papel do usuário atual;
// o cliente mapeia a aba selecionada para a visão e para o histórico do
// navegador.
func GetTabsHandler(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r)
	writeJSON(w, http.StatusOK, navigation.TabsForRole(profile.Role))
}

// GetTabHandler resolve uma aba pela chave.
func GetTabHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tab, ok := navigation.Lookup(vars["key"])
	if !ok {
		http.Error(w, "Aba desconhecida", http.StatusNotFound)
		return
	}

	profile := profileFromContext(r)
	if tab.RequiredRole != "" && tab.RequiredRole != profile.Role {
		http.Error(w, "Acesso negado", http.StatusForbidden)
		return
	}
	writeJSON(w, http.StatusOK, tab)
}
