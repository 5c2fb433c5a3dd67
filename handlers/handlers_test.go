package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warroom-backend/forms"
	"warroom-backend/models"
	"warroom-backend/navigation"
)

// withProfile injeta o perfil no contexto como faz o AuthMiddleware.
func withProfile(r *http.Request, profile models.UserProfile) *http.Request {
	ctx := context.WithValue(r.Context(), "userUID", profile.UID)
	ctx = context.WithValue(ctx, "userProfile", profile)
	return r.WithContext(ctx)
}

func TestGetFormSchemaHandler(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/forms/{entity}", GetFormSchemaHandler).Methods("GET")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/forms/task", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Entity        string                  `json:"entity"`
		Fields        []forms.FieldDescriptor `json:"fields"`
		InitialValues map[string]string       `json:"initialValues"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "task", payload.Entity)
	assert.NotEmpty(t, payload.Fields)
	// Estado inicial vem do DefaultValue de cada campo.
	assert.Equal(t, models.StatusToDo, payload.InitialValues["status"])
	assert.Equal(t, "", payload.InitialValues["title"])

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/forms/inexistente", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetTabsHandlerFiltersByRole(t *testing.T) {
	member := models.UserProfile{UID: "u1", Role: models.RoleMember, Status: models.ProfileStatusActive}

	rec := httptest.NewRecorder()
	GetTabsHandler(rec, withProfile(httptest.NewRequest("GET", "/navigation/tabs", nil), member))
	require.Equal(t, http.StatusOK, rec.Code)

	var tabs []navigation.Tab
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tabs))
	for _, tab := range tabs {
		assert.NotEqual(t, "admin", tab.Key)
	}

	adminProfile := models.UserProfile{UID: "u2", Role: models.RoleAdmin, Status: models.ProfileStatusActive}
	rec = httptest.NewRecorder()
	GetTabsHandler(rec, withProfile(httptest.NewRequest("GET", "/navigation/tabs", nil), adminProfile))
	var adminTabs []navigation.Tab
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &adminTabs))
	assert.Len(t, adminTabs, len(tabs)+1)
}

func TestGetTabHandlerRoleGate(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/navigation/tabs/{key}", GetTabHandler).Methods("GET")

	member := models.UserProfile{UID: "u1", Role: models.RoleMember, Status: models.ProfileStatusActive}

	// A aba admin é negada no backend, não apenas escondida na UI.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, withProfile(httptest.NewRequest("GET", "/navigation/tabs/admin", nil), member))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, withProfile(httptest.NewRequest("GET", "/navigation/tabs/newsroom", nil), member))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, withProfile(httptest.NewRequest("GET", "/navigation/tabs/nada", nil), member))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRequireActiveBlocksPendingAccounts(t *testing.T) {
	called := false
	handler := RequireActive(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	pending := models.UserProfile{UID: "u3", Role: models.RoleMember, Status: models.ProfileStatusPending}
	rec := httptest.NewRecorder()
	handler(rec, withProfile(httptest.NewRequest("GET", "/tasks/list", nil), pending))

	// Conta pendente autentica mas fica restrita à tela de espera.
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)

	active := models.UserProfile{UID: "u4", Role: models.RoleMember, Status: models.ProfileStatusActive}
	rec = httptest.NewRecorder()
	handler(rec, withProfile(httptest.NewRequest("GET", "/tasks/list", nil), active))
	assert.True(t, called)
}

func TestRequireAdmin(t *testing.T) {
	handler := RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	member := models.UserProfile{UID: "u5", Role: models.RoleMember, Status: models.ProfileStatusActive}
	rec := httptest.NewRecorder()
	handler(rec, withProfile(httptest.NewRequest("GET", "/admin/logs", nil), member))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	adminProfile := models.UserProfile{UID: "u6", Role: models.RoleAdmin, Status: models.ProfileStatusActive}
	rec = httptest.NewRecorder()
	handler(rec, withProfile(httptest.NewRequest("GET", "/admin/logs", nil), adminProfile))
	assert.Equal(t, http.StatusOK, rec.Code)
}
