package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"warroom-backend/handlers"
	"warroom-backend/utilities"
)

func LoadRoutes() {
	// Inicializar o sistema de logs
	utilities.InitLogger()

	r := mux.NewRouter()

	// Aplicar o middleware de logging global em todas as rotas
	r.Use(handlers.LoggingMiddleware)

	// --- Autenticação e perfil ---
	// finalize-login é a única rota sem AuthMiddleware: é ela que cria o
	// perfil. Perfil é a única rota de dados aberta a contas pendentes.
	r.HandleFunc("/auth/finalize-login", handlers.FinalizeLoginHandler).Methods("POST")
	r.HandleFunc("/auth/logout", handlers.AuthMiddleware(handlers.LogoutHandler)).Methods("POST")
	r.HandleFunc("/user/profile", handlers.AuthMiddleware(handlers.ProfileHandler)).Methods("GET")

	// --- Tarefas (quadro de estratégia e resposta rápida) ---
	r.HandleFunc("/tasks/create", protected(handlers.CreateTaskHandler)).Methods("POST")
	r.HandleFunc("/tasks/list", protected(handlers.ListTasksHandler)).Methods("GET")
	r.HandleFunc("/tasks/board", protected(handlers.BoardHandler)).Methods("GET")
	r.HandleFunc("/tasks/rapid-response", protected(handlers.RapidResponseHandler)).Methods("GET")
	r.HandleFunc("/tasks/update/{id}", protected(handlers.UpdateTaskHandler)).Methods("PUT")
	r.HandleFunc("/tasks/sop/{id}", protected(handlers.UpdateTaskSOPHandler)).Methods("PUT")
	r.HandleFunc("/tasks/delete/{id}", protected(handlers.DeleteTaskHandler)).Methods("DELETE")

	// --- Links publicados (sala de imprensa) ---
	r.HandleFunc("/links/create", protected(handlers.CreateLinkHandler)).Methods("POST")
	r.HandleFunc("/links/list", protected(handlers.ListLinksHandler)).Methods("GET")
	r.HandleFunc("/links/newsroom", protected(handlers.NewsroomHandler)).Methods("GET")
	r.HandleFunc("/links/metadata", protected(handlers.LinkMetadataHandler)).Methods("GET")
	r.HandleFunc("/links/update/{id}", protected(handlers.UpdateLinkHandler)).Methods("PUT")
	r.HandleFunc("/links/delete/{id}", protected(handlers.DeleteLinkHandler)).Methods("DELETE")

	// --- Planos mestres ---
	r.HandleFunc("/plans/create", protected(handlers.CreatePlanHandler)).Methods("POST")
	r.HandleFunc("/plans/list", protected(handlers.ListPlansHandler)).Methods("GET")
	r.HandleFunc("/plans/info/{id}", protected(handlers.GetPlanHandler)).Methods("GET")
	r.HandleFunc("/plans/items/{id}", protected(handlers.UpdatePlanItemsHandler)).Methods("PUT")
	r.HandleFunc("/plans/items/{id}/toggle", protected(handlers.TogglePlanItemHandler)).Methods("POST")
	r.HandleFunc("/plans/delete/{id}", protected(handlers.DeletePlanHandler)).Methods("DELETE")

	// --- Diretório de ativos (canais e contatos de imprensa) ---
	r.HandleFunc("/channels/create", protected(handlers.CreateChannelHandler)).Methods("POST")
	r.HandleFunc("/channels/list", protected(handlers.ListChannelsHandler)).Methods("GET")
	r.HandleFunc("/channels/update/{id}", protected(handlers.UpdateChannelHandler)).Methods("PUT")
	r.HandleFunc("/channels/delete/{id}", protected(handlers.DeleteChannelHandler)).Methods("DELETE")
	r.HandleFunc("/media-contacts/create", protected(handlers.CreateMediaContactHandler)).Methods("POST")
	r.HandleFunc("/media-contacts/list", protected(handlers.ListMediaContactsHandler)).Methods("GET")
	r.HandleFunc("/media-contacts/update/{id}", protected(handlers.UpdateMediaContactHandler)).Methods("PUT")
	r.HandleFunc("/media-contacts/delete/{id}", protected(handlers.DeleteMediaContactHandler)).Methods("DELETE")

	// --- Formulários declarativos e navegação ---
	r.HandleFunc("/forms/{entity}", protected(handlers.GetFormSchemaHandler)).Methods("GET")
	r.HandleFunc("/forms/{entity}/submit", protected(handlers.SubmitFormHandler)).Methods("POST")
	r.HandleFunc("/navigation/tabs", handlers.AuthMiddleware(handlers.GetTabsHandler)).Methods("GET")
	r.HandleFunc("/navigation/tabs/{key}", handlers.AuthMiddleware(handlers.GetTabHandler)).Methods("GET")

	// --- Painel administrativo (somente Admin) ---
	r.HandleFunc("/admin/users/list", admin(handlers.GetAllUsersHandler)).Methods("GET")
	r.HandleFunc("/admin/users/approve/{uid}", admin(handlers.ApproveUserHandler)).Methods("PUT")
	r.HandleFunc("/admin/logs", admin(handlers.GetActivityLogsHandler)).Methods("GET")

	// --- Assinaturas em tempo real (token via query param) ---
	r.HandleFunc("/ws/{collection}", handlers.SubscribeCollectionHandler).Methods("GET")

	// Configuração do CORS
	headers := gorillahandlers.AllowedHeaders([]string{"X-Requested-With", "Content-Type", "Authorization"})
	methods := gorillahandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})

	allowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if allowedOriginsEnv == "" {
		allowedOrigins = []string{"*"}
		utilities.LogInfo("CORS_ALLOWED_ORIGINS não definida, permitindo todas as origens ('*'). Defina para maior segurança em produção.")
	} else {
		allowedOrigins = strings.Split(allowedOriginsEnv, ",")
	}
	origins := gorillahandlers.AllowedOrigins(allowedOrigins)
	utilities.LogInfo("Configurando CORS com origens permitidas: %v", allowedOrigins)

	handler := gorillahandlers.CORS(headers, methods, origins)(r)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	utilities.LogInfo("Servidor iniciado na porta %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}

// protected exige sessão autenticada E conta aprovada.
func protected(h http.HandlerFunc) http.HandlerFunc {
	return handlers.AuthMiddleware(handlers.RequireActive(h))
}

// admin exige conta aprovada com papel Admin.
func admin(h http.HandlerFunc) http.HandlerFunc {
	return handlers.AuthMiddleware(handlers.RequireActive(handlers.RequireAdmin(h)))
}
