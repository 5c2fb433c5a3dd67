package main

import (
	"log"

	"github.com/joho/godotenv"

	"warroom-backend/database"
	"warroom-backend/firebase"
	"warroom-backend/handlers"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Erro ao carregar o arquivo .env")
	}

	if err := firebase.InitializeFirebase(); err != nil {
		log.Fatalf("Erro ao inicializar Firebase: %v", err)
	}

	// O PostgreSQL guarda apenas o log de atividades; sem ele o servidor
	// sobe mesmo assim, só não registra as ações.
	db, err := database.ConnectPostgres()
	if err != nil {
		log.Printf("PostgreSQL indisponível, log de atividades desativado: %v", err)
	} else {
		defer db.Close()
		if err := database.EnsureActivityLogTable(db); err != nil {
			log.Fatalf("Erro ao preparar tabela do log de atividades: %v", err)
		}
		handlers.InitDB(db)
	}

	LoadRoutes()
}
