package firebase

import (
	"context"
	"fmt"
	"os"
	"sync"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

var (
	initOnce        sync.Once
	app             *firebase.App
	authClient      *auth.Client
	firestoreClient *firestore.Client
	initErr         error
)

// InitializeFirebase inicializa o app do Firebase e os clientes de Auth e
// Firestore a partir do arquivo de credenciais. Idempotente: chamadas
// subsequentes reutilizam os clientes já criados.
func InitializeFirebase() error {
	initOnce.Do(func() {
		credentialsPath := os.Getenv("FIREBASE_CREDENTIALS_PATH")
		if credentialsPath == "" {
			initErr = fmt.Errorf("FIREBASE_CREDENTIALS_PATH não está definido nas variáveis de ambiente")
			return
		}

		ctx := context.Background()
		opt := option.WithCredentialsFile(credentialsPath)

		app, initErr = firebase.NewApp(ctx, nil, opt)
		if initErr != nil {
			initErr = fmt.Errorf("erro ao inicializar Firebase: %w", initErr)
			return
		}

		authClient, initErr = app.Auth(ctx)
		if initErr != nil {
			initErr = fmt.Errorf("erro ao obter cliente de Auth: %w", initErr)
			return
		}

		firestoreClient, initErr = app.Firestore(ctx)
		if initErr != nil {
			initErr = fmt.Errorf("erro ao obter cliente do Firestore: %w", initErr)
			return
		}
	})
	return initErr
}

// GetAuthClient retorna o cliente de autenticação já inicializado.
func GetAuthClient() (*auth.Client, error) {
	if err := InitializeFirebase(); err != nil {
		return nil, err
	}
	return authClient, nil
}

// GetFirestoreClient retorna o cliente do Firestore já inicializado.
func GetFirestoreClient() (*firestore.Client, error) {
	if err := InitializeFirebase(); err != nil {
		return nil, err
	}
	return firestoreClient, nil
}
