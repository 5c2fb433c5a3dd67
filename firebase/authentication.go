package firebase

import (
	"context"
	"fmt"
	"time"

	"firebase.google.com/go/v4/auth"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"warroom-backend/models"
	"warroom-backend/utilities"
)

// ProfilesCollection é a coleção de perfis de usuário no Firestore.
const ProfilesCollection = "profiles"

// VerifyUserToken verifica um ID Token do Firebase e devolve o token
// decodificado.
func VerifyUserToken(ctx context.Context, token string) (*auth.Token, error) {
	client, err := GetAuthClient()
	if err != nil {
		return nil, err
	}

	verifiedToken, err := client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("erro ao verificar token: %v", err)
	}
	return verifiedToken, nil
}

// GetProfile busca o perfil de um usuário pelo UID. Retorna (nil, nil)
// quando o perfil ainda não existe.
func GetProfile(ctx context.Context, uid string) (*models.UserProfile, error) {
	client, err := GetFirestoreClient()
	if err != nil {
		return nil, err
	}

	doc, err := client.Collection(ProfilesCollection).Doc(uid).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar perfil %s: %w", uid, err)
	}

	var profile models.UserProfile
	if err := doc.DataTo(&profile); err != nil {
		return nil, fmt.Errorf("erro ao decodificar perfil %s: %w", uid, err)
	}
	profile.UID = uid
	return &profile, nil
}

// CheckOrCreateProfile garante que o usuário autenticado tem um perfil no
// Firestore. No primeiro acesso o perfil é criado com papel Member e
// status Pending — a conta autentica mas só vê a tela de espera até um
// administrador aprovar.
func CheckOrCreateProfile(ctx context.Context, token *auth.Token) (*models.UserProfile, error) {
	if profile, err := GetProfile(ctx, token.UID); err != nil {
		return nil, err
	} else if profile != nil {
		utilities.LogDebug("Perfil %s já existe (status: %s)", token.UID, profile.Status)
		return profile, nil
	}

	// Primeiro acesso - cria o perfil pendente
	utilities.LogInfo("Primeiro acesso para UID %s. Criando perfil pendente...", token.UID)
	email, _ := token.Claims["email"].(string)
	displayName, _ := token.Claims["name"].(string)

	profile := models.UserProfile{
		UID:         token.UID,
		DisplayName: displayName,
		Email:       email,
		Role:        models.RoleMember,
		Status:      models.ProfileStatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	client, err := GetFirestoreClient()
	if err != nil {
		return nil, err
	}
	if _, err := client.Collection(ProfilesCollection).Doc(token.UID).Set(ctx, profile); err != nil {
		return nil, fmt.Errorf("erro ao criar perfil %s: %w", token.UID, err)
	}
	return &profile, nil
}

// ListProfiles lista todos os perfis (uso restrito ao painel admin).
func ListProfiles(ctx context.Context) ([]models.UserProfile, error) {
	records, err := ListCollection(ctx, ProfilesCollection, "")
	if err != nil {
		return nil, err
	}

	profiles := make([]models.UserProfile, 0, len(records))
	for _, record := range records {
		doc := record.Snapshot
		var profile models.UserProfile
		if err := doc.DataTo(&profile); err != nil {
			utilities.LogWarn("Perfil %s ignorado: %v", doc.Ref.ID, err)
			continue
		}
		profile.UID = doc.Ref.ID
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

// ApproveProfile muda o status de um perfil para Active.
func ApproveProfile(ctx context.Context, uid string) error {
	return UpdateDocument(ctx, ProfilesCollection, uid, map[string]interface{}{
		"status": models.ProfileStatusActive,
	})
}
