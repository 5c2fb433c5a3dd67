package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"warroom-backend/firebase"
	"warroom-backend/grouping"
	"warroom-backend/metadata"
	"warroom-backend/models"
	"warroom-backend/utilities"
)

// LinksCollection é a coleção de links publicados no Firestore.
const LinksCollection = "links"

type CreateLinkInput struct {
	URL       string `json:"url"`
	Title     string `json:"title"`
	ImageURL  string `json:"imageUrl"`
	Platform  string `json:"platform"`
	CreatedAt string `json:"createdAt"` // ISO; vazio = agora
	AutoFetch bool   `json:"autoFetch"` // buscar metadados da página
}

type UpdateLinkInput struct {
	URL      *string `json:"url"`
	Title    *string `json:"title"`
	ImageURL *string `json:"imageUrl"`
	Platform *string `json:"platform"`
}

// fetchLinks lê e decodifica a coleção de links, mais recentes primeiro.
// A leitura é sem OrderBy de propósito: o Firestore omitiria documentos
// sem createdAt, e links sem timestamp precisam aparecer na listagem
// crua para edição — só as visões agrupadas os excluem. A ordenação é
// feita em memória e define a ordem estável dentro de cada dia na visão
// agrupada.
func fetchLinks(ctx context.Context) ([]models.PublishedLink, error) {
	records, err := firebase.ListCollection(ctx, LinksCollection, "")
	if err != nil {
		return nil, err
	}

	links := make([]models.PublishedLink, 0, len(records))
	for _, record := range records {
		var link models.PublishedLink
		if err := record.Snapshot.DataTo(&link); err != nil {
			utilities.LogWarn("Link %s ignorado: %v", record.ID, err)
			continue
		}
		link.ID = record.ID
		links = append(links, link)
	}
	return grouping.SortLinks(links), nil
}

// CreateLinkHandler registra um link publicado. Com AutoFetch, os campos
// vazios são completados pelos metadados da página (melhor esforço:
// falha na busca nunca impede o cadastro).
func CreateLinkHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando criação de link publicado")

	var input CreateLinkInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utilities.LogError(err, "Erro ao decodificar JSON do link")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if input.URL == "" {
		http.Error(w, "URL é obrigatória", http.StatusBadRequest)
		return
	}

	createdAt := time.Now().UTC()
	if input.CreatedAt != "" {
		if parsed := utilities.ParseISOTimestamp(input.CreatedAt); !parsed.IsZero() {
			createdAt = parsed
		}
	}

	link := models.PublishedLink{
		Title:     input.Title,
		URL:       input.URL,
		ImageURL:  input.ImageURL,
		Platform:  input.Platform,
		CreatedAt: &createdAt,
	}

	if input.AutoFetch {
		meta, err := metadata.FetchURLMetadata(r.Context(), input.URL)
		if err != nil {
			// Falha é silenciosa: seguem os valores fornecidos.
			utilities.LogWarn("Metadados não obtidos para %s: %v", input.URL, err)
		} else {
			if link.Title == "" {
				link.Title = meta.Title
			}
			if link.ImageURL == "" {
				link.ImageURL = meta.ImageURL
			}
			if input.CreatedAt == "" && meta.PublishedDate != "" {
				if parsed := utilities.ParseISOTimestamp(meta.PublishedDate); !parsed.IsZero() {
					link.CreatedAt = &parsed
				}
			}
		}
	}

	if link.Platform == "" {
		link.Platform = utilities.ExtractHostname(link.URL)
	}

	id, err := firebase.CreateDocument(r.Context(), LinksCollection, link)
	if err != nil {
		utilities.LogError(err, "Erro ao criar link no Firestore")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	utilities.LogInfo("Link criado com sucesso: %s (ID: %s)", link.URL, id)
	logActivity(uidFromContext(r), "create", "link", id, link.URL)
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// ListLinksHandler devolve a coleção crua (edição e administração).
func ListLinksHandler(w http.ResponseWriter, r *http.Request) {
	links, err := fetchLinks(r.Context())
	if err != nil {
		utilities.LogError(err, "Erro ao buscar links")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, links)
}

// NewsroomHandler devolve a visão agrupada da sala de imprensa:
// semanas ISO decrescentes, dias localizados decrescentes. O filtro de
// período (?start=YYYY-MM-DD&end=YYYY-MM-DD) só atua quando as duas
// pontas estão presentes; o intervalo é inclusivo.
func NewsroomHandler(w http.ResponseWriter, r *http.Request) {
	links, err := fetchLinks(r.Context())
	if err != nil {
		utilities.LogError(err, "Erro ao buscar links da sala de imprensa")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	var window grouping.DateWindow
	if raw := r.URL.Query().Get("start"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			window.Start = &t
		}
	}
	if raw := r.URL.Query().Get("end"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			window.End = &t
		}
	}

	writeJSON(w, http.StatusOK, grouping.GroupLinks(links, window))
}

// LinkMetadataHandler pré-busca os metadados de uma URL para preencher o
// formulário. Sempre responde 200: sem metadados, o corpo é vazio.
func LinkMetadataHandler(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if url == "" {
		http.Error(w, "URL é obrigatória", http.StatusBadRequest)
		return
	}

	meta, err := metadata.FetchURLMetadata(r.Context(), url)
	if err != nil {
		utilities.LogWarn("Metadados não obtidos para %s: %v", url, err)
		writeJSON(w, http.StatusOK, metadata.URLMetadata{})
		return
	}
	writeJSON(w, http.StatusOK, meta)
}

// UpdateLinkHandler aplica uma atualização parcial a um link.
func UpdateLinkHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	linkID := vars["id"]

	var updates UpdateLinkInput
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		utilities.LogError(err, "Erro ao decodificar JSON de atualização do link")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	partial := map[string]interface{}{}
	if updates.URL != nil {
		partial["url"] = *updates.URL
	}
	if updates.Title != nil {
		partial["title"] = *updates.Title
	}
	if updates.ImageURL != nil {
		partial["imageUrl"] = *updates.ImageURL
	}
	if updates.Platform != nil {
		partial["platform"] = *updates.Platform
	}

	if len(partial) == 0 {
		http.Error(w, "Nenhum campo para atualizar", http.StatusBadRequest)
		return
	}
	partial["updatedAt"] = time.Now().UTC()

	if err := firebase.UpdateDocument(r.Context(), LinksCollection, linkID, partial); err != nil {
		utilities.LogError(err, "Erro ao atualizar link no Firestore")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	utilities.LogInfo("Link atualizado com sucesso: %s", linkID)
	logActivity(uidFromContext(r), "update", "link", linkID, "")
	w.WriteHeader(http.StatusNoContent)
}

// DeleteLinkHandler remove um link publicado.
func DeleteLinkHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	linkID := vars["id"]

	if err := firebase.DeleteDocument(r.Context(), LinksCollection, linkID); err != nil {
		utilities.LogError(err, "Erro ao excluir link do Firestore")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	utilities.LogInfo("Link excluído com sucesso: %s", linkID)
	logActivity(uidFromContext(r), "delete", "link", linkID, "")
	w.WriteHeader(http.StatusNoContent)
}
