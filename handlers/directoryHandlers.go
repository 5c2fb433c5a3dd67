package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"warroom-backend/firebase"
	"warroom-backend/models"
	"warroom-backend/utilities"
)

// Coleções do diretório de ativos no Firestore.
const (
	ChannelsCollection      = "channels"
	MediaContactsCollection = "media_contacts"
)

// CreateChannelHandler cadastra um canal de publicação.
func CreateChannelHandler(w http.ResponseWriter, r *http.Request) {
	var channel models.Channel
	if err := json.NewDecoder(r.Body).Decode(&channel); err != nil {
		utilities.LogError(err, "Erro ao decodificar JSON do canal")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := firebase.CreateDocument(r.Context(), ChannelsCollection, channel)
	if err != nil {
		utilities.LogError(err, "Erro ao criar canal no Firestore")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	utilities.LogInfo("Canal criado com sucesso: %s (ID: %s)", channel.Name, id)
	logActivity(uidFromContext(r), "create", "channel", id, channel.Name)
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// ListChannelsHandler lista os canais do diretório.
func ListChannelsHandler(w http.ResponseWriter, r *http.Request) {
	records, err := firebase.ListCollection(r.Context(), ChannelsCollection, "")
	if err != nil {
		utilities.LogError(err, "Erro ao buscar canais")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	channels := make([]models.Channel, 0, len(records))
	for _, record := range records {
		var channel models.Channel
		if err := record.Snapshot.DataTo(&channel); err != nil {
			utilities.LogWarn("Canal %s ignorado: %v", record.ID, err)
			continue
		}
		channel.ID = record.ID
		channels = append(channels, channel)
	}
	writeJSON(w, http.StatusOK, channels)
}

// UpdateChannelHandler substitui os dados de um canal.
func UpdateChannelHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	channelID := vars["id"]

	var channel models.Channel
	if err := json.NewDecoder(r.Body).Decode(&channel); err != nil {
		utilities.LogError(err, "Erro ao decodificar JSON do canal")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := firebase.SetDocument(r.Context(), ChannelsCollection, channelID, channel); err != nil {
		utilities.LogError(err, "Erro ao atualizar canal no Firestore")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	logActivity(uidFromContext(r), "update", "channel", channelID, channel.Name)
	w.WriteHeader(http.StatusNoContent)
}

// DeleteChannelHandler remove um canal do diretório.
func DeleteChannelHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	channelID := vars["id"]

	if err := firebase.DeleteDocument(r.Context(), ChannelsCollection, channelID); err != nil {
		utilities.LogError(err, "Erro ao excluir canal do Firestore")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	logActivity(uidFromContext(r), "delete", "channel", channelID, "")
	w.WriteHeader(http.StatusNoContent)
}

// CreateMediaContactHandler cadastra um contato de imprensa.
func CreateMediaContactHandler(w http.ResponseWriter, r *http.Request) {
	var contact models.MediaContact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		utilities.LogError(err, "Erro ao decodificar JSON do contato")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := firebase.CreateDocument(r.Context(), MediaContactsCollection, contact)
	if err != nil {
		utilities.LogError(err, "Erro ao criar contato no Firestore")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	utilities.LogInfo("Contato criado com sucesso: %s (ID: %s)", contact.Name, id)
	logActivity(uidFromContext(r), "create", "media_contact", id, contact.Name)
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// ListMediaContactsHandler lista os contatos de imprensa.
func ListMediaContactsHandler(w http.ResponseWriter, r *http.Request) {
	records, err := firebase.ListCollection(r.Context(), MediaContactsCollection, "")
	if err != nil {
		utilities.LogError(err, "Erro ao buscar contatos")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	contacts := make([]models.MediaContact, 0, len(records))
	for _, record := range records {
		var contact models.MediaContact
		if err := record.Snapshot.DataTo(&contact); err != nil {
			utilities.LogWarn("Contato %s ignorado: %v", record.ID, err)
			continue
		}
		contact.ID = record.ID
		contacts = append(contacts, contact)
	}
	writeJSON(w, http.StatusOK, contacts)
}

// UpdateMediaContactHandler substitui os dados de um contato.
func UpdateMediaContactHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	contactID := vars["id"]

	var contact models.MediaContact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		utilities.LogError(err, "Erro ao decodificar JSON do contato")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := firebase.SetDocument(r.Context(), MediaContactsCollection, contactID, contact); err != nil {
		utilities.LogError(err, "Erro ao atualizar contato no Firestore")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	logActivity(uidFromContext(r), "update", "media_contact", contactID, contact.Name)
	w.WriteHeader(http.StatusNoContent)
}

// DeleteMediaContactHandler remove um contato de imprensa.
func DeleteMediaContactHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	contactID := vars["id"]

	if err := firebase.DeleteDocument(r.Context(), MediaContactsCollection, contactID); err != nil {
		utilities.LogError(err, "Erro ao excluir contato do Firestore")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	logActivity(uidFromContext(r), "delete", "media_contact", contactID, "")
	w.WriteHeader(http.StatusNoContent)
}
