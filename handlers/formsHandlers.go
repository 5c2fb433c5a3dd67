package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"warroom-backend/firebase"
	"warroom-backend/forms"
	"warroom-backend/models"
	"warroom-backend/utilities"
)

// formCollections liga cada entidade de formulário à sua coleção.
var formCollections = map[string]string{
	"task":         TasksCollection,
	"link":         LinksCollection,
	"plan":         PlansCollection,
	"channel":      ChannelsCollection,
	"mediacontact": MediaContactsCollection,
}

// GetFormSchemaHandler devolve os descritores de campo de uma entidade;
// o cliente monta o modal a partir deles.
func GetFormSchemaHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	entity := vars["entity"]

	fields, ok := forms.Schema(entity)
	if !ok {
		http.Error(w, "Formulário desconhecido", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"entity":        entity,
		"fields":        fields,
		"initialValues": forms.InitialValues(fields),
	})
}

// SubmitFormHandler executa uma submissão genérica de criação: os valores
// do modal passam pelo interpretador de formulários e viram um documento
// novo na coleção da entidade. Falhas de gravação voltam como Outcome com
// mensagem — o modal permanece aberto para nova tentativa.
func SubmitFormHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	entity := vars["entity"]

	fields, ok := forms.Schema(entity)
	if !ok {
		http.Error(w, "Formulário desconhecido", http.StatusNotFound)
		return
	}

	var input struct {
		Values map[string]string `json:"values"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utilities.LogError(err, "Erro ao decodificar submissão de formulário")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	uid := uidFromContext(r)
	outcome := forms.Submit(r.Context(), fields, input.Values,
		func(ctx context.Context, values map[string]string) error {
			id, err := createFromForm(ctx, entity, values)
			if err != nil {
				return err
			}
			logActivity(uid, "create", entity, id, values["title"])
			return nil
		})

	// Sempre 200: o resultado (sucesso ou mensagem de falha) vai no corpo.
	writeJSON(w, http.StatusOK, outcome)
}

// createFromForm converte os valores do formulário em um documento da
// entidade. A validação aqui é a mesma dos handlers tipados.
func createFromForm(ctx context.Context, entity string, values map[string]string) (string, error) {
	collection := formCollections[entity]

	fields := map[string]interface{}{}
	for key, value := range values {
		fields[key] = value
	}

	switch entity {
	case "task":
		if !models.ValidTaskStatus(values["status"]) {
			return "", fmt.Errorf("status inválido: %s", values["status"])
		}
		if !models.ValidColumnKey(values["columnKey"]) {
			return "", fmt.Errorf("coluna inválida: %s", values["columnKey"])
		}
		fields["createdAt"] = time.Now().UTC().Format(time.RFC3339)
	case "link":
		createdAt := time.Now().UTC()
		if parsed := utilities.ParseISOTimestamp(values["createdAt"]); !parsed.IsZero() {
			createdAt = parsed
		}
		fields["createdAt"] = createdAt
		if values["platform"] == "" {
			fields["platform"] = utilities.ExtractHostname(values["url"])
		}
	case "plan":
		// Plano começa sem itens; progresso derivado é zero.
		fields["items"] = []models.PlanItem{}
		fields["progress"] = 0
	}

	return firebase.CreateDocument(ctx, collection, fields)
}
