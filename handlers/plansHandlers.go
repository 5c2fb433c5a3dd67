package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"warroom-backend/firebase"
	"warroom-backend/grouping"
	"warroom-backend/models"
	"warroom-backend/utilities"
)

// PlansCollection é a coleção de planos mestres no Firestore.
const PlansCollection = "plans"

type CreatePlanInput struct {
	Title string            `json:"title"`
	Items []models.PlanItem `json:"items"`
}

// getPlan busca e decodifica um plano pelo ID.
func getPlan(ctx context.Context, id string) (*models.Plan, error) {
	record, err := firebase.GetDocument(ctx, PlansCollection, id)
	if err != nil || record == nil {
		return nil, err
	}

	var plan models.Plan
	if err := record.Snapshot.DataTo(&plan); err != nil {
		return nil, err
	}
	plan.ID = record.ID
	return &plan, nil
}

// savePlan grava o plano com o progresso sempre recalculado — o valor
// enviado pelo cliente nunca é persistido.
func savePlan(ctx context.Context, plan *models.Plan) error {
	grouping.RecomputePlan(plan)
	return firebase.SetDocument(ctx, PlansCollection, plan.ID, plan)
}

// CreatePlanHandler cria um plano mestre.
func CreatePlanHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando criação de plano mestre")

	var input CreatePlanInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utilities.LogError(err, "Erro ao decodificar JSON do plano")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	plan := models.Plan{Title: input.Title, Items: input.Items}
	grouping.RecomputePlan(&plan)

	id, err := firebase.CreateDocument(r.Context(), PlansCollection, plan)
	if err != nil {
		utilities.LogError(err, "Erro ao criar plano no Firestore")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	utilities.LogInfo("Plano criado com sucesso: %s (ID: %s)", plan.Title, id)
	logActivity(uidFromContext(r), "create", "plan", id, plan.Title)
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// ListPlansHandler lista os planos mestres.
func ListPlansHandler(w http.ResponseWriter, r *http.Request) {
	records, err := firebase.ListCollection(r.Context(), PlansCollection, "")
	if err != nil {
		utilities.LogError(err, "Erro ao buscar planos")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	plans := make([]models.Plan, 0, len(records))
	for _, record := range records {
		var plan models.Plan
		if err := record.Snapshot.DataTo(&plan); err != nil {
			utilities.LogWarn("Plano %s ignorado: %v", record.ID, err)
			continue
		}
		plan.ID = record.ID
		plans = append(plans, plan)
	}
	writeJSON(w, http.StatusOK, plans)
}

// GetPlanHandler devolve um plano pelo ID.
func GetPlanHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	plan, err := getPlan(r.Context(), vars["id"])
	if err != nil {
		utilities.LogError(err, "Erro ao buscar plano")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}
	if plan == nil {
		http.Error(w, "Plano não encontrado", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// UpdatePlanItemsHandler substitui o checklist do plano (adições,
// remoções e edições chegam como a lista completa) e recalcula o
// progresso.
func UpdatePlanItemsHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	planID := vars["id"]

	var input struct {
		Title *string           `json:"title"`
		Items []models.PlanItem `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utilities.LogError(err, "Erro ao decodificar itens do plano")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	plan, err := getPlan(r.Context(), planID)
	if err != nil {
		utilities.LogError(err, "Erro ao buscar plano para atualização")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}
	if plan == nil {
		http.Error(w, "Plano não encontrado", http.StatusNotFound)
		return
	}

	if input.Title != nil {
		plan.Title = *input.Title
	}
	plan.Items = input.Items

	if err := savePlan(r.Context(), plan); err != nil {
		utilities.LogError(err, "Erro ao gravar plano atualizado")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	utilities.LogInfo("Plano %s atualizado (progresso: %d%%)", planID, plan.Progress)
	logActivity(uidFromContext(r), "update_items", "plan", planID, strconv.Itoa(plan.Progress)+"%")
	writeJSON(w, http.StatusOK, plan)
}

// TogglePlanItemHandler alterna a conclusão de um item pelo índice e
// recalcula o progresso.
func TogglePlanItemHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	planID := vars["id"]

	var input struct {
		Index int `json:"index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utilities.LogError(err, "Erro ao decodificar alternância de item")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	plan, err := getPlan(r.Context(), planID)
	if err != nil {
		utilities.LogError(err, "Erro ao buscar plano para alternância")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}
	if plan == nil {
		http.Error(w, "Plano não encontrado", http.StatusNotFound)
		return
	}
	if input.Index < 0 || input.Index >= len(plan.Items) {
		http.Error(w, "Índice de item inválido", http.StatusBadRequest)
		return
	}

	plan.Items[input.Index].Completed = !plan.Items[input.Index].Completed

	if err := savePlan(r.Context(), plan); err != nil {
		utilities.LogError(err, "Erro ao gravar alternância do item")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	utilities.LogInfo("Item %d do plano %s alternado (progresso: %d%%)", input.Index, planID, plan.Progress)
	logActivity(uidFromContext(r), "toggle_item", "plan", planID, strconv.Itoa(input.Index))
	writeJSON(w, http.StatusOK, plan)
}

// DeletePlanHandler remove um plano mestre.
func DeletePlanHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	planID := vars["id"]

	if err := firebase.DeleteDocument(r.Context(), PlansCollection, planID); err != nil {
		utilities.LogError(err, "Erro ao excluir plano do Firestore")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	utilities.LogInfo("Plano excluído com sucesso: %s", planID)
	logActivity(uidFromContext(r), "delete", "plan", planID, "")
	w.WriteHeader(http.StatusNoContent)
}
