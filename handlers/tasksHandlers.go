package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"warroom-backend/firebase"
	"warroom-backend/grouping"
	"warroom-backend/models"
	"warroom-backend/utilities"
)

// TasksCollection é a coleção de tarefas no Firestore.
const TasksCollection = "tasks"

type CreateTaskInput struct {
	Title     string           `json:"title"`
	Status    string           `json:"status"`
	Tag       string           `json:"tag"`
	Role      string           `json:"role"`
	Link      string           `json:"link"`
	Deadline  string           `json:"deadline"`
	ColumnKey string           `json:"columnKey"`
	SOP       []models.SOPStep `json:"sop"`
}

type UpdateTaskInput struct {
	Title     *string `json:"title"`
	Status    *string `json:"status"`
	Tag       *string `json:"tag"`
	Role      *string `json:"role"`
	Link      *string `json:"link"`
	Deadline  *string `json:"deadline"`
	ColumnKey *string `json:"columnKey"`
}

// fetchTasks lê e decodifica a coleção de tarefas. A leitura é sem
// OrderBy de propósito: o Firestore omitiria documentos sem createdAt,
// e tarefas sem data precisam aparecer (contam como instante zero na
// ordenação).
func fetchTasks(ctx context.Context) ([]models.Task, error) {
	records, err := firebase.ListCollection(ctx, TasksCollection, "")
	if err != nil {
		return nil, err
	}

	tasks := make([]models.Task, 0, len(records))
	for _, record := range records {
		var task models.Task
		if err := record.Snapshot.DataTo(&task); err != nil {
			utilities.LogWarn("Tarefa %s ignorada: %v", record.ID, err)
			continue
		}
		task.ID = record.ID
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// CreateTaskHandler cria uma nova tarefa no quadro.
func CreateTaskHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando criação de nova tarefa")

	var input CreateTaskInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utilities.LogError(err, "Erro ao decodificar JSON da tarefa")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if input.Status == "" {
		input.Status = models.StatusToDo
	}
	// Validar status
	if !models.ValidTaskStatus(input.Status) {
		utilities.LogError(fmt.Errorf("status inválido: %s", input.Status), "Validação falhou")
		http.Error(w, "Status inválido", http.StatusBadRequest)
		return
	}
	// Validar coluna
	if !models.ValidColumnKey(input.ColumnKey) {
		utilities.LogError(fmt.Errorf("coluna inválida: %s", input.ColumnKey), "Validação falhou")
		http.Error(w, "Coluna inválida", http.StatusBadRequest)
		return
	}

	task := models.Task{
		Title:     input.Title,
		Status:    input.Status,
		Tag:       input.Tag,
		Role:      input.Role,
		Link:      input.Link,
		Deadline:  input.Deadline,
		ColumnKey: input.ColumnKey,
		SOP:       input.SOP,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	id, err := firebase.CreateDocument(r.Context(), TasksCollection, task)
	if err != nil {
		utilities.LogError(err, "Erro ao criar tarefa no Firestore")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	utilities.LogInfo("Tarefa criada com sucesso: %s (ID: %s)", task.Title, id)
	logActivity(uidFromContext(r), "create", "task", id, task.Title)
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// ListTasksHandler lista as tarefas ordenadas pelo modo pedido
// (newest, oldest ou deadline; padrão newest).
func ListTasksHandler(w http.ResponseWriter, r *http.Request) {
	tasks, err := fetchTasks(r.Context())
	if err != nil {
		utilities.LogError(err, "Erro ao buscar tarefas")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	mode := r.URL.Query().Get("sort")
	if mode == "" {
		mode = grouping.SortNewest
	}

	writeJSON(w, http.StatusOK, grouping.SortTasks(tasks, mode))
}

// BoardHandler devolve as tarefas particionadas nas colunas do quadro de
// estratégia.
func BoardHandler(w http.ResponseWriter, r *http.Request) {
	tasks, err := fetchTasks(r.Context())
	if err != nil {
		utilities.LogError(err, "Erro ao buscar tarefas do quadro")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}
	// Colunas exibem as tarefas mais recentes primeiro.
	writeJSON(w, http.StatusOK, grouping.PartitionTasks(grouping.SortTasks(tasks, grouping.SortNewest)))
}

// RapidResponseHandler devolve as tarefas urgentes (tag Urgent), mais
// recentes primeiro.
func RapidResponseHandler(w http.ResponseWriter, r *http.Request) {
	tasks, err := fetchTasks(r.Context())
	if err != nil {
		utilities.LogError(err, "Erro ao buscar tarefas urgentes")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}
	urgent := grouping.SortTasks(grouping.RapidResponseTasks(tasks), grouping.SortNewest)
	writeJSON(w, http.StatusOK, urgent)
}

// UpdateTaskHandler aplica uma atualização parcial a uma tarefa.
func UpdateTaskHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando atualização de tarefa")

	vars := mux.Vars(r)
	taskID := vars["id"]

	var updates UpdateTaskInput
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		utilities.LogError(err, "Erro ao decodificar JSON de atualização")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Construir atualização parcial apenas com os campos presentes
	partial := map[string]interface{}{}
	if updates.Title != nil {
		partial["title"] = *updates.Title
	}
	if updates.Status != nil {
		if !models.ValidTaskStatus(*updates.Status) {
			utilities.LogError(fmt.Errorf("status inválido: %s", *updates.Status), "Validação falhou")
			http.Error(w, "Status inválido", http.StatusBadRequest)
			return
		}
		partial["status"] = *updates.Status
	}
	if updates.Tag != nil {
		partial["tag"] = *updates.Tag
	}
	if updates.Role != nil {
		partial["role"] = *updates.Role
	}
	if updates.Link != nil {
		partial["link"] = *updates.Link
	}
	if updates.Deadline != nil {
		partial["deadline"] = *updates.Deadline
	}
	if updates.ColumnKey != nil {
		if !models.ValidColumnKey(*updates.ColumnKey) {
			utilities.LogError(fmt.Errorf("coluna inválida: %s", *updates.ColumnKey), "Validação falhou")
			http.Error(w, "Coluna inválida", http.StatusBadRequest)
			return
		}
		partial["columnKey"] = *updates.ColumnKey
	}

	if len(partial) == 0 {
		http.Error(w, "Nenhum campo para atualizar", http.StatusBadRequest)
		return
	}
	partial["updatedAt"] = time.Now().UTC().Format(time.RFC3339)

	if err := firebase.UpdateDocument(r.Context(), TasksCollection, taskID, partial); err != nil {
		utilities.LogError(err, "Erro ao atualizar tarefa no Firestore")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	utilities.LogInfo("Tarefa atualizada com sucesso: %s", taskID)
	logActivity(uidFromContext(r), "update", "task", taskID, "")
	w.WriteHeader(http.StatusNoContent)
}

// UpdateTaskSOPHandler substitui o checklist SOP de uma tarefa urgente.
func UpdateTaskSOPHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	taskID := vars["id"]

	var input struct {
		SOP []models.SOPStep `json:"sop"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utilities.LogError(err, "Erro ao decodificar checklist SOP")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	partial := map[string]interface{}{
		"sop":       input.SOP,
		"updatedAt": time.Now().UTC().Format(time.RFC3339),
	}
	if err := firebase.UpdateDocument(r.Context(), TasksCollection, taskID, partial); err != nil {
		utilities.LogError(err, "Erro ao atualizar checklist SOP")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	done := 0
	for _, step := range input.SOP {
		if step.Done {
			done++
		}
	}
	utilities.LogInfo("Checklist SOP da tarefa %s atualizado (%d/%d passos)", taskID, done, len(input.SOP))
	logActivity(uidFromContext(r), "update_sop", "task", taskID, fmt.Sprintf("%d/%d", done, len(input.SOP)))
	w.WriteHeader(http.StatusNoContent)
}

// DeleteTaskHandler remove uma tarefa.
func DeleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando exclusão de tarefa")

	vars := mux.Vars(r)
	taskID := vars["id"]

	if err := firebase.DeleteDocument(r.Context(), TasksCollection, taskID); err != nil {
		utilities.LogError(err, "Erro ao excluir tarefa do Firestore")
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	utilities.LogInfo("Tarefa excluída com sucesso: %s", taskID)
	logActivity(uidFromContext(r), "delete", "task", taskID, "")
	w.WriteHeader(http.StatusNoContent)
}
