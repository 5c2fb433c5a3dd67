package models

// Status possíveis de uma tarefa no quadro de estratégia.
const (
	StatusToDo        = "To Do"
	StatusInProgress  = "In Progress"
	StatusInReview    = "In Review"
	StatusDone        = "Done"
	StatusIdea        = "Idea"
	StatusWaitingList = "Waiting list"
	StatusCanceled    = "Canceled"
)

// Colunas fixas do quadro. A coluna determina o posicionamento da tarefa;
// a tag "Urgent" adicionalmente roteia a tarefa para a visão de resposta
// rápida, independente da coluna.
const (
	ColumnSolver     = "solver"
	ColumnPrinciples = "principles"
	ColumnDefender   = "defender"
	ColumnExpert     = "expert"
	ColumnBackoffice = "backoffice"
)

// TagUrgent marca tarefas que entram na visão de resposta rápida.
const TagUrgent = "Urgent"

// SOPStep é um passo ordenado do checklist de procedimento (SOP) de uma
// tarefa urgente.
type SOPStep struct {
	Text string `json:"text" firestore:"text"`
	Done bool   `json:"done" firestore:"done"`
}

// Task representa uma tarefa do quadro armazenada no Firestore.
// CreatedAt/UpdatedAt são strings ISO e Deadline é uma data "YYYY-MM-DD";
// o formato da deadline permite comparação lexicográfica na ordenação.
type Task struct {
	ID        string    `json:"id" firestore:"-"`
	Title     string    `json:"title" firestore:"title"`
	Status    string    `json:"status" firestore:"status"`
	Tag       string    `json:"tag,omitempty" firestore:"tag,omitempty"`
	Role      string    `json:"role,omitempty" firestore:"role,omitempty"`
	Link      string    `json:"link,omitempty" firestore:"link,omitempty"`
	Deadline  string    `json:"deadline,omitempty" firestore:"deadline,omitempty"`
	ColumnKey string    `json:"columnKey" firestore:"columnKey"`
	SOP       []SOPStep `json:"sop,omitempty" firestore:"sop,omitempty"`
	CreatedAt string    `json:"createdAt" firestore:"createdAt"`
	UpdatedAt string    `json:"updatedAt,omitempty" firestore:"updatedAt,omitempty"`
}

// ValidTaskStatus valida o status informado em criações/atualizações.
func ValidTaskStatus(status string) bool {
	valid := map[string]bool{
		StatusToDo:        true,
		StatusInProgress:  true,
		StatusInReview:    true,
		StatusDone:        true,
		StatusIdea:        true,
		StatusWaitingList: true,
		StatusCanceled:    true,
	}
	return valid[status]
}

// ValidColumnKey informa se a coluna é uma das cinco fixas do quadro.
func ValidColumnKey(key string) bool {
	valid := map[string]bool{
		ColumnSolver:     true,
		ColumnPrinciples: true,
		ColumnDefender:   true,
		ColumnExpert:     true,
		ColumnBackoffice: true,
	}
	return valid[key]
}
