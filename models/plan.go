package models

// PlanItem é um item ordenado do checklist de um plano mestre.
type PlanItem struct {
	Text      string `json:"text" firestore:"text"`
	Completed bool   `json:"completed" firestore:"completed"`
}

// Plan representa um plano mestre com checklist e progresso derivado.
// Progress é sempre recalculado no servidor após qualquer mutação dos
// itens (round(100 * concluídos / total)); nunca é definido pelo usuário.
type Plan struct {
	ID       string     `json:"id" firestore:"-"`
	Title    string     `json:"title" firestore:"title"`
	Items    []PlanItem `json:"items" firestore:"items"`
	Progress int        `json:"progress" firestore:"progress"`
}
