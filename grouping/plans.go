package grouping

import (
	"math"

	"warroom-backend/models"
)

// PlanProgress calcula o progresso derivado de um checklist:
// round(100 * concluídos / total). Checklist vazio resulta em 0 —
// nunca há divisão por zero.
func PlanProgress(items []models.PlanItem) int {
	if len(items) == 0 {
		return 0
	}
	completed := 0
	for _, item := range items {
		if item.Completed {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(items))))
}

// RecomputePlan atualiza o progresso do plano a partir dos itens atuais.
// Deve ser chamado após toda adição/remoção/alternância de item; o valor
// enviado pelo cliente é sempre descartado.
func RecomputePlan(plan *models.Plan) {
	plan.Progress = PlanProgress(plan.Items)
}
