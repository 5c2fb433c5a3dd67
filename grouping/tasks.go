// Package grouping contém as transformações puras que derivam as visões
// do dashboard (ordenações, partição por coluna, agrupamento por data).
// Nenhuma função aqui tem efeito colateral nem depende de estado de
// renderização além do modo informado; entradas malformadas degradam
// (timestamp ausente vira instante zero, link sem data é excluído) e
// nunca causam pânico.
package grouping

import (
	"sort"

	"warroom-backend/models"
	"warroom-backend/utilities"
)

// Modos de ordenação de tarefas aceitos pelas visões.
const (
	SortNewest   = "newest"
	SortOldest   = "oldest"
	SortDeadline = "deadline"
)

// SortTasks devolve uma nova lista ordenada conforme o modo:
//   - newest/oldest: por CreatedAt desc/asc; CreatedAt ausente ou
//     malformado conta como instante zero (fica por último em newest);
//   - deadline: comparação lexicográfica ascendente da data "YYYY-MM-DD";
//     tarefas sem deadline vêm depois de todas as com deadline e são
//     equivalentes entre si.
//
// A ordenação é estável: chaves iguais preservam a ordem de chegada.
// Modos desconhecidos devolvem a lista na ordem original.
func SortTasks(tasks []models.Task, mode string) []models.Task {
	sorted := make([]models.Task, len(tasks))
	copy(sorted, tasks)

	switch mode {
	case SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return utilities.ParseISOTimestamp(sorted[i].CreatedAt).
				After(utilities.ParseISOTimestamp(sorted[j].CreatedAt))
		})
	case SortOldest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return utilities.ParseISOTimestamp(sorted[i].CreatedAt).
				Before(utilities.ParseISOTimestamp(sorted[j].CreatedAt))
		})
	case SortDeadline:
		sort.SliceStable(sorted, func(i, j int) bool {
			di, dj := sorted[i].Deadline, sorted[j].Deadline
			if di == "" {
				// Sem deadline nunca vem antes; duas ausências empatam.
				return false
			}
			if dj == "" {
				return true
			}
			return di < dj
		})
	}
	return sorted
}

// Board é o resultado da partição das tarefas nas cinco colunas fixas.
// Unassigned recolhe tarefas cuja coluna não é reconhecida — antes elas
// sumiam silenciosamente de todas as colunas; manter um balde explícito
// torna o problema visível sem alterar o layout das cinco colunas.
type Board struct {
	Solver     []models.Task `json:"solver"`
	Principles []models.Task `json:"principles"`
	Defender   []models.Task `json:"defender"`
	Expert     []models.Task `json:"expert"`
	Backoffice []models.Task `json:"backoffice"`
	Unassigned []models.Task `json:"unassigned,omitempty"`
}

// PartitionTasks distribui cada tarefa em exatamente um balde do quadro,
// chaveado por ColumnKey, preservando a ordem de entrada.
func PartitionTasks(tasks []models.Task) Board {
	var board Board
	for _, task := range tasks {
		switch task.ColumnKey {
		case models.ColumnSolver:
			board.Solver = append(board.Solver, task)
		case models.ColumnPrinciples:
			board.Principles = append(board.Principles, task)
		case models.ColumnDefender:
			board.Defender = append(board.Defender, task)
		case models.ColumnExpert:
			board.Expert = append(board.Expert, task)
		case models.ColumnBackoffice:
			board.Backoffice = append(board.Backoffice, task)
		default:
			board.Unassigned = append(board.Unassigned, task)
		}
	}
	return board
}

// RapidResponseTasks filtra as tarefas com a tag "Urgent", que entram na
// visão de resposta rápida independente da coluna em que estão.
func RapidResponseTasks(tasks []models.Task) []models.Task {
	urgent := []models.Task{}
	for _, task := range tasks {
		if task.Tag == models.TagUrgent {
			urgent = append(urgent, task)
		}
	}
	return urgent
}
