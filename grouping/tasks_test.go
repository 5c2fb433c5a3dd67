package grouping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warroom-backend/models"
)

func taskIDs(tasks []models.Task) []string {
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return ids
}

func TestSortTasksNewestOldest(t *testing.T) {
	tasks := []models.Task{
		{ID: "1", CreatedAt: "2024-01-01"},
		{ID: "2", CreatedAt: "2024-03-01"},
	}

	assert.Equal(t, []string{"2", "1"}, taskIDs(SortTasks(tasks, SortNewest)))
	assert.Equal(t, []string{"1", "2"}, taskIDs(SortTasks(tasks, SortOldest)))

	// A entrada não pode ser mutada.
	assert.Equal(t, "1", tasks[0].ID)
}

func TestSortTasksMissingCreatedAt(t *testing.T) {
	tasks := []models.Task{
		{ID: "sem-data"},
		{ID: "a", CreatedAt: "2024-02-01T08:00:00Z"},
		{ID: "malformada", CreatedAt: "ontem"},
		{ID: "b", CreatedAt: "2024-05-01T08:00:00Z"},
	}

	// CreatedAt ausente/malformado conta como instante zero e fica por
	// último em newest, preservando a ordem relativa entre si (estável).
	assert.Equal(t, []string{"b", "a", "sem-data", "malformada"},
		taskIDs(SortTasks(tasks, SortNewest)))
	assert.Equal(t, []string{"sem-data", "malformada", "a", "b"},
		taskIDs(SortTasks(tasks, SortOldest)))
}

func TestSortTasksDeadline(t *testing.T) {
	tasks := []models.Task{
		{ID: "x"},
		{ID: "tarde", Deadline: "2024-09-30"},
		{ID: "y"},
		{ID: "cedo", Deadline: "2024-06-01"},
	}

	sorted := SortTasks(tasks, SortDeadline)

	// Toda tarefa com deadline vem antes de toda tarefa sem; entre as
	// datadas a ordem é não-decrescente; as sem deadline empatam e
	// preservam a ordem de chegada.
	assert.Equal(t, []string{"cedo", "tarde", "x", "y"}, taskIDs(sorted))
}

func TestSortTasksStability(t *testing.T) {
	tasks := []models.Task{
		{ID: "a", CreatedAt: "2024-01-01"},
		{ID: "b", CreatedAt: "2024-01-01"},
		{ID: "c", CreatedAt: "2024-01-01"},
	}
	assert.Equal(t, []string{"a", "b", "c"}, taskIDs(SortTasks(tasks, SortNewest)))
}

func TestSortTasksUnknownMode(t *testing.T) {
	tasks := []models.Task{{ID: "2"}, {ID: "1"}}
	assert.Equal(t, []string{"2", "1"}, taskIDs(SortTasks(tasks, "aleatório")))
}

func TestPartitionTasks(t *testing.T) {
	tasks := []models.Task{
		{ID: "1", ColumnKey: models.ColumnSolver},
		{ID: "2", ColumnKey: models.ColumnDefender},
		{ID: "3", ColumnKey: models.ColumnSolver},
		{ID: "4", ColumnKey: "marketing"},
		{ID: "5", ColumnKey: models.ColumnBackoffice},
		{ID: "6"},
	}

	board := PartitionTasks(tasks)

	assert.Equal(t, []string{"1", "3"}, taskIDs(board.Solver))
	assert.Equal(t, []string{"2"}, taskIDs(board.Defender))
	assert.Equal(t, []string{"5"}, taskIDs(board.Backoffice))
	assert.Empty(t, board.Principles)
	assert.Empty(t, board.Expert)

	// Colunas desconhecidas ou vazias caem no balde explícito, nunca
	// desaparecem do quadro.
	assert.Equal(t, []string{"4", "6"}, taskIDs(board.Unassigned))

	// Cada tarefa ocupa exatamente um balde.
	total := len(board.Solver) + len(board.Principles) + len(board.Defender) +
		len(board.Expert) + len(board.Backoffice) + len(board.Unassigned)
	require.Equal(t, len(tasks), total)
}

func TestRapidResponseTasks(t *testing.T) {
	tasks := []models.Task{
		{ID: "1", Tag: models.TagUrgent, ColumnKey: models.ColumnExpert},
		{ID: "2", Tag: "Rotina"},
		{ID: "3", Tag: models.TagUrgent},
	}

	// A tag Urgent roteia para resposta rápida independente da coluna.
	assert.Equal(t, []string{"1", "3"}, taskIDs(RapidResponseTasks(tasks)))
	assert.Empty(t, RapidResponseTasks(nil))
}
