package grouping

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warroom-backend/models"
)

func linkAt(id string, ts time.Time) models.PublishedLink {
	return models.PublishedLink{ID: id, Title: id, URL: "https://example.com/" + id, CreatedAt: &ts}
}

func TestSortLinksNewestFirstKeepsTimestampless(t *testing.T) {
	links := []models.PublishedLink{
		{ID: "sem-data", Title: "sem-data"},
		linkAt("antigo", time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC)),
		linkAt("recente", time.Date(2024, 6, 12, 8, 0, 0, 0, time.UTC)),
	}

	sorted := SortLinks(links)

	// Mais recentes primeiro; links sem timestamp ficam no final mas
	// nunca somem da listagem crua (só as visões agrupadas os excluem).
	require.Len(t, sorted, 3)
	assert.Equal(t, "recente", sorted[0].ID)
	assert.Equal(t, "antigo", sorted[1].ID)
	assert.Equal(t, "sem-data", sorted[2].ID)

	// A entrada não é mutada.
	assert.Equal(t, "sem-data", links[0].ID)
}

func TestSortLinksStableAmongTimestampless(t *testing.T) {
	zero := time.Time{}
	links := []models.PublishedLink{
		{ID: "x"},
		{ID: "y", CreatedAt: &zero},
		linkAt("datado", time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)),
		{ID: "z"},
	}

	sorted := SortLinks(links)

	require.Len(t, sorted, 4)
	assert.Equal(t, "datado", sorted[0].ID)
	assert.Equal(t, "x", sorted[1].ID)
	assert.Equal(t, "y", sorted[2].ID)
	assert.Equal(t, "z", sorted[3].ID)
}

func TestGroupLinksWeekAndDay(t *testing.T) {
	// 10/06/2024 é uma segunda-feira da semana ISO 24 de 2024.
	monday := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	links := []models.PublishedLink{linkAt("a", monday)}

	weeks := GroupLinks(links, DateWindow{})

	require.Len(t, weeks, 1)
	assert.Equal(t, 2024, weeks[0].Year)
	assert.Equal(t, 24, weeks[0].Week)
	assert.Equal(t, "สัปดาห์ที่ 24 / 2024", weeks[0].Label)

	require.Len(t, weeks[0].Days, 1)
	assert.Equal(t, "2024-06-10", weeks[0].Days[0].Date)
	assert.Equal(t, "วันจันทร์ที่ 10 มิถุนายน 2567", weeks[0].Days[0].Label)
	require.Len(t, weeks[0].Days[0].Links, 1)
	assert.Equal(t, "a", weeks[0].Days[0].Links[0].ID)
}

func TestGroupLinksDescendingOrder(t *testing.T) {
	links := []models.PublishedLink{
		linkAt("antigo", time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC)),
		linkAt("recente", time.Date(2024, 6, 12, 8, 0, 0, 0, time.UTC)),
		linkAt("meio", time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)),
	}

	weeks := GroupLinks(links, DateWindow{})

	// Semanas mais recentes primeiro; dias decrescentes dentro da semana.
	require.Len(t, weeks, 2)
	assert.Equal(t, 24, weeks[0].Week)
	assert.Equal(t, 18, weeks[1].Week)
	require.Len(t, weeks[0].Days, 2)
	assert.Equal(t, "2024-06-12", weeks[0].Days[0].Date)
	assert.Equal(t, "2024-06-10", weeks[0].Days[1].Date)
}

func TestGroupLinksPreservesIntraDayOrder(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	links := []models.PublishedLink{
		linkAt("primeiro", day.Add(15*time.Hour)),
		linkAt("segundo", day.Add(8*time.Hour)),
		linkAt("terceiro", day.Add(20*time.Hour)),
	}

	weeks := GroupLinks(links, DateWindow{})

	// Dentro do dia vale a ordem de chegada da coleção, não o horário.
	require.Len(t, weeks, 1)
	require.Len(t, weeks[0].Days, 1)
	got := weeks[0].Days[0].Links
	require.Len(t, got, 3)
	assert.Equal(t, "primeiro", got[0].ID)
	assert.Equal(t, "segundo", got[1].ID)
	assert.Equal(t, "terceiro", got[2].ID)
}

func TestGroupLinksExcludesMissingTimestamp(t *testing.T) {
	zero := time.Time{}
	links := []models.PublishedLink{
		{ID: "sem-data", Title: "sem-data"},
		{ID: "zerada", CreatedAt: &zero},
		linkAt("ok", time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)),
	}

	weeks := GroupLinks(links, DateWindow{})

	require.Len(t, weeks, 1)
	require.Len(t, weeks[0].Days, 1)
	require.Len(t, weeks[0].Days[0].Links, 1)
	assert.Equal(t, "ok", weeks[0].Days[0].Links[0].ID)
}

func TestGroupLinksDateWindow(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	window := DateWindow{Start: &start, End: &end}

	links := []models.PublishedLink{
		linkAt("dentro", time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)),
		linkAt("borda-inicio", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
		linkAt("borda-fim", time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)),
		linkAt("fora", time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)),
	}

	weeks := GroupLinks(links, window)

	seen := map[string]bool{}
	for _, week := range weeks {
		for _, day := range week.Days {
			for _, link := range day.Links {
				seen[link.ID] = true
			}
		}
	}

	// Intervalo inclusivo [início 00:00:00, fim 23:59:59].
	assert.True(t, seen["dentro"])
	assert.True(t, seen["borda-inicio"])
	assert.True(t, seen["borda-fim"])
	assert.False(t, seen["fora"])
}

func TestGroupLinksWindowEndIsExactlyLastSecond(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	window := DateWindow{Start: &start, End: &end}

	links := []models.PublishedLink{
		linkAt("no-limite", time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)),
		linkAt("passou", time.Date(2024, 6, 30, 23, 59, 59, 500000000, time.UTC)),
	}

	weeks := GroupLinks(links, window)

	// O fim da janela é 23:59:59 em ponto: frações de segundo além
	// disso já ficam de fora.
	require.Len(t, weeks, 1)
	require.Len(t, weeks[0].Days, 1)
	require.Len(t, weeks[0].Days[0].Links, 1)
	assert.Equal(t, "no-limite", weeks[0].Days[0].Links[0].ID)
}

func TestGroupLinksWindowInactiveWithoutBothEnds(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	links := []models.PublishedLink{
		linkAt("antigo", time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)),
	}

	// Só uma ponta definida: o filtro não é aplicado.
	weeks := GroupLinks(links, DateWindow{Start: &start})
	require.Len(t, weeks, 1)
}

func TestGroupLinksRoundTrip(t *testing.T) {
	links := []models.PublishedLink{
		linkAt("a", time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)),
		linkAt("b", time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)),
		linkAt("c", time.Date(2024, 6, 17, 9, 0, 0, 0, time.UTC)),
		linkAt("d", time.Date(2023, 12, 31, 9, 0, 0, 0, time.UTC)),
		{ID: "sem-data"},
	}

	weeks := GroupLinks(links, DateWindow{})

	// Todo link com timestamp válido aparece em exatamente um balde
	// (semana, dia); links sem timestamp não aparecem em nenhum.
	count := map[string]int{}
	for _, week := range weeks {
		for _, day := range week.Days {
			for _, link := range day.Links {
				count[link.ID]++
			}
		}
	}
	assert.Equal(t, map[string]int{"a": 1, "b": 1, "c": 1, "d": 1}, count)
}
