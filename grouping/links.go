package grouping

import (
	"sort"
	"time"

	"warroom-backend/models"
	"warroom-backend/utilities"
)

// DateWindow delimita o filtro de período da sala de imprensa. O filtro
// só é aplicado quando as duas pontas estão definidas; o intervalo é
// inclusivo de [início 00:00:00, fim 23:59:59].
type DateWindow struct {
	Start *time.Time
	End   *time.Time
}

// Active informa se a janela deve ser aplicada.
func (w DateWindow) Active() bool {
	return w.Start != nil && w.End != nil
}

// contains testa o instante contra o intervalo inclusivo da janela.
func (w DateWindow) contains(t time.Time) bool {
	start := time.Date(w.Start.Year(), w.Start.Month(), w.Start.Day(), 0, 0, 0, 0, t.Location())
	end := time.Date(w.End.Year(), w.End.Month(), w.End.Day(), 23, 59, 59, 0, t.Location())
	return !t.Before(start) && !t.After(end)
}

// SortLinks ordena os links mais recentes primeiro, de forma estável.
// Links sem timestamp vão para o final: eles precisam continuar
// visíveis na listagem crua para poderem ser corrigidos, ainda que as
// visões agrupadas os excluam.
func SortLinks(links []models.PublishedLink) []models.PublishedLink {
	sorted := make([]models.PublishedLink, len(links))
	copy(sorted, links)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].HasTimestamp() {
			return false
		}
		if !sorted[j].HasTimestamp() {
			return true
		}
		return sorted[i].CreatedAt.After(*sorted[j].CreatedAt)
	})
	return sorted
}

// DayGroup agrupa os links publicados em um mesmo dia-calendário.
// Dentro do dia os links preservam a ordem de chegada da coleção de
// entrada (a consulta do backend já devolve ordenado); o agrupamento
// nunca reordena.
type DayGroup struct {
	Date  string                 `json:"date"`  // YYYY-MM-DD
	Label string                 `json:"label"` // rótulo localizado (th-TH)
	Links []models.PublishedLink `json:"links"`
}

// WeekGroup agrupa os dias de uma mesma semana ISO.
type WeekGroup struct {
	Year  int        `json:"year"`  // ano-ISO da semana
	Week  int        `json:"week"`  // número da semana ISO
	Label string     `json:"label"` // rótulo localizado (th-TH)
	Days  []DayGroup `json:"days"`
}

// GroupLinks monta a visão da sala de imprensa: dois níveis de
// agrupamento, primeiro por semana ISO (+ ano) e depois por dia
// localizado. Semanas e dias saem em ordem decrescente (mais recente
// primeiro). Links sem timestamp válido são excluídos por completo;
// quando a janela está ativa, só entram links dentro do intervalo.
func GroupLinks(links []models.PublishedLink, window DateWindow) []WeekGroup {
	type weekKey struct {
		year, week int
	}

	weekDays := map[weekKey]map[string][]models.PublishedLink{}
	for _, link := range links {
		if !link.HasTimestamp() {
			continue
		}
		ts := *link.CreatedAt
		if window.Active() && !window.contains(ts) {
			continue
		}

		year, week := utilities.ISOWeekKey(ts)
		wk := weekKey{year: year, week: week}
		if weekDays[wk] == nil {
			weekDays[wk] = map[string][]models.PublishedLink{}
		}
		day := utilities.FormatDateInput(ts)
		weekDays[wk][day] = append(weekDays[wk][day], link)
	}

	weeks := make([]WeekGroup, 0, len(weekDays))
	for wk, days := range weekDays {
		group := WeekGroup{
			Year:  wk.year,
			Week:  wk.week,
			Label: utilities.FormatThaiWeekLabel(wk.week, wk.year),
		}
		for date, dayLinks := range days {
			labelDate, _ := time.Parse("2006-01-02", date)
			group.Days = append(group.Days, DayGroup{
				Date:  date,
				Label: utilities.FormatThaiDate(labelDate),
				Links: dayLinks,
			})
		}
		// Dias mais recentes primeiro dentro da semana.
		sort.Slice(group.Days, func(i, j int) bool {
			return group.Days[i].Date > group.Days[j].Date
		})
		weeks = append(weeks, group)
	}

	// Semanas mais recentes primeiro.
	sort.Slice(weeks, func(i, j int) bool {
		if weeks[i].Year != weeks[j].Year {
			return weeks[i].Year > weeks[j].Year
		}
		return weeks[i].Week > weeks[j].Week
	})
	return weeks
}
