package utilities

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Nomes de meses e dias da semana em tailandês, usados nos rótulos de
// exibição da sala de imprensa (o produto é operado em th-TH).
var thaiMonths = [...]string{
	"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน",
	"กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม",
}

var thaiWeekdays = [...]string{
	"วันอาทิตย์", "วันจันทร์", "วันอังคาร", "วันพุธ",
	"วันพฤหัสบดี", "วันศุกร์", "วันเสาร์",
}

// FormatThaiDate formata um instante como rótulo de dia localizado,
// com ano na era budista (+543). Ex.: "วันจันทร์ที่ 10 มิถุนายน 2567".
func FormatThaiDate(t time.Time) string {
	weekday := thaiWeekdays[int(t.Weekday())]
	month := thaiMonths[int(t.Month())-1]
	return fmt.Sprintf("%sที่ %d %s %d", weekday, t.Day(), month, t.Year()+543)
}

// FormatThaiWeekLabel monta o rótulo de uma semana ISO para exibição.
// O ano aqui é o ano-ISO da semana (gregoriano), não o ano budista.
func FormatThaiWeekLabel(week, year int) string {
	return fmt.Sprintf("สัปดาห์ที่ %d / %d", week, year)
}

// ISOWeekKey devolve o par (ano ISO, número da semana ISO) de um instante.
func ISOWeekKey(t time.Time) (year, week int) {
	return t.ISOWeek()
}

// FormatDateInput codifica um instante no formato aceito por campos de
// data ("YYYY-MM-DD").
func FormatDateInput(t time.Time) string {
	return t.Format("2006-01-02")
}

// Formatos aceitos por ParseISOTimestamp, na ordem de tentativa. Os
// dois formatos sem fuso são o que campos datetime-local produzem.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseISOTimestamp interpreta uma string ISO (RFC3339, datetime-local
// ou só a data). Strings vazias ou malformadas degradam para o instante
// zero — nunca retornam erro, conforme a semântica de ordenação das
// tarefas.
func ParseISOTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ExtractHostname extrai o hostname de uma URL para exibição, sem o
// prefixo "www.". Entradas que não parseiam voltam inalteradas.
func ExtractHostname(raw string) string {
	candidate := raw
	if !strings.Contains(candidate, "://") {
		candidate = "https://" + candidate
	}
	u, err := url.Parse(candidate)
	if err != nil || u.Hostname() == "" {
		return raw
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}
