package utilities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatThaiDate(t *testing.T) {
	// 10/06/2024 foi uma segunda-feira; era budista = 2024 + 543.
	d := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "วันจันทร์ที่ 10 มิถุนายน 2567", FormatThaiDate(d))
}

func TestFormatThaiWeekLabel(t *testing.T) {
	assert.Equal(t, "สัปดาห์ที่ 24 / 2024", FormatThaiWeekLabel(24, 2024))
}

func TestISOWeekKey(t *testing.T) {
	year, week := ISOWeekKey(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 2024, year)
	assert.Equal(t, 24, week)

	// 01/01/2027 cai na semana 53 de 2026 no calendário ISO.
	year, week = ISOWeekKey(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 2026, year)
	assert.Equal(t, 53, week)
}

func TestFormatDateInput(t *testing.T) {
	d := time.Date(2024, 3, 5, 17, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-05", FormatDateInput(d))
}

func TestParseISOTimestamp(t *testing.T) {
	parsed := ParseISOTimestamp("2024-03-01T10:00:00Z")
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), parsed)

	parsed = ParseISOTimestamp("2024-03-01")
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), parsed)

	// Valores de campos datetime-local, sem fuso e com ou sem segundos.
	parsed = ParseISOTimestamp("2024-06-10T12:30")
	assert.Equal(t, time.Date(2024, 6, 10, 12, 30, 0, 0, time.UTC), parsed)

	parsed = ParseISOTimestamp("2024-06-10T12:30:45")
	assert.Equal(t, time.Date(2024, 6, 10, 12, 30, 45, 0, time.UTC), parsed)

	// Entradas vazias ou malformadas degradam para o instante zero.
	assert.True(t, ParseISOTimestamp("").IsZero())
	assert.True(t, ParseISOTimestamp("não é uma data").IsZero())
}

func TestExtractHostname(t *testing.T) {
	assert.Equal(t, "example.com", ExtractHostname("https://www.example.com/post/123"))
	assert.Equal(t, "facebook.com", ExtractHostname("facebook.com/warroom"))
	assert.Equal(t, "x.com", ExtractHostname("https://x.com/status/1?s=20"))

	// Sem hostname reconhecível a entrada volta inalterada.
	assert.Equal(t, "   ", ExtractHostname("   "))
}
