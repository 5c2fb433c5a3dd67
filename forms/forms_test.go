package forms

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleFields = []FieldDescriptor{
	{Key: "title", Label: "Título", Type: FieldText},
	{Key: "status", Label: "Status", Type: FieldSelect, DefaultValue: "To Do", Options: []string{"To Do", "Done"}},
	{Key: "deadline", Label: "Prazo", Type: FieldDate},
}

func TestInitialValues(t *testing.T) {
	values := InitialValues(sampleFields)

	// DefaultValue quando declarado, string vazia caso contrário.
	assert.Equal(t, map[string]string{
		"title":    "",
		"status":   "To Do",
		"deadline": "",
	}, values)
}

func TestSubmitMergesDefaultsAndFilters(t *testing.T) {
	var got map[string]string
	outcome := Submit(context.Background(), sampleFields, map[string]string{
		"title":    "Coletiva de imprensa",
		"intruso":  "ignorar",
		"deadline": "2024-06-10",
	}, func(ctx context.Context, values map[string]string) error {
		got = values
		return nil
	})

	assert.True(t, outcome.OK)
	assert.Empty(t, outcome.Message)
	assert.Equal(t, map[string]string{
		"title":    "Coletiva de imprensa",
		"status":   "To Do",
		"deadline": "2024-06-10",
	}, got)
}

func TestSubmitSurfacesSaveFailure(t *testing.T) {
	outcome := Submit(context.Background(), sampleFields, map[string]string{},
		func(ctx context.Context, values map[string]string) error {
			return errors.New("falha de escrita no backend")
		})

	// A falha vira mensagem visível; o chamador mantém o modal aberto
	// para nova tentativa. Nenhum retry automático acontece aqui.
	assert.False(t, outcome.OK)
	assert.Equal(t, "falha de escrita no backend", outcome.Message)
}

func TestSchema(t *testing.T) {
	fields, ok := Schema("task")
	require.True(t, ok)
	assert.NotEmpty(t, fields)

	keys := map[string]bool{}
	for _, f := range fields {
		keys[f.Key] = true
	}
	assert.True(t, keys["title"] && keys["status"] && keys["columnKey"] && keys["deadline"])

	_, ok = Schema("inexistente")
	assert.False(t, ok)
}
