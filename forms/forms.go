// Package forms implementa o renderizador genérico de formulários do
// dashboard: um interpretador sobre uma lista declarativa de descritores
// de campo. Nenhuma entidade recebe tratamento especial aqui — a única
// ligação com o domínio são os esquemas em schemas.go.
package forms

import "context"

// Tipos de campo aceitos pelos descritores.
const (
	FieldText          = "text"
	FieldSelect        = "select"
	FieldDate          = "date"
	FieldDatetimeLocal = "datetime-local"
	FieldDatalist      = "datalist"
)

// FieldDescriptor descreve um campo do formulário. Options só é usada
// pelos tipos select e datalist.
type FieldDescriptor struct {
	Key          string   `json:"key"`
	Label        string   `json:"label"`
	Type         string   `json:"type"`
	Options      []string `json:"options,omitempty"`
	DefaultValue string   `json:"defaultValue,omitempty"`
	Placeholder  string   `json:"placeholder,omitempty"`
}

// Outcome é o resultado de uma submissão. Em caso de falha o modal
// permanece aberto com a mensagem visível, permitindo nova tentativa.
type Outcome struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

// SaveFunc é o handler de gravação fornecido pelo chamador; recebe o
// mapeamento chave→valor corrente e pode executar uma escrita assíncrona.
type SaveFunc func(ctx context.Context, values map[string]string) error

// InitialValues monta o estado inicial do formulário: o DefaultValue de
// cada campo, ou string vazia quando ausente.
func InitialValues(fields []FieldDescriptor) map[string]string {
	values := make(map[string]string, len(fields))
	for _, field := range fields {
		values[field.Key] = field.DefaultValue
	}
	return values
}

// Submit executa uma submissão: restringe os valores recebidos aos campos
// declarados (chaves extras são ignoradas), completa ausências com o
// default e entrega o resultado ao handler de gravação. Qualquer falha da
// gravação vira um Outcome de erro — nunca um panic e nunca um retry
// automático.
func Submit(ctx context.Context, fields []FieldDescriptor, values map[string]string, save SaveFunc) Outcome {
	merged := InitialValues(fields)
	for _, field := range fields {
		if v, ok := values[field.Key]; ok {
			merged[field.Key] = v
		}
	}

	if err := save(ctx, merged); err != nil {
		return Outcome{OK: false, Message: err.Error()}
	}
	return Outcome{OK: true}
}
