package forms

import "warroom-backend/models"

// Esquemas declarativos dos formulários de criação/edição. As visões
// consomem estes descritores via GET /forms/{entity}; o interpretador em
// forms.go não conhece nenhuma entidade.

var taskFields = []FieldDescriptor{
	{Key: "title", Label: "หัวข้อ", Type: FieldText, Placeholder: "ชื่องาน"},
	{Key: "status", Label: "สถานะ", Type: FieldSelect, DefaultValue: models.StatusToDo, Options: []string{
		models.StatusToDo, models.StatusInProgress, models.StatusInReview,
		models.StatusDone, models.StatusIdea, models.StatusWaitingList,
		models.StatusCanceled,
	}},
	{Key: "tag", Label: "แท็ก", Type: FieldDatalist, Options: []string{models.TagUrgent, "Routine", "Follow up"}},
	{Key: "role", Label: "ผู้รับผิดชอบ", Type: FieldText},
	{Key: "link", Label: "ลิงก์", Type: FieldText, Placeholder: "https://"},
	{Key: "deadline", Label: "กำหนดส่ง", Type: FieldDate},
	{Key: "columnKey", Label: "ทีม", Type: FieldSelect, DefaultValue: models.ColumnSolver, Options: []string{
		models.ColumnSolver, models.ColumnPrinciples, models.ColumnDefender,
		models.ColumnExpert, models.ColumnBackoffice,
	}},
}

var linkFields = []FieldDescriptor{
	{Key: "url", Label: "URL", Type: FieldText, Placeholder: "https://"},
	{Key: "title", Label: "หัวข้อ", Type: FieldText},
	{Key: "imageUrl", Label: "รูปภาพ", Type: FieldText},
	{Key: "platform", Label: "แพลตฟอร์ม", Type: FieldDatalist, Options: []string{
		"Facebook", "X", "TikTok", "YouTube", "Website",
	}},
	{Key: "createdAt", Label: "เผยแพร่เมื่อ", Type: FieldDatetimeLocal},
}

var planFields = []FieldDescriptor{
	{Key: "title", Label: "ชื่อแผน", Type: FieldText, Placeholder: "แผนงาน"},
}

var channelFields = []FieldDescriptor{
	{Key: "name", Label: "ชื่อช่อง", Type: FieldText},
	{Key: "platform", Label: "แพลตฟอร์ม", Type: FieldDatalist, Options: []string{
		"Facebook", "X", "TikTok", "YouTube", "Website",
	}},
	{Key: "url", Label: "URL", Type: FieldText, Placeholder: "https://"},
	{Key: "notes", Label: "หมายเหตุ", Type: FieldText},
}

var mediaContactFields = []FieldDescriptor{
	{Key: "name", Label: "ชื่อ", Type: FieldText},
	{Key: "outlet", Label: "สังกัด", Type: FieldText},
	{Key: "phone", Label: "โทรศัพท์", Type: FieldText},
	{Key: "email", Label: "อีเมล", Type: FieldText},
	{Key: "notes", Label: "หมายเหตุ", Type: FieldText},
}

var schemas = map[string][]FieldDescriptor{
	"task":         taskFields,
	"link":         linkFields,
	"plan":         planFields,
	"channel":      channelFields,
	"mediacontact": mediaContactFields,
}

// Schema devolve os descritores de campo de uma entidade, ou false para
// entidades desconhecidas.
func Schema(entity string) ([]FieldDescriptor, bool) {
	fields, ok := schemas[entity]
	return fields, ok
}
