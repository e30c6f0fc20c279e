// Package templates — таблица шаблонов уведомлений интеграции: какие поля
// показывать и в каком порядке, сгруппированные по каналам.
package templates

// Height — высота редактора шаблона.
type Height string

const (
	HeightTall  Height = "tall"
	HeightSmall Height = "small"
)

// RouteTemplate — jinja2-условие маршрута; редактируется отдельно от таблицы.
const RouteTemplate = "route_template"

const (
	blockSlack    = "Slack"
	blockTelegram = "Telegram"
)

// Field — один шаблон: имя поля API, подпись, высота редактора.
type Field struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Height Height `json:"height"`
}

// Block — группа шаблонов; пустое Name — блок без заголовка.
type Block struct {
	Name   string  `json:"name,omitempty"`
	Fields []Field `json:"contents"`
}

var blocks = []Block{
	{Fields: []Field{
		{Name: "grouping_id_template", Label: "Grouping", Height: HeightTall},
		{Name: "resolve_condition_template", Label: "Auto resolve", Height: HeightSmall},
	}},
	{Name: "Web", Fields: []Field{
		{Name: "web_title_template", Label: "Title", Height: HeightTall},
		{Name: "web_message_template", Label: "Message", Height: HeightTall},
		{Name: "web_image_url_template", Label: "Image", Height: HeightSmall},
	}},
	{Fields: []Field{
		{Name: "acknowledge_condition_template", Label: "Auto acknowledge", Height: HeightSmall},
		{Name: "source_link_template", Label: "Source link", Height: HeightSmall},
	}},
	{Fields: []Field{
		{Name: "phone_call_title_template", Label: "Phone Call", Height: HeightSmall},
		{Name: "sms_title_template", Label: "SMS", Height: HeightSmall},
	}},
	{Name: blockSlack, Fields: []Field{
		{Name: "slack_title_template", Label: "Title", Height: HeightSmall},
		{Name: "slack_message_template", Label: "Message", Height: HeightTall},
		{Name: "slack_image_url_template", Label: "Image", Height: HeightSmall},
	}},
	{Name: blockTelegram, Fields: []Field{
		{Name: "telegram_title_template", Label: "Title", Height: HeightSmall},
		{Name: "telegram_message_template", Label: "Message", Height: HeightTall},
		{Name: "telegram_image_url_template", Label: "Image", Height: HeightSmall},
	}},
	{Name: "Email", Fields: []Field{
		{Name: "email_title_template", Label: "Title", Height: HeightSmall},
		{Name: "email_message_template", Label: "Message", Height: HeightTall},
	}},
}

// Blocks — копия таблицы в порядке отображения.
func Blocks() []Block {
	return cloneBlocks(blocks)
}

// ForChannels — таблица без блоков неустановленных чатов.
func ForChannels(slackInstalled, telegramInstalled bool) []Block {
	out := make([]Block, 0, len(blocks))
	for _, b := range cloneBlocks(blocks) {
		if (b.Name == blockSlack && !slackInstalled) || (b.Name == blockTelegram && !telegramInstalled) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// Names — имена всех шаблонов таблицы по порядку.
func Names() []string {
	var out []string
	for _, b := range blocks {
		for _, f := range b.Fields {
			out = append(out, f.Name)
		}
	}
	return out
}

// Lookup — поле и заголовок его блока по имени шаблона.
func Lookup(name string) (Field, string, bool) {
	for _, b := range blocks {
		for _, f := range b.Fields {
			if f.Name == name {
				return f, b.Name, true
			}
		}
	}
	return Field{}, "", false
}

// IsKnown — имя из таблицы или route_template.
func IsKnown(name string) bool {
	if name == RouteTemplate {
		return true
	}
	_, _, ok := Lookup(name)
	return ok
}

func cloneBlocks(in []Block) []Block {
	out := make([]Block, len(in))
	for i, b := range in {
		out[i] = Block{Name: b.Name, Fields: append([]Field(nil), b.Fields...)}
	}
	return out
}
